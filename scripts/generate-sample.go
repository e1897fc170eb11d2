//go:build ignore

// Build a sample label set from a tab-separated word list or an experiment
// record. Each word-list line holds the ground-truth syllables separated by
// "." and the model response separated by "-". An experiment record
// (instruction_containers, model_name) replaces the word list when given.
// Writes JSON for the CLI and a protobuf copy to cache/.
// Usage: go run ./scripts/generate-sample.go [-in data/sample_words.tsv] [-experiment data/experiment.json]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jamesainslie/go-sylleval/labels"
)

func main() {
	in := flag.String("in", "data/sample_words.tsv", "Tab-separated word list")
	out := flag.String("out", "data/labeled_experiment.json", "Output label set")
	cache := flag.String("cache", "cache/labeled_experiment.pb", "Binary copy of the label set")
	model := flag.String("model", "sample", "Model name recorded in the label set")
	tolerance := flag.Int("tolerance", 0, "Character tolerance for boundary matching")
	experiment := flag.String("experiment", "", "Experiment record to label instead of the word list")
	flag.Parse()

	labeler := labels.BoundaryLabeler{Tolerance: *tolerance}

	var set *labels.Set
	var err error
	if *experiment != "" {
		exp, loadErr := labels.LoadExperimentFile(*experiment)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *experiment, loadErr)
			os.Exit(1)
		}
		set, err = exp.Label(labeler)
	} else {
		items, readErr := readItems(*in)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *in, readErr)
			os.Exit(1)
		}
		set, err = labels.Build(*model, items, labeler)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error labeling: %v\n", err)
		os.Exit(1)
	}

	for _, path := range []string{*out, *cache} {
		if path == "" {
			continue
		}
		if err := labels.SaveFile(path, set); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  -> %s (%d words)\n", path, set.Len())
	}
}

func readItems(path string) ([]labels.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var items []labels.Item
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		truth, response, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected two tab-separated columns", lineNo)
		}

		var syllables []labels.Syllable
		for _, s := range strings.Split(truth, ".") {
			syllables = append(syllables, labels.Syllable{Text: s, Template: template(s)})
		}

		items = append(items, labels.Item{
			Word:     labels.NewWord(syllables),
			Response: strings.Split(strings.TrimSpace(response), "-"),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}
	return items, nil
}

// template maps a syllable onto its consonant/vowel shape, e.g. "cat" -> "CVC".
func template(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if strings.ContainsRune("aeiouy", r) {
			b.WriteByte('V')
		} else {
			b.WriteByte('C')
		}
	}
	return b.String()
}
