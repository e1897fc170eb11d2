// Package report renders label sets and score snapshots for the terminal.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	sylleval "github.com/jamesainslie/go-sylleval"
	"github.com/jamesainslie/go-sylleval/labels"
)

// Separator frames the label table.
const Separator = "---------------------------------------"

// WriteMetrics writes one "<Name>: <value>" line per metric. Undefined
// metrics are reported with their reason.
func WriteMetrics(w io.Writer, sn sylleval.Snapshot) error {
	bw := bufio.NewWriter(w)
	for _, r := range sn.Results {
		if r.Err != nil {
			fmt.Fprintf(bw, "%s: undefined (%v)\n", r.Metric.Label(), r.Err)
			continue
		}
		fmt.Fprintf(bw, "%s: %s\n", r.Metric.Label(), FormatValue(r.Value))
	}
	return bw.Flush()
}

// WriteCounts writes the raw tallies on one line.
func WriteCounts(w io.Writer, c sylleval.Counts) error {
	_, err := fmt.Fprintf(w, "(TP: %d, FP: %d, FN: %d, Pass: %d, Words: %d)\n",
		c.TruePositives, c.FalsePositives, c.FalseNegatives, c.Passes, c.Words)
	return err
}

// FormatValue prints v in its shortest round-trip form, keeping a trailing
// ".0" for integral values.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// WriteTable writes the label set as word,response,labels rows framed by
// separator lines and preceded by the model name.
func WriteTable(w io.Writer, set *labels.Set) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, set.Model())
	fmt.Fprintln(bw, Separator)
	fmt.Fprintln(bw, "Word,Response,Labels")
	for _, e := range set.Entries() {
		fmt.Fprintln(bw, Row(e))
	}
	fmt.Fprintln(bw, Separator)
	return bw.Flush()
}

// Row renders one entry as word,hyphen-joined-response,hyphen-joined-labels.
func Row(e labels.Entry) string {
	tags := lo.Map(e.Tags, func(t labels.Tag, _ int) string { return string(t) })
	return e.Word + "," + strings.Join(e.Response, "-") + "," + strings.Join(tags, "-")
}

type yamlMetric struct {
	Value *float64 `yaml:"value,omitempty"`
	Error string   `yaml:"error,omitempty"`
}

type yamlSnapshot struct {
	Counts  sylleval.Counts       `yaml:"counts"`
	Metrics map[string]yamlMetric `yaml:"metrics"`
}

// WriteYAML writes the snapshot as a YAML document.
func WriteYAML(w io.Writer, sn sylleval.Snapshot) error {
	doc := yamlSnapshot{
		Counts:  sn.Counts,
		Metrics: make(map[string]yamlMetric, len(sn.Results)),
	}
	for _, r := range sn.Results {
		if r.Err != nil {
			doc.Metrics[string(r.Metric)] = yamlMetric{Error: r.Err.Error()}
			continue
		}
		v := r.Value
		doc.Metrics[string(r.Metric)] = yamlMetric{Value: &v}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
