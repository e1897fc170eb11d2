package labels

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Labeler assigns verdict tags to a model response for one ground-truth word.
// How the tags are derived is up to the implementation; the scorer only
// relies on the tag taxonomy.
type Labeler interface {
	Label(word Word, response []string) ([]Tag, error)
}

// LabelerFunc adapts an ordinary function to the Labeler interface.
type LabelerFunc func(word Word, response []string) ([]Tag, error)

// Label calls f(word, response).
func (f LabelerFunc) Label(word Word, response []string) ([]Tag, error) {
	return f(word, response)
}

// Item is one word to label together with the syllables a model produced.
type Item struct {
	Word     Word
	Response []string
}

// Build labels every item with l and collects the results into a Set whose
// Index is the number of items.
func Build(model string, items []Item, l Labeler) (*Set, error) {
	entries := make([]Entry, 0, len(items))
	for i, it := range items {
		tags, err := l.Label(it.Word, it.Response)
		if err != nil {
			return nil, fmt.Errorf("labeling item %d (%q): %w", i, it.Word, err)
		}
		entries = append(entries, Entry{
			Word:     it.Word.String(),
			Response: it.Response,
			Tags:     tags,
		})
	}
	return NewSet(model, len(items), entries), nil
}

// BoundaryLabeler compares where syllables end. A response syllable whose
// end offset matches a ground-truth boundary within Tolerance characters is
// TP, otherwise FP; ground-truth boundaries left unmatched are FN. Tags are
// emitted in offset order.
//
// A response that does not spell the word cannot be aligned and is tagged
// with a single Pass.
type BoundaryLabeler struct {
	Tolerance int // character match tolerance
}

type boundary struct {
	offset    int
	predicted bool
	matched   bool
}

// Label implements Labeler.
func (b BoundaryLabeler) Label(word Word, response []string) ([]Tag, error) {
	if norm.NFC.String(strings.Join(response, "")) != word.String() {
		return []Tag{Pass}, nil
	}

	truth := ends(word.Syllables(), func(s Syllable) string { return s.Text })
	predicted := ends(response, func(s string) string { return norm.NFC.String(s) })

	matched := make([]bool, len(truth))
	var marks []boundary

	// Greedy left-to-right matching within tolerance.
	for _, p := range predicted {
		hit := false
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= b.Tolerance {
				matched[i] = true
				hit = true
				break
			}
		}
		marks = append(marks, boundary{offset: p, predicted: true, matched: hit})
	}
	for i, t := range truth {
		if !matched[i] {
			marks = append(marks, boundary{offset: t})
		}
	}

	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].offset != marks[j].offset {
			return marks[i].offset < marks[j].offset
		}
		return marks[i].predicted && !marks[j].predicted
	})

	tags := make([]Tag, len(marks))
	for i, m := range marks {
		switch {
		case !m.predicted:
			tags[i] = FN
		case m.matched:
			tags[i] = TP
		default:
			tags[i] = FP
		}
	}
	return tags, nil
}

// ends returns the cumulative rune offset at which each segment ends.
func ends[T any](segments []T, text func(T) string) []int {
	out := make([]int, len(segments))
	pos := 0
	for i, s := range segments {
		pos += utf8.RuneCountInString(text(s))
		out[i] = pos
	}
	return out
}
