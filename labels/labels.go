// Package labels models labeled syllable decompositions: the ground-truth
// words, the syllables a model produced for them, and the per-syllable
// verdicts that the scorer consumes.
package labels

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Tag is a verdict assigned to one judged syllable position.
type Tag string

// Verdicts recognised by the scorer.
const (
	TP   Tag = "TP"   // syllable correctly identified
	FP   Tag = "FP"   // syllable produced that is not in the ground truth
	FN   Tag = "FN"   // ground-truth syllable the model missed
	Pass Tag = "Pass" // excluded from comparison
)

// Valid reports whether t is one of the known verdicts.
func (t Tag) Valid() bool {
	switch t {
	case TP, FP, FN, Pass:
		return true
	}
	return false
}

// UnmarshalJSON rejects anything outside the verdict taxonomy.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Tag(s).Valid() {
		return fmt.Errorf("unknown tag %q", s)
	}
	*t = Tag(s)
	return nil
}

// Syllable is one segment of a word along with its structural template.
type Syllable struct {
	Text     string `json:"syllable"`
	Template string `json:"template"`
}

// Word is an ordered sequence of syllables. The spelled-out form is always
// the concatenation of the syllables.
type Word struct {
	text      string
	syllables []Syllable
}

// NewWord builds a Word from its syllables. Syllable text is NFC-normalized.
func NewWord(syllables []Syllable) Word {
	syl := make([]Syllable, len(syllables))
	for i, s := range syllables {
		syl[i] = Syllable{Text: norm.NFC.String(s.Text), Template: s.Template}
	}
	return Word{
		text:      joinSyllables(syl),
		syllables: syl,
	}
}

// String returns the word spelled out.
func (w Word) String() string {
	return w.text
}

// Syllables returns a copy of the word's syllables.
func (w Word) Syllables() []Syllable {
	return slices.Clone(w.syllables)
}

// Len returns the number of syllables.
func (w Word) Len() int {
	return len(w.syllables)
}

type wordJSON struct {
	Word      string     `json:"word"`
	Syllables []Syllable `json:"syllables"`
}

// MarshalJSON encodes the word with its derived spelling.
func (w Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(wordJSON{Word: w.text, Syllables: w.syllables})
}

// UnmarshalJSON decodes a word. The stored spelling is ignored and
// re-derived from the syllables.
func (w *Word) UnmarshalJSON(data []byte) error {
	var raw struct {
		Syllables *[]Syllable `json:"syllables"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Syllables == nil {
		return fmt.Errorf("%w: word missing %q", ErrMalformedInput, "syllables")
	}
	*w = NewWord(*raw.Syllables)
	return nil
}

func joinSyllables(syllables []Syllable) string {
	return strings.Join(lo.Map(syllables, func(s Syllable, _ int) string {
		return s.Text
	}), "")
}

// Entry associates one source word with the model's response and the
// verdicts assigned to it. The number of tags may differ from the number of
// syllables when the model produced extra or missing syllables.
type Entry struct {
	Word     string   `json:"word"`
	Response []string `json:"response"`
	Tags     []Tag    `json:"label"`
}

// FullyCorrect reports whether every tag is TP. An entry without tags is
// vacuously correct.
func (e Entry) FullyCorrect() bool {
	return lo.EveryBy(e.Tags, func(t Tag) bool { return t == TP })
}

func (e Entry) clone() Entry {
	return Entry{
		Word:     e.Word,
		Response: slices.Clone(e.Response),
		Tags:     slices.Clone(e.Tags),
	}
}

// Set is a finished collection of labeled entries. Index is the number of
// words considered, which may exceed len(Entries) when some words produced
// no comparable output.
//
// A Set is never mutated after construction; accessors return copies.
type Set struct {
	model   string
	index   int
	entries []Entry
}

// NewSet builds a Set from entries. The entries are copied.
func NewSet(model string, index int, entries []Entry) *Set {
	return &Set{
		model:   model,
		index:   index,
		entries: lo.Map(entries, func(e Entry, _ int) Entry { return e.clone() }),
	}
}

// Model returns the name of the model that produced the responses.
func (s *Set) Model() string {
	return s.model
}

// Index returns the declared total word count.
func (s *Set) Index() int {
	return s.index
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entry returns a copy of the i-th entry.
func (s *Set) Entry(i int) Entry {
	return s.entries[i].clone()
}

// Entries returns a copy of all entries.
func (s *Set) Entries() []Entry {
	return lo.Map(s.entries, func(e Entry, _ int) Entry { return e.clone() })
}

// TagSequences returns the tag sequence of every entry, in order.
func (s *Set) TagSequences() [][]Tag {
	return lo.Map(s.entries, func(e Entry, _ int) []Tag { return slices.Clone(e.Tags) })
}
