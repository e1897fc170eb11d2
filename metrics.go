package sylleval

import "fmt"

// Metric identifies one of the derived scores.
type Metric string

// Metrics reported for a label set, in report order.
const (
	WordAccuracy     Metric = "word_accuracy"
	SyllableAccuracy Metric = "syllable_accuracy"
	Precision        Metric = "precision"
	Recall           Metric = "recall"
	F1               Metric = "f1"
)

// AllMetrics lists every metric in report order.
var AllMetrics = []Metric{WordAccuracy, SyllableAccuracy, Precision, Recall, F1}

// Label returns the human-readable name used in reports.
func (m Metric) Label() string {
	switch m {
	case WordAccuracy:
		return "Accuracy word"
	case SyllableAccuracy:
		return "Accuracy syllable"
	case Precision:
		return "Precision"
	case Recall:
		return "Recall"
	case F1:
		return "F1"
	}
	return string(m)
}

// Counts holds the raw tallies every metric is derived from.
type Counts struct {
	TruePositives  int `yaml:"true_positives"`
	FalsePositives int `yaml:"false_positives"`
	FalseNegatives int `yaml:"false_negatives"`
	Passes         int `yaml:"passes"`
	Tags           int `yaml:"tags"`          // TP + FP + FN + Pass
	CorrectWords   int `yaml:"correct_words"` // entries tagged only TP
	Words          int `yaml:"words"`         // declared total word count
	Entries        int `yaml:"entries"`
}

// WordAccuracy is the share of fully-correct words among words not passed.
func (c Counts) WordAccuracy() (float64, error) {
	den := c.Words - c.Passes
	if den <= 0 {
		return 0, degenerate(WordAccuracy, "no comparable words (words=%d, pass=%d)", c.Words, c.Passes)
	}
	return float64(c.CorrectWords) / float64(den), nil
}

// SyllableAccuracy is the share of TP tags among tags not passed.
func (c Counts) SyllableAccuracy() (float64, error) {
	den := c.Tags - c.Passes
	if den <= 0 {
		return 0, degenerate(SyllableAccuracy, "no comparable syllables (tags=%d, pass=%d)", c.Tags, c.Passes)
	}
	return float64(c.TruePositives) / float64(den), nil
}

// Precision is TP / (TP + FP).
func (c Counts) Precision() (float64, error) {
	den := c.TruePositives + c.FalsePositives
	if den == 0 {
		return 0, degenerate(Precision, "no predicted syllables (TP+FP=0)")
	}
	return float64(c.TruePositives) / float64(den), nil
}

// Recall is TP / (TP + FN).
func (c Counts) Recall() (float64, error) {
	den := c.TruePositives + c.FalseNegatives
	if den == 0 {
		return 0, degenerate(Recall, "no ground-truth syllables (TP+FN=0)")
	}
	return float64(c.TruePositives) / float64(den), nil
}

// F1 is the harmonic mean of precision and recall.
func (c Counts) F1() (float64, error) {
	p, err := c.Precision()
	if err != nil {
		return 0, degenerate(F1, "precision undefined: %v", err)
	}
	r, err := c.Recall()
	if err != nil {
		return 0, degenerate(F1, "recall undefined: %v", err)
	}
	if p+r == 0 {
		return 0, degenerate(F1, "precision and recall are both zero")
	}
	return 2 * p * r / (p + r), nil
}

// Compute returns the value of m.
func (c Counts) Compute(m Metric) (float64, error) {
	switch m {
	case WordAccuracy:
		return c.WordAccuracy()
	case SyllableAccuracy:
		return c.SyllableAccuracy()
	case Precision:
		return c.Precision()
	case Recall:
		return c.Recall()
	case F1:
		return c.F1()
	}
	return 0, fmt.Errorf("sylleval: unknown metric %q", m)
}
