package sylleval

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-sylleval/labels"
)

// Scorer derives quality metrics from a label set.
// It is immutable after New and safe for concurrent use.
type Scorer struct {
	counts Counts
	logger *slog.Logger
}

// New tallies set once and returns a Scorer over the result.
// A nil set scores as empty.
func New(set *labels.Set, opts ...Option) *Scorer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := Tally(set)
	cfg.logger.Debug("label set tallied",
		"entries", c.Entries,
		"words", c.Words,
		"tags", c.Tags,
		"tp", c.TruePositives,
		"fp", c.FalsePositives,
		"fn", c.FalseNegatives,
		"pass", c.Passes,
	)

	return &Scorer{counts: c, logger: cfg.logger}
}

// Tally counts every tag of every entry in set.
func Tally(set *labels.Set) Counts {
	if set == nil {
		return Counts{}
	}

	entries := set.Entries()
	all := lo.FlatMap(entries, func(e labels.Entry, _ int) []labels.Tag { return e.Tags })

	return Counts{
		TruePositives:  lo.Count(all, labels.TP),
		FalsePositives: lo.Count(all, labels.FP),
		FalseNegatives: lo.Count(all, labels.FN),
		Passes:         lo.Count(all, labels.Pass),
		Tags:           len(all),
		CorrectWords:   lo.CountBy(entries, labels.Entry.FullyCorrect),
		Words:          set.Index(),
		Entries:        set.Len(),
	}
}

// Counts returns the raw tallies.
func (s *Scorer) Counts() Counts {
	return s.counts
}

// WordAccuracy returns fully-correct words / (words - Pass).
func (s *Scorer) WordAccuracy() (float64, error) {
	return s.counts.WordAccuracy()
}

// SyllableAccuracy returns TP / (tags - Pass).
func (s *Scorer) SyllableAccuracy() (float64, error) {
	return s.counts.SyllableAccuracy()
}

// Precision returns TP / (TP + FP).
func (s *Scorer) Precision() (float64, error) {
	return s.counts.Precision()
}

// Recall returns TP / (TP + FN).
func (s *Scorer) Recall() (float64, error) {
	return s.counts.Recall()
}

// F1 returns the harmonic mean of precision and recall.
func (s *Scorer) F1() (float64, error) {
	return s.counts.F1()
}

// Result is the outcome of computing one metric. Err is non-nil when the
// metric is undefined, in which case Value is meaningless.
type Result struct {
	Metric Metric
	Value  float64
	Err    error
}

// Snapshot is the full set of counts and metrics for one label set.
type Snapshot struct {
	Counts  Counts
	Results []Result
}

// Snapshot computes every metric. A degenerate metric is recorded in its
// Result and does not affect the others.
func (s *Scorer) Snapshot() Snapshot {
	results := make([]Result, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		v, err := s.counts.Compute(m)
		if err != nil {
			s.logger.Debug("metric undefined", "metric", string(m), "error", err)
		}
		results = append(results, Result{Metric: m, Value: v, Err: err})
	}
	return Snapshot{Counts: s.counts, Results: results}
}

// Value returns the recorded result for m.
func (sn Snapshot) Value(m Metric) (float64, error) {
	for _, r := range sn.Results {
		if r.Metric == m {
			return r.Value, r.Err
		}
	}
	return sn.Counts.Compute(m)
}
