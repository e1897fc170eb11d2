// Package sylleval scores syllable decompositions produced by a language
// model against verified ground truth.
//
// # Quick Start
//
//	set, err := labels.LoadFile("data/labeled_experiment.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := sylleval.New(set)
//	f1, err := s.F1()
//	if errors.Is(err, sylleval.ErrDegenerateMetric) {
//	    fmt.Println("F1 undefined:", err)
//	}
//
// # Metrics
//
// Each metric is computed independently from the same counts. When a
// metric's denominator is zero it returns a *DegenerateMetricError instead of
// a value; the other metrics remain available.
//
// # Thread Safety
//
// A Scorer is immutable after New and safe for concurrent use. Scorers share
// no state, so different label sets can be scored in parallel.
package sylleval
