package sylleval

import (
	"errors"
	"fmt"
)

// ErrDegenerateMetric indicates a metric's denominator is zero, so the metric
// is undefined for the label set.
var ErrDegenerateMetric = errors.New("sylleval: degenerate metric")

// DegenerateMetricError names the metric that could not be computed and why.
// It matches ErrDegenerateMetric with errors.Is.
type DegenerateMetricError struct {
	Metric Metric
	Reason string
}

func (e *DegenerateMetricError) Error() string {
	return fmt.Sprintf("sylleval: %s undefined: %s", e.Metric, e.Reason)
}

// Is reports whether target is ErrDegenerateMetric.
func (e *DegenerateMetricError) Is(target error) bool {
	return target == ErrDegenerateMetric
}

func degenerate(m Metric, format string, args ...any) error {
	return &DegenerateMetricError{Metric: m, Reason: fmt.Sprintf(format, args...)}
}
