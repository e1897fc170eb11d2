package sylleval

import "log/slog"

// Option configures a Scorer.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
