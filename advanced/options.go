package advanced

import "log/slog"

// Options tune a single skeleton computation. The zero value is usable and
// means "defaults everywhere".
type Options struct {
	// MaxEvents caps the number of queue pops before the sweep gives up with an
	// *InvariantError. Zero picks a budget from the input size.
	MaxEvents int
	// Logger receives Debug records for every event and finisher step. Nil
	// falls back to the package logger (see SetLogger).
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger()
}

// A valid sweep pops every event at most a handful of times per vertex pair, so
// a quadratic budget is far beyond anything a correct run needs.
func (o Options) eventBudget(vertexCount int) int {
	if o.MaxEvents > 0 {
		return o.MaxEvents
	}
	return 16*vertexCount*vertexCount + 1024
}
