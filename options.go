// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options shared by the solvers.

package valvenet

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/valvenet/internal/logging"
	"github.com/katalvlaran/valvenet/metrics"
	"github.com/katalvlaran/valvenet/search"
)

// Default budgets in minutes for the single and dual actor solvers.
const (
	DefaultSingleBudget = search.DefaultBudget
	DefaultDualBudget   = search.DefaultDualBudget
)

// Option customizes one solver call.
type Option func(*settings)

type settings struct {
	ctx   context.Context
	prune bool
	log   *slog.Logger
	rec   *metrics.Recorder
}

func newSettings(opts []Option) settings {
	s := settings{
		ctx:   context.Background(),
		prune: true,
		log:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithContext makes the search cancellable. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithPruning toggles bound pruning in single-actor searches (default on).
// Dual-actor searches never prune because they need every OpenSet.
func WithPruning(on bool) Option {
	return func(s *settings) { s.prune = on }
}

// WithLogger sets the Debug logger; nil keeps the default no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecorder reports search effort to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *settings) { s.rec = rec }
}
