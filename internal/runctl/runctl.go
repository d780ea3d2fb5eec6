// Package runctl carries the process-wide "still running" signal that every
// scan polls between candidates.
package runctl

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
)

// State reports whether the current run should continue. It is stopped
// either explicitly or when its context is done.
type State struct {
	ctx     context.Context
	stopped atomic.Bool
	id      string
}

// New creates a run bound to ctx.
func New(ctx context.Context) *State {
	if ctx == nil {
		ctx = context.Background()
	}
	return &State{ctx: ctx, id: uuid.NewString()}
}

// Background returns a run that only stops through Stop.
func Background() *State {
	return New(context.Background())
}

// ID identifies the run in log output.
func (s *State) ID() string { return s.id }

// Context returns the context the run is bound to.
func (s *State) Context() context.Context { return s.ctx }

// Running reports whether the run has been neither stopped nor cancelled.
func (s *State) Running() bool {
	if s.stopped.Load() {
		return false
	}
	if s.ctx.Err() != nil {
		s.stopped.Store(true)
		return false
	}
	return true
}

// Stop ends the run. Scans observe it at their next step.
func (s *State) Stop() {
	s.stopped.Store(true)
}
