// Package wizard owns the claim wizard's current step and the rules for
// moving between steps. Forward moves are hard-gated on step validity;
// back-navigation is never blocked.
package wizard

import (
	"time"

	"claim-engine/internal/gate"
	"claim-engine/internal/model"
)

// Engine holds the single current step of a session and commits
// transitions against the wizard graph.
type Engine struct {
	current    model.StepID
	countdown  *Countdown
	leaveHooks []func(model.StepID)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the countdown clock. Tests pass a fixed clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.countdown = NewCountdown(now) }
}

// New returns an engine positioned on the first wizard step.
func New(opts ...Option) *Engine {
	e := &Engine{current: model.StepEmployment}
	for _, opt := range opts {
		opt(e)
	}
	if e.countdown == nil {
		e.countdown = NewCountdown(nil)
	}
	return e
}

// OnLeave registers fn to run with the step being left on every committed
// transition, forward or backward, before the countdown resets.
func (e *Engine) OnLeave(fn func(model.StepID)) {
	e.leaveHooks = append(e.leaveHooks, fn)
}

// Current returns the step the session is on.
func (e *Engine) Current() model.StepID {
	return e.current
}

// Countdown returns the per-step countdown owned by this engine.
func (e *Engine) Countdown() *Countdown {
	return e.countdown
}

// CanAdvance reports whether the gate for the current step passes. It is
// the affordance signal; Advance re-checks the same predicate as the hard
// gate.
func (e *Engine) CanAdvance(form *model.ClaimForm, _ model.SessionFlags) bool {
	return gate.Valid(e.current, form)
}

// Advance commits the forward edge out of the current step. A missing edge
// (terminal step) is ErrInvalidTransition; a failing gate refuses the move
// with ErrValidationFailed and changes nothing.
func (e *Engine) Advance(form *model.ClaimForm, flags model.SessionFlags) (model.StepID, error) {
	to, ok := next(forward, e.current, flags)
	if !ok {
		return e.current, ErrInvalidTransition
	}
	if !gate.Valid(e.current, form) {
		return e.current, ErrValidationFailed
	}
	e.commit(to)
	return e.current, nil
}

// Retreat commits the structurally inverse edge. Back-navigation is never
// gated; only a missing edge (the first step) fails.
func (e *Engine) Retreat(_ *model.ClaimForm, flags model.SessionFlags) (model.StepID, error) {
	to, ok := next(backward, e.current, flags)
	if !ok {
		return e.current, ErrInvalidTransition
	}
	e.commit(to)
	return e.current, nil
}

func (e *Engine) commit(to model.StepID) {
	from := e.current
	e.current = to
	for _, fn := range e.leaveHooks {
		fn(from)
	}
	e.countdown.Reset()
}
