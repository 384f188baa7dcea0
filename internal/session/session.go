// Package session wires one claim form to its wizard engine, address
// workflow and submitter, and keeps live sessions in memory. Sessions do
// not survive a restart; the wizard is a single sitting.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"claim-engine/internal/address"
	"claim-engine/internal/model"
	"claim-engine/internal/submission"
	"claim-engine/internal/wizard"
)

// State is everything one claim session owns. The form belongs exclusively
// to its session; the only locking is the component single-flight guards.
type State struct {
	ID        string
	CreatedAt time.Time
	Form      *model.ClaimForm
	Flags     model.SessionFlags
	Engine    *wizard.Engine
	Addresses *address.Workflow
	Submitter *submission.Submitter
}

// Snapshot renders the session for the front end.
func (st *State) Snapshot() model.Snapshot {
	step := st.Engine.Current()
	return model.Snapshot{
		SessionID:       st.ID,
		CurrentStep:     step,
		Step:            model.Steps[step],
		CanAdvance:      st.Engine.CanAdvance(st.Form, st.Flags),
		SecondsLeft:     st.Engine.Countdown().Remaining(),
		Candidates:      st.Addresses.Candidates(),
		Searching:       st.Addresses.Busy(),
		EstimatedRefund: submission.EstimatedRefund(st.Form),
		Form:            st.Form,
	}
}

// Store holds live sessions keyed by ID.
type Store struct {
	sessions sync.Map // id -> *State
	lookup   address.Lookup
	sink     submission.Sink
	now      func() time.Time
}

// NewStore builds a store around the two external clients. A nil clock
// uses wall time.
func NewStore(lookup address.Lookup, sink submission.Sink, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{lookup: lookup, sink: sink, now: now}
}

// Create opens a new session positioned on the first wizard step.
func (s *Store) Create(flags model.SessionFlags) *State {
	eng := wizard.New(wizard.WithClock(s.now))
	wf := address.NewWorkflow(s.lookup, nil)

	st := &State{
		ID:        uuid.New().String(),
		CreatedAt: s.now(),
		Form:      model.NewClaimForm(),
		Flags:     flags,
		Engine:    eng,
		Addresses: wf,
		Submitter: submission.NewSubmitter(s.sink),
	}

	// Leaving the address step invalidates the lookup results, so stale
	// candidates cannot reappear when the user navigates back.
	eng.OnLeave(func(from model.StepID) {
		if from == model.StepAddress {
			wf.DropCandidates()
		}
	})

	s.sessions.Store(st.ID, st)
	return st
}

// Get returns the session for id.
func (s *Store) Get(id string) (*State, bool) {
	v, ok := s.sessions.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*State), true
}
