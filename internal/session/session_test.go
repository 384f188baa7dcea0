package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claim-engine/internal/model"
	"claim-engine/internal/wizard"
)

type stubLookup struct {
	candidate *model.AddressCandidate
}

func (s *stubLookup) Find(context.Context, string) (*model.AddressCandidate, error) {
	return s.candidate, nil
}

type stubSink struct{ calls int }

func (s *stubSink) Submit(context.Context, model.SubmissionPayload) error {
	s.calls++
	return nil
}

func newTestStore() *Store {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewStore(&stubLookup{}, &stubSink{}, func() time.Time { return fixed })
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore()

	st := store.Create(model.SessionFlags{EmailVerified: true})
	require.NotEmpty(t, st.ID)
	assert.Equal(t, model.StepEmployment, st.Engine.Current())
	assert.True(t, st.Flags.EmailVerified)
	assert.Len(t, st.Form.Refunds, 1, "a new form starts with one blank refund entry")

	got, ok := store.Get(st.ID)
	require.True(t, ok)
	assert.Same(t, st, got)

	_, ok = store.Get("no-such-session")
	assert.False(t, ok)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := newTestStore()

	a := store.Create(model.SessionFlags{})
	b := store.Create(model.SessionFlags{})
	require.NotEqual(t, a.ID, b.ID)

	a.Form.FirstName = "Joe"
	assert.Empty(t, b.Form.FirstName)
}

func TestLeavingAddressStepDropsCandidates(t *testing.T) {
	lookup := &stubLookup{candidate: &model.AddressCandidate{
		Thoroughfare: "Whitehall",
		PostalTown:   "London",
		Postcode:     "SW1A 2AA",
	}}
	store := NewStore(lookup, &stubSink{}, nil)
	st := store.Create(model.SessionFlags{EmailVerified: true})

	// Drive the wizard onto the address step.
	st.Form.Employment = "Employed"
	st.Form.Income = "Over 12570"
	st.Form.FirstName = "Joe"
	st.Form.LastName = "Bloggs"
	st.Form.Mobile = "07123 456789"
	st.Form.PrivacyPolicy = true
	st.Form.DOBDay = "5"
	st.Form.DOBMonth = "3"
	st.Form.DOBYear = "1990"
	st.Form.NoMoreRefunds = true
	for st.Engine.Current() != model.StepAddress {
		_, err := st.Engine.Advance(st.Form, st.Flags)
		require.NoError(t, err)
	}

	_, err := st.Addresses.Search(context.Background(), "SW1A 2AA")
	require.NoError(t, err)
	require.NotEmpty(t, st.Addresses.Candidates())

	_, err = st.Engine.Retreat(st.Form, st.Flags)
	require.NoError(t, err)
	assert.Empty(t, st.Addresses.Candidates(), "stale candidates must not survive leaving the step")
}

func TestSnapshot(t *testing.T) {
	store := newTestStore()
	st := store.Create(model.SessionFlags{})
	st.Form.Refunds[0].TaxDeduction = "300"

	snap := st.Snapshot()
	assert.Equal(t, st.ID, snap.SessionID)
	assert.Equal(t, model.StepEmployment, snap.CurrentStep)
	assert.Equal(t, model.Steps[model.StepEmployment], snap.Step)
	assert.False(t, snap.CanAdvance)
	assert.Equal(t, wizard.StepSeconds, snap.SecondsLeft)
	assert.False(t, snap.Searching)
	assert.Equal(t, 300.0, snap.EstimatedRefund)
	assert.Same(t, st.Form, snap.Form)
}
