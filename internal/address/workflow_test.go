package address

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claim-engine/internal/model"
)

// fakeLookup scripts one Find response and can optionally block until
// released, to hold a search in flight.
type fakeLookup struct {
	candidate *model.AddressCandidate
	err       error

	mu      sync.Mutex
	block   chan struct{}
	started chan struct{}
	calls   int
	lastArg string
}

func (f *fakeLookup) Find(_ context.Context, postcode string) (*model.AddressCandidate, error) {
	f.mu.Lock()
	f.calls++
	f.lastArg = postcode
	block := f.block
	started := f.started
	f.started = nil
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	return f.candidate, f.err
}

var testCandidate = model.AddressCandidate{
	Thoroughfare: "Whitehall",
	PostalTown:   "London",
	Postcode:     "SW1A 2AA",
	AdminCounty:  "Greater London",
}

func TestSearchPublishesCandidate(t *testing.T) {
	lookup := &fakeLookup{candidate: &testCandidate}
	wf := NewWorkflow(lookup, nil)

	results, err := wf.Search(context.Background(), "SW1A 2AA")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, testCandidate, results[0])
	assert.Equal(t, results, wf.Candidates())
	assert.False(t, wf.Busy(), "busy flag must be released")
}

func TestSearchMissLeavesEmptyList(t *testing.T) {
	wf := NewWorkflow(&fakeLookup{}, nil)

	results, err := wf.Search(context.Background(), "ZZ99 9ZZ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.False(t, wf.Busy())
}

func TestSearchSwallowsLookupFailure(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection refused")}
	wf := NewWorkflow(lookup, nil)

	results, err := wf.Search(context.Background(), "SW1A 2AA")
	require.NoError(t, err, "transport failures fall back to manual entry, not an error")
	assert.Empty(t, results)
	assert.False(t, wf.Busy())
}

func TestSearchSingleFlight(t *testing.T) {
	lookup := &fakeLookup{
		candidate: &testCandidate,
		block:     make(chan struct{}),
		started:   make(chan struct{}),
	}
	wf := NewWorkflow(lookup, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		wf.Search(context.Background(), "SW1A 2AA")
	}()

	// Wait until the first search is inside the lookup call.
	<-lookup.started
	assert.True(t, wf.Busy())

	_, err := wf.Search(context.Background(), "SW1A 2AA")
	assert.ErrorIs(t, err, ErrSearchInFlight)

	close(lookup.block)
	<-done
	assert.False(t, wf.Busy())
}

func TestSelectOverwritesAtomically(t *testing.T) {
	wf := NewWorkflow(&fakeLookup{}, nil)
	form := model.NewClaimForm()

	wf.Select(form, testCandidate)
	assert.Equal(t, "Whitehall, London, SW1A 2AA", form.Address)
	assert.Equal(t, "Whitehall", form.AddressLine1)
	assert.Equal(t, "London", form.City)
	assert.Equal(t, "Greater London", form.County)
	assert.Equal(t, "SW1A 2AA", form.FullPostcode)

	// Re-selecting must not leave any field of the first candidate behind.
	other := model.AddressCandidate{Thoroughfare: "Deansgate", PostalTown: "Manchester", Postcode: "M3 2BW"}
	wf.Select(form, other)
	assert.Equal(t, "Deansgate, Manchester, M3 2BW", form.Address)
	assert.Equal(t, "Deansgate", form.AddressLine1)
	assert.Equal(t, "Manchester", form.City)
	assert.Equal(t, "", form.County)
	assert.Equal(t, "M3 2BW", form.FullPostcode)
}

func TestManualFallbackClearsSelection(t *testing.T) {
	lookup := &fakeLookup{candidate: &testCandidate}
	wf := NewWorkflow(lookup, nil)
	form := model.NewClaimForm()

	_, err := wf.Search(context.Background(), "SW1A 2AA")
	require.NoError(t, err)
	wf.Select(form, testCandidate)

	wf.ManualFallback(form)
	assert.Empty(t, form.Address)
	assert.Empty(t, wf.Candidates())
	// Manually entered lines are left alone.
	assert.Equal(t, "Whitehall", form.AddressLine1)
}

func TestDropCandidates(t *testing.T) {
	lookup := &fakeLookup{candidate: &testCandidate}
	wf := NewWorkflow(lookup, nil)

	_, err := wf.Search(context.Background(), "SW1A 2AA")
	require.NoError(t, err)
	require.NotEmpty(t, wf.Candidates())

	wf.DropCandidates()
	assert.Empty(t, wf.Candidates())
}
