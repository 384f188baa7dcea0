// Package address turns a postcode into selectable candidates and applies
// the chosen candidate to the claim form.
package address

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"claim-engine/internal/model"
)

// ErrSearchInFlight means a lookup is already running for this session;
// the search affordance must not re-trigger mid-flight.
var ErrSearchInFlight = errors.New("address search already in flight")

// Workflow owns a session's transient candidate list and the single-flight
// search discipline around the lookup client.
type Workflow struct {
	lookup Lookup
	log    *slog.Logger

	mu         sync.Mutex
	busy       bool
	seq        uint64 // issued per search; only the latest may publish
	candidates []model.AddressCandidate
}

func NewWorkflow(lookup Lookup, log *slog.Logger) *Workflow {
	if log == nil {
		log = slog.Default()
	}
	return &Workflow{lookup: lookup, log: log}
}

// Search resolves postcode into the candidate list. A service miss and a
// transport failure both leave an empty list so the form falls back to
// manual entry; failures are additionally logged, never surfaced. The busy
// flag is released on every exit path. Should responses ever overlap, the
// request token ensures only the latest issued search publishes its result.
func (w *Workflow) Search(ctx context.Context, postcode string) ([]model.AddressCandidate, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, ErrSearchInFlight
	}
	w.busy = true
	w.seq++
	token := w.seq
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	found, err := w.lookup.Find(ctx, postcode)

	var results []model.AddressCandidate
	if err != nil {
		w.log.Error("postcode lookup failed", "postcode", postcode, "error", err)
	} else if found != nil {
		results = []model.AddressCandidate{*found}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if token != w.seq {
		// A newer search has been issued; this result is stale.
		return w.candidates, nil
	}
	w.candidates = results
	return results, nil
}

// Candidates returns the current transient lookup results.
func (w *Workflow) Candidates() []model.AddressCandidate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.candidates
}

// Busy reports whether a search is in flight.
func (w *Workflow) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Select applies candidate to the form. The three address fields, the
// postcode and the composite selection key are overwritten together, so
// re-selecting can never leave a partial merge of two candidates.
func (w *Workflow) Select(form *model.ClaimForm, candidate model.AddressCandidate) {
	form.Address = candidate.Key()
	form.AddressLine1 = candidate.Thoroughfare
	form.City = candidate.PostalTown
	form.County = candidate.AdminCounty
	form.FullPostcode = candidate.Postcode
}

// ManualFallback drops the candidate list and the composite key. Address
// validity then rests on the directly entered line 1 and postcode.
func (w *Workflow) ManualFallback(form *model.ClaimForm) {
	w.DropCandidates()
	form.Address = ""
}

// DropCandidates clears transient lookup results, e.g. when the wizard
// leaves the address step, so stale candidates do not greet the user on
// their return.
func (w *Workflow) DropCandidates() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.candidates = nil
}
