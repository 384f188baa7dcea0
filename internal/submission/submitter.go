package submission

import (
	"context"
	"errors"
	"sync"

	"claim-engine/internal/model"
)

// ErrSubmitInFlight means a submission is already running for this session.
var ErrSubmitInFlight = errors.New("submission already in flight")

// Submitter serializes submits for one session so a double-click cannot
// post the same claim twice.
type Submitter struct {
	sink Sink

	mu       sync.Mutex
	inFlight bool
}

func NewSubmitter(sink Sink) *Submitter {
	return &Submitter{sink: sink}
}

// Submit forwards to the sink under a single-flight guard. The guard is
// released on every exit path.
func (s *Submitter) Submit(ctx context.Context, payload model.SubmissionPayload) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	return s.sink.Submit(ctx, payload)
}
