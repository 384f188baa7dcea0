package actions

import (
	"context"
	"errors"

	"claim-engine/internal/metrics"
	"claim-engine/internal/model"
	"claim-engine/internal/session"
	"claim-engine/internal/submission"
)

// SubmitHandler builds the claim payload and posts it to the sink. On any
// failure the session stays on the signature step with the form untouched,
// so the user can retry; success moves the wizard to its terminal step.
type SubmitHandler struct{}

func (h *SubmitHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	if st.Engine.Current() != model.StepSignature {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "SUBMIT_UNAVAILABLE",
			Message: "A claim can only be submitted from the signature step",
		}}
	}
	return nil
}

func (h *SubmitHandler) Apply(ctx context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	payload := submission.Build(st.Form)

	err := st.Submitter.Submit(ctx, payload)
	switch {
	case errors.Is(err, submission.ErrSubmitInFlight):
		metrics.Submissions.WithLabelValues("blocked").Inc()
		return []model.ActionMessage{{
			Level:   model.LevelWarning,
			Code:    "SUBMISSION_IN_FLIGHT",
			Message: "A submission is already running",
		}}
	case err != nil:
		metrics.Submissions.WithLabelValues("failure").Inc()
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "SUBMISSION_FAILED",
			Message: "The claim could not be submitted; your details are unchanged, please try again",
		}}
	}

	metrics.Submissions.WithLabelValues("success").Inc()

	// The signature gate always passes, so this transition cannot fail.
	st.Engine.Advance(st.Form, st.Flags)
	return nil
}
