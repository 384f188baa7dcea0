package actions

import (
	"context"
	"errors"
	"fmt"

	"claim-engine/internal/metrics"
	"claim-engine/internal/model"
	"claim-engine/internal/session"
	"claim-engine/internal/wizard"
)

// AdvanceHandler commits the forward transition out of the current step.
// The engine re-checks the step gate; a failing gate leaves the session
// where it is.
type AdvanceHandler struct{}

func (h *AdvanceHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	return nil
}

func (h *AdvanceHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	from := st.Engine.Current()
	_, err := st.Engine.Advance(st.Form, st.Flags)
	switch {
	case errors.Is(err, wizard.ErrValidationFailed):
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "VALIDATION_FAILED",
			Message: fmt.Sprintf("Step %s is not complete", from),
		}}
	case errors.Is(err, wizard.ErrInvalidTransition):
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_TRANSITION",
			Message: fmt.Sprintf("No forward transition from step %s", from),
		}}
	}

	metrics.Transitions.WithLabelValues("forward").Inc()
	return nil
}

// RetreatHandler commits the backward transition. Back-navigation is never
// gated on validity.
type RetreatHandler struct{}

func (h *RetreatHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	return nil
}

func (h *RetreatHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	from := st.Engine.Current()
	_, err := st.Engine.Retreat(st.Form, st.Flags)
	if errors.Is(err, wizard.ErrInvalidTransition) {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_TRANSITION",
			Message: fmt.Sprintf("No backward transition from step %s", from),
		}}
	}

	metrics.Transitions.WithLabelValues("backward").Inc()
	return nil
}
