package actions

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"claim-engine/internal/model"
	"claim-engine/internal/refunds"
	"claim-engine/internal/session"
)

// AddRefundHandler appends a blank refund entry.
type AddRefundHandler struct{}

func (h *AddRefundHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	if st.Form.NoMoreRefunds {
		// The affordance is suppressed in this state; calling anyway is
		// advisory, not fatal.
		return []model.ActionMessage{{
			Level:   model.LevelWarning,
			Code:    "NO_MORE_REFUNDS_DECLARED",
			Message: "No further refunds were declared; entry not added",
		}}
	}
	return nil
}

func (h *AddRefundHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	refunds.Add(st.Form)
	return nil
}

type updateRefundFieldProps struct {
	Index int    `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateRefundFieldHandler mutates one scalar field of one refund entry.
type UpdateRefundFieldHandler struct{}

func (h *UpdateRefundFieldHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	var props updateRefundFieldProps
	json.Unmarshal(action.Properties, &props)

	if props.Index < 0 || props.Index >= len(st.Form.Refunds) {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "REFUND_INDEX_OUT_OF_RANGE",
			Message: fmt.Sprintf("Refund entry %d does not exist (%d entries)", props.Index, len(st.Form.Refunds)),
		}}
	}

	switch props.Field {
	case refunds.FieldLender, refunds.FieldTaxYear, refunds.FieldTotalAmount, refunds.FieldTaxDeduction:
	default:
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_REFUND_FIELD",
			Message: fmt.Sprintf("Unknown refund field: %s", props.Field),
		}}
	}

	// Off-catalog values are flagged but not rejected; the refund gate only
	// requires the fields to be filled.
	var msgs []model.ActionMessage
	if props.Field == refunds.FieldLender && props.Value != "" && !model.KnownLender(props.Value) {
		msgs = append(msgs, model.ActionMessage{
			Level:   model.LevelWarning,
			Code:    "UNKNOWN_LENDER",
			Message: fmt.Sprintf("Lender %q is not in the selectable list", props.Value),
		})
	}
	if props.Field == refunds.FieldTaxYear && props.Value != "" && !model.KnownTaxYear(props.Value, time.Now()) {
		msgs = append(msgs, model.ActionMessage{
			Level:   model.LevelWarning,
			Code:    "TAX_YEAR_OUT_OF_WINDOW",
			Message: fmt.Sprintf("Tax year %q is outside the selectable window", props.Value),
		})
	}
	return msgs
}

func (h *UpdateRefundFieldHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	var props updateRefundFieldProps
	json.Unmarshal(action.Properties, &props)

	refunds.UpdateField(st.Form, props.Index, props.Field, props.Value)
	return nil
}

type setRefundFilesProps struct {
	Index int      `json:"index"`
	Files []string `json:"files"`
}

// SetRefundFilesHandler replaces the evidence-file handles of one entry.
type SetRefundFilesHandler struct{}

func (h *SetRefundFilesHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	var props setRefundFilesProps
	json.Unmarshal(action.Properties, &props)

	if props.Index < 0 || props.Index >= len(st.Form.Refunds) {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "REFUND_INDEX_OUT_OF_RANGE",
			Message: fmt.Sprintf("Refund entry %d does not exist (%d entries)", props.Index, len(st.Form.Refunds)),
		}}
	}
	return nil
}

func (h *SetRefundFilesHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	var props setRefundFilesProps
	json.Unmarshal(action.Properties, &props)

	refunds.SetFiles(st.Form, props.Index, props.Files)
	return nil
}

type noMoreRefundsProps struct {
	Value bool `json:"value"`
}

// SetNoMoreRefundsHandler flips the "I did not receive another refund"
// declaration. Existing entries stay untouched either way.
type SetNoMoreRefundsHandler struct{}

func (h *SetNoMoreRefundsHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	return nil
}

func (h *SetNoMoreRefundsHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	var props noMoreRefundsProps
	json.Unmarshal(action.Properties, &props)

	refunds.SetNoMoreRefunds(st.Form, props.Value)
	return nil
}
