package actions

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"claim-engine/internal/model"
	"claim-engine/internal/session"
)

type updateFieldProps struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// UpdateFieldHandler assigns one scalar form field by wire name.
type UpdateFieldHandler struct{}

func (h *UpdateFieldHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	var props updateFieldProps
	json.Unmarshal(action.Properties, &props)

	if strings.TrimSpace(props.Field) == "" {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "FIELD_REQUIRED",
			Message: "Field name is empty",
		}}
	}
	if !model.IsFormField(props.Field) {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_FIELD",
			Message: fmt.Sprintf("Unknown form field: %s", props.Field),
		}}
	}
	return nil
}

func (h *UpdateFieldHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	var props updateFieldProps
	json.Unmarshal(action.Properties, &props)

	st.Form.SetField(props.Field, props.Value)
	return nil
}

type privacyConsentProps struct {
	Agreed bool `json:"agreed"`
}

// SetPrivacyConsentHandler records whether the user accepted the privacy
// policy. Consent gates both the details step and the final summary.
type SetPrivacyConsentHandler struct{}

func (h *SetPrivacyConsentHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	return nil
}

func (h *SetPrivacyConsentHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	var props privacyConsentProps
	json.Unmarshal(action.Properties, &props)

	st.Form.PrivacyPolicy = props.Agreed
	return nil
}
