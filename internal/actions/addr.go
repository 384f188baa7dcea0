package actions

import (
	"context"
	"errors"
	"strings"

	json "github.com/goccy/go-json"

	"claim-engine/internal/address"
	"claim-engine/internal/metrics"
	"claim-engine/internal/model"
	"claim-engine/internal/session"
)

type searchPostcodeProps struct {
	Postcode string `json:"postcode"`
}

// SearchPostcodeHandler runs the address lookup and publishes the
// candidate list on the session. Lookup failures never fail the action:
// an empty list sends the user to manual entry.
type SearchPostcodeHandler struct{}

func (h *SearchPostcodeHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	var props searchPostcodeProps
	json.Unmarshal(action.Properties, &props)

	if strings.TrimSpace(props.Postcode) == "" {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "POSTCODE_REQUIRED",
			Message: "Postcode is required",
		}}
	}
	return nil
}

func (h *SearchPostcodeHandler) Apply(ctx context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	var props searchPostcodeProps
	json.Unmarshal(action.Properties, &props)

	st.Form.Postcode = props.Postcode

	results, err := st.Addresses.Search(ctx, props.Postcode)
	if errors.Is(err, address.ErrSearchInFlight) {
		return []model.ActionMessage{{
			Level:   model.LevelWarning,
			Code:    "SEARCH_IN_FLIGHT",
			Message: "A postcode search is already running",
		}}
	}

	if len(results) == 0 {
		metrics.AddressLookups.WithLabelValues("empty").Inc()
		return []model.ActionMessage{{
			Level:   model.LevelWarning,
			Code:    "NO_ADDRESS_FOUND",
			Message: "No address found for this postcode; enter your address manually",
		}}
	}

	metrics.AddressLookups.WithLabelValues("found").Inc()
	return nil
}

// SelectAddressHandler applies one lookup candidate to the form.
type SelectAddressHandler struct{}

func (h *SelectAddressHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	var candidate model.AddressCandidate
	json.Unmarshal(action.Properties, &candidate)

	if strings.TrimSpace(candidate.Postcode) == "" || strings.TrimSpace(candidate.Thoroughfare) == "" {
		return []model.ActionMessage{{
			Level:   model.LevelCritical,
			Code:    "ADDRESS_INCOMPLETE",
			Message: "An address candidate needs at least a thoroughfare and a postcode",
		}}
	}
	return nil
}

func (h *SelectAddressHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	var candidate model.AddressCandidate
	json.Unmarshal(action.Properties, &candidate)

	st.Addresses.Select(st.Form, candidate)
	return nil
}

// ManualAddressHandler abandons the lookup results in favour of manual
// address entry.
type ManualAddressHandler struct{}

func (h *ManualAddressHandler) Validate(st *session.State, action *model.Action) []model.ActionMessage {
	return nil
}

func (h *ManualAddressHandler) Apply(_ context.Context, st *session.State, action *model.Action) []model.ActionMessage {
	st.Addresses.ManualFallback(st.Form)
	return nil
}
