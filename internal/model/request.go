package model

import json "github.com/goccy/go-json"

// CreateRequest opens a new claim session. EmailVerified arrives from the
// email-verification collaborator and only influences transition routing.
type CreateRequest struct {
	EmailVerified bool `json:"email_verified"`
}

// Action is one tagged operation applied to a claim session.
type Action struct {
	ActionID   string          `json:"action_id"`
	ActionName string          `json:"action_name"`
	Properties json.RawMessage `json:"properties"`
}

// ActionRequest is a batch of actions applied in order.
type ActionRequest struct {
	Actions []Action `json:"actions"`
}
