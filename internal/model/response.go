package model

import json "github.com/goccy/go-json"

// ActionResponse is the result of applying a batch of actions.
type ActionResponse struct {
	Metadata ActionMetadata `json:"metadata"`
	Result   ActionResult   `json:"result"`
}

type ActionMetadata struct {
	BatchID     string `json:"batch_id"`
	SessionID   string `json:"session_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
	Outcome     string `json:"outcome"`
}

type ActionResult struct {
	Messages []ActionMessage   `json:"messages"`
	Actions  []ProcessedAction `json:"actions"`
	Snapshot Snapshot          `json:"snapshot"`
}

// ProcessedAction records one applied (or rejected) action, the indexes of
// the messages it produced and the form delta it caused as an RFC 6902 patch.
type ProcessedAction struct {
	Action         Action          `json:"action"`
	MessageIndexes []int           `json:"message_indexes,omitempty"`
	FormPatch      json.RawMessage `json:"form_patch,omitempty"`
}

// Snapshot is the view a front end renders after any operation.
type Snapshot struct {
	SessionID       string             `json:"session_id"`
	CurrentStep     StepID             `json:"current_step"`
	Step            StepDefinition     `json:"step"`
	CanAdvance      bool               `json:"can_advance"`
	SecondsLeft     int                `json:"seconds_left"`
	Candidates      []AddressCandidate `json:"candidates,omitempty"`
	Searching       bool               `json:"searching"`
	EstimatedRefund float64            `json:"estimated_refund"`
	Form            *ClaimForm         `json:"form"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
