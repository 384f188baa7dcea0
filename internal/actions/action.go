// Package actions dispatches tagged wizard actions onto the claim session.
// Every user interaction arrives as a named action with opaque properties;
// each handler validates business rules, then applies the state change.
package actions

import (
	"context"

	"claim-engine/internal/model"
	"claim-engine/internal/session"
)

// Handler is the contract for all action implementations. Validate reports
// problems without touching state; Apply performs the change and may report
// further findings. Apply receives a context because two actions (postcode
// search and claim submission) wait on an external response.
type Handler interface {
	Validate(st *session.State, action *model.Action) []model.ActionMessage
	Apply(ctx context.Context, st *session.State, action *model.Action) []model.ActionMessage
}
