package actions

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"claim-engine/internal/jsonpatch"
	"claim-engine/internal/model"
	"claim-engine/internal/session"
)

// Process applies a batch of actions to a session in order. The first
// critical finding stops the batch and turns the outcome to FAILURE; the
// session keeps whatever state the actions before it committed. Every
// processed action records its message indexes and the form delta it
// caused as an RFC 6902 patch.
func Process(ctx context.Context, st *session.State, req *model.ActionRequest) *model.ActionResponse {
	start := time.Now()

	var allMessages []model.ActionMessage
	var processed []model.ProcessedAction
	outcome := model.OutcomeSuccess
	hasCritical := false

	for i := range req.Actions {
		act := req.Actions[i]

		handler, ok := Get(act.ActionName)
		if !ok {
			msg := model.ActionMessage{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_ACTION",
				Message: fmt.Sprintf("Unknown action: %s", act.ActionName),
			}
			allMessages = append(allMessages, msg)
			processed = append(processed, model.ProcessedAction{
				Action:         act,
				MessageIndexes: []int{msg.ID},
			})
			outcome = model.OutcomeFailure
			break
		}

		before := formDocument(st.Form)

		// Validate
		validationMsgs := handler.Validate(st, &act)
		var msgIndexes []int
		for _, vm := range validationMsgs {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			msgIndexes = append(msgIndexes, vm.ID)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			processed = append(processed, model.ProcessedAction{
				Action:         act,
				MessageIndexes: msgIndexes,
			})
			break
		}

		// Apply
		applyMsgs := handler.Apply(ctx, st, &act)
		for _, am := range applyMsgs {
			am.ID = len(allMessages)
			allMessages = append(allMessages, am)
			msgIndexes = append(msgIndexes, am.ID)
			if am.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		processed = append(processed, model.ProcessedAction{
			Action:         act,
			MessageIndexes: msgIndexes,
			FormPatch:      formPatch(before, st.Form),
		})

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.ActionMessage{}
	}

	return &model.ActionResponse{
		Metadata: model.ActionMetadata{
			BatchID:     uuid.New().String(),
			SessionID:   st.ID,
			StartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CompletedAt: now.Format(time.RFC3339),
			DurationMs:  elapsed.Milliseconds(),
			Outcome:     outcome,
		},
		Result: model.ActionResult{
			Messages: allMessages,
			Actions:  processed,
			Snapshot: st.Snapshot(),
		},
	}
}

// formDocument renders the form as a generic JSON document for diffing.
func formDocument(f *model.ClaimForm) interface{} {
	b, _ := json.Marshal(f)
	var doc interface{}
	json.Unmarshal(b, &doc)
	return doc
}

// formPatch diffs two form documents; nil when the action changed nothing.
func formPatch(before interface{}, after *model.ClaimForm) json.RawMessage {
	ops := jsonpatch.Diff(before, formDocument(after), "")
	if len(ops) == 0 {
		return nil
	}
	b, _ := json.Marshal(ops)
	return b
}
