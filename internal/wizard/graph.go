package wizard

import "claim-engine/internal/model"

// condition routes an ambiguous edge on session flags.
// A nil condition always applies.
type condition func(model.SessionFlags) bool

// edge is one directed transition in the wizard graph.
type edge struct {
	to   model.StepID
	when condition
}

func emailVerified(fl model.SessionFlags) bool   { return fl.EmailVerified }
func emailUnverified(fl model.SessionFlags) bool { return !fl.EmailVerified }

// forward is the single source of truth for the wizard graph. The backward
// table is derived from it at init, so the two directions cannot drift.
// A verified email skips the email step in both directions.
var forward = map[model.StepID][]edge{
	model.StepEmployment: {{to: model.StepIncome}},
	model.StepIncome:     {{to: model.StepDetails}},
	model.StepDetails:    {{to: model.StepDOB}},
	model.StepDOB: {
		{to: model.StepRefund, when: emailVerified},
		{to: model.StepEmail, when: emailUnverified},
	},
	model.StepEmail:     {{to: model.StepRefund}},
	model.StepRefund:    {{to: model.StepAddress}},
	model.StepAddress:   {{to: model.StepIdentity}},
	model.StepIdentity:  {{to: model.StepSummary}},
	model.StepSummary:   {{to: model.StepSignature}},
	model.StepSignature: {{to: model.StepThankYou}},
	// thankyou is terminal: no forward edges.
}

var backward = invert(forward)

// invert flips every forward edge, carrying its condition with it.
func invert(fw map[model.StepID][]edge) map[model.StepID][]edge {
	bw := make(map[model.StepID][]edge, len(fw))
	for from, edges := range fw {
		for _, e := range edges {
			bw[e.to] = append(bw[e.to], edge{to: from, when: e.when})
		}
	}
	return bw
}

// next resolves the outgoing edge of step under flags. Conditional edges are
// consulted before the unconditional fallback, which keeps resolution
// independent of edge order (map iteration during invert is unordered).
func next(table map[model.StepID][]edge, step model.StepID, flags model.SessionFlags) (model.StepID, bool) {
	edges := table[step]
	for _, e := range edges {
		if e.when != nil && e.when(flags) {
			return e.to, true
		}
	}
	for _, e := range edges {
		if e.when == nil {
			return e.to, true
		}
	}
	return "", false
}
