// Package gate holds the per-step validity predicates of the claim wizard.
// The same table drives the continue affordance and the hard check made
// immediately before a forward transition commits, so the two can't drift.
package gate

import (
	"strings"

	"claim-engine/internal/model"
)

var rules = map[model.StepID]func(*model.ClaimForm) bool{
	model.StepEmployment: func(f *model.ClaimForm) bool { return filled(f.Employment) },
	model.StepIncome:     func(f *model.ClaimForm) bool { return filled(f.Income) },
	model.StepDetails: func(f *model.ClaimForm) bool {
		return filled(f.FirstName) && filled(f.LastName) && filled(f.Mobile) && f.PrivacyPolicy
	},
	model.StepDOB: func(f *model.ClaimForm) bool {
		return filled(f.DOBDay) && filled(f.DOBMonth) && filled(f.DOBYear)
	},
	model.StepEmail: func(f *model.ClaimForm) bool {
		return filled(f.Email) && strings.Contains(f.Email, "@")
	},
	model.StepRefund: func(f *model.ClaimForm) bool {
		if f.NoMoreRefunds {
			return true
		}
		for i := range f.Refunds {
			r := &f.Refunds[i]
			if !filled(r.Lender) || !filled(r.TaxYear) || !filled(r.TotalAmount) || !filled(r.TaxDeduction) {
				return false
			}
		}
		return true
	},
	model.StepAddress: func(f *model.ClaimForm) bool {
		return filled(f.Address) || (filled(f.AddressLine1) && filled(f.FullPostcode))
	},
	model.StepIdentity: func(f *model.ClaimForm) bool { return filled(f.NINumber) },
	model.StepSummary:  func(f *model.ClaimForm) bool { return f.PrivacyPolicy },
	// The signature step gates nothing: an empty signature blob is accepted
	// here and judged downstream.
	model.StepSignature: func(f *model.ClaimForm) bool { return true },
}

// Valid reports whether the form satisfies the step's gate. Steps without a
// rule (thankyou) never validate; there is nothing to advance to.
func Valid(step model.StepID, form *model.ClaimForm) bool {
	rule, ok := rules[step]
	if !ok {
		return false
	}
	return rule(form)
}

// Whitespace-only input does not satisfy a gate.
func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
