package model

import (
	"fmt"
	"time"
)

// StepID identifies one page of the claim wizard.
type StepID string

const (
	StepEmployment StepID = "employment"
	StepIncome     StepID = "income"
	StepDetails    StepID = "details"
	StepDOB        StepID = "dob"
	StepEmail      StepID = "email"
	StepRefund     StepID = "refund"
	StepAddress    StepID = "address"
	StepIdentity   StepID = "identity"
	StepSummary    StepID = "summary"
	StepSignature  StepID = "signature"
	StepThankYou   StepID = "thankyou"
)

// StepDefinition is the presentational header for a step. Progress is
// strictly increasing along the forward path and drives the progress bar only.
type StepDefinition struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

var Steps = map[StepID]StepDefinition{
	StepEmployment: {
		Title:       "Your employment status",
		Description: "Tell us about your employment status when you received your PPI refund(s)",
		Progress:    10,
	},
	StepIncome: {
		Title:       "Your income",
		Description: "Tell us about your income when you received your PPI refund(s)",
		Progress:    20,
	},
	StepDetails: {
		Title:       "Your Details",
		Description: "Complete your details to see if you're entitled to a refund for tax deducted from your compensation",
		Progress:    30,
	},
	StepDOB: {
		Title:       "Your date of birth",
		Description: "Please select your date of birth",
		Progress:    40,
	},
	StepEmail: {
		Title:       "Your email address",
		Description: "Please enter your email address to complete your claim",
		Progress:    50,
	},
	StepRefund: {
		Title:       "Your PPI refund(s)",
		Description: "Select the year for each refund, then enter the total amount and tax deducted",
		Progress:    60,
	},
	StepAddress: {
		Title:       "Home Address",
		Description: "Please enter your current address",
		Progress:    70,
	},
	StepIdentity: {
		Title:       "Confirm your identity",
		Description: "Enter your National Insurance (NI) number to verify your identity",
		Progress:    80,
	},
	StepSummary: {
		Title:       "Summary",
		Description: "Please review your details below and provide your consent to submit your claim to HMRC",
		Progress:    90,
	},
	StepSignature: {
		Title:       "Your signature",
		Description: "Your signature will be applied to an R40 and 64-8 form and used to submit your claim to HMRC.",
		Progress:    95,
	},
	StepThankYou: {
		Title:       "Thank you!",
		Description: "We have received your claim information and will start processing it soon.",
		Progress:    100,
	},
}

// Lenders is the fixed set selectable on the refund step.
var Lenders = []string{
	"Barclays",
	"Halifax",
	"HSBC",
	"Lloyds",
	"Nationwide",
	"NatWest",
	"RBS",
	"Santander",
}

// KnownLender reports whether name is one of the selectable lenders.
func KnownLender(name string) bool {
	for _, l := range Lenders {
		if l == name {
			return true
		}
	}
	return false
}

// TaxYears returns the ten most recent "YYYY/YYYY" tax-year tokens,
// newest first, relative to now.
func TaxYears(now time.Time) []string {
	years := make([]string, 0, 10)
	y := now.Year()
	for i := 0; i < 10; i++ {
		years = append(years, fmt.Sprintf("%d/%d", y-i-1, y-i))
	}
	return years
}

// KnownTaxYear reports whether token falls inside the selectable window.
func KnownTaxYear(token string, now time.Time) bool {
	for _, y := range TaxYears(now) {
		if y == token {
			return true
		}
	}
	return false
}
