// Package submission derives the claim payload from a finished form and
// delivers it to the claim sink.
package submission

import (
	"strconv"
	"strings"

	"claim-engine/internal/model"
)

// Build projects the form into the document the claim sink accepts. The
// payload is a value; building never mutates the form.
func Build(form *model.ClaimForm) model.SubmissionPayload {
	refunds := make([]model.PayloadRefund, 0, len(form.Refunds))
	for _, r := range form.Refunds {
		refunds = append(refunds, model.PayloadRefund{
			Lender:       r.Lender,
			TaxYear:      r.TaxYear,
			TotalAmount:  r.TotalAmount,
			TaxDeduction: r.TaxDeduction,
		})
	}

	return model.SubmissionPayload{
		Employment:  form.Employment,
		Income:      form.Income,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Mobile:      form.Mobile,
		DateOfBirth: dateOfBirth(form),
		Email:       form.Email,
		Address: model.PayloadAddress{
			AddressLine1: form.AddressLine1,
			AddressLine2: form.AddressLine2,
			City:         form.City,
			County:       form.County,
			Postcode:     form.FullPostcode,
		},
		NINumber:        form.NINumber,
		Refunds:         refunds,
		Signature:       form.Signature,
		EstimatedRefund: EstimatedRefund(form),
	}
}

// dateOfBirth joins the three scalar components as day/month/year with no
// zero-padding: day "5", month "3", year "1990" becomes "5/3/1990".
func dateOfBirth(form *model.ClaimForm) string {
	return form.DOBDay + "/" + form.DOBMonth + "/" + form.DOBYear
}

// EstimatedRefund sums the tax deductions across all entries. A value that
// does not parse contributes exactly zero rather than failing the build.
func EstimatedRefund(form *model.ClaimForm) float64 {
	var total float64
	for _, r := range form.Refunds {
		v, err := strconv.ParseFloat(strings.TrimSpace(r.TaxDeduction), 64)
		if err != nil {
			continue
		}
		total += v
	}
	return total
}
