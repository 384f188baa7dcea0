// Package refunds manages the repeatable refund-entry collection on the
// claim form. Entries are only ever appended or updated in place; the
// wizard defines no removal operation, so indexes are stable for the life
// of a session.
package refunds

import (
	"errors"
	"fmt"

	"claim-engine/internal/model"
)

// ErrIndexOutOfRange reports a refund operation addressed outside the
// current entry list. It indicates a caller bug.
var ErrIndexOutOfRange = errors.New("refund entry index out of range")

// Field names accepted by UpdateField.
const (
	FieldLender       = "lender"
	FieldTaxYear      = "tax_year"
	FieldTotalAmount  = "total_amount"
	FieldTaxDeduction = "tax_deduction"
)

// Add appends a blank entry. Once the user has declared there are no more
// refunds the add affordance is suppressed, so a call in that state is a
// silent no-op rather than an error.
func Add(form *model.ClaimForm) {
	if form.NoMoreRefunds {
		return
	}
	form.Refunds = append(form.Refunds, model.RefundEntry{Files: []string{}})
}

// UpdateField mutates one scalar field of the entry at index.
func UpdateField(form *model.ClaimForm, index int, field, value string) error {
	if index < 0 || index >= len(form.Refunds) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(form.Refunds))
	}
	entry := &form.Refunds[index]
	switch field {
	case FieldLender:
		entry.Lender = value
	case FieldTaxYear:
		entry.TaxYear = value
	case FieldTotalAmount:
		entry.TotalAmount = value
	case FieldTaxDeduction:
		entry.TaxDeduction = value
	default:
		return fmt.Errorf("unknown refund field %q", field)
	}
	return nil
}

// SetFiles replaces the evidence-file handles of the entry at index.
// Handles are opaque; upload and inspection happen elsewhere.
func SetFiles(form *model.ClaimForm, index int, files []string) error {
	if index < 0 || index >= len(form.Refunds) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(form.Refunds))
	}
	form.Refunds[index].Files = files
	return nil
}

// SetNoMoreRefunds flips the flag. Existing entries are left as they are,
// complete or not; the refund gate stops inspecting them while the flag
// holds.
func SetNoMoreRefunds(form *model.ClaimForm, flag bool) {
	form.NoMoreRefunds = flag
}
