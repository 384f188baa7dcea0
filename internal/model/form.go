package model

import "fmt"

// RefundEntry is one repeatable refund block. Entries are only ever
// appended; the wizard defines no removal operation.
type RefundEntry struct {
	Lender       string   `json:"lender"`
	TaxYear      string   `json:"tax_year"`
	TotalAmount  string   `json:"total_amount"`
	TaxDeduction string   `json:"tax_deduction"`
	Files        []string `json:"files"`
}

// ClaimForm is the mutable aggregate of everything collected from the user.
// A form belongs to exactly one session.
type ClaimForm struct {
	Employment    string        `json:"employment"`
	Income        string        `json:"income"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Mobile        string        `json:"mobile"`
	PrivacyPolicy bool          `json:"privacy_policy"`
	DOBDay        string        `json:"dob_day"`
	DOBMonth      string        `json:"dob_month"`
	DOBYear       string        `json:"dob_year"`
	Email         string        `json:"email"`
	Refunds       []RefundEntry `json:"refunds"`
	NoMoreRefunds bool          `json:"no_more_refunds"`
	Postcode      string        `json:"postcode"`
	Address       string        `json:"address"` // composite key of the selected candidate
	AddressLine1  string        `json:"address_line1"`
	AddressLine2  string        `json:"address_line2"`
	City          string        `json:"city"`
	County        string        `json:"county"`
	FullPostcode  string        `json:"full_postcode"`
	NINumber      string        `json:"ni_number"`
	Signature     string        `json:"signature"` // opaque blob, empty = unsigned
}

// NewClaimForm returns a form holding the single blank refund entry the
// wizard starts with. The refund list never drops below one entry.
func NewClaimForm() *ClaimForm {
	return &ClaimForm{
		Refunds: []RefundEntry{{Files: []string{}}},
	}
}

// SessionFlags lives outside the form and affects transition routing only.
type SessionFlags struct {
	EmailVerified bool `json:"email_verified"`
}

// fields maps wire names to setters so field updates and their validation
// agree on the writable field set. Booleans, the refund list and the
// address selection key have dedicated operations and are not listed.
var fields = map[string]func(*ClaimForm, string){
	"employment":    func(f *ClaimForm, v string) { f.Employment = v },
	"income":        func(f *ClaimForm, v string) { f.Income = v },
	"first_name":    func(f *ClaimForm, v string) { f.FirstName = v },
	"last_name":     func(f *ClaimForm, v string) { f.LastName = v },
	"mobile":        func(f *ClaimForm, v string) { f.Mobile = v },
	"dob_day":       func(f *ClaimForm, v string) { f.DOBDay = v },
	"dob_month":     func(f *ClaimForm, v string) { f.DOBMonth = v },
	"dob_year":      func(f *ClaimForm, v string) { f.DOBYear = v },
	"email":         func(f *ClaimForm, v string) { f.Email = v },
	"postcode":      func(f *ClaimForm, v string) { f.Postcode = v },
	"address_line1": func(f *ClaimForm, v string) { f.AddressLine1 = v },
	"address_line2": func(f *ClaimForm, v string) { f.AddressLine2 = v },
	"city":          func(f *ClaimForm, v string) { f.City = v },
	"county":        func(f *ClaimForm, v string) { f.County = v },
	"full_postcode": func(f *ClaimForm, v string) { f.FullPostcode = v },
	"ni_number":     func(f *ClaimForm, v string) { f.NINumber = v },
	"signature":     func(f *ClaimForm, v string) { f.Signature = v },
}

// IsFormField reports whether name is a writable scalar field.
func IsFormField(name string) bool {
	_, ok := fields[name]
	return ok
}

// SetField assigns one scalar text field by wire name.
func (f *ClaimForm) SetField(name, value string) error {
	set, ok := fields[name]
	if !ok {
		return fmt.Errorf("unknown form field %q", name)
	}
	set(f, value)
	return nil
}
