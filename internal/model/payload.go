package model

// SubmissionPayload is the read-only projection of a finished claim form
// sent to the claim sink. It is derived at submit time and discarded after
// the attempt. Field names follow the sink's document shape.
type SubmissionPayload struct {
	Employment      string          `json:"employment"`
	Income          string          `json:"income"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Mobile          string          `json:"mobile"`
	DateOfBirth     string          `json:"dateOfBirth"`
	Email           string          `json:"email"`
	Address         PayloadAddress  `json:"address"`
	NINumber        string          `json:"niNumber"`
	Refunds         []PayloadRefund `json:"refunds"`
	Signature       string          `json:"signature"`
	EstimatedRefund float64         `json:"estimatedRefund"`
}

type PayloadAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	County       string `json:"county"`
	Postcode     string `json:"postcode"`
}

// PayloadRefund carries exactly the four scalar fields of an entry.
// Evidence files travel through a separate pipeline and never appear here.
type PayloadRefund struct {
	Lender       string `json:"lender"`
	TaxYear      string `json:"taxYear"`
	TotalAmount  string `json:"totalAmount"`
	TaxDeduction string `json:"taxDeduction"`
}
