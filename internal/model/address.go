package model

// AddressCandidate is a single address returned by the postcode lookup.
// Candidates are transient: nothing reaches the form until one is selected.
type AddressCandidate struct {
	Thoroughfare string `json:"thoroughfare"`
	PostalTown   string `json:"postal_town"`
	Postcode     string `json:"postcode"`
	AdminCounty  string `json:"admin_county,omitempty"`
}

// Key is the formatted selection key the form stores for a chosen candidate.
func (c AddressCandidate) Key() string {
	return c.Thoroughfare + ", " + c.PostalTown + ", " + c.Postcode
}
