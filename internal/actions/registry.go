package actions

var registry = map[string]Handler{
	"update_field":        &UpdateFieldHandler{},
	"set_privacy_consent": &SetPrivacyConsentHandler{},
	"add_refund":          &AddRefundHandler{},
	"update_refund_field": &UpdateRefundFieldHandler{},
	"set_refund_files":    &SetRefundFilesHandler{},
	"set_no_more_refunds": &SetNoMoreRefundsHandler{},
	"search_postcode":     &SearchPostcodeHandler{},
	"select_address":      &SelectAddressHandler{},
	"manual_address":      &ManualAddressHandler{},
	"advance":             &AdvanceHandler{},
	"retreat":             &RetreatHandler{},
	"submit":              &SubmitHandler{},
}

func Get(name string) (Handler, bool) {
	h, ok := registry[name]
	return h, ok
}
