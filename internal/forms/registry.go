// Package forms declares the submission pipeline configuration for every
// supported form type: its route, validation schema, reference id shape,
// and notification channels.
package forms

import (
	"dealership-api/internal/common/validation"
)

// Notification channels a form can fan out to.
const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

// Spec is the per-form-type configuration record driving the generic
// submit pipeline: validate, generate reference id, render, dispatch.
type Spec struct {
	Type   string // registry key, also the template name prefix
	Route  string // POST route, e.g. /api/contact
	Prefix string // reference id prefix, e.g. "BK"
	Digits int    // reference id digit count

	// IDField names the reference id key in the success response
	// (requestId, bookingReference, loanId and so on).
	IDField string

	Schema validation.FormSchema

	// Payload keys the dispatcher reads recipients and salutations from.
	EmailField string
	PhoneField string
	NameField  string

	// CustomerWhatsApp enables the customer WhatsApp job when the payload
	// carries a phone number. AdminWhatsApp additionally notifies the
	// dealership's WhatsApp number, used for contact and booking forms.
	CustomerWhatsApp bool
	AdminWhatsApp    bool

	// ReportEmailSent adds an "emailSent" flag to the success response.
	ReportEmailSent bool

	SuccessMessage string
}

// Lookup returns the Spec for a form type.
func Lookup(formType string) (Spec, bool) {
	spec, ok := registry[formType]
	return spec, ok
}

// All returns every registered form spec.
func All() []Spec {
	specs := make([]Spec, 0, len(registry))
	for _, s := range registry {
		specs = append(specs, s)
	}
	return specs
}

// CustomerTemplate returns the template name for the customer-facing message.
func (s Spec) CustomerTemplate() string {
	return s.Type + ".customer"
}

// AdminTemplate returns the template name for the admin-facing message.
func (s Spec) AdminTemplate() string {
	return s.Type + ".admin"
}
