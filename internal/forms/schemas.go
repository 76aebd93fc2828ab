package forms

import (
	"dealership-api/internal/common/validation"
)

var registry = map[string]Spec{
	"contact": {
		Type:    "contact",
		Route:   "/api/contact",
		Prefix:  "CONTACT",
		Digits:  6,
		IDField: "requestId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "phoneNumber", Label: "Phone number", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone number must be 10 digits"},
				{Name: "message", Label: "Message", Required: true, MinLength: 10},
			},
		},
		EmailField:       "email",
		PhoneField:       "phoneNumber",
		NameField:        "name",
		CustomerWhatsApp: true,
		AdminWhatsApp:    true,
		SuccessMessage:   "Thank you for contacting us. Our team will reach out shortly.",
	},

	"book": {
		Type:    "book",
		Route:   "/api/book",
		Prefix:  "BK",
		Digits:  6,
		IDField: "bookingId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "fullName", Label: "Full name", Required: true},
				{Name: "mobileNumber", Label: "Mobile number", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Mobile number must be 10 digits"},
				{Name: "dealership", Required: true},
				{Name: "vehicle.model", Label: "Vehicle model", Required: true},
				{Name: "vehicle.variant", Label: "Vehicle variant", Required: true},
				{Name: "vehicle.color", Label: "Vehicle color", Required: true},
				{Name: "emailId", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
			},
		},
		EmailField:       "emailId",
		PhoneField:       "mobileNumber",
		NameField:        "fullName",
		CustomerWhatsApp: true,
		AdminWhatsApp:    true,
		SuccessMessage:   "Your booking has been received.",
	},

	"book-test-ride": {
		Type:    "book-test-ride",
		Route:   "/api/book-test-ride",
		Prefix:  "TR",
		Digits:  8,
		IDField: "bookingReference",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "email", Label: "Email", Required: true, Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "vehicle", Required: true},
				{Name: "variant", Required: true},
				{Name: "dealer", Required: true},
				{Name: "pincode", Label: "Pincode", Required: true, Pattern: validation.PincodePattern, PatternMessage: "Pincode must be 6 digits"},
				{Name: "bookingDate", Label: "Booking date", Required: true},
				{Name: "timeSlot", Label: "Time slot", Required: true},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		AdminWhatsApp:    true,
		ReportEmailSent:  true,
		SuccessMessage:   "Your test ride has been booked.",
	},

	"insurance-renewal": {
		Type:    "insurance-renewal",
		Route:   "/api/insurance-renewal",
		Prefix:  "INS",
		Digits:  6,
		IDField: "insuranceId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "vehicleModel", Label: "Vehicle model", Required: true},
				{Name: "registrationNumber", Label: "Registration number", Required: true},
				{Name: "policyNumber", Label: "Policy number"},
				{Name: "policyExpiryDate", Label: "Policy expiry date"},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		SuccessMessage:   "Your insurance renewal request has been received.",
	},

	"loan-application": {
		Type:    "loan-application",
		Route:   "/api/loan-application",
		Prefix:  "LOAN",
		Digits:  6,
		IDField: "loanId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "vehicleModel", Label: "Vehicle model", Required: true},
				{Name: "loanAmount", Label: "Loan amount", Required: true, Type: "number"},
				{Name: "employmentType", Label: "Employment type", Enum: []string{"salaried", "self-employed", "business"}},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		SuccessMessage:   "Your loan application has been received.",
	},

	"express-service": {
		Type:    "express-service",
		Route:   "/api/express-service",
		Prefix:  "SRV",
		Digits:  6,
		IDField: "serviceId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "vehicleModel", Label: "Vehicle model", Required: true},
				{Name: "registrationNumber", Label: "Registration number", Required: true},
				{Name: "preferredDate", Label: "Preferred date"},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		SuccessMessage:   "Your express service slot request has been received.",
	},

	"exchange": {
		Type:    "exchange",
		Route:   "/api/exchange",
		Prefix:  "EXC",
		Digits:  6,
		IDField: "exchangeId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "currentVehicle", Label: "Current vehicle", Required: true},
				{Name: "currentVehicleYear", Label: "Current vehicle year", Type: "number"},
				{Name: "newVehicleModel", Label: "New vehicle model", Required: true},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		SuccessMessage:   "Your exchange request has been received.",
	},

	"submit-amc": {
		Type:    "submit-amc",
		Route:   "/api/submit-amc",
		Prefix:  "AMC",
		Digits:  6,
		IDField: "amcId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "vehicleModel", Label: "Vehicle model", Required: true},
				{Name: "registrationNumber", Label: "Registration number", Required: true},
				{Name: "amcPlan", Label: "AMC plan", Required: true},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		SuccessMessage:   "Your AMC enrollment has been received.",
	},

	"online-service": {
		Type:    "online-service",
		Route:   "/api/online-service",
		Prefix:  "SRV",
		Digits:  6,
		IDField: "serviceId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "vehicleModel", Label: "Vehicle model", Required: true},
				{Name: "registrationNumber", Label: "Registration number", Required: true},
				{Name: "serviceType", Label: "Service type", Required: true},
				{Name: "pincode", Label: "Pincode", Pattern: validation.PincodePattern, PatternMessage: "Pincode must be 6 digits"},
				{Name: "address"},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		SuccessMessage:   "Your service booking has been received.",
	},

	"generic-payment": {
		Type:    "generic-payment",
		Route:   "/api/generic-payment",
		Prefix:  "TXN",
		Digits:  8,
		IDField: "transactionId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "amount", Label: "Amount", Required: true, Type: "number"},
				{Name: "purpose", Label: "Purpose", Required: true},
			},
		},
		EmailField:       "email",
		PhoneField:       "phone",
		NameField:        "name",
		CustomerWhatsApp: true,
		SuccessMessage:   "Your payment request has been recorded.",
	},

	"suggestion": {
		Type:    "suggestion",
		Route:   "/api/suggestion",
		Prefix:  "FDBK",
		Digits:  6,
		IDField: "feedbackId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "message", Label: "Message", Required: true, MinLength: 10},
			},
		},
		EmailField:     "email",
		PhoneField:     "phone",
		NameField:      "name",
		SuccessMessage: "Thank you for your feedback.",
	},

	"career-application": {
		Type:    "career-application",
		Route:   "/api/career-application",
		Prefix:  "APP",
		Digits:  6,
		IDField: "applicationId",
		Schema: validation.FormSchema{
			Fields: []validation.Field{
				{Name: "name", Required: true},
				{Name: "phone", Label: "Phone", Required: true, Pattern: validation.PhonePattern, PatternMessage: "Phone must be 10 digits"},
				{Name: "email", Label: "Email", Required: true, Pattern: validation.EmailPattern, PatternMessage: "Invalid email format"},
				{Name: "position", Label: "Position", Required: true},
				{Name: "experience", Label: "Experience"},
				{Name: "resumeUrl", Label: "Resume URL"},
			},
		},
		EmailField:     "email",
		PhoneField:     "phone",
		NameField:      "name",
		SuccessMessage: "Your application has been received.",
	},
}
