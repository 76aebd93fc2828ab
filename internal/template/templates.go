package template

// definitions maps "<formType>.customer" and "<formType>.admin" to message
// layouts. Every message carries the reference id for correlation.
var definitions = map[string]Definition{
	"contact.customer": {
		Subject: "We received your enquiry ({{referenceId}})",
		Header:  "Hi {{name}},\n\nThank you for reaching out. Your enquiry has been registered with reference {{referenceId}} and our team will get back to you shortly.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Message", Key: "message"},
		},
		Footer: "Regards,\nThe Dealership Team",
	},
	"contact.admin": {
		Subject: "New contact enquiry {{referenceId}}",
		Header:  "A new contact enquiry has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Name", Key: "name"},
			{Label: "Phone", Key: "phoneNumber"},
			{Label: "Email", Key: "email"},
			{Label: "Message", Key: "message"},
		},
	},

	"book.customer": {
		Subject: "Your booking {{referenceId}} is confirmed",
		Header:  "Hi {{fullName}},\n\nYour vehicle booking has been received. Keep reference {{referenceId}} handy for all follow-ups.",
		Rows: []Row{
			{Label: "Booking ID", Key: "referenceId"},
			{Label: "Model", Key: "vehicle.model"},
			{Label: "Variant", Key: "vehicle.variant"},
			{Label: "Color", Key: "vehicle.color"},
			{Label: "Dealership", Key: "dealership"},
		},
		Footer: "Our dealership will contact you to complete the booking.",
	},
	"book.admin": {
		Subject: "New vehicle booking {{referenceId}}",
		Header:  "A new vehicle booking has been submitted.",
		Rows: []Row{
			{Label: "Booking ID", Key: "referenceId"},
			{Label: "Customer", Key: "fullName"},
			{Label: "Mobile", Key: "mobileNumber"},
			{Label: "Email", Key: "emailId"},
			{Label: "Model", Key: "vehicle.model"},
			{Label: "Variant", Key: "vehicle.variant"},
			{Label: "Color", Key: "vehicle.color"},
			{Label: "Dealership", Key: "dealership"},
		},
	},

	"book-test-ride.customer": {
		Subject: "Test ride booked ({{referenceId}})",
		Header:  "Hi {{name}},\n\nYour test ride is booked. Show reference {{referenceId}} at the dealership.",
		Rows: []Row{
			{Label: "Booking reference", Key: "referenceId"},
			{Label: "Vehicle", Key: "vehicle"},
			{Label: "Variant", Key: "variant"},
			{Label: "Dealer", Key: "dealer"},
			{Label: "Date", Key: "bookingDate"},
			{Label: "Time slot", Key: "timeSlot"},
		},
		Footer: "See you at the dealership!",
	},
	"book-test-ride.admin": {
		Subject: "New test ride booking {{referenceId}}",
		Header:  "A new test ride has been booked.",
		Rows: []Row{
			{Label: "Booking reference", Key: "referenceId"},
			{Label: "Customer", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Email", Key: "email"},
			{Label: "Vehicle", Key: "vehicle"},
			{Label: "Variant", Key: "variant"},
			{Label: "Dealer", Key: "dealer"},
			{Label: "Pincode", Key: "pincode"},
			{Label: "Date", Key: "bookingDate"},
			{Label: "Time slot", Key: "timeSlot"},
		},
	},

	"insurance-renewal.customer": {
		Subject: "Insurance renewal request {{referenceId}}",
		Header:  "Hi {{name}},\n\nYour insurance renewal request has been registered under reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Policy number", Key: "policyNumber"},
		},
		Footer: "Our insurance desk will call you with a quote.",
	},
	"insurance-renewal.admin": {
		Subject: "New insurance renewal {{referenceId}}",
		Header:  "A new insurance renewal request has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Customer", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Email", Key: "email"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Policy number", Key: "policyNumber"},
			{Label: "Policy expiry", Key: "policyExpiryDate"},
		},
	},

	"loan-application.customer": {
		Subject: "Loan application received ({{referenceId}})",
		Header:  "Hi {{name}},\n\nYour loan application has been received with reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Loan amount", Key: "loanAmount"},
		},
		Footer: "Our finance partner will reach out for documentation.",
	},
	"loan-application.admin": {
		Subject: "New loan application {{referenceId}}",
		Header:  "A new loan application has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Applicant", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Email", Key: "email"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Loan amount", Key: "loanAmount"},
			{Label: "Employment", Key: "employmentType"},
		},
	},

	"express-service.customer": {
		Subject: "Express service request {{referenceId}}",
		Header:  "Hi {{name}},\n\nYour express service request has been registered under reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Preferred date", Key: "preferredDate"},
		},
		Footer: "Our service desk will confirm your slot.",
	},
	"express-service.admin": {
		Subject: "New express service request {{referenceId}}",
		Header:  "A new express service request has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Customer", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Preferred date", Key: "preferredDate"},
		},
	},

	"exchange.customer": {
		Subject: "Exchange request received ({{referenceId}})",
		Header:  "Hi {{name}},\n\nYour exchange request has been registered under reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Current vehicle", Key: "currentVehicle"},
			{Label: "New model", Key: "newVehicleModel"},
		},
		Footer: "Our team will contact you with an exchange valuation.",
	},
	"exchange.admin": {
		Subject: "New exchange request {{referenceId}}",
		Header:  "A new exchange request has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Customer", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Current vehicle", Key: "currentVehicle"},
			{Label: "Year", Key: "currentVehicleYear"},
			{Label: "New model", Key: "newVehicleModel"},
		},
	},

	"submit-amc.customer": {
		Subject: "AMC enrollment received ({{referenceId}})",
		Header:  "Hi {{name}},\n\nYour AMC enrollment has been registered under reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Plan", Key: "amcPlan"},
		},
		Footer: "Our service desk will activate your plan shortly.",
	},
	"submit-amc.admin": {
		Subject: "New AMC enrollment {{referenceId}}",
		Header:  "A new AMC enrollment has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Customer", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Plan", Key: "amcPlan"},
		},
	},

	"online-service.customer": {
		Subject: "Service booking received ({{referenceId}})",
		Header:  "Hi {{name}},\n\nYour service booking has been registered under reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Service type", Key: "serviceType"},
		},
		Footer: "Our service desk will confirm your booking.",
	},
	"online-service.admin": {
		Subject: "New service booking {{referenceId}}",
		Header:  "A new online service booking has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Customer", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Vehicle", Key: "vehicleModel"},
			{Label: "Registration", Key: "registrationNumber"},
			{Label: "Service type", Key: "serviceType"},
			{Label: "Pincode", Key: "pincode"},
			{Label: "Address", Key: "address"},
		},
	},

	"generic-payment.customer": {
		Subject: "Payment request recorded ({{referenceId}})",
		Header:  "Hi {{name}},\n\nYour payment request has been recorded with transaction reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Transaction", Key: "referenceId"},
			{Label: "Amount", Key: "amount"},
			{Label: "Purpose", Key: "purpose"},
		},
		Footer: "Please quote this reference for any payment queries.",
	},
	"generic-payment.admin": {
		Subject: "New payment request {{referenceId}}",
		Header:  "A new payment request has been recorded.",
		Rows: []Row{
			{Label: "Transaction", Key: "referenceId"},
			{Label: "Customer", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Amount", Key: "amount"},
			{Label: "Purpose", Key: "purpose"},
		},
	},

	"suggestion.customer": {
		Subject: "Thanks for your feedback ({{referenceId}})",
		Header:  "Hi {{name}},\n\nThank you for your feedback. It has been recorded under reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Feedback", Key: "message"},
		},
		Footer: "We read every suggestion.",
	},
	"suggestion.admin": {
		Subject: "New feedback {{referenceId}}",
		Header:  "New customer feedback has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Name", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Email", Key: "email"},
			{Label: "Feedback", Key: "message"},
		},
	},

	"career-application.customer": {
		Subject: "Application received ({{referenceId}})",
		Header:  "Hi {{name}},\n\nYour application for {{position}} has been received under reference {{referenceId}}.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Position", Key: "position"},
		},
		Footer: "Our HR team will be in touch if your profile is shortlisted.",
	},
	"career-application.admin": {
		Subject: "New career application {{referenceId}}",
		Header:  "A new career application has been submitted.",
		Rows: []Row{
			{Label: "Reference", Key: "referenceId"},
			{Label: "Applicant", Key: "name"},
			{Label: "Phone", Key: "phone"},
			{Label: "Email", Key: "email"},
			{Label: "Position", Key: "position"},
			{Label: "Experience", Key: "experience"},
			{Label: "Resume", Key: "resumeUrl"},
		},
	},
}
