package template

import (
	"errors"
	"testing"

	commonerrors "dealership-api/internal/common/errors"
	"dealership-api/internal/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ContactAdmin(t *testing.T) {
	msg, err := Render("contact.admin", map[string]interface{}{
		"referenceId": "CONTACT-042913",
		"name":        "Jane Doe",
		"phoneNumber": "9876543210",
		"message":     "I would like a quote for the new scooter model.",
	})

	require.NoError(t, err)
	assert.Equal(t, "New contact enquiry CONTACT-042913", msg.Subject)
	assert.Contains(t, msg.Body, "Name: Jane Doe")
	assert.Contains(t, msg.Body, "Phone: 9876543210")
	// Email was not supplied; the row falls back instead of erroring.
	assert.Contains(t, msg.Body, "Email: -")
}

func TestRender_NestedPayloadFields(t *testing.T) {
	msg, err := Render("book.admin", map[string]interface{}{
		"referenceId":  "BK-482913",
		"fullName":     "Asha Rao",
		"mobileNumber": "9876543210",
		"dealership":   "Indiranagar",
		"vehicle": map[string]interface{}{
			"model":   "Aurora 450X",
			"variant": "Pro",
			"color":   "Midnight Blue",
		},
	})

	require.NoError(t, err)
	assert.Contains(t, msg.Body, "Model: Aurora 450X")
	assert.Contains(t, msg.Body, "Color: Midnight Blue")
}

func TestRender_MissingValuesNeverFail(t *testing.T) {
	msg, err := Render("contact.customer", map[string]interface{}{
		"referenceId": "CONTACT-000001",
	})

	require.NoError(t, err)
	// {{name}} had no value; the greeting renders without it.
	assert.Contains(t, msg.Subject, "CONTACT-000001")
	assert.NotContains(t, msg.Body, "{{")
	assert.NotContains(t, msg.Body, "}}")
}

func TestRender_NumberFormatting(t *testing.T) {
	msg, err := Render("loan-application.admin", map[string]interface{}{
		"referenceId": "LOAN-117736",
		"name":        "Asha Rao",
		"loanAmount":  float64(250000),
	})

	require.NoError(t, err)
	assert.Contains(t, msg.Body, "Loan amount: 250000")
	assert.NotContains(t, msg.Body, "250000.")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("vaporware.customer", nil)

	require.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, commonerrors.ErrCodeTemplateNotFound, stdErr.Code)
}

func TestEveryFormHasBothTemplates(t *testing.T) {
	for _, spec := range forms.All() {
		assert.True(t, Has(spec.CustomerTemplate()), "missing %s", spec.CustomerTemplate())
		assert.True(t, Has(spec.AdminTemplate()), "missing %s", spec.AdminTemplate())
	}
}
