package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactSchema() FormSchema {
	return FormSchema{
		Fields: []Field{
			{Name: "name", Required: true},
			{Name: "email", Label: "Email", Pattern: EmailPattern, PatternMessage: "Invalid email format"},
			{Name: "phoneNumber", Label: "Phone number", Required: true, Pattern: PhonePattern, PatternMessage: "Phone number must be 10 digits"},
			{Name: "message", Label: "Message", Required: true, MinLength: 10},
		},
	}
}

func TestValidate_ValidPayload(t *testing.T) {
	payload := map[string]interface{}{
		"name":        "Asha Rao",
		"email":       "asha@example.com",
		"phoneNumber": "9876543210",
		"message":     "Interested in a test ride this weekend",
	}

	result := Validate(payload, contactSchema())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Nil(t, result.First())
}

func TestValidate_MissingRequiredField(t *testing.T) {
	payload := map[string]interface{}{
		"name":    "Asha Rao",
		"message": "Interested in a test ride this weekend",
	}

	result := Validate(payload, contactSchema())

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "phoneNumber", result.Errors[0].Field)
	assert.Equal(t, "REQUIRED_FIELD_MISSING", result.Errors[0].Code)
}

func TestValidate_EmptyStringCountsAsAbsent(t *testing.T) {
	payload := map[string]interface{}{
		"name":        "Asha Rao",
		"email":       "   ",
		"phoneNumber": "9876543210",
		"message":     "Interested in a test ride this weekend",
	}

	result := Validate(payload, contactSchema())

	// Optional email left blank must not trip the format check.
	assert.True(t, result.Valid)
}

func TestValidate_MinLengthMessage(t *testing.T) {
	payload := map[string]interface{}{
		"name":        "Asha Rao",
		"phoneNumber": "9876543210",
		"message":     "too short",
	}

	result := Validate(payload, contactSchema())

	require.False(t, result.Valid)
	first := result.First()
	require.NotNil(t, first)
	assert.Equal(t, "Message must be at least 10 characters", first.Message)
}

func TestValidate_LengthCountsCharactersNotBytes(t *testing.T) {
	payload := map[string]interface{}{
		"name":        "Asha Rao",
		"phoneNumber": "9876543210",
		// 6 characters, 18 bytes in UTF-8.
		"message": "नमस्ते",
	}

	result := Validate(payload, contactSchema())

	require.False(t, result.Valid)
	first := result.First()
	require.NotNil(t, first)
	assert.Equal(t, "MIN_LENGTH_VIOLATION", first.Code)
	assert.Equal(t, "Message must be at least 10 characters", first.Message)

	schema := FormSchema{
		Fields: []Field{
			{Name: "note", Label: "Note", Required: true, MaxLength: 10},
		},
	}
	// 8 characters, well over 10 bytes.
	result = Validate(map[string]interface{}{"note": "धन्यवाद!"}, schema)
	assert.True(t, result.Valid)
}

func TestValidate_PhonePattern(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "9876543210", true},
		{"too short", "98765", false},
		{"with country code", "+919876543210", false},
		{"letters", "98765abcde", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]interface{}{
				"name":        "Asha Rao",
				"phoneNumber": tt.phone,
				"message":     "Interested in a test ride this weekend",
			}
			result := Validate(payload, contactSchema())
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, "Phone number must be 10 digits", result.First().Message)
			}
		})
	}
}

func TestValidate_NestedDottedPath(t *testing.T) {
	schema := FormSchema{
		Fields: []Field{
			{Name: "fullName", Required: true},
			{Name: "vehicle.model", Label: "Vehicle model", Required: true},
			{Name: "vehicle.variant", Required: true},
		},
	}

	payload := map[string]interface{}{
		"fullName": "Asha Rao",
		"vehicle": map[string]interface{}{
			"model": "Aurora 450X",
		},
	}

	result := Validate(payload, schema)

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "vehicle.variant", result.Errors[0].Field)
	assert.Equal(t, "Variant is required", result.Errors[0].Message)
}

func TestValidate_NumberCoercion(t *testing.T) {
	schema := FormSchema{
		Fields: []Field{
			{Name: "amount", Label: "Amount", Required: true, Type: "number"},
		},
	}

	for _, value := range []interface{}{float64(2500), "2500", "2500.50"} {
		result := Validate(map[string]interface{}{"amount": value}, schema)
		assert.True(t, result.Valid, "amount %v should be accepted", value)
	}

	result := Validate(map[string]interface{}{"amount": "not-a-number"}, schema)
	require.False(t, result.Valid)
	assert.Equal(t, "Amount must be a number", result.First().Message)
}

func TestValidate_Enum(t *testing.T) {
	schema := FormSchema{
		Fields: []Field{
			{Name: "timeSlot", Label: "Time slot", Required: true, Enum: []string{"morning", "afternoon", "evening"}},
		},
	}

	assert.True(t, Validate(map[string]interface{}{"timeSlot": "morning"}, schema).Valid)
	assert.False(t, Validate(map[string]interface{}{"timeSlot": "midnight"}, schema).Valid)
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.False(t, ValidateEmail("user@example"))
	assert.False(t, ValidateEmail("not an email"))
}

func TestCoerceNumber(t *testing.T) {
	got, err := CoerceNumber(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, float64(42), got)

	_, err = CoerceNumber(map[string]interface{}{})
	assert.Error(t, err)
}
