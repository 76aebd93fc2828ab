package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Shared format predicates for form fields.
var (
	EmailPattern   = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	PhonePattern   = `^\d{10}$`
	PincodePattern = `^\d{6}$`
	OTPPattern     = `^\d{4,6}$`

	emailRegex = regexp.MustCompile(EmailPattern)
	phoneRegex = regexp.MustCompile(PhonePattern)
	otpRegex   = regexp.MustCompile(OTPPattern)
)

// Field describes one field of a form schema. Name may be a dotted path into
// a nested object ("vehicle.model").
type Field struct {
	Name           string
	Label          string // user-facing name; defaults to a title-cased Name
	Required       bool
	Type           string // "string" (default) or "number"
	Pattern        string
	PatternMessage string
	MinLength      int
	MaxLength      int
	Enum           []string
}

// FormSchema enumerates the fields of one form type.
type FormSchema struct {
	Fields []Field
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Result struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// First returns the first error, or nil when valid.
func (r *Result) First() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// Validate checks a decoded JSON payload against a form schema. An empty
// string for an optional field counts as absent, not as a format violation.
// Numeric fields accept JSON numbers and numeric strings.
func Validate(payload map[string]interface{}, schema FormSchema) *Result {
	var errors []ValidationError

	for _, field := range schema.Fields {
		value, present := lookup(payload, field.Name)

		// Empty or whitespace-only strings are treated as absent.
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			present = false
		}

		if !present {
			if field.Required {
				errors = append(errors, ValidationError{
					Field:   field.Name,
					Message: fmt.Sprintf("%s is required", field.label()),
					Code:    "REQUIRED_FIELD_MISSING",
				})
			}
			continue
		}

		if fieldErrors := validateField(field, value); len(fieldErrors) > 0 {
			errors = append(errors, fieldErrors...)
		}
	}

	return &Result{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

func validateField(field Field, value interface{}) []ValidationError {
	var errors []ValidationError

	if field.Type == "number" {
		if _, err := CoerceNumber(value); err != nil {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: fmt.Sprintf("%s must be a number", field.label()),
				Code:    "INVALID_TYPE",
			})
		}
		return errors
	}

	strVal, ok := value.(string)
	if !ok {
		errors = append(errors, ValidationError{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be a string", field.label()),
			Code:    "INVALID_TYPE",
		})
		return errors
	}
	strVal = strings.TrimSpace(strVal)

	// Length limits count characters, not bytes.
	length := utf8.RuneCountInString(strVal)
	if field.MinLength > 0 && length < field.MinLength {
		errors = append(errors, ValidationError{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be at least %d characters", field.label(), field.MinLength),
			Code:    "MIN_LENGTH_VIOLATION",
		})
	}
	if field.MaxLength > 0 && length > field.MaxLength {
		errors = append(errors, ValidationError{
			Field:   field.Name,
			Message: fmt.Sprintf("%s must be at most %d characters", field.label(), field.MaxLength),
			Code:    "MAX_LENGTH_VIOLATION",
		})
	}

	if field.Pattern != "" {
		matched, err := regexp.MatchString(field.Pattern, strVal)
		if err != nil || !matched {
			message := field.PatternMessage
			if message == "" {
				message = fmt.Sprintf("Invalid %s format", strings.ToLower(field.label()))
			}
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: message,
				Code:    "PATTERN_MISMATCH",
			})
		}
	}

	if len(field.Enum) > 0 {
		found := false
		for _, enumVal := range field.Enum {
			if strVal == enumVal {
				found = true
				break
			}
		}
		if !found {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: fmt.Sprintf("%s must be one of %v", field.label(), field.Enum),
				Code:    "INVALID_ENUM_VALUE",
			})
		}
	}

	return errors
}

func (f Field) label() string {
	if f.Label != "" {
		return f.Label
	}
	// Last path segment, first letter upper-cased.
	name := f.Name
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// lookup resolves a possibly dotted path into a decoded JSON payload.
func lookup(payload map[string]interface{}, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	var current interface{} = payload
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// CoerceNumber converts a JSON number or numeric string to float64. Form
// payloads routinely carry numbers as strings.
func CoerceNumber(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone validates a 10-digit phone number
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateOTP validates a 4 to 6 digit one-time code
func ValidateOTP(code string) bool {
	return otpRegex.MatchString(code)
}
