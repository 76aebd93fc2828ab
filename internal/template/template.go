// Package template renders notification messages from form submission
// payloads. Templates use {{placeholder}} interpolation; placeholders with
// no matching value render empty rather than failing.
package template

import (
	"fmt"
	"strings"

	commonerrors "dealership-api/internal/common/errors"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	Subject string
	Body    string
}

// Row is one labeled detail line in a message body.
type Row struct {
	Label string
	Key   string // payload key, may be a dotted path
}

// Definition is the fixed layout of one notification template.
type Definition struct {
	Subject string
	Header  string
	Rows    []Row
	Footer  string
}

// Render produces the message for a named template and payload. Rendering
// never fails on missing payload fields; only an unknown template name is
// an error.
func Render(name string, data map[string]interface{}) (Message, error) {
	def, ok := definitions[name]
	if !ok {
		return Message{}, commonerrors.NewTemplateNotFoundError(name)
	}

	flat := flatten(data)

	var body strings.Builder
	body.WriteString(interpolate(def.Header, flat))
	body.WriteString("\n\n")
	for _, row := range def.Rows {
		value, ok := flat[row.Key]
		if !ok || value == "" {
			value = "-"
		}
		body.WriteString(row.Label)
		body.WriteString(": ")
		body.WriteString(value)
		body.WriteString("\n")
	}
	if def.Footer != "" {
		body.WriteString("\n")
		body.WriteString(interpolate(def.Footer, flat))
	}

	return Message{
		Subject: interpolate(def.Subject, flat),
		Body:    body.String(),
	}, nil
}

// Has reports whether a template is registered.
func Has(name string) bool {
	_, ok := definitions[name]
	return ok
}

// interpolate replaces {{key}} placeholders and strips any that remain
// unresolved so missing values render as empty text.
func interpolate(tmpl string, data map[string]string) string {
	result := tmpl

	for k, v := range data {
		result = strings.ReplaceAll(result, "{{"+k+"}}", v)
	}

	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}

// flatten converts a decoded JSON payload into dotted string keys, so a
// nested {"vehicle":{"model":...}} is addressable as "vehicle.model".
func flatten(data map[string]interface{}) map[string]string {
	flat := make(map[string]string, len(data))
	flattenInto(flat, "", data)
	return flat
}

func flattenInto(flat map[string]string, prefix string, data map[string]interface{}) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flattenInto(flat, key, val)
		case string:
			flat[key] = val
		case float64:
			// JSON numbers decode as float64; render integers without ".0".
			if val == float64(int64(val)) {
				flat[key] = fmt.Sprintf("%d", int64(val))
			} else {
				flat[key] = fmt.Sprintf("%v", val)
			}
		case nil:
			// leave unset so the row fallback applies
		default:
			flat[key] = fmt.Sprintf("%v", val)
		}
	}
}
