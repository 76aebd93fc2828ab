package api

import (
	"encoding/json"
	"net/http"

	commonerrors "dealership-api/internal/common/errors"

	"github.com/labstack/echo/v4"
	"github.com/xeipuuv/gojsonschema"
)

// successEnvelopeSchema pins the contract of every success response: a
// true success flag and a human-readable message. Responses are checked
// against it outside production to catch handler drift.
const successEnvelopeSchema = `{
	"type": "object",
	"required": ["success", "message"],
	"properties": {
		"success": {"type": "boolean", "enum": [true]},
		"message": {"type": "string", "minLength": 1}
	}
}`

var envelopeSchema = gojsonschema.NewStringLoader(successEnvelopeSchema)

func (s *Server) respondSuccess(c echo.Context, payload map[string]interface{}) error {
	if !s.cfg.App.IsProduction() {
		s.checkEnvelope(payload)
	}
	return c.JSON(http.StatusOK, payload)
}

func (s *Server) respondError(c echo.Context, err error) {
	status, body := commonerrors.ToHTTP(err, !s.cfg.App.IsProduction())
	if jsonErr := c.JSON(status, body); jsonErr != nil {
		s.logger.Error("failed to write error response", map[string]interface{}{
			"error": jsonErr,
		})
	}
}

func (s *Server) checkEnvelope(payload map[string]interface{}) {
	doc, err := json.Marshal(payload)
	if err != nil {
		return
	}
	result, err := gojsonschema.Validate(envelopeSchema, gojsonschema.NewBytesLoader(doc))
	if err != nil || result.Valid() {
		return
	}
	for _, desc := range result.Errors() {
		s.logger.Warn("success response violates envelope contract", map[string]interface{}{
			"violation": desc.String(),
		})
	}
}
