package api

import (
	"encoding/json"
	"time"

	commonerrors "dealership-api/internal/common/errors"
	"dealership-api/internal/common/validation"
	"dealership-api/internal/forms"
	"dealership-api/internal/notify"
	"dealership-api/internal/store"

	"github.com/labstack/echo/v4"
)

// handleSubmit is the generic submission pipeline shared by every form
// route: decode, validate, mint a reference id, persist best effort, fan
// out notifications, respond.
func (s *Server) handleSubmit(spec forms.Spec) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var payload map[string]interface{}
		if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
			s.obs.RecordSubmission(ctx, spec.Type, "parse_error")
			s.respondError(c, commonerrors.NewParseError(err))
			return nil
		}

		result := validation.Validate(payload, spec.Schema)
		if !result.Valid {
			first := result.First()
			s.logger.Info("submission rejected", map[string]interface{}{
				"form":  spec.Type,
				"field": first.Field,
				"code":  first.Code,
			})
			s.obs.RecordSubmission(ctx, spec.Type, "invalid")
			s.respondError(c, commonerrors.NewValidationFailedError(first.Field, first.Message))
			return nil
		}

		referenceID := s.refs[spec.Type].Next()

		s.persist(c, spec, payload, referenceID)

		jobs := s.dispatcher.BuildJobs(spec, payload, referenceID)
		outcomes := s.dispatcher.Dispatch(ctx, jobs)

		s.obs.RecordSubmission(ctx, spec.Type, "accepted")

		response := map[string]interface{}{
			"success":    true,
			"message":    spec.SuccessMessage,
			spec.IDField: referenceID,
		}
		if spec.ReportEmailSent {
			response["emailSent"] = customerEmailSent(outcomes)
		}
		return s.respondSuccess(c, response)
	}
}

// persist saves the submission when a store is configured. Failures are
// logged and never fail the request; the notification is the primary
// record.
func (s *Server) persist(c echo.Context, spec forms.Spec, payload map[string]interface{}, referenceID string) {
	if s.store == nil {
		return
	}

	err := s.store.Save(c.Request().Context(), store.Submission{
		ReferenceID: referenceID,
		FormType:    spec.Type,
		Payload:     payload,
		ReceivedAt:  time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to persist submission", map[string]interface{}{
			"form":        spec.Type,
			"referenceId": referenceID,
			"error":       err,
		})
	}
}

func customerEmailSent(outcomes []notify.Outcome) bool {
	for _, outcome := range outcomes {
		if outcome.Channel == forms.ChannelEmail && outcome.Audience == "customer" {
			return outcome.Sent
		}
	}
	return false
}
