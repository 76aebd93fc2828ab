// Package otp issues and checks SMS one-time codes through Twilio Verify.
// Twilio owns code generation and expiry; the only local state is a Redis
// attempt counter guarding against issuance abuse.
package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	commonerrors "dealership-api/internal/common/errors"
	"dealership-api/internal/common/logger"
	"dealership-api/internal/common/observability"
	"dealership-api/internal/common/validation"

	"github.com/redis/go-redis/v9"
	twilioclient "github.com/twilio/twilio-go/client"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

type Service struct {
	api           VerifyAPI
	serviceSID    string
	countryCode   string
	maxAttempts   int
	attemptWindow time.Duration
	redis         *redis.Client
	logger        logger.Logger
	obs           *observability.Observability
}

func NewService(
	api VerifyAPI,
	serviceSID, countryCode string,
	maxAttempts, attemptWindowMinutes int,
	rdb *redis.Client,
	log logger.Logger,
	obs *observability.Observability,
) *Service {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if attemptWindowMinutes <= 0 {
		attemptWindowMinutes = 60
	}
	return &Service{
		api:           api,
		serviceSID:    serviceSID,
		countryCode:   countryCode,
		maxAttempts:   maxAttempts,
		attemptWindow: time.Duration(attemptWindowMinutes) * time.Minute,
		redis:         rdb,
		logger:        log,
		obs:           obs,
	}
}

// Issue requests SMS delivery of a one-time code for a 10-digit phone
// number. Repeated issuance for one number is capped per window.
func (s *Service) Issue(ctx context.Context, phone string) error {
	if !validation.ValidatePhone(phone) {
		return commonerrors.NewValidationFailedError("phone", "Phone must be 10 digits")
	}

	if err := s.checkAttempts(ctx, phone); err != nil {
		return err
	}

	params := &verify.CreateVerificationParams{}
	params.SetTo(s.countryCode + phone)
	params.SetChannel("sms")

	resp, err := s.api.CreateVerification(s.serviceSID, params)
	if err != nil {
		s.obs.RecordGateCheck(ctx, "otp_issue", "upstream_error")
		return commonerrors.NewGateUpstreamError("otp", err)
	}

	status := ""
	if resp.Status != nil {
		status = *resp.Status
	}
	s.logger.Info("otp issued", map[string]interface{}{
		"phone":  phone,
		"status": status,
	})
	s.obs.RecordGateCheck(ctx, "otp_issue", "sent")
	return nil
}

// Check verifies a submitted code against Twilio. Anything other than an
// approved status is an invalid-or-expired rejection.
func (s *Service) Check(ctx context.Context, phone, code string) error {
	if !validation.ValidatePhone(phone) {
		return commonerrors.NewValidationFailedError("phone", "Phone must be 10 digits")
	}
	if matched := validation.ValidateOTP(code); !matched {
		return commonerrors.NewValidationFailedError("otp", "OTP must be 4 to 6 digits")
	}

	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(s.countryCode + phone)
	params.SetCode(code)

	resp, err := s.api.CreateVerificationCheck(s.serviceSID, params)
	if err != nil {
		// Twilio answers with a rest error for unknown/expired
		// verifications; anything else is an outage, not a wrong code.
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			s.obs.RecordGateCheck(ctx, "otp_check", "rejected")
			return commonerrors.NewOTPRejectedError(restErr.Message)
		}
		s.obs.RecordGateCheck(ctx, "otp_check", "upstream_error")
		return commonerrors.NewGateUpstreamError("otp", err)
	}

	if resp.Status == nil || *resp.Status != "approved" {
		s.obs.RecordGateCheck(ctx, "otp_check", "rejected")
		return commonerrors.NewOTPRejectedError("")
	}

	s.clearAttempts(ctx, phone)
	s.obs.RecordGateCheck(ctx, "otp_check", "approved")
	return nil
}

func (s *Service) checkAttempts(ctx context.Context, phone string) error {
	if s.redis == nil {
		return nil
	}

	key := attemptKey(phone)
	count, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		s.logger.Warn("otp attempt counter unavailable", map[string]interface{}{
			"error": err,
		})
		return nil
	}
	if count == 1 {
		s.redis.Expire(ctx, key, s.attemptWindow)
	}
	if count > int64(s.maxAttempts) {
		s.obs.RecordGateCheck(ctx, "otp_issue", "throttled")
		return commonerrors.NewTooManyAttemptsError(
			fmt.Sprintf("limit %d per %s", s.maxAttempts, s.attemptWindow),
		)
	}
	return nil
}

func (s *Service) clearAttempts(ctx context.Context, phone string) {
	if s.redis == nil {
		return
	}
	s.redis.Del(ctx, attemptKey(phone))
}

func attemptKey(phone string) string {
	return "otp:attempts:" + phone
}
