package otp

import (
	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

// VerifyAPI is the Twilio Verify surface the OTP service depends on. The
// external service owns code generation, delivery, and expiry.
type VerifyAPI interface {
	CreateVerification(serviceSid string, params *verify.CreateVerificationParams) (*verify.VerifyV2Verification, error)
	CreateVerificationCheck(serviceSid string, params *verify.CreateVerificationCheckParams) (*verify.VerifyV2VerificationCheck, error)
}

type twilioAPI struct {
	client *twilio.RestClient
}

// NewTwilioAPI wraps a Twilio REST client as a VerifyAPI.
func NewTwilioAPI(accountSID, authToken string) VerifyAPI {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &twilioAPI{client: client}
}

func (t *twilioAPI) CreateVerification(serviceSid string, params *verify.CreateVerificationParams) (*verify.VerifyV2Verification, error) {
	return t.client.VerifyV2.CreateVerification(serviceSid, params)
}

func (t *twilioAPI) CreateVerificationCheck(serviceSid string, params *verify.CreateVerificationCheckParams) (*verify.VerifyV2VerificationCheck, error) {
	return t.client.VerifyV2.CreateVerificationCheck(serviceSid, params)
}
