package api

import (
	commonerrors "dealership-api/internal/common/errors"

	"github.com/labstack/echo/v4"
)

type otpIssueRequest struct {
	Phone string `json:"phone"`
}

type otpCheckRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type captchaRequest struct {
	Captcha string `json:"captcha"`
}

func (s *Server) handleGenerateOTP(c echo.Context) error {
	var req otpIssueRequest
	if err := c.Bind(&req); err != nil {
		s.respondError(c, commonerrors.NewParseError(err))
		return nil
	}

	if err := s.otp.Issue(c.Request().Context(), req.Phone); err != nil {
		s.respondError(c, err)
		return nil
	}

	return s.respondSuccess(c, map[string]interface{}{
		"success": true,
		"message": "OTP sent",
	})
}

func (s *Server) handleVerifyOTP(c echo.Context) error {
	var req otpCheckRequest
	if err := c.Bind(&req); err != nil {
		s.respondError(c, commonerrors.NewParseError(err))
		return nil
	}

	if err := s.otp.Check(c.Request().Context(), req.Phone, req.OTP); err != nil {
		s.respondError(c, err)
		return nil
	}

	return s.respondSuccess(c, map[string]interface{}{
		"success": true,
		"message": "OTP verified",
	})
}

func (s *Server) handleVerifyCaptcha(c echo.Context) error {
	var req captchaRequest
	if err := c.Bind(&req); err != nil {
		s.respondError(c, commonerrors.NewParseError(err))
		return nil
	}

	if err := s.captcha.Verify(c.Request().Context(), req.Captcha); err != nil {
		s.respondError(c, err)
		return nil
	}

	return s.respondSuccess(c, map[string]interface{}{
		"success": true,
		"message": "Captcha verified",
	})
}
