// Package captcha verifies client-obtained reCAPTCHA tokens against
// Google's siteverify endpoint. Tokens are single use: a token that already
// passed verification is rejected on replay.
package captcha

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	commonerrors "dealership-api/internal/common/errors"
	"dealership-api/internal/common/httpclient"
	"dealership-api/internal/common/logger"
	"dealership-api/internal/common/observability"

	"github.com/redis/go-redis/v9"
)

const usedTokenTTL = 10 * time.Minute

type Service struct {
	secretKey  string
	verifyURL  string
	httpClient *httpclient.Client
	redis      *redis.Client
	logger     logger.Logger
	obs        *observability.Observability
}

func NewService(secretKey, verifyURL string, rdb *redis.Client, log logger.Logger, obs *observability.Observability) *Service {
	return &Service{
		secretKey:  secretKey,
		verifyURL:  verifyURL,
		httpClient: httpclient.NewClient(10 * time.Second),
		redis:      rdb,
		logger:     log,
		obs:        obs,
	}
}

// Verify checks a captcha token. A missing token is rejected without
// calling the verifier. Verifier outages surface as a retryable gate error,
// never as a pass.
func (s *Service) Verify(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		s.obs.RecordGateCheck(ctx, "captcha", "missing")
		return commonerrors.NewCaptchaMissingError()
	}

	used, err := s.alreadyUsed(ctx, token)
	if err != nil {
		s.logger.Warn("captcha replay check unavailable", map[string]interface{}{
			"error": err,
		})
	} else if used {
		s.obs.RecordGateCheck(ctx, "captcha", "replayed")
		return commonerrors.NewCaptchaRejectedError("token already used")
	}

	form := url.Values{}
	form.Set("secret", s.secretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return commonerrors.NewGateUpstreamError("captcha", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.obs.RecordGateCheck(ctx, "captcha", "upstream_error")
		return commonerrors.NewGateUpstreamError("captcha", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.obs.RecordGateCheck(ctx, "captcha", "upstream_error")
		return commonerrors.NewGateUpstreamError("captcha", err)
	}

	var result siteverifyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		s.obs.RecordGateCheck(ctx, "captcha", "upstream_error")
		return commonerrors.NewGateUpstreamError("captcha", err)
	}

	if !result.Success {
		s.logger.Info("captcha rejected", map[string]interface{}{
			"errorCodes": result.ErrorCodes,
		})
		s.obs.RecordGateCheck(ctx, "captcha", "rejected")
		return commonerrors.NewCaptchaRejectedError(strings.Join(result.ErrorCodes, ", "))
	}

	s.markUsed(ctx, token)
	s.obs.RecordGateCheck(ctx, "captcha", "verified")
	return nil
}

func (s *Service) alreadyUsed(ctx context.Context, token string) (bool, error) {
	if s.redis == nil {
		return false, nil
	}
	n, err := s.redis.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Service) markUsed(ctx context.Context, token string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, tokenKey(token), "1", usedTokenTTL).Err(); err != nil {
		s.logger.Warn("failed to record used captcha token", map[string]interface{}{
			"error": err,
		})
	}
}

// tokenKey hashes the token so raw captcha tokens never land in Redis.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "captcha:used:" + hex.EncodeToString(sum[:])
}
