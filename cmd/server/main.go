// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"dealership-api/internal/api"
	"dealership-api/internal/clients/cms"
	"dealership-api/internal/clients/genai"
	"dealership-api/internal/clients/whatsapp"
	"dealership-api/internal/common/aws"
	"dealership-api/internal/common/config"
	"dealership-api/internal/common/database"
	"dealership-api/internal/common/logger"
	"dealership-api/internal/common/observability"
	"dealership-api/internal/gate/captcha"
	"dealership-api/internal/gate/otp"
	"dealership-api/internal/notify"
	"dealership-api/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting dealership api",
		zap.String("environment", cfg.App.Environment),
		zap.String("listenAddr", cfg.Server.ListenAddr),
	)

	obs := observability.New("dealership-api")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected")

	// --- Submissions store ---
	submissions := store.NewSubmissionStore(pg)
	if err := submissions.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("submissions schema failed", zap.Error(err))
	}

	// --- AWS clients ---
	sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
	if err != nil {
		zapLog.Fatal("ses client failed", zap.Error(err))
	}
	snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
	if err != nil {
		zapLog.Fatal("sns client failed", zap.Error(err))
	}

	// --- Notification dispatcher ---
	waClient := whatsapp.NewClient(
		cfg.Notifications.WhatsApp.GatewayURL,
		cfg.Notifications.WhatsApp.APIKey,
		cfg.Notifications.WhatsApp.SenderID,
		log,
	)
	dispatcher := notify.NewDispatcher(cfg.Notifications, log, obs, sesClient, snsClient, waClient)

	// --- Gates ---
	captchaSvc := captcha.NewService(
		cfg.Gates.Recaptcha.SecretKey,
		cfg.Gates.Recaptcha.VerifyURL,
		rdb.Client,
		log,
		obs,
	)
	otpSvc := otp.NewService(
		otp.NewTwilioAPI(cfg.Gates.Twilio.AccountSID, cfg.Gates.Twilio.AuthToken),
		cfg.Gates.Twilio.VerifyServiceSID,
		cfg.Gates.Twilio.CountryCode,
		cfg.Gates.MaxOTPAttempts,
		cfg.Gates.OTPAttemptWindow,
		rdb.Client,
		log,
		obs,
	)

	// --- Content and chat ---
	cmsClient := cms.NewClient(
		cfg.Integrations.CMS.ProjectID,
		cfg.Integrations.CMS.Dataset,
		cfg.Integrations.CMS.APIVersion,
		cfg.Integrations.CMS.Token,
		cfg.Integrations.CMS.UseCDN,
		log,
	)
	chatClient := genai.NewClient(
		cfg.Integrations.GenAI.BaseURL,
		cfg.Integrations.GenAI.APIKey,
		cfg.Integrations.GenAI.Model,
		config.GetDuration(cfg.Integrations.GenAI.Timeout),
		log,
	)

	server := api.NewServer(api.Dependencies{
		Config:     cfg,
		Logger:     log,
		Obs:        obs,
		Dispatcher: dispatcher,
		Store:      submissions,
		Captcha:    captchaSvc,
		OTP:        otpSvc,
		Catalog:    cmsClient,
		Chat:       chatClient,
	})

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()
	zapLog.Info("server started", zap.String("addr", cfg.Server.ListenAddr))

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown failed", zap.Error(err))
	}

	zapLog.Info("stopped")
}
