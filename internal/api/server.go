// Package api exposes the HTTP surface: one submission route per form
// type, the captcha and OTP gate endpoints, the AI chat proxy, and the
// CMS-backed vehicle catalog.
package api

import (
	"context"
	"errors"
	"net/http"

	"dealership-api/internal/clients/cms"
	"dealership-api/internal/clients/genai"
	"dealership-api/internal/common/config"
	commonerrors "dealership-api/internal/common/errors"
	"dealership-api/internal/common/logger"
	"dealership-api/internal/common/observability"
	"dealership-api/internal/forms"
	"dealership-api/internal/notify"
	"dealership-api/internal/refid"
	"dealership-api/internal/store"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CaptchaVerifier checks a client-obtained captcha token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) error
}

// OTPGate issues and checks SMS one-time codes.
type OTPGate interface {
	Issue(ctx context.Context, phone string) error
	Check(ctx context.Context, phone, code string) error
}

// Catalog serves the CMS-owned vehicle catalog.
type Catalog interface {
	Vehicles(ctx context.Context) ([]cms.Vehicle, error)
	VehicleBySlug(ctx context.Context, slug string) (*cms.Vehicle, error)
}

// ChatCompleter answers an AI chat conversation.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []genai.Message) (string, error)
}

// SubmissionSaver persists accepted submissions, best effort.
type SubmissionSaver interface {
	Save(ctx context.Context, sub store.Submission) error
}

type Dependencies struct {
	Config     *config.Config
	Logger     logger.Logger
	Obs        *observability.Observability
	Dispatcher *notify.Dispatcher
	Store      SubmissionSaver // nil disables persistence
	Captcha    CaptchaVerifier
	OTP        OTPGate
	Catalog    Catalog
	Chat       ChatCompleter
}

type Server struct {
	echo       *echo.Echo
	cfg        *config.Config
	logger     logger.Logger
	obs        *observability.Observability
	dispatcher *notify.Dispatcher
	store      SubmissionSaver
	captcha    CaptchaVerifier
	otp        OTPGate
	catalog    Catalog
	chat       ChatCompleter
	refs       map[string]*refid.Source
}

func NewServer(deps Dependencies) *Server {
	s := &Server{
		cfg:        deps.Config,
		logger:     deps.Logger,
		obs:        deps.Obs,
		dispatcher: deps.Dispatcher,
		store:      deps.Store,
		captcha:    deps.Captcha,
		otp:        deps.OTP,
		catalog:    deps.Catalog,
		chat:       deps.Chat,
		refs:       make(map[string]*refid.Source),
	}

	for _, spec := range forms.All() {
		s.refs[spec.Type] = refid.NewSource(spec.Prefix, spec.Digits, deps.Config.ReferenceMode(spec.Type))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(s.requestLogger())
	e.Use(s.corsMiddleware())

	for _, spec := range forms.All() {
		e.POST(spec.Route, s.handleSubmit(spec))
	}

	e.POST("/api/generate-otp", s.handleGenerateOTP)
	e.POST("/api/verify-otp", s.handleVerifyOTP)
	e.POST("/api/verify-captcha", s.handleVerifyCaptcha)
	e.POST("/api/chat", s.handleChat)

	e.GET("/api/vehicles", s.handleVehicles)
	e.GET("/api/vehicles/:slug", s.handleVehicleBySlug)

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s.echo = e
	return s
}

func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         s.cfg.Server.ListenAddr,
		ReadTimeout:  config.GetDuration(s.cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(s.cfg.Server.WriteTimeout),
	}
	return s.echo.StartServer(srv)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the routing tree, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// httpErrorHandler converts routing errors into the error envelope, so a
// GET against a submission route answers 405 with the standard body.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusMethodNotAllowed:
			err = commonerrors.NewMethodNotAllowedError(c.Request().Method)
		case http.StatusNotFound:
			err = commonerrors.NewNotFoundError("Resource")
		default:
			err = commonerrors.NewInternalError(err)
		}
	}

	s.respondError(c, err)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
