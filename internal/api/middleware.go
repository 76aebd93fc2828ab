package api

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// requestLogger logs every request and records its duration.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			status := c.Response().Status
			s.logger.Info("request handled", map[string]interface{}{
				"method":     c.Request().Method,
				"path":       c.Path(),
				"status":     status,
				"durationMs": duration.Milliseconds(),
			})
			s.obs.RecordRequestDuration(c.Request().Context(), c.Path(), duration, status)
			return nil
		}
	}
}

func (s *Server) corsMiddleware() echo.MiddlewareFunc {
	var origins []string
	for _, origin := range strings.Split(s.cfg.Server.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
	})
}
