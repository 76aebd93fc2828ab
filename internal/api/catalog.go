package api

import (
	"net/http"

	commonerrors "dealership-api/internal/common/errors"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleVehicles(c echo.Context) error {
	vehicles, err := s.catalog.Vehicles(c.Request().Context())
	if err != nil {
		s.respondError(c, err)
		return nil
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"vehicles": vehicles,
	})
}

func (s *Server) handleVehicleBySlug(c echo.Context) error {
	vehicle, err := s.catalog.VehicleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		s.respondError(c, err)
		return nil
	}
	if vehicle == nil {
		s.respondError(c, commonerrors.NewNotFoundError("Vehicle"))
		return nil
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"vehicle": vehicle,
	})
}
