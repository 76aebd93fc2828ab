package api

import (
	"net/http"
	"testing"

	"dealership-api/internal/clients/cms"
	commonerrors "dealership-api/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicles(t *testing.T) {
	h := newTestHarness(t)
	h.server.catalog = &mockCatalog{vehicles: []cms.Vehicle{
		{Name: "Aurora 450X", Slug: "aurora-450x", Price: 189000, Category: "scooter"},
		{Name: "Falcon 250", Slug: "falcon-250", Price: 142000, Category: "motorcycle"},
	}}

	rec := h.do(http.MethodGet, "/api/vehicles", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	vehicles, ok := body["vehicles"].([]interface{})
	require.True(t, ok)
	assert.Len(t, vehicles, 2)
}

func TestVehicleBySlug(t *testing.T) {
	h := newTestHarness(t)
	h.server.catalog = &mockCatalog{vehicles: []cms.Vehicle{
		{Name: "Aurora 450X", Slug: "aurora-450x", Price: 189000, Category: "scooter"},
	}}

	rec := h.do(http.MethodGet, "/api/vehicles/aurora-450x", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	vehicle, ok := body["vehicle"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Aurora 450X", vehicle["name"])
}

func TestVehicleBySlug_NotFound(t *testing.T) {
	h := newTestHarness(t)

	rec := h.do(http.MethodGet, "/api/vehicles/no-such-model", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Vehicle not found", body["message"])
}

func TestVehicles_CMSDown(t *testing.T) {
	h := newTestHarness(t)
	h.server.catalog = &mockCatalog{err: commonerrors.NewCMSQueryFailedError(assert.AnError)}

	rec := h.do(http.MethodGet, "/api/vehicles", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
