// Package cms queries the headless CMS that owns all catalog content. The
// CMS exposes a GROQ query endpoint; this client only covers the vehicle
// catalog reads the API serves.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	commonerrors "dealership-api/internal/common/errors"
	"dealership-api/internal/common/httpclient"
	"dealership-api/internal/common/logger"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *httpclient.Client
	logger     logger.Logger
}

// Vehicle is the catalog projection the API exposes.
type Vehicle struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// NewClient builds a client for one Sanity project and dataset. UseCDN
// selects the cached read endpoint, appropriate for public catalog data.
func NewClient(projectID, dataset, apiVersion, token string, useCDN bool, log logger.Logger) *Client {
	host := "api.sanity.io"
	if useCDN {
		host = "apicdn.sanity.io"
	}
	return &Client{
		baseURL:    fmt.Sprintf("https://%s.%s/v%s/data/query/%s", projectID, host, apiVersion, dataset),
		token:      token,
		httpClient: httpclient.NewClient(15 * time.Second),
		logger:     log,
	}
}

// Vehicles lists the published vehicle catalog.
func (c *Client) Vehicles(ctx context.Context) ([]Vehicle, error) {
	const query = `*[_type == "vehicle"]{name, "slug": slug.current, price, category, "imageUrl": image.asset->url}`

	var vehicles []Vehicle
	if err := c.query(ctx, query, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// VehicleBySlug loads one vehicle, or nil when the slug is unknown.
func (c *Client) VehicleBySlug(ctx context.Context, slug string) (*Vehicle, error) {
	query := fmt.Sprintf(
		`*[_type == "vehicle" && slug.current == %q][0]{name, "slug": slug.current, price, category, "imageUrl": image.asset->url}`,
		slug,
	)

	var vehicle *Vehicle
	if err := c.query(ctx, query, &vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (c *Client) query(ctx context.Context, groq string, out interface{}) error {
	reqURL := c.baseURL + "?query=" + url.QueryEscape(groq)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return commonerrors.NewCMSQueryFailedError(err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return commonerrors.NewCMSQueryFailedError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return commonerrors.NewCMSQueryFailedError(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("cms query failed", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(body),
		})
		return commonerrors.NewCMSQueryFailedError(fmt.Errorf("status %d", resp.StatusCode))
	}

	var wrapper queryResponse
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return commonerrors.NewCMSQueryFailedError(err)
	}
	if len(wrapper.Result) == 0 || string(wrapper.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(wrapper.Result, out); err != nil {
		return commonerrors.NewCMSQueryFailedError(err)
	}
	return nil
}
