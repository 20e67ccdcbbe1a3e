// Package geocode resolves overlay positions. Explicit coordinates pass
// through untouched; static addresses go through a cache-backed lookup
// against an external geocoding service.
package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mapfront/extension/pkg/core"
)

// Geocoder turns an address string into a coordinate. The boolean is false
// when the service yields no usable result; err is reserved for transport
// failures.
type Geocoder interface {
	CoordinatesFromAddress(address, apiKey string) (core.LatLng, bool, error)
}

// Client handles communication with the geocoding web service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new geocoding client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// geocodeResponse is the service's wire format
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location core.LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// CoordinatesFromAddress looks up the coordinate for an address. A response
// without results is not an error; the caller leaves the position unset.
func (c *Client) CoordinatesFromAddress(address, apiKey string) (core.LatLng, bool, error) {
	q := url.Values{}
	q.Set("address", address)
	if apiKey != "" {
		q.Set("key", apiKey)
	}

	resp, err := c.httpClient.Get(c.baseURL + "/json?" + q.Encode())
	if err != nil {
		return core.LatLng{}, false, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.LatLng{}, false, fmt.Errorf("geocode returned status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return core.LatLng{}, false, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if body.Status != "OK" || len(body.Results) == 0 {
		return core.LatLng{}, false, nil
	}
	return body.Results[0].Geometry.Location, true, nil
}
