// Package geocode turns coordinates into a human readable address using a
// Nominatim compatible reverse geocoding endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var ErrNoAddress = errors.New("geocode: no address for coordinate")

type Reverser interface {
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

type NominatimClient struct {
	baseURL    string
	userAgent  string
	language   string
	httpClient *http.Client
}

func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &NominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "go-hrportal/1.0",
		language:   "id",
		httpClient: &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (c *NominatimClient) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', 7, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', 7, 64))
	q.Set("zoom", "18")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	// Nominatim usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("reverse geocode: decode: %w", err)
	}
	if body.Error != "" || strings.TrimSpace(body.DisplayName) == "" {
		return "", ErrNoAddress
	}

	return strings.TrimSpace(body.DisplayName), nil
}

type nop struct{}

func (nop) Reverse(context.Context, float64, float64) (string, error) {
	return "", ErrNoAddress
}

// Nop is used when no geocoder URL is configured.
func Nop() Reverser {
	return nop{}
}
