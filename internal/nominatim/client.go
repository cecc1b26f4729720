package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/text/language"

	"github.com/santridev/muslim-companion/internal/model"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "muslim-companion/1.0 (+https://github.com/santridev/muslim-companion)" // Required by Nominatim ToS
)

// ReverseResult is the subset of the jsonv2 reverse geocoding response the
// application consumes.
type ReverseResult struct {
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

// Address holds the structured administrative fields of a reverse lookup.
type Address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	County  string `json:"county"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Client communicates with a Nominatim reverse geocoding endpoint.
type Client struct {
	httpClient *http.Client
	lang       language.Tag
	// BaseURL is the API base URL. Defaults to the public OSM instance.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a reverse geocoding client. Results are localized to the
// given language.
func NewClient(baseURL string, lang language.Tag) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		lang:       lang,
		BaseURL:    baseURL,
	}
}

// Reverse resolves coordinates to a structured address.
func (c *Client) Reverse(ctx context.Context, coords model.Coordinates) (*ReverseResult, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", fmt.Sprintf("%f", coords.Latitude))
	params.Set("lon", fmt.Sprintf("%f", coords.Longitude))
	params.Set("accept-language", c.lang.String())

	reqURL := fmt.Sprintf("%s/reverse?%s", c.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim API returned status %d", resp.StatusCode)
	}

	var result ReverseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &result, nil
}
