package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/santridev/muslim-companion/internal/model"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// Client communicates with the Al Adhan prayer times API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL. Defaults to the Al Adhan API.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new API client with sensible defaults.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Timings fetches the day's prayer times for the given date and coordinates
// using the given calculation method.
func (c *Client) Timings(ctx context.Context, date time.Time, coords model.Coordinates, method int) (*model.DailyPrayerTimes, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	params.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	if method >= 0 {
		params.Set("method", strconv.Itoa(method))
	}

	var resp timingsResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("timings API error: code=%d status=%s", resp.Code, resp.Status)
	}

	t := resp.Data.Timings
	return &model.DailyPrayerTimes{
		GregorianDate: resp.Data.Date.Gregorian.Date,
		HijriDate:     resp.Data.Date.Hijri.Date,
		Imsak:         cleanTime(t.Imsak),
		Fajr:          cleanTime(t.Fajr),
		Sunrise:       cleanTime(t.Sunrise),
		Dhuhr:         cleanTime(t.Dhuhr),
		Asr:           cleanTime(t.Asr),
		Maghrib:       cleanTime(t.Maghrib),
		Isha:          cleanTime(t.Isha),
		Midnight:      cleanTime(t.Midnight),
	}, nil
}

// GregorianToHijri converts a Gregorian date to the Islamic lunar calendar.
func (c *Client) GregorianToHijri(ctx context.Context, date time.Time) (*model.HijriDate, error) {
	endpoint := fmt.Sprintf("%s/gToH/%s", c.BaseURL, date.Format("02-01-2006"))

	var resp gToHResponse
	if err := c.get(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("gToH API error: code=%d status=%s", resp.Code, resp.Status)
	}

	h := resp.Data.Hijri
	day, err := strconv.Atoi(h.Day)
	if err != nil {
		return nil, fmt.Errorf("invalid hijri day %q: %w", h.Day, err)
	}
	year, err := strconv.Atoi(h.Year)
	if err != nil {
		return nil, fmt.Errorf("invalid hijri year %q: %w", h.Year, err)
	}

	return &model.HijriDate{
		Day:         day,
		Month:       h.Month.Number,
		Year:        year,
		MonthName:   h.Month.En,
		WeekdayName: h.Weekday.En,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, target any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}

// cleanTime strips a timezone suffix like " (WIB)" that the API sometimes
// appends to HH:MM values.
func cleanTime(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, " "); idx != -1 {
		s = s[:idx]
	}
	return s
}
