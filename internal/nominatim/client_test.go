package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/santridev/muslim-companion/internal/model"
)

const reverseFixture = `{
	"display_name": "Monas, Gambir, Jakarta Pusat, Daerah Khusus Ibukota Jakarta, Indonesia",
	"address": {
		"city": "Jakarta Pusat",
		"state": "Daerah Khusus Ibukota Jakarta",
		"country": "Indonesia"
	}
}`

func TestReverse(t *testing.T) {
	var gotRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reverseFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, language.Indonesian)
	result, err := client.Reverse(context.Background(), model.Coordinates{Latitude: -6.1754, Longitude: 106.8272})
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}

	if gotRequest.URL.Path != "/reverse" {
		t.Errorf("path = %s, want /reverse", gotRequest.URL.Path)
	}
	query := gotRequest.URL.Query()
	if query.Get("format") != "jsonv2" {
		t.Errorf("format = %q, want jsonv2", query.Get("format"))
	}
	if query.Get("accept-language") != "id" {
		t.Errorf("accept-language = %q, want id", query.Get("accept-language"))
	}
	if !strings.HasPrefix(query.Get("lat"), "-6.1754") {
		t.Errorf("lat = %q", query.Get("lat"))
	}
	if ua := gotRequest.Header.Get("User-Agent"); !strings.Contains(ua, "muslim-companion") {
		t.Errorf("User-Agent = %q, want identifying agent", ua)
	}

	if result.Address.City != "Jakarta Pusat" {
		t.Errorf("city = %q, want Jakarta Pusat", result.Address.City)
	}
	if !strings.HasPrefix(result.DisplayName, "Monas,") {
		t.Errorf("display name = %q", result.DisplayName)
	}
}

func TestReverseHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, language.Indonesian)
	if _, err := client.Reverse(context.Background(), model.Coordinates{}); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestReverseMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, language.Indonesian)
	if _, err := client.Reverse(context.Background(), model.Coordinates{}); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
