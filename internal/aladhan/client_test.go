package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/santridev/muslim-companion/internal/model"
	"github.com/santridev/muslim-companion/internal/prayer"
)

// Jakarta-like timings for 05-08-2025, method 20.
const timingsFixture = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Imsak": "04:27 (WIB)",
			"Fajr": "04:37 (WIB)",
			"Sunrise": "05:58 (WIB)",
			"Dhuhr": "11:54 (WIB)",
			"Asr": "15:14 (WIB)",
			"Maghrib": "17:48 (WIB)",
			"Isha": "18:59 (WIB)",
			"Midnight": "23:54 (WIB)"
		},
		"date": {
			"readable": "05 Aug 2025",
			"gregorian": {"date": "05-08-2025"},
			"hijri": {"date": "11-02-1447"}
		}
	}
}`

const gToHFixture = `{
	"code": 200,
	"status": "OK",
	"data": {
		"hijri": {
			"date": "11-02-1447",
			"day": "11",
			"month": {"number": 2, "en": "Ṣafar"},
			"year": "1447",
			"weekday": {"en": "Al Thulaathaa"}
		}
	}
}`

func jakarta() model.Coordinates {
	return model.Coordinates{Latitude: -6.2, Longitude: 106.8}
}

func TestTimings(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/timings/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Path != "/timings/05-08-2025" {
			t.Errorf("date path = %s, want /timings/05-08-2025", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(timingsFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	date := time.Date(2025, time.August, 5, 10, 0, 0, 0, time.UTC)

	times, err := client.Timings(context.Background(), date, jakarta(), 20)
	if err != nil {
		t.Fatalf("Timings: %v", err)
	}

	if !strings.Contains(gotQuery, "method=20") {
		t.Errorf("query %q missing method=20", gotQuery)
	}
	if !strings.Contains(gotQuery, "latitude=-6.2") {
		t.Errorf("query %q missing latitude", gotQuery)
	}

	// Timezone suffixes are stripped.
	if times.Fajr != "04:37" {
		t.Errorf("Fajr = %q, want 04:37", times.Fajr)
	}
	if times.Midnight != "23:54" {
		t.Errorf("Midnight = %q, want 23:54", times.Midnight)
	}
	if times.GregorianDate != "05-08-2025" || times.HijriDate != "11-02-1447" {
		t.Errorf("dates = %q / %q", times.GregorianDate, times.HijriDate)
	}

	// The five obligatory prayers must be strictly increasing in
	// minute-of-day order for a plausible coordinate/date pair.
	ordered := []string{times.Fajr, times.Dhuhr, times.Asr, times.Maghrib, times.Isha}
	prev := -1
	for _, raw := range ordered {
		m, err := prayer.MinuteOfDay(raw)
		if err != nil {
			t.Fatalf("MinuteOfDay(%q): %v", raw, err)
		}
		if m <= prev {
			t.Errorf("prayer time %q is not after its predecessor", raw)
		}
		prev = m
	}
}

func TestTimingsOmitsNegativeMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "method=") {
			t.Errorf("query %q should not carry a method", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(timingsFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Timings(context.Background(), time.Now(), jakarta(), -1); err != nil {
		t.Fatalf("Timings: %v", err)
	}
}

func TestGregorianToHijri(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gToH/05-08-2025" {
			t.Errorf("path = %s, want /gToH/05-08-2025", r.URL.Path)
		}
		_, _ = w.Write([]byte(gToHFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	date := time.Date(2025, time.August, 5, 10, 0, 0, 0, time.UTC)

	hijriDate, err := client.GregorianToHijri(context.Background(), date)
	if err != nil {
		t.Fatalf("GregorianToHijri: %v", err)
	}

	want := model.HijriDate{Day: 11, Month: 2, Year: 1447, MonthName: "Ṣafar", WeekdayName: "Al Thulaathaa"}
	if *hijriDate != want {
		t.Errorf("GregorianToHijri = %+v, want %+v", *hijriDate, want)
	}
}

func TestEmbeddedErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 400, "status": "Invalid date", "data": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Timings(context.Background(), time.Now(), jakarta(), 20); err == nil {
		t.Fatal("expected error for embedded non-200 code")
	}
	if _, err := client.GregorianToHijri(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error for embedded non-200 code")
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Timings(context.Background(), time.Now(), jakarta(), 20); err == nil {
		t.Fatal("expected error for non-200 HTTP status")
	}
}

func TestCleanTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"04:37", "04:37"},
		{"04:37 (WIB)", "04:37"},
		{"  04:37 (BST)  ", "04:37"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanTime(tt.input); got != tt.want {
			t.Errorf("cleanTime(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
