package prayer

import (
	"testing"
	"time"

	"github.com/santridev/muslim-companion/internal/model"
)

var jakartaTimes = model.DailyPrayerTimes{
	Imsak:    "04:27",
	Fajr:     "04:37",
	Sunrise:  "05:58",
	Dhuhr:    "11:54",
	Asr:      "15:14",
	Maghrib:  "17:48",
	Isha:     "18:59",
	Midnight: "23:54",
}

func at(hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		now  string
		want model.NextPrayer
	}{
		{"before fajr", "03:00", model.NextPrayer{Name: "Fajr", Time: "04:37"}},
		{"between fajr and dhuhr", "09:30", model.NextPrayer{Name: "Dhuhr", Time: "11:54"}},
		{"between dhuhr and asr", "13:00", model.NextPrayer{Name: "Asr", Time: "15:14"}},
		{"between asr and maghrib", "16:00", model.NextPrayer{Name: "Maghrib", Time: "17:48"}},
		{"between maghrib and isha", "18:00", model.NextPrayer{Name: "Isha", Time: "18:59"}},
		{"after isha wraps to fajr", "22:00", model.NextPrayer{Name: "Fajr", Time: "04:37"}},
		// Strict comparison: at the exact minute of a prayer, it has
		// started, so the following one is next.
		{"exactly at dhuhr", "11:54", model.NextPrayer{Name: "Asr", Time: "15:14"}},
		{"exactly at isha", "18:59", model.NextPrayer{Name: "Fajr", Time: "04:37"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(&jakartaTimes, at(tt.now))
			if got != tt.want {
				t.Errorf("Next(%s) = %+v, want %+v", tt.now, got, tt.want)
			}
		})
	}
}

func TestNextSkipsUnparseableEntries(t *testing.T) {
	times := jakartaTimes
	times.Dhuhr = "garbage"

	got := Next(&times, at("09:30"))
	if got.Name != "Asr" {
		t.Errorf("Next with broken dhuhr = %+v, want Asr", got)
	}
}

func TestObligatoryOrderIsStrictlyIncreasing(t *testing.T) {
	// Sanity check on the Jakarta-like fixture: the five obligatory prayers
	// must be strictly increasing in minute-of-day order.
	ordered := []string{jakartaTimes.Fajr, jakartaTimes.Dhuhr, jakartaTimes.Asr, jakartaTimes.Maghrib, jakartaTimes.Isha}
	prev := -1
	for i, raw := range ordered {
		m, err := MinuteOfDay(raw)
		if err != nil {
			t.Fatalf("MinuteOfDay(%q): %v", raw, err)
		}
		if m <= prev {
			t.Errorf("prayer %d (%q) is not after its predecessor", i, raw)
		}
		prev = m
	}
}

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"04:37", 277, false},
		{"23:59", 1439, false},
		{" 11:54 ", 714, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1254", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := MinuteOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MinuteOfDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("MinuteOfDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
