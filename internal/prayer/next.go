package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/santridev/muslim-companion/internal/model"
)

// Next scans the five obligatory prayers in day order and returns the first
// whose time strictly exceeds the current wall-clock minute. If every prayer
// has passed, it wraps to Fajr: the value belongs to the next day but keeps
// the same-day label.
func Next(times *model.DailyPrayerTimes, now time.Time) model.NextPrayer {
	nowMinute := now.Hour()*60 + now.Minute()

	ordered := []model.NextPrayer{
		{Name: "Fajr", Time: times.Fajr},
		{Name: "Dhuhr", Time: times.Dhuhr},
		{Name: "Asr", Time: times.Asr},
		{Name: "Maghrib", Time: times.Maghrib},
		{Name: "Isha", Time: times.Isha},
	}

	for _, p := range ordered {
		m, err := MinuteOfDay(p.Time)
		if err != nil {
			continue
		}
		if m > nowMinute {
			return p
		}
	}
	return ordered[0]
}

// MinuteOfDay parses a 24-hour "HH:MM" string into minutes since midnight.
func MinuteOfDay(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", hhmm, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", hhmm, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", hhmm)
	}
	return hour*60 + minute, nil
}
