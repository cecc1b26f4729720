package packets

import "github.com/santridev/muslim-companion/internal/model"

// TimingsResponse bundles the prayer times page payload: the day's times,
// the derived next prayer, and the best-effort place name ("unknown" when
// reverse geocoding failed).
type TimingsResponse struct {
	PlaceName string                 `json:"place_name"`
	Timings   model.DailyPrayerTimes `json:"timings"`
	Next      model.NextPrayer       `json:"next"`
}

// CalendarResponse is the month grid for the calendar page.
type CalendarResponse struct {
	Year  int                     `json:"year"`
	Month int                     `json:"month"`
	Cells []model.CalendarDayCell `json:"cells"`
}

// SurahListResponse wraps the filtered chapter list with its total.
type SurahListResponse struct {
	Total  int                  `json:"total"`
	Surahs []model.SurahSummary `json:"surahs"`
}
