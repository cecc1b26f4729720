// Package hijri holds the calendar page logic: a pure month-grid builder
// over Gregorian calendar arithmetic. Hijri date lookups for the header line
// go through the conversion API and live in the prayer service.
package hijri

import (
	"time"

	"github.com/santridev/muslim-companion/internal/model"
)

// BuildMonthGrid lays out a Sunday-first 7-column grid for the given month.
// Leading cells come from the previous month (one per weekday before day 1),
// trailing cells from the next month complete the final week. Only cells of
// the displayed month are marked as belonging to it, and at most one cell is
// flagged as today. Deterministic in (year, month, today); no I/O.
func BuildMonthGrid(year int, month time.Month, today time.Time) []model.CalendarDayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	leading := int(first.Weekday()) // Sunday == 0
	trailing := 6 - int(last.Weekday())

	cells := make([]model.CalendarDayCell, 0, leading+daysInMonth+trailing)

	prevLast := first.AddDate(0, 0, -1).Day()
	for i := 0; i < leading; i++ {
		cells = append(cells, model.CalendarDayCell{
			DayOfMonth: prevLast - leading + 1 + i,
		})
	}

	sameMonth := today.Year() == year && today.Month() == month
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, model.CalendarDayCell{
			DayOfMonth:              day,
			BelongsToDisplayedMonth: true,
			IsToday:                 sameMonth && today.Day() == day,
		})
	}

	for day := 1; day <= trailing; day++ {
		cells = append(cells, model.CalendarDayCell{DayOfMonth: day})
	}

	return cells
}
