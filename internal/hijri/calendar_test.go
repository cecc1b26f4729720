package hijri

import (
	"testing"
	"time"

	"github.com/santridev/muslim-companion/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestBuildMonthGridLayout(t *testing.T) {
	tests := []struct {
		name         string
		year         int
		month        time.Month
		today        time.Time
		wantLeading  int
		wantDays     int
		wantTrailing int
	}{
		{
			// 1 Aug 2025 is a Friday, 31 Aug a Sunday.
			name:         "august 2025",
			year:         2025,
			month:        time.August,
			today:        date(2025, time.August, 5),
			wantLeading:  5,
			wantDays:     31,
			wantTrailing: 6,
		},
		{
			// 1 Jun 2025 is a Sunday, 30 Jun a Monday: no leading filler.
			name:         "june 2025 starts on sunday",
			year:         2025,
			month:        time.June,
			today:        date(2025, time.June, 1),
			wantLeading:  0,
			wantDays:     30,
			wantTrailing: 5,
		},
		{
			// February 2026 starts on Sunday and has exactly 28 days:
			// a perfect 4-week grid with no filler at all.
			name:         "february 2026 exact weeks",
			year:         2026,
			month:        time.February,
			today:        date(2025, time.August, 5),
			wantLeading:  0,
			wantDays:     28,
			wantTrailing: 0,
		},
		{
			// Leap February.
			name:         "february 2024 leap",
			year:         2024,
			month:        time.February,
			today:        date(2024, time.February, 29),
			wantLeading:  4,
			wantDays:     29,
			wantTrailing: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := BuildMonthGrid(tt.year, tt.month, tt.today)

			if len(cells)%7 != 0 {
				t.Errorf("grid length %d is not a multiple of 7", len(cells))
			}
			if want := tt.wantLeading + tt.wantDays + tt.wantTrailing; len(cells) != want {
				t.Fatalf("grid length = %d, want %d", len(cells), want)
			}

			for i := 0; i < tt.wantLeading; i++ {
				if cells[i].BelongsToDisplayedMonth {
					t.Errorf("leading cell %d marked as displayed month", i)
				}
			}
			for i := 0; i < tt.wantTrailing; i++ {
				idx := len(cells) - 1 - i
				if cells[idx].BelongsToDisplayedMonth {
					t.Errorf("trailing cell %d marked as displayed month", idx)
				}
			}

			seen := make(map[int]int)
			for _, c := range cells {
				if c.BelongsToDisplayedMonth {
					seen[c.DayOfMonth]++
				}
			}
			for day := 1; day <= tt.wantDays; day++ {
				if seen[day] != 1 {
					t.Errorf("day %d appears %d times in displayed month, want 1", day, seen[day])
				}
			}
		})
	}
}

func TestBuildMonthGridToday(t *testing.T) {
	today := date(2025, time.August, 5)

	cells := BuildMonthGrid(2025, time.August, today)
	if got := countToday(cells); got != 1 {
		t.Fatalf("isToday count = %d, want 1", got)
	}
	for _, c := range cells {
		if c.IsToday && (c.DayOfMonth != 5 || !c.BelongsToDisplayedMonth) {
			t.Errorf("wrong cell flagged as today: %+v", c)
		}
	}

	// Browsing a different month never flags today, even when the same
	// day-of-month exists there.
	cells = BuildMonthGrid(2025, time.September, today)
	if got := countToday(cells); got != 0 {
		t.Errorf("isToday count in other month = %d, want 0", got)
	}

	// Same month of a different year doesn't count either.
	cells = BuildMonthGrid(2024, time.August, today)
	if got := countToday(cells); got != 0 {
		t.Errorf("isToday count in other year = %d, want 0", got)
	}
}

func TestBuildMonthGridLeadingDaysComeFromPreviousMonth(t *testing.T) {
	// August 2025: leading cells are 27..31 July.
	cells := BuildMonthGrid(2025, time.August, date(2025, time.August, 5))

	want := []int{27, 28, 29, 30, 31}
	for i, day := range want {
		if cells[i].DayOfMonth != day {
			t.Errorf("leading cell %d = %d, want %d", i, cells[i].DayOfMonth, day)
		}
	}

	// Trailing cells restart at 1.
	last := cells[len(cells)-1]
	if last.DayOfMonth != 6 || last.BelongsToDisplayedMonth {
		t.Errorf("last trailing cell = %+v, want day 6 of next month", last)
	}
}

func countToday(cells []model.CalendarDayCell) int {
	n := 0
	for _, c := range cells {
		if c.IsToday {
			n++
		}
	}
	return n
}
