package model

// CalendarDayCell is one cell of a 7-column month grid. Filler cells from
// the adjacent months carry BelongsToDisplayedMonth=false.
type CalendarDayCell struct {
	DayOfMonth              int  `json:"day_of_month"`
	BelongsToDisplayedMonth bool `json:"belongs_to_displayed_month"`
	IsToday                 bool `json:"is_today"`
}
