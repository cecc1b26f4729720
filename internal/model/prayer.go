package model

// DailyPrayerTimes holds one day's canonical times for one coordinate pair.
// All times are 24-hour "HH:MM" strings as returned by the timings service.
type DailyPrayerTimes struct {
	GregorianDate string `json:"gregorian_date"`
	HijriDate     string `json:"hijri_date"`
	Imsak         string `json:"imsak"`
	Fajr          string `json:"fajr"`
	Sunrise       string `json:"sunrise"`
	Dhuhr         string `json:"dhuhr"`
	Asr           string `json:"asr"`
	Maghrib       string `json:"maghrib"`
	Isha          string `json:"isha"`
	Midnight      string `json:"midnight"`
}

// NextPrayer identifies the upcoming obligatory prayer for the current
// wall-clock time.
type NextPrayer struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// HijriDate is a Gregorian date converted to the Islamic lunar calendar.
type HijriDate struct {
	Day         int    `json:"day"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	MonthName   string `json:"month_name"`
	WeekdayName string `json:"weekday_name"`
}
