package aladhan

// timingsResponse is the top-level /timings response.
type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings Timings  `json:"timings"`
		Date    dateInfo `json:"date"`
	} `json:"data"`
}

// Timings contains prayer and event times as HH:MM strings. The API may
// append a timezone suffix like " (WIB)" which is stripped during parsing.
type Timings struct {
	Imsak    string `json:"Imsak"`
	Fajr     string `json:"Fajr"`
	Sunrise  string `json:"Sunrise"`
	Dhuhr    string `json:"Dhuhr"`
	Asr      string `json:"Asr"`
	Maghrib  string `json:"Maghrib"`
	Isha     string `json:"Isha"`
	Midnight string `json:"Midnight"`
}

// dateInfo carries the paired Gregorian/Hijri date strings for the day.
type dateInfo struct {
	Readable string `json:"readable"`

	Gregorian struct {
		Date string `json:"date"` // DD-MM-YYYY
	} `json:"gregorian"`
	Hijri hijri `json:"hijri"`
}

// hijri mirrors the Hijri date object shared by /timings and /gToH.
type hijri struct {
	Date  string `json:"date"` // DD-MM-YYYY
	Day   string `json:"day"`
	Month struct {
		Number int    `json:"number"`
		En     string `json:"en"`
		Ar     string `json:"ar"`
	} `json:"month"`
	Year    string `json:"year"`
	Weekday struct {
		En string `json:"en"`
		Ar string `json:"ar"`
	} `json:"weekday"`
	Designation struct {
		Abbreviated string `json:"abbreviated"`
	} `json:"designation"`
}

// gToHResponse is the top-level /gToH conversion response.
type gToHResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Hijri hijri `json:"hijri"`
	} `json:"data"`
}
