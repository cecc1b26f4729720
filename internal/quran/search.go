package quran

import (
	"strconv"
	"strings"

	"github.com/santridev/muslim-companion/internal/model"
)

// Filter returns the chapters matching the query. Matching is a
// case-insensitive substring test against the transliterated name, the
// translated meaning, and the decimal chapter number. An empty query returns
// the input unchanged. The list never exceeds 114 entries, so a linear scan
// on every keystroke is fine.
func Filter(list []model.SurahSummary, query string) []model.SurahSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	out := make([]model.SurahSummary, 0, len(list))
	for _, s := range list {
		if strings.Contains(strings.ToLower(s.LatinName), q) ||
			strings.Contains(strings.ToLower(s.Meaning), q) ||
			strings.Contains(strconv.Itoa(s.Number), q) {
			out = append(out, s)
		}
	}
	return out
}
