package model

// Revelation place values as exposed by the content API.
const (
	RevelationMeccan  = "Meccan"
	RevelationMedinan = "Medinan"
)

// SurahSummary is one entry of the fixed 114-chapter reference list.
type SurahSummary struct {
	Number          int    `json:"number"`
	ArabicName      string `json:"arabic_name"`
	LatinName       string `json:"latin_name"`
	Meaning         string `json:"meaning"`
	AyahCount       int    `json:"ayah_count"`
	RevelationPlace string `json:"revelation_place"`
}

// Ayah is a single verse with its transliteration and translation.
type Ayah struct {
	Number               int    `json:"number"`
	ArabicText           string `json:"arabic_text"`
	LatinTransliteration string `json:"latin_transliteration"`
	Translation          string `json:"translation"`
}

// SurahDetail is a chapter summary plus its ordered verses.
type SurahDetail struct {
	SurahSummary
	Ayahs []Ayah `json:"ayahs"`
}

// TafsirEntry is per-ayah scholarly commentary for one chapter.
type TafsirEntry struct {
	AyahNumber int    `json:"ayah_number"`
	Commentary string `json:"commentary"`
}

// SurahTafsir bundles a chapter summary with its commentary entries.
type SurahTafsir struct {
	SurahSummary
	Entries []TafsirEntry `json:"entries"`
}
