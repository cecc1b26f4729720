package equran

// envelope is the top-level response wrapper used by every equran.id endpoint.
type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// surah mirrors one chapter object. The list and detail endpoints share the
// same base fields; detail additionally carries the verses.
type surah struct {
	Nomor       int    `json:"nomor"`
	Nama        string `json:"nama"`
	NamaLatin   string `json:"namaLatin"`
	JumlahAyat  int    `json:"jumlahAyat"`
	TempatTurun string `json:"tempatTurun"`
	Arti        string `json:"arti"`
	Deskripsi   string `json:"deskripsi"`
	Ayat        []ayat `json:"ayat,omitempty"`
}

// ayat mirrors one verse object from the detail endpoint.
type ayat struct {
	NomorAyat     int    `json:"nomorAyat"`
	TeksArab      string `json:"teksArab"`
	TeksLatin     string `json:"teksLatin"`
	TeksIndonesia string `json:"teksIndonesia"`
}

// tafsirSurah mirrors the tafsir endpoint payload: chapter fields plus
// per-ayah commentary.
type tafsirSurah struct {
	Nomor       int           `json:"nomor"`
	Nama        string        `json:"nama"`
	NamaLatin   string        `json:"namaLatin"`
	JumlahAyat  int           `json:"jumlahAyat"`
	TempatTurun string        `json:"tempatTurun"`
	Arti        string        `json:"arti"`
	Tafsir      []tafsirEntry `json:"tafsir"`
}

// tafsirEntry is one commentary block keyed by verse number.
type tafsirEntry struct {
	Ayat int    `json:"ayat"`
	Teks string `json:"teks"`
}
