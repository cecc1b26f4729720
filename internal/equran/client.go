package equran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/santridev/muslim-companion/internal/model"
)

const defaultBaseURL = "https://equran.id/api/v2"

// SurahCount is the fixed number of chapters the content API serves.
const SurahCount = 114

// Client communicates with the equran.id content API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL. Defaults to the public equran.id API.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new content API client with sensible defaults.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// ListSurah fetches the full 114-entry chapter summary list.
func (c *Client) ListSurah(ctx context.Context) ([]model.SurahSummary, error) {
	var resp envelope[[]surah]
	if err := c.get(ctx, c.BaseURL+"/surat", &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("content API error: code=%d message=%s", resp.Code, resp.Message)
	}

	out := make([]model.SurahSummary, 0, len(resp.Data))
	for _, s := range resp.Data {
		out = append(out, toSummary(s))
	}
	return out, nil
}

// GetSurah fetches one chapter with its ordered verses.
func (c *Client) GetSurah(ctx context.Context, number int) (*model.SurahDetail, error) {
	var resp envelope[surah]
	if err := c.get(ctx, fmt.Sprintf("%s/surat/%d", c.BaseURL, number), &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("content API error: code=%d message=%s", resp.Code, resp.Message)
	}

	detail := &model.SurahDetail{
		SurahSummary: toSummary(resp.Data),
		Ayahs:        make([]model.Ayah, 0, len(resp.Data.Ayat)),
	}
	for _, a := range resp.Data.Ayat {
		detail.Ayahs = append(detail.Ayahs, model.Ayah{
			Number:               a.NomorAyat,
			ArabicText:           a.TeksArab,
			LatinTransliteration: a.TeksLatin,
			Translation:          a.TeksIndonesia,
		})
	}
	return detail, nil
}

// GetTafsir fetches the per-ayah commentary for one chapter.
func (c *Client) GetTafsir(ctx context.Context, number int) (*model.SurahTafsir, error) {
	var resp envelope[tafsirSurah]
	if err := c.get(ctx, fmt.Sprintf("%s/tafsir/%d", c.BaseURL, number), &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("content API error: code=%d message=%s", resp.Code, resp.Message)
	}

	out := &model.SurahTafsir{
		SurahSummary: model.SurahSummary{
			Number:          resp.Data.Nomor,
			ArabicName:      resp.Data.Nama,
			LatinName:       resp.Data.NamaLatin,
			Meaning:         resp.Data.Arti,
			AyahCount:       resp.Data.JumlahAyat,
			RevelationPlace: revelationPlace(resp.Data.TempatTurun),
		},
		Entries: make([]model.TafsirEntry, 0, len(resp.Data.Tafsir)),
	}
	for _, t := range resp.Data.Tafsir {
		out.Entries = append(out.Entries, model.TafsirEntry{
			AyahNumber: t.Ayat,
			Commentary: t.Teks,
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode content API response: %w", err)
	}
	return nil
}

func toSummary(s surah) model.SurahSummary {
	return model.SurahSummary{
		Number:          s.Nomor,
		ArabicName:      s.Nama,
		LatinName:       s.NamaLatin,
		Meaning:         s.Arti,
		AyahCount:       s.JumlahAyat,
		RevelationPlace: revelationPlace(s.TempatTurun),
	}
}

// revelationPlace normalizes the API's Indonesian place labels.
func revelationPlace(tempatTurun string) string {
	switch tempatTurun {
	case "Mekah", "mekah":
		return model.RevelationMeccan
	case "Madinah", "madinah":
		return model.RevelationMedinan
	}
	return tempatTurun
}
