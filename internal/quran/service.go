package quran

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/cache"
	"github.com/santridev/muslim-companion/internal/equran"
	"github.com/santridev/muslim-companion/internal/model"
)

// ErrChapterNotFound is returned for chapter numbers outside 1..114.
var ErrChapterNotFound = errors.New("chapter not found")

const (
	listKey      = "quran:surah:list"
	detailKeyFmt = "quran:surah:%d"
	tafsirKeyFmt = "quran:tafsir:%d"
)

// ContentClient is the upstream content API surface the service depends on.
type ContentClient interface {
	ListSurah(ctx context.Context) ([]model.SurahSummary, error)
	GetSurah(ctx context.Context, number int) (*model.SurahDetail, error)
	GetTafsir(ctx context.Context, number int) (*model.SurahTafsir, error)
}

// Service serves chapter data from cache when possible, falling back to the
// content API. The cache is an optimization, never a correctness dependency:
// a broken cache degrades to direct upstream calls.
type Service struct {
	client    ContentClient
	cache     *cache.Cache
	listTTL   time.Duration
	detailTTL time.Duration
}

// NewService creates the chapter/commentary service.
func NewService(client ContentClient, c *cache.Cache, listTTL, detailTTL time.Duration) *Service {
	return &Service{
		client:    client,
		cache:     c,
		listTTL:   listTTL,
		detailTTL: detailTTL,
	}
}

// List returns the 114-entry summary list, optionally filtered by query.
// The full list is cached once per session window; filtering happens after
// the cache read so every query variant shares one upstream fetch.
func (s *Service) List(ctx context.Context, query string) ([]model.SurahSummary, error) {
	var list []model.SurahSummary
	err := s.cache.GetJSON(ctx, listKey, &list)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Warn().Err(err).Msg("surah list cache read failed")
		}
		list, err = s.client.ListSurah(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.SetJSON(ctx, listKey, list, s.listTTL)
	}
	return Filter(list, query), nil
}

// Detail returns one chapter with its verses, cached per chapter number so
// revisiting a chapter does not refetch.
func (s *Service) Detail(ctx context.Context, number int) (*model.SurahDetail, error) {
	if number < 1 || number > equran.SurahCount {
		return nil, ErrChapterNotFound
	}

	key := fmt.Sprintf(detailKeyFmt, number)
	var detail model.SurahDetail
	if err := s.cache.GetJSON(ctx, key, &detail); err == nil {
		return &detail, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Int("number", number).Msg("surah detail cache read failed")
	}

	fetched, err := s.client.GetSurah(ctx, number)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, fetched, s.detailTTL)
	return fetched, nil
}

// Tafsir returns the per-ayah commentary for one chapter, cached like Detail.
func (s *Service) Tafsir(ctx context.Context, number int) (*model.SurahTafsir, error) {
	if number < 1 || number > equran.SurahCount {
		return nil, ErrChapterNotFound
	}

	key := fmt.Sprintf(tafsirKeyFmt, number)
	var tafsir model.SurahTafsir
	if err := s.cache.GetJSON(ctx, key, &tafsir); err == nil {
		return &tafsir, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Int("number", number).Msg("tafsir cache read failed")
	}

	fetched, err := s.client.GetTafsir(ctx, number)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, key, fetched, s.detailTTL)
	return fetched, nil
}
