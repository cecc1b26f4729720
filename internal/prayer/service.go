package prayer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/cache"
	"github.com/santridev/muslim-companion/internal/model"
)

// KeyPrefix groups every cached prayer entry so the daily rollover can drop
// them with one prefix scan.
const KeyPrefix = "prayer:"

// coordPrecision quantizes cache keys to 0.01 degrees (~1.1 km). Timings for
// two points inside the same bucket are indistinguishable on an HH:MM scale.
const coordPrecision = 1e-2

// TimingsClient is the upstream timings/conversion API surface the service
// depends on.
type TimingsClient interface {
	Timings(ctx context.Context, date time.Time, coords model.Coordinates, method int) (*model.DailyPrayerTimes, error)
	GregorianToHijri(ctx context.Context, date time.Time) (*model.HijriDate, error)
}

// Service fetches daily prayer times and Hijri dates, caching per day.
// Timings are scoped to exactly one calendar day and one coordinate bucket;
// the refresh job invalidates them at local midnight.
type Service struct {
	client TimingsClient
	cache  *cache.Cache
	method int
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates the prayer time service with the configured calculation
// method.
func NewService(client TimingsClient, c *cache.Cache, method int, ttl time.Duration) *Service {
	return &Service{
		client: client,
		cache:  c,
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}
}

// DailyTimes returns today's times for the given coordinates plus the next
// upcoming obligatory prayer.
func (s *Service) DailyTimes(ctx context.Context, coords model.Coordinates) (*model.DailyPrayerTimes, model.NextPrayer, error) {
	now := s.now()
	key := timingsKey(now, coords, s.method)

	var times model.DailyPrayerTimes
	err := s.cache.GetJSON(ctx, key, &times)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Warn().Err(err).Str("key", key).Msg("timings cache read failed")
		}
		fetched, err := s.client.Timings(ctx, now, coords, s.method)
		if err != nil {
			return nil, model.NextPrayer{}, err
		}
		times = *fetched
		s.cache.SetJSON(ctx, key, times, s.ttl)
	}

	return &times, Next(&times, now), nil
}

// TodayHijri converts today's Gregorian date. Best-effort tier: callers omit
// the Hijri line on failure rather than blocking sibling content.
func (s *Service) TodayHijri(ctx context.Context) (*model.HijriDate, error) {
	return s.client.GregorianToHijri(ctx, s.now())
}

func timingsKey(date time.Time, coords model.Coordinates, method int) string {
	latQ := int32(math.Round(coords.Latitude / coordPrecision))
	lonQ := int32(math.Round(coords.Longitude / coordPrecision))
	return fmt.Sprintf("%stimings:%s:%d:%d:%d", KeyPrefix, date.Format("2006-01-02"), latQ, lonQ, method)
}
