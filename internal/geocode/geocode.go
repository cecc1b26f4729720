package geocode

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/model"
	"github.com/santridev/muslim-companion/internal/nominatim"
)

// Unknown is the sentinel place name returned when reverse geocoding fails
// or yields nothing usable. Place names are decorative and must never block
// prayer time display.
const Unknown = "unknown"

// coordPrecision quantizes cache keys to 0.01 degrees (~1.1 km).
const coordPrecision = 1e-2

// Reverser resolves coordinates to a structured address.
type Reverser interface {
	Reverse(ctx context.Context, coords model.Coordinates) (*nominatim.ReverseResult, error)
}

type cacheKey struct {
	latQ int32
	lonQ int32
}

// Service wraps a reverse geocoder with best-effort semantics and a small
// in-process cache keyed by quantized coordinates.
type Service struct {
	reverser Reverser

	mu    sync.RWMutex
	cache map[cacheKey]string
}

// NewService creates a geocoding service around the given reverse geocoder.
func NewService(reverser Reverser) *Service {
	return &Service{
		reverser: reverser,
		cache:    make(map[cacheKey]string),
	}
}

// PlaceName resolves coordinates to the most specific available
// administrative name. It never returns an error: any transport or parse
// failure degrades to the Unknown sentinel.
func (s *Service) PlaceName(ctx context.Context, coords model.Coordinates) string {
	key := newKey(coords)

	s.mu.RLock()
	name, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return name
	}

	result, err := s.reverser.Reverse(ctx, coords)
	if err != nil {
		log.Warn().Err(err).
			Float64("latitude", coords.Latitude).
			Float64("longitude", coords.Longitude).
			Msg("reverse geocoding failed")
		return Unknown
	}

	name = ExtractPlaceName(result)

	s.mu.Lock()
	s.cache[key] = name
	s.mu.Unlock()

	return name
}

// ExtractPlaceName picks the most specific administrative name from a
// reverse lookup. Preference order: city > town > village > county > state >
// first comma-delimited segment of the display name > Unknown.
func ExtractPlaceName(result *nominatim.ReverseResult) string {
	addr := result.Address
	for _, candidate := range []string{addr.City, addr.Town, addr.Village, addr.County, addr.State} {
		if candidate != "" {
			return candidate
		}
	}
	if result.DisplayName != "" {
		segment := strings.TrimSpace(strings.SplitN(result.DisplayName, ",", 2)[0])
		if segment != "" {
			return segment
		}
	}
	return Unknown
}

func newKey(coords model.Coordinates) cacheKey {
	return cacheKey{
		latQ: int32(math.Round(coords.Latitude / coordPrecision)),
		lonQ: int32(math.Round(coords.Longitude / coordPrecision)),
	}
}
