package endpoints

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/http/api"
	"github.com/santridev/muslim-companion/internal/http/api/packets"
	"github.com/santridev/muslim-companion/internal/model"
)

// PrayerProvider serves daily timings and Hijri conversions.
type PrayerProvider interface {
	DailyTimes(ctx context.Context, coords model.Coordinates) (*model.DailyPrayerTimes, model.NextPrayer, error)
	TodayHijri(ctx context.Context) (*model.HijriDate, error)
}

// PlaceNamer resolves coordinates to a display name, degrading to a sentinel
// instead of failing.
type PlaceNamer interface {
	PlaceName(ctx context.Context, coords model.Coordinates) string
}

type prayerController struct {
	prayers PrayerProvider
	places  PlaceNamer
}

// PrayerModule mounts the prayer times and Hijri date endpoints.
func PrayerModule(prayers PrayerProvider, places PlaceNamer) api.Module {
	ctl := &prayerController{prayers: prayers, places: places}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer/timings", ctl.getTimings)
		c.GET("/hijri/today", ctl.getTodayHijri)
	})
}

// GET /api/prayer/timings?latitude=&longitude=
func (p *prayerController) getTimings(ctx *gin.Context) (any, *api.Error) {
	coords, apiErr := parseCoordinates(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	reqCtx := ctx.Request.Context()

	// The place name lookup is decorative: fire it alongside the timings
	// fetch and never let it fail the response.
	placeCh := make(chan string, 1)
	go func() {
		placeCh <- p.places.PlaceName(reqCtx, coords)
	}()

	times, next, err := p.prayers.DailyTimes(reqCtx, coords)
	if err != nil {
		log.Error().Err(err).
			Float64("latitude", coords.Latitude).
			Float64("longitude", coords.Longitude).
			Msg("failed to load prayer times")
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "failed to load prayer times"}
	}

	return packets.TimingsResponse{
		PlaceName: <-placeCh,
		Timings:   *times,
		Next:      next,
	}, nil
}

// GET /api/hijri/today
func (p *prayerController) getTodayHijri(ctx *gin.Context) (any, *api.Error) {
	hijriDate, err := p.prayers.TodayHijri(ctx.Request.Context())
	if err != nil {
		log.Warn().Err(err).Msg("failed to convert today to hijri")
		return nil, &api.Error{Code: http.StatusBadGateway, Message: "failed to load hijri date"}
	}
	return hijriDate, nil
}

func parseCoordinates(ctx *gin.Context) (model.Coordinates, *api.Error) {
	lat, err := strconv.ParseFloat(ctx.Query("latitude"), 64)
	if err != nil {
		return model.Coordinates{}, &api.Error{Code: http.StatusBadRequest, Message: "invalid latitude"}
	}
	lon, err := strconv.ParseFloat(ctx.Query("longitude"), 64)
	if err != nil {
		return model.Coordinates{}, &api.Error{Code: http.StatusBadRequest, Message: "invalid longitude"}
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return model.Coordinates{}, &api.Error{Code: http.StatusBadRequest, Message: "coordinates out of range"}
	}
	return model.Coordinates{Latitude: lat, Longitude: lon}, nil
}
