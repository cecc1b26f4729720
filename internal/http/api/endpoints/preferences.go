package endpoints

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/http/api"
	"github.com/santridev/muslim-companion/internal/http/api/packets"
	"github.com/santridev/muslim-companion/internal/http/middleware"
	"github.com/santridev/muslim-companion/internal/model"
	"github.com/santridev/muslim-companion/internal/prefs"
)

// PreferenceHub reads, writes, and broadcasts device preferences.
type PreferenceHub interface {
	Get(ctx context.Context, deviceID string) (model.Preferences, error)
	Update(ctx context.Context, p model.Preferences) (model.Preferences, error)
	Subscribe(deviceID string) (<-chan prefs.Event, func())
}

type preferencesController struct {
	hub PreferenceHub
}

// PreferencesModule mounts the device preference endpoints, including the
// change stream that keeps concurrently open views consistent.
func PreferencesModule(hub PreferenceHub) api.Module {
	ctl := &preferencesController{hub: hub}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/preferences", ctl.getPreferences)
		c.PUT("/preferences", ctl.updatePreferences)
		c.StreamGET("/preferences/watch", ctl.watchPreferences)
	})
}

// GET /api/preferences
func (p *preferencesController) getPreferences(ctx *gin.Context) (any, *api.Error) {
	deviceID, ok := middleware.GetDeviceID(ctx)
	if !ok {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "missing device id"}
	}

	current, err := p.hub.Get(ctx.Request.Context(), deviceID)
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to load preferences")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "failed to load preferences"}
	}
	return current, nil
}

// PUT /api/preferences
func (p *preferencesController) updatePreferences(ctx *gin.Context) (any, *api.Error) {
	deviceID, ok := middleware.GetDeviceID(ctx)
	if !ok {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "missing device id"}
	}

	var request packets.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid preferences payload"}
	}
	if !model.ValidFontSize(request.FontSize) {
		return nil, &api.Error{Code: http.StatusBadRequest, Message: "invalid font size"}
	}

	saved, err := p.hub.Update(ctx.Request.Context(), model.Preferences{
		DeviceID:             deviceID,
		DarkMode:             *request.DarkMode,
		NotificationsEnabled: *request.NotificationsEnabled,
		AdhanSoundEnabled:    *request.AdhanSoundEnabled,
		FontSize:             request.FontSize,
	})
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("failed to save preferences")
		return nil, &api.Error{Code: http.StatusInternalServerError, Message: "failed to save preferences"}
	}
	return saved, nil
}

// GET /api/preferences/watch
// Server-sent events stream. Each event carries the device's full preference
// record after a change. The subscription is torn down with the request, so
// a closed view never receives updates.
func (p *preferencesController) watchPreferences(ctx *gin.Context) {
	deviceID, ok := middleware.GetDeviceID(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing device id"})
		return
	}

	events, cancel := p.hub.Subscribe(deviceID)
	defer cancel()

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Request.Context().Done():
			return false
		case event, open := <-events:
			if !open {
				return false
			}
			ctx.SSEvent("preferences", event.Preferences)
			return true
		}
	})
}
