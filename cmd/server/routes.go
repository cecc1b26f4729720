package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/santridev/muslim-companion/internal/http/api"
	"github.com/santridev/muslim-companion/internal/http/api/endpoints"
	"github.com/santridev/muslim-companion/internal/http/middleware"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(
	r *gin.Engine,
	quranService endpoints.QuranProvider,
	prayerService endpoints.PrayerProvider,
	geocodeService endpoints.PlaceNamer,
	hub endpoints.PreferenceHub,
) {
	// CORS: the app is a public mobile web client served from anywhere.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"PUT",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			middleware.DeviceIDHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.QuranModule(quranService),
		endpoints.PrayerModule(prayerService, geocodeService),
		endpoints.CalendarModule(),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api",
		Middleware: []gin.HandlerFunc{middleware.RequireDeviceID()},
	},
		endpoints.PreferencesModule(hub),
	)
}
