package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/santridev/muslim-companion/internal/aladhan"
	"github.com/santridev/muslim-companion/internal/cache"
	"github.com/santridev/muslim-companion/internal/config"
	"github.com/santridev/muslim-companion/internal/db"
	"github.com/santridev/muslim-companion/internal/equran"
	"github.com/santridev/muslim-companion/internal/geocode"
	"github.com/santridev/muslim-companion/internal/nominatim"
	"github.com/santridev/muslim-companion/internal/prayer"
	"github.com/santridev/muslim-companion/internal/prefs"
	"github.com/santridev/muslim-companion/internal/quran"
	"github.com/santridev/muslim-companion/internal/refresh"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL for durable preferences.
	conn, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, "./migrations"); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	// Redis for upstream response caching and preference change fan-out.
	rcache, err := cache.New(ctx, cfg.Redis.Address, cfg.Redis.Username, cfg.Redis.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("redis init")
	}
	defer rcache.Close()

	// Upstream clients. Reverse geocoding results are localized to
	// Indonesian to match the app's audience.
	quranClient := equran.NewClient(cfg.Upstreams.QuranBaseURL)
	aladhanClient := aladhan.NewClient(cfg.Upstreams.AladhanBaseURL)
	nominatimClient := nominatim.NewClient(cfg.Upstreams.NominatimBaseURL, language.Indonesian)

	quranService := quran.NewService(quranClient, rcache, cfg.Cache.SurahListTTL, cfg.Cache.SurahDetailTTL)
	prayerService := prayer.NewService(aladhanClient, rcache, cfg.Prayer.Method, cfg.Cache.TimingsTTL)
	geocodeService := geocode.NewService(nominatimClient)

	store := db.NewStore(conn)
	hub := prefs.NewHub(store, rcache)
	go hub.Run(ctx)

	watcher, err := refresh.NewWatcher(rcache)
	if err != nil {
		log.Fatal().Err(err).Msg("refresh watcher init")
	}
	if err := watcher.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("refresh watcher start")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	RegisterRoutes(router, quranService, prayerService, geocodeService, hub)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}

func setupLogging(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
