package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"dailyword/internal/config"
	"dailyword/internal/dictionary"
	"dailyword/internal/puzzle"
	"dailyword/internal/translate"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// App wires the resolvers behind the HTTP handlers.
type App struct {
	Config       *config.Config
	IsProduction bool
	StartTime    time.Time
	Words        WordResolver
	Meanings     MeaningResolver
	Metrics      *Metrics
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logFatal("Failed to load configuration: %v", err)
	}

	level, err := cfg.Server.Level()
	if err != nil {
		logFatal("Invalid log level: %v", err)
	}

	app, err := NewApp(cfg, newLogger(level))
	if err != nil {
		logFatal("Failed to initialize: %v", err)
	}
	logInfo("Starting dailyword in %s mode", app.envName())
	logInfo("Dictionary sources: %v", app.Meanings.Sources())

	if app.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	app.startServer(app.newRouter())
}

// NewApp builds the puzzle resolver, the dictionary chain and the translator
// from cfg.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	loc, err := cfg.Puzzle.Location()
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics()
	words := puzzle.NewResolver(cfg.Puzzle.BaseURL, cfg.Puzzle.Timeout, loc, cfg.Puzzle.LookbackDays, logger)
	translator := translate.NewTranslator(cfg.Translate.BaseURL, cfg.Translate.SourceLang, cfg.Translate.TargetLang, cfg.Translate.Timeout, logger)

	translator.OnResult(func(err error) {
		metrics.ObserveUpstream(ServiceTranslate, err)
	})

	meanings := dictionary.NewResolver(translator, logger, buildProviders(cfg.Dictionary, logger)...)
	meanings.OnResolved(metrics.ObserveMeaning)
	meanings.OnLookup(metrics.ObserveUpstream)

	return &App{
		Config:       cfg,
		IsProduction: cfg.Server.IsProduction(),
		StartTime:    time.Now(),
		Words:        words,
		Meanings:     meanings,
		Metrics:      metrics,
	}, nil
}

// buildProviders returns the meaning sources in lookup order. Merriam-Webster
// references without an API key are skipped.
func buildProviders(cfg config.DictionaryConfig, logger *slog.Logger) []dictionary.Provider {
	providers := []dictionary.Provider{
		dictionary.NewFreeDictionary(cfg.FreeDictionaryURL, cfg.Timeout, logger),
	}
	if cfg.CollegiateAPIKey != "" {
		providers = append(providers, dictionary.NewCollegiate(cfg.MerriamWebsterURL, cfg.CollegiateAPIKey, cfg.Timeout, logger))
	} else {
		logWarn("MW_COLLEGIATE_API_KEY not set, skipping %s", dictionary.CollegiateSource)
	}
	if cfg.LearnersAPIKey != "" {
		providers = append(providers, dictionary.NewLearners(cfg.MerriamWebsterURL, cfg.LearnersAPIKey, cfg.Timeout, logger))
	} else {
		logWarn("MW_LEARNERS_API_KEY not set, skipping %s", dictionary.LearnersSource)
	}
	return append(providers, dictionary.DefaultFallback())
}

func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(noStoreMiddleware())

	router.GET(RouteWordleWord, app.wordleWordHandler)
	router.GET(RouteWordMeaning, app.wordMeaningHandler)
	router.GET(RouteHealthz, app.healthzHandler)
	router.GET(RouteMetrics, gin.WrapH(app.Metrics.Handler()))

	return router
}

func (app *App) startServer(router *gin.Engine) {
	port := app.Config.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

func (app *App) envName() string {
	return map[bool]string{true: "production", false: "development"}[app.IsProduction]
}
