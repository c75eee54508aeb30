package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dailyhub/dailyhub/internal/cache"
	"github.com/dailyhub/dailyhub/internal/config"
	"github.com/dailyhub/dailyhub/internal/credential"
	"github.com/dailyhub/dailyhub/internal/handler"
	"github.com/dailyhub/dailyhub/internal/metrics"
	"github.com/dailyhub/dailyhub/internal/middleware"
	"github.com/dailyhub/dailyhub/internal/service"
	"github.com/dailyhub/dailyhub/internal/upstream"
)

// dependencies is everything the router needs.
type dependencies struct {
	gateway  *service.Gateway
	health   handler.HealthChecker
	limiter  middleware.IPLimiter
	metrics  http.Handler
	recorder metrics.Recorder
}

// newDependencies builds the upstream clients and the gateway service.
// cacheClient may be nil.
func newDependencies(cfg *config.Config, cacheClient *cache.Cache, logger *slog.Logger) *dependencies {
	deps := &dependencies{recorder: metrics.NewNoop()}
	if cfg.MetricsEnabled {
		prom := metrics.NewPrometheus()
		deps.recorder = prom
		deps.metrics = prom.Handler()
	}

	var tokenStore credential.Store = credential.NewMemoryStore()
	if cacheClient != nil {
		tokenStore = credential.NewRedisStore(cacheClient)
		deps.health = cacheClient
		deps.limiter = cacheClient
	}

	httpClient := upstream.NewHTTPClient(cfg.UpstreamTimeout)
	client := func(name string) *upstream.Client {
		return upstream.NewClient(name, httpClient, deps.recorder, logger)
	}

	u := cfg.Upstreams
	spotifyTokens := credential.NewCachedProvider(
		"spotify",
		credential.NewClientCredentialsExchanger(u.SpotifyAuthURL, u.SpotifyClientID, u.SpotifyClientSecret, httpClient),
		&credential.Options{
			Store:    tokenStore,
			Recorder: deps.recorder,
			Logger:   logger,
		},
	)

	deps.gateway = service.NewGateway(service.Upstreams{
		Summarizer: upstream.NewHuggingFace(client("huggingface"), u.HuggingFaceURL, u.HuggingFaceToken),
		Tracks:     upstream.NewSpotify(client("spotify"), u.SpotifyAPIURL, spotifyTokens),
		Videos:     upstream.NewYouTube(client("youtube"), u.YouTubeURL, u.YouTubeAPIKey),
		Speech:     upstream.NewTextToSpeech(client("texttospeech"), u.TextToSpeechURL, u.TextToSpeechAPIKey),
		Places:     upstream.NewMaps(client("maps"), u.MapsURL, u.MapsAPIKey),
		Exercises:  upstream.NewNinjas(client("ninjas"), u.NinjasURL, u.NinjasAPIKey),
		Foods:      upstream.NewFoodData(client("fooddata"), u.USDAURL, u.USDAAPIKey),
		Completer:  upstream.NewOpenAI(client("openai"), u.OpenAIURL, u.OpenAIAPIKey, u.OpenAIModel),
		Stocks:     upstream.NewFinnhub(client("finnhub"), u.FinnhubURL, u.FinnhubAPIKey),
		Translator: upstream.NewTranslate(client("translate"), u.TranslateURL, u.TranslateAPIKey),
	}, service.Settings{
		StockConcurrency: cfg.StockConcurrency,
		StockSymbolLimit: cfg.StockSymbolLimit,
		NutrientLookup:   cfg.NutrientLookup,
	}, deps.recorder)

	return deps
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps *dependencies, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	h := handler.New()
	healthHandler := handler.NewHealthHandler(deps.health)
	gatewayHandler := handler.NewGatewayHandler(deps.gateway, logger)

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.CORS(cfg.GetCORSAllowedOrigins()))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Probes, metrics and the page are not rate limited.
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	if deps.metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.metrics)
	}
	r.Get("/", h.Index)
	r.Method(http.MethodGet, "/static/*", h.Static())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitIP(middleware.RateLimitConfig{
			Logger:  logger,
			Enabled: cfg.RateLimitEnabled,
			RPS:     cfg.RateLimitRPS,
			Burst:   cfg.RateLimitBurst,
			Limiter: deps.limiter,
		}))

		r.Post("/summarize", gatewayHandler.Summarize)
		r.Post("/get_song", gatewayHandler.Song)
		r.Post("/get_sports_highlights", gatewayHandler.Highlights)
		r.Post("/text-to-speech", gatewayHandler.Speech)
		r.Post("/get_places_by_city", gatewayHandler.Places)
		r.Post("/get_workout", gatewayHandler.Workout)
		r.Post("/get_calories", gatewayHandler.Calories)
		r.Post("/top10", gatewayHandler.Top10)
		r.Get("/top_stocks", gatewayHandler.TopStocks)
		r.Post("/translate", gatewayHandler.Translate)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
