package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	cartapp "github.com/fooddelivery/backend/internal/application/cart"
	catalogapp "github.com/fooddelivery/backend/internal/application/catalog"
	contactapp "github.com/fooddelivery/backend/internal/application/contact"
	"github.com/fooddelivery/backend/internal/infrastructure/config"
	"github.com/fooddelivery/backend/internal/infrastructure/logger"
	"github.com/fooddelivery/backend/internal/infrastructure/memstore"
	"github.com/fooddelivery/backend/internal/infrastructure/tracker"
	"github.com/fooddelivery/backend/internal/interfaces/http/handler"
	"github.com/fooddelivery/backend/internal/interfaces/http/middleware"
	"github.com/fooddelivery/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting food delivery backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Prices serialize as JSON numbers, matching the deployed clients
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// In-memory stores; all state is lost on restart
	contactStore := memstore.NewContactStore()
	cartStore := memstore.NewCartStore()
	catalogStore := memstore.NewCatalogStore()

	// Application services
	contactService := contactapp.NewService(contactStore)
	cartService := cartapp.NewService(cartStore)
	catalogService := catalogapp.NewService(catalogStore)

	// Routes
	r := router.NewRouter(engine)
	r.Register(handler.NewContactHandler(contactService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewCatalogHandler(catalogService)).
		Register(handler.NewSystemHandler())
	r.Setup()

	// Order status tracker
	var statusTracker *tracker.Tracker
	if cfg.Tracker.Enabled {
		source := tracker.NewHTTPOrderSource(cfg.Tracker.BaseURL, &http.Client{
			Timeout: cfg.Tracker.FetchTimeout,
		})
		statusTracker = tracker.New(
			source,
			tracker.NewLogNotifier(log),
			tracker.Config{
				Phone:        cfg.Tracker.Phone,
				PollInterval: cfg.Tracker.PollInterval,
			},
			log,
			// Any transition refreshes the full order list for the
			// tracked phone.
			tracker.WithReloadFunc(func() {
				ctx, cancel := context.WithTimeout(context.Background(), cfg.Tracker.FetchTimeout)
				defer cancel()
				orders, err := source.OrdersByPhone(ctx, cfg.Tracker.Phone)
				if err != nil {
					log.Warn("order list refresh failed", zap.Error(err))
					return
				}
				log.Info("order list refreshed",
					zap.String("phone", cfg.Tracker.Phone),
					zap.Int("orders", len(orders)),
				)
			}),
		)
		if err := statusTracker.Start(context.Background()); err != nil {
			log.Fatal("Failed to start status tracker", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if statusTracker != nil {
		if err := statusTracker.Stop(ctx); err != nil {
			log.Error("Status tracker shutdown failed", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
