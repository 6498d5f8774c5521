// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_golf_stat_keep/internal/cache"
	"go_golf_stat_keep/internal/config"
	"go_golf_stat_keep/internal/handlers"
	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/repository"
	"go_golf_stat_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定読み込み前の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := godotenv.Load(); err != nil {
		tempLogger.Info("No .env file loaded", slog.Any("error", err))
	}

	log.Println("Config loading...")
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if config.Cfg.Database.Migrate {
		if err := repository.RunMigrations(sqlDB, logger); err != nil {
			slog.Error("Error applying migrations", slog.Any("error", err))
			os.Exit(1)
		}
	}

	var dashboards cache.DashboardCache = cache.Noop{}
	if addr := config.Cfg.Redis.Addr; addr != "" {
		rdb, err := cache.NewRedisClient(context.Background(), addr, config.Cfg.Redis.Password, config.Cfg.Redis.DB)
		if err != nil {
			// the dashboard still works uncached
			slog.Warn("Redis unavailable, dashboard cache disabled", slog.String("addr", addr), slog.Any("error", err))
		} else {
			defer rdb.Close()
			dashboards = cache.NewRedisDashboardCache(rdb, config.Cfg.Redis.TTL, logger)
			slog.Info("Dashboard cache enabled", slog.String("addr", addr), slog.Duration("ttl", config.Cfg.Redis.TTL))
		}
	}

	// --- 依存関係の注入 (DI) ---
	courseRepo := repository.NewGormCourseRepository()
	teeRepo := repository.NewGormTeeRepository()
	roundRepo := repository.NewGormRoundRepository()
	holeStatRepo := repository.NewGormHoleStatRepository()

	appCfg := config.Cfg.App
	courseService := service.NewCourseService(db, courseRepo, teeRepo, roundRepo, holeStatRepo, dashboards)
	roundService := service.NewRoundService(db, courseRepo, teeRepo, roundRepo, holeStatRepo, dashboards, appCfg)
	dashboardService := service.NewDashboardService(db, roundRepo, holeStatRepo, dashboards, appCfg)
	exportService := service.NewExportService(roundService)

	courseHandler := handlers.NewCourseHandler(courseService, logger)
	roundHandler := handlers.NewRoundHandler(roundService, exportService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appCfg.Location(), logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	auth := middleware.DevUserContextMiddleware
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		auth = middleware.JWTAuthMiddleware(config.Cfg.Auth.JWTSecret)
	} else {
		slog.Warn("Authentication disabled, trusting the " + middleware.DevUserHeader + " header")
	}
	handlers.RegisterRoutes(r, courseHandler, roundHandler, dashboardHandler, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown: シグナルを待ってサーバーを停止する
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger builds the application logger from the log config. APP_ENV=dev or
// log.format=text selects the colored tint handler, anything else JSON.
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" || strings.ToLower(config.Cfg.Log.Format) == "text" {
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}))
	}

	tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}))
}
