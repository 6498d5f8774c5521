// internal/handlers/main_test.go
package handlers_test

import (
	"log"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go_golf_stat_keep/internal/cache"
	"go_golf_stat_keep/internal/config"
	"go_golf_stat_keep/internal/handlers"
	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/repository"
	"go_golf_stat_keep/internal/service"
)

var (
	testDB     *gorm.DB
	testServer *httptest.Server
	testLogger *slog.Logger
)

// TestMain wires the full router against a shared in-memory SQLite database.
// Every test works with its own user ID, so no table clearing is needed.
func TestMain(m *testing.M) {
	log.Println("Setting up handlers test environment...")

	testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var err error
	testDB, err = gorm.Open(sqlite.Open("file:handlers_test?mode=memory&cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := testDB.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := testDB.AutoMigrate(
		&model.Course{}, &model.Hole{}, &model.Tee{}, &model.TeeForHole{},
		&model.Round{}, &model.HoleStat{},
	); err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}

	appCfg := config.DefaultAppConfig()
	appCfg.PrefillScorecard = false

	courseRepo := repository.NewGormCourseRepository()
	teeRepo := repository.NewGormTeeRepository()
	roundRepo := repository.NewGormRoundRepository()
	holeStatRepo := repository.NewGormHoleStatRepository()
	dashboards := cache.Noop{}

	courseService := service.NewCourseService(testDB, courseRepo, teeRepo, roundRepo, holeStatRepo, dashboards)
	roundService := service.NewRoundService(testDB, courseRepo, teeRepo, roundRepo, holeStatRepo, dashboards, appCfg)
	dashboardService := service.NewDashboardService(testDB, roundRepo, holeStatRepo, dashboards, appCfg)
	exportService := service.NewExportService(roundService)

	router := chi.NewRouter()
	router.Use(middleware.LoggingMiddleware(testLogger))
	handlers.RegisterRoutes(router,
		handlers.NewCourseHandler(courseService, testLogger),
		handlers.NewRoundHandler(roundService, exportService, testLogger),
		handlers.NewDashboardHandler(dashboardService, appCfg.Location(), testLogger),
		middleware.DevUserContextMiddleware,
	)
	testServer = httptest.NewServer(router)

	log.Println("Running handler tests...")
	exitCode := m.Run()

	log.Println("Tearing down handlers test environment...")
	testServer.Close()
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing test database connection: %v", err)
	}
	os.Exit(exitCode)
}
