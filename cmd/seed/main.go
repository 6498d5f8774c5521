// cmd/seed/main.go
//
// seed loads a demo course with two tees into the configured database and,
// when SEED_USER_ID is set, a prefilled round for that user.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"go_golf_stat_keep/internal/config"
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/repository"
	"go_golf_stat_keep/internal/service"
)

var demoPars = []int{4, 5, 3, 4, 4, 3, 4, 5, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4}
var demoIndexes = []int{7, 3, 15, 1, 11, 17, 5, 9, 13, 8, 2, 16, 10, 4, 12, 18, 6, 14}

// yardage per par for each tee
var demoTees = []struct {
	name   string
	rating float64
	slope  int
	yards  map[int]int
}{
	{"Blue", 72.4, 131, map[int]int{3: 185, 4: 410, 5: 545}},
	{"White", 70.1, 124, map[int]int{3: 160, 4: 370, 5: 505}},
}

func main() {
	_ = godotenv.Load()
	if err := config.LoadConfig("configs"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	if err := repository.RunMigrations(sqlDB, logger); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	courseRepo := repository.NewGormCourseRepository()
	teeRepo := repository.NewGormTeeRepository()
	roundRepo := repository.NewGormRoundRepository()
	holeStatRepo := repository.NewGormHoleStatRepository()
	courses := service.NewCourseService(db, courseRepo, teeRepo, roundRepo, holeStatRepo, nil)
	rounds := service.NewRoundService(db, courseRepo, teeRepo, roundRepo, holeStatRepo, nil, config.Cfg.App)

	ctx := context.Background()

	fmt.Println("--- Creating demo course ---")
	req := &model.CreateCourseRequest{Name: "Demo Links", City: "Monterey", State: "CA", Country: "US"}
	for i, par := range demoPars {
		req.Holes = append(req.Holes, model.HoleInput{Number: i + 1, Par: par, StrokeIndex: demoIndexes[i]})
	}
	course, err := courses.CreateCourse(ctx, req)
	if err != nil {
		log.Fatalf("Failed to create course: %v", err)
	}
	fmt.Printf("Created course: ID=%s, Name=%s, Par=%d\n", course.ID, course.Name, course.Par)

	var firstTee *model.Tee
	for _, t := range demoTees {
		teeReq := &model.AddTeeRequest{Name: t.name, Rating: t.rating, Slope: t.slope}
		for _, h := range course.Holes {
			teeReq.Holes = append(teeReq.Holes, model.TeeHoleInput{HoleID: h.ID, Yardage: t.yards[h.Par]})
		}
		tee, err := courses.AddTee(ctx, course.ID, teeReq)
		if err != nil {
			log.Fatalf("Failed to add tee %q: %v", t.name, err)
		}
		if firstTee == nil {
			firstTee = tee
		}
		fmt.Printf("  -> Tee %s: %d yards (%.1f/%d)\n", tee.Name, tee.Yardage, tee.Rating, tee.Slope)
	}

	raw := os.Getenv("SEED_USER_ID")
	if raw == "" {
		fmt.Println("\nSEED_USER_ID not set, skipping demo round.")
		return
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		log.Fatalf("SEED_USER_ID must be a UUID: %v", err)
	}

	fmt.Printf("\n--- Creating prefilled round for user %s ---\n", userID)
	prefill := true
	round, err := rounds.CreateRound(ctx, userID, &model.CreateRoundRequest{
		CourseID:      course.ID,
		TeeID:         firstTee.ID,
		DatePlayed:    time.Now(),
		NumberOfHoles: 18,
		Prefill:       &prefill,
	})
	if err != nil {
		log.Fatalf("Failed to create round: %v", err)
	}
	score := "-"
	if round.TotalScore != nil {
		score = fmt.Sprint(*round.TotalScore)
	}
	fmt.Printf("Created round: ID=%s, Score=%s, Putts=%d, Fairways=%d, GIR=%d\n",
		round.ID, score, round.TotalPutts, round.TotalFairways, round.TotalGir)
}
