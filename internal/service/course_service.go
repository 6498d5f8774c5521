// internal/service/course_service.go
package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go_golf_stat_keep/internal/cache"
	"go_golf_stat_keep/internal/middleware"
	"go_golf_stat_keep/internal/model"
	"go_golf_stat_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseService interface {
	CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*model.Course, error)
	ListCourses(ctx context.Context) ([]model.Course, error)
	ListPlayableCourses(ctx context.Context) ([]model.Course, error)
	UpdateCourseInfo(ctx context.Context, courseID uuid.UUID, req *model.UpdateCourseInfoRequest) (*model.Course, error)
	UpdateCourseHoles(ctx context.Context, courseID uuid.UUID, req *model.UpdateCourseHolesRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error

	AddTee(ctx context.Context, courseID uuid.UUID, req *model.AddTeeRequest) (*model.Tee, error)
	DeleteTee(ctx context.Context, teeID uuid.UUID) error
}

type courseService struct {
	db           *gorm.DB
	courseRepo   repository.CourseRepository
	teeRepo      repository.TeeRepository
	roundRepo    repository.RoundRepository
	holeStatRepo repository.HoleStatRepository
	dashboards   cache.DashboardCache
}

func NewCourseService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	teeRepo repository.TeeRepository,
	roundRepo repository.RoundRepository,
	holeStatRepo repository.HoleStatRepository,
	dashboards cache.DashboardCache,
) CourseService {
	if dashboards == nil {
		dashboards = cache.Noop{}
	}
	return &courseService{
		db:           db,
		courseRepo:   courseRepo,
		teeRepo:      teeRepo,
		roundRepo:    roundRepo,
		holeStatRepo: holeStatRepo,
		dashboards:   dashboards,
	}
}

// validateHoleSet checks the complete set of holes a course would have.
func validateHoleSet(holes []model.Hole) error {
	if len(holes) == 0 {
		return fmt.Errorf("%w: a course needs at least one hole", model.ErrInvalidInput)
	}
	if len(holes) > model.MaxHolesPerCourse {
		return fmt.Errorf("%w: a course has at most %d holes", model.ErrInvalidInput, model.MaxHolesPerCourse)
	}

	numbers := make(map[int]bool, len(holes))
	indexes := make(map[int]bool, len(holes))
	for _, h := range holes {
		if h.Number < 1 || h.Number > model.MaxHolesPerCourse {
			return fmt.Errorf("%w: hole number %d is out of range", model.ErrInvalidInput, h.Number)
		}
		if h.Par < model.MinHolePar || h.Par > model.MaxHolePar {
			return fmt.Errorf("%w: par of hole %d must be between %d and %d", model.ErrInvalidInput, h.Number, model.MinHolePar, model.MaxHolePar)
		}
		if h.StrokeIndex < model.MinStrokeIndex || h.StrokeIndex > model.MaxStrokeIndex {
			return fmt.Errorf("%w: stroke index of hole %d must be between %d and %d", model.ErrInvalidInput, h.Number, model.MinStrokeIndex, model.MaxStrokeIndex)
		}
		if numbers[h.Number] {
			return fmt.Errorf("%w: hole number %d appears twice", model.ErrConstraintViolation, h.Number)
		}
		if indexes[h.StrokeIndex] {
			return fmt.Errorf("%w: stroke index %d is used by more than one hole", model.ErrConstraintViolation, h.StrokeIndex)
		}
		numbers[h.Number] = true
		indexes[h.StrokeIndex] = true
	}
	return nil
}

func coursePar(holes []model.Hole) int {
	par := 0
	for _, h := range holes {
		par += h.Par
	}
	return par
}

func (s *courseService) CreateCourse(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: course name is required", model.ErrInvalidInput)
	}

	holes := make([]model.Hole, 0, len(req.Holes))
	for _, h := range req.Holes {
		holes = append(holes, model.Hole{Number: h.Number, Par: h.Par, StrokeIndex: h.StrokeIndex})
	}
	if err := validateHoleSet(holes); err != nil {
		return nil, err
	}
	sort.Slice(holes, func(i, j int) bool { return holes[i].Number < holes[j].Number })

	course := &model.Course{
		Name:    name,
		Address: strings.TrimSpace(req.Address),
		City:    strings.TrimSpace(req.City),
		State:   strings.TrimSpace(req.State),
		Country: strings.TrimSpace(req.Country),
		Par:     coursePar(holes),
		Holes:   holes,
	}

	err := runInTx(ctx, s.db, "CreateCourse", func(tx *gorm.DB) error {
		return s.courseRepo.Create(ctx, tx, course)
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(ctx).Info("Course created", "course_id", course.ID.String(), "holes", len(holes), "par", course.Par)
	return course, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*model.Course, error) {
	course, err := s.courseRepo.FindWithDetails(ctx, s.db, courseID)
	if err != nil {
		return nil, internalError(ctx, "GetCourse", err)
	}
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseRepo.List(ctx, s.db)
	if err != nil {
		return nil, internalError(ctx, "ListCourses", err)
	}
	return courses, nil
}

func (s *courseService) ListPlayableCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.courseRepo.ListPlayable(ctx, s.db)
	if err != nil {
		return nil, internalError(ctx, "ListPlayableCourses", err)
	}
	return courses, nil
}

func (s *courseService) UpdateCourseInfo(ctx context.Context, courseID uuid.UUID, req *model.UpdateCourseInfoRequest) (*model.Course, error) {
	var updated *model.Course

	err := runInTx(ctx, s.db, "UpdateCourseInfo", func(tx *gorm.DB) error {
		course, err := s.courseRepo.FindByID(ctx, tx, courseID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("%w: course name is required", model.ErrInvalidInput)
			}
			course.Name = name
		}
		if req.Address != nil {
			course.Address = strings.TrimSpace(*req.Address)
		}
		if req.City != nil {
			course.City = strings.TrimSpace(*req.City)
		}
		if req.State != nil {
			course.State = strings.TrimSpace(*req.State)
		}
		if req.Country != nil {
			course.Country = strings.TrimSpace(*req.Country)
		}

		if err := s.courseRepo.UpdateInfo(ctx, tx, course); err != nil {
			return err
		}
		updated = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateCourseHoles changes par and stroke index of existing holes. The whole
// resulting set is validated, so two holes may swap stroke indexes in one call.
func (s *courseService) UpdateCourseHoles(ctx context.Context, courseID uuid.UUID, req *model.UpdateCourseHolesRequest) (*model.Course, error) {
	var owners []uuid.UUID

	err := runInTx(ctx, s.db, "UpdateCourseHoles", func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByID(ctx, tx, courseID); err != nil {
			return err
		}
		holes, err := s.courseRepo.FindHoles(ctx, tx, courseID)
		if err != nil {
			return err
		}

		byID := make(map[uuid.UUID]int, len(holes))
		for i, h := range holes {
			byID[h.ID] = i
		}
		seen := make(map[uuid.UUID]bool, len(req.Holes))
		for _, u := range req.Holes {
			i, ok := byID[u.ID]
			if !ok {
				return fmt.Errorf("%w: hole %s does not belong to course", model.ErrInvalidInput, u.ID)
			}
			if seen[u.ID] {
				return fmt.Errorf("%w: hole %s is listed twice", model.ErrInvalidInput, u.ID)
			}
			seen[u.ID] = true
			holes[i].Par = u.Par
			holes[i].StrokeIndex = u.StrokeIndex
		}
		if err := validateHoleSet(holes); err != nil {
			return err
		}

		for _, u := range req.Holes {
			h := holes[byID[u.ID]]
			if err := s.courseRepo.UpdateHole(ctx, tx, &h); err != nil {
				return err
			}
		}
		if err := s.courseRepo.UpdatePar(ctx, tx, courseID, coursePar(holes)); err != nil {
			return err
		}

		// a par 3 has no fairway, so recorded drives go
		var par3s []uuid.UUID
		for _, u := range req.Holes {
			if u.Par == 3 {
				par3s = append(par3s, u.ID)
			}
		}
		affected, err := s.holeStatRepo.ClearDrives(ctx, tx, par3s)
		if err != nil {
			return err
		}
		for _, roundID := range affected {
			if err := recountHits(ctx, tx, s.holeStatRepo, s.roundRepo, roundID, "drive", "total_fairways"); err != nil {
				return err
			}
		}

		owners, err = s.roundRepo.UserIDsByCourse(ctx, tx, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// distributions and fairway totals depend on hole par
	invalidateDashboards(ctx, s.dashboards, owners...)
	return s.GetCourse(ctx, courseID)
}

// DeleteCourse removes the course with its holes, tees and every round played on it.
func (s *courseService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	var owners []uuid.UUID

	err := runInTx(ctx, s.db, "DeleteCourse", func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByID(ctx, tx, courseID); err != nil {
			return err
		}

		var err error
		if owners, err = s.roundRepo.UserIDsByCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if err := s.holeStatRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if err := s.roundRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if err := s.teeRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if err := s.courseRepo.DeleteHoles(ctx, tx, courseID); err != nil {
			return err
		}
		return s.courseRepo.Delete(ctx, tx, courseID)
	})
	if err != nil {
		return err
	}

	invalidateDashboards(ctx, s.dashboards, owners...)
	middleware.GetLogger(ctx).Info("Course deleted", "course_id", courseID.String(), "affected_users", len(owners))
	return nil
}

// AddTee creates a tee with one yardage for every hole of the course.
func (s *courseService) AddTee(ctx context.Context, courseID uuid.UUID, req *model.AddTeeRequest) (*model.Tee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tee name is required", model.ErrInvalidInput)
	}
	if req.Slope <= 0 {
		return nil, fmt.Errorf("%w: slope must be positive", model.ErrInvalidInput)
	}
	if req.Rating <= 0 || math.IsNaN(req.Rating) || math.IsInf(req.Rating, 0) {
		return nil, fmt.Errorf("%w: rating must be a positive number", model.ErrInvalidInput)
	}

	var tee *model.Tee

	err := runInTx(ctx, s.db, "AddTee", func(tx *gorm.DB) error {
		if _, err := s.courseRepo.FindByID(ctx, tx, courseID); err != nil {
			return err
		}
		holes, err := s.courseRepo.FindHoles(ctx, tx, courseID)
		if err != nil {
			return err
		}

		numbers := make(map[uuid.UUID]int, len(holes))
		for _, h := range holes {
			numbers[h.ID] = h.Number
		}

		yardages := make([]model.TeeForHole, 0, len(req.Holes))
		seen := make(map[uuid.UUID]bool, len(req.Holes))
		total := 0
		for _, in := range req.Holes {
			if _, ok := numbers[in.HoleID]; !ok {
				return fmt.Errorf("%w: hole %s does not belong to course", model.ErrInvalidInput, in.HoleID)
			}
			if seen[in.HoleID] {
				return fmt.Errorf("%w: hole %d has more than one yardage", model.ErrConstraintViolation, numbers[in.HoleID])
			}
			if in.Yardage < 0 {
				return fmt.Errorf("%w: yardage of hole %d is negative", model.ErrInvalidInput, numbers[in.HoleID])
			}
			seen[in.HoleID] = true
			total += in.Yardage
			yardages = append(yardages, model.TeeForHole{HoleID: in.HoleID, Yardage: in.Yardage})
		}
		for _, h := range holes {
			if !seen[h.ID] {
				return fmt.Errorf("%w: missing yardage for hole %d", model.ErrInvalidInput, h.Number)
			}
		}

		tee = &model.Tee{
			CourseID:    courseID,
			Name:        name,
			Rating:      req.Rating,
			Slope:       req.Slope,
			Yardage:     total,
			TeeForHoles: yardages,
		}
		return s.teeRepo.Create(ctx, tx, tee)
	})
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(ctx).Info("Tee added", "course_id", courseID.String(), "tee_id", tee.ID.String(), "yardage", tee.Yardage)
	return tee, nil
}

// DeleteTee refuses to remove a tee that rounds were played from.
func (s *courseService) DeleteTee(ctx context.Context, teeID uuid.UUID) error {
	return runInTx(ctx, s.db, "DeleteTee", func(tx *gorm.DB) error {
		if _, err := s.teeRepo.FindByID(ctx, tx, teeID); err != nil {
			return err
		}
		n, err := s.roundRepo.CountByTee(ctx, tx, teeID)
		if err != nil {
			return err
		}
		if n > 0 {
			return model.NewAppError("TEE_IN_USE", fmt.Sprintf("tee is used by %d round(s)", n), "tee_id", model.ErrConstraintViolation)
		}
		return s.teeRepo.Delete(ctx, tx, teeID)
	})
}
