// internal/model/course.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinHolePar         = 3
	MaxHolePar         = 5
	MinStrokeIndex     = 1
	MaxStrokeIndex     = 18
	MaxHolesPerCourse  = 18
	NeutralSlopeRating = 113
)

// Course is a golf course. Par is always the sum of its holes' par.
type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"not null;default:''" json:"address"`
	City      string    `gorm:"not null;default:''" json:"city"`
	State     string    `gorm:"not null;default:''" json:"state"`
	Country   string    `gorm:"not null;default:''" json:"country"`
	Par       int       `gorm:"not null;default:0" json:"par"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Holes []Hole `gorm:"foreignKey:CourseID" json:"holes,omitempty"`
	Tees  []Tee  `gorm:"foreignKey:CourseID" json:"tees,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Hole belongs to exactly one course; Number is unique per course.
// StrokeIndex is also unique per course, which is enforced by CourseService
// rather than the schema so that two holes can swap indexes in one update.
type Hole struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_hole_number" json:"course_id"`
	Number      int       `gorm:"not null;uniqueIndex:idx_course_hole_number" json:"number"`
	Par         int       `gorm:"not null" json:"par"`
	StrokeIndex int       `gorm:"not null" json:"stroke_index"`
}

func (Hole) TableName() string {
	return "holes"
}

// Tee is a set of markers on a course. Yardage is the sum of its TeeForHole rows.
type Tee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	Name      string    `gorm:"not null" json:"name"`
	Rating    float64   `gorm:"type:decimal(4,1);not null" json:"rating"`
	Slope     int       `gorm:"not null" json:"slope"`
	Yardage   int       `gorm:"not null;default:0" json:"yardage"`
	CreatedAt time.Time `json:"created_at"`

	TeeForHoles []TeeForHole `gorm:"foreignKey:TeeID" json:"tee_for_holes,omitempty"`
}

func (Tee) TableName() string {
	return "tees"
}

// TeeForHole is the yardage of one hole when played from one tee.
type TeeForHole struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TeeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tee_hole" json:"tee_id"`
	HoleID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tee_hole" json:"hole_id"`
	Yardage int       `gorm:"not null" json:"yardage"`
}

func (TeeForHole) TableName() string {
	return "tee_for_holes"
}

// HoleInput describes one hole when a course is authored.
type HoleInput struct {
	Number      int `json:"number" validate:"required,min=1,max=18"`
	Par         int `json:"par" validate:"required,min=3,max=5"`
	StrokeIndex int `json:"stroke_index" validate:"required,min=1,max=18"`
}

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Name    string      `json:"name" validate:"required,max=200"`
	Address string      `json:"address" validate:"max=200"`
	City    string      `json:"city" validate:"max=100"`
	State   string      `json:"state" validate:"max=100"`
	Country string      `json:"country" validate:"max=100"`
	Holes   []HoleInput `json:"holes" validate:"required,min=1,max=18,dive"`
}

// UpdateCourseInfoRequest is the body of PATCH /courses/{course_id}.
type UpdateCourseInfoRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
}

// HoleUpdate changes the par and stroke index of an existing hole.
type HoleUpdate struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Par         int       `json:"par" validate:"required,min=3,max=5"`
	StrokeIndex int       `json:"stroke_index" validate:"required,min=1,max=18"`
}

// UpdateCourseHolesRequest is the body of PUT /courses/{course_id}/holes.
type UpdateCourseHolesRequest struct {
	Holes []HoleUpdate `json:"holes" validate:"required,min=1,max=18,dive"`
}

// TeeHoleInput is the yardage of one course hole for a new tee.
type TeeHoleInput struct {
	HoleID  uuid.UUID `json:"hole_id" validate:"required"`
	Yardage int       `json:"yardage" validate:"min=0,max=1000"`
}

// AddTeeRequest is the body of POST /courses/{course_id}/tees.
type AddTeeRequest struct {
	Name   string         `json:"name" validate:"required,max=100"`
	Rating float64        `json:"rating" validate:"required,gt=0,lt=100"`
	Slope  int            `json:"slope" validate:"required,min=55,max=155"`
	Holes  []TeeHoleInput `json:"holes" validate:"required,min=1,max=18,dive"`
}
