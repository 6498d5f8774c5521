// internal/model/round.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Round is one round of golf played by a user.
//
// TotalScore, TotalPutts, TotalFairways and TotalGir are cached aggregates over
// HoleStats, maintained by RoundService.UpdateHoleStat. TotalScore is nil until
// every hole in play carries a score.
type Round struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_round_user_date" json:"user_id"`
	CourseID      uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	TeeID         uuid.UUID `gorm:"type:uuid;not null;index" json:"tee_id"`
	DatePlayed    time.Time `gorm:"not null;index:idx_round_user_date" json:"date_played"`
	NumberOfHoles int       `gorm:"not null" json:"number_of_holes"`
	TotalScore    *int      `json:"total_score"`
	TotalPutts    int       `gorm:"not null;default:0" json:"total_putts"`
	TotalFairways int       `gorm:"not null;default:0" json:"total_fairways"`
	TotalGir      int       `gorm:"not null;default:0" json:"total_gir"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Course    *Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Tee       *Tee       `gorm:"foreignKey:TeeID" json:"tee,omitempty"`
	HoleStats []HoleStat `gorm:"foreignKey:RoundID" json:"-"`
}

func (Round) TableName() string {
	return "rounds"
}

// IsComplete reports whether every hole in play has been scored.
func (r *Round) IsComplete() bool {
	return r.TotalScore != nil
}

// HoleStat is the per-hole record of a round. (RoundID, HoleNumber) is the natural key.
type HoleStat struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RoundID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_round_hole_number" json:"round_id"`
	HoleID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"hole_id"`
	HoleNumber int        `gorm:"not null;uniqueIndex:idx_round_hole_number" json:"hole_number"`
	Score      *int       `json:"score"`
	Putts      *int       `json:"putts"`
	ChipShots  *int       `json:"chip_shots"`
	SandShots  *int       `json:"sand_shots"`
	Drive      *Direction `gorm:"type:varchar(16)" json:"drive"`
	Approach   *Direction `gorm:"type:varchar(16)" json:"approach"`
	Note       *string    `json:"note"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Hole *Hole `gorm:"foreignKey:HoleID" json:"-"`
}

func (HoleStat) TableName() string {
	return "hole_stats"
}

// UpAndDown is true when the hole was finished with exactly one chip and one putt.
func (s *HoleStat) UpAndDown() bool {
	return intIs(s.Putts, 1) && intIs(s.ChipShots, 1)
}

// SandSave is true when the hole was finished with exactly one sand shot and one putt.
func (s *HoleStat) SandSave() bool {
	return intIs(s.Putts, 1) && intIs(s.SandShots, 1)
}

func (s HoleStat) MarshalJSON() ([]byte, error) {
	type alias HoleStat
	return json.Marshal(struct {
		alias
		UpAndDown bool `json:"up_and_down"`
		SandSave  bool `json:"sand_save"`
	}{
		alias:     alias(s),
		UpAndDown: s.UpAndDown(),
		SandSave:  s.SandSave(),
	})
}

func intIs(v *int, want int) bool {
	return v != nil && *v == want
}

// CreateRoundRequest is the body of POST /rounds.
type CreateRoundRequest struct {
	CourseID      uuid.UUID `json:"course_id" validate:"required"`
	TeeID         uuid.UUID `json:"tee_id" validate:"required"`
	DatePlayed    time.Time `json:"date_played" validate:"required"`
	NumberOfHoles int       `json:"number_of_holes" validate:"required,oneof=9 18"`
	// Prefill seeds every hole with the expected values (par, two putts, fairway and green hit).
	// Nil falls back to the configured default.
	Prefill *bool `json:"prefill,omitempty"`
}

// UpdateHoleStatRequest is the body of PUT /rounds/{round_id}/holes/{hole_number}/stat.
type UpdateHoleStatRequest struct {
	HoleID uuid.UUID       `json:"hole_id" validate:"required"`
	Field  string          `json:"field" validate:"required"`
	Value  json.RawMessage `json:"value" validate:"required"`
}
