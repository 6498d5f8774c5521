// internal/model/stat_update.go
package model

import (
	"encoding/json"
	"fmt"
)

// StatField names one editable column of a HoleStat.
type StatField string

const (
	StatScore     StatField = "score"
	StatPutts     StatField = "putts"
	StatChipShots StatField = "chip_shots"
	StatSandShots StatField = "sand_shots"
	StatDrive     StatField = "drive"
	StatApproach  StatField = "approach"
	StatNote      StatField = "note"
)

const maxNoteLength = 2000

// HoleStatUpdate is a single-field edit of a HoleStat. The set of
// implementations is closed; RoundService dispatches on the concrete type.
type HoleStatUpdate interface {
	Field() StatField
	// Column is the hole_stats column written by the update.
	Column() string
	// Value is the value written to Column.
	Value() any
	// Apply sets the field on s.
	Apply(s *HoleStat)
	validate() error
}

type ScoreUpdate struct{ Strokes int }
type PuttsUpdate struct{ Putts int }
type ChipShotsUpdate struct{ Shots int }
type SandShotsUpdate struct{ Shots int }
type DriveUpdate struct{ Result Direction }
type ApproachUpdate struct{ Result Direction }
type NoteUpdate struct{ Text string }

func (ScoreUpdate) Field() StatField     { return StatScore }
func (PuttsUpdate) Field() StatField     { return StatPutts }
func (ChipShotsUpdate) Field() StatField { return StatChipShots }
func (SandShotsUpdate) Field() StatField { return StatSandShots }
func (DriveUpdate) Field() StatField     { return StatDrive }
func (ApproachUpdate) Field() StatField  { return StatApproach }
func (NoteUpdate) Field() StatField      { return StatNote }

func (u ScoreUpdate) Column() string     { return "score" }
func (u PuttsUpdate) Column() string     { return "putts" }
func (u ChipShotsUpdate) Column() string { return "chip_shots" }
func (u SandShotsUpdate) Column() string { return "sand_shots" }
func (u DriveUpdate) Column() string     { return "drive" }
func (u ApproachUpdate) Column() string  { return "approach" }
func (u NoteUpdate) Column() string      { return "note" }

func (u ScoreUpdate) Value() any     { return u.Strokes }
func (u PuttsUpdate) Value() any     { return u.Putts }
func (u ChipShotsUpdate) Value() any { return u.Shots }
func (u SandShotsUpdate) Value() any { return u.Shots }
func (u DriveUpdate) Value() any     { return string(u.Result) }
func (u ApproachUpdate) Value() any  { return string(u.Result) }
func (u NoteUpdate) Value() any      { return u.Text }

func (u ScoreUpdate) Apply(s *HoleStat)     { v := u.Strokes; s.Score = &v }
func (u PuttsUpdate) Apply(s *HoleStat)     { v := u.Putts; s.Putts = &v }
func (u ChipShotsUpdate) Apply(s *HoleStat) { v := u.Shots; s.ChipShots = &v }
func (u SandShotsUpdate) Apply(s *HoleStat) { v := u.Shots; s.SandShots = &v }
func (u DriveUpdate) Apply(s *HoleStat)     { v := u.Result; s.Drive = &v }
func (u ApproachUpdate) Apply(s *HoleStat)  { v := u.Result; s.Approach = &v }
func (u NoteUpdate) Apply(s *HoleStat)      { v := u.Text; s.Note = &v }

func (u ScoreUpdate) validate() error {
	if u.Strokes < 1 || u.Strokes > 20 {
		return fmt.Errorf("%w: score must be between 1 and 20, got %d", ErrInvalidInput, u.Strokes)
	}
	return nil
}

func (u PuttsUpdate) validate() error     { return validateCount("putts", u.Putts) }
func (u ChipShotsUpdate) validate() error { return validateCount("chip_shots", u.Shots) }
func (u SandShotsUpdate) validate() error { return validateCount("sand_shots", u.Shots) }

func (u DriveUpdate) validate() error {
	if !u.Result.ValidForDrive() {
		return fmt.Errorf("%w: %q is not a valid drive result", ErrInvalidInput, u.Result)
	}
	return nil
}

func (u ApproachUpdate) validate() error {
	if !u.Result.ValidForApproach() {
		return fmt.Errorf("%w: %q is not a valid approach result", ErrInvalidInput, u.Result)
	}
	return nil
}

func (u NoteUpdate) validate() error {
	if len(u.Text) > maxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, maxNoteLength)
	}
	return nil
}

func validateCount(name string, v int) error {
	if v < 0 || v > 20 {
		return fmt.Errorf("%w: %s must be between 0 and 20, got %d", ErrInvalidInput, name, v)
	}
	return nil
}

// ValidateHoleStatUpdate checks the value carried by u.
func ValidateHoleStatUpdate(u HoleStatUpdate) error {
	if u == nil {
		return fmt.Errorf("%w: missing update", ErrInvalidInput)
	}
	return u.validate()
}

// ParseStatField accepts both the snake_case API names and the camelCase names.
func ParseStatField(name string) (StatField, error) {
	switch name {
	case "score":
		return StatScore, nil
	case "putts":
		return StatPutts, nil
	case "chip_shots", "chipShots":
		return StatChipShots, nil
	case "sand_shots", "sandShots":
		return StatSandShots, nil
	case "drive":
		return StatDrive, nil
	case "approach":
		return StatApproach, nil
	case "note":
		return StatNote, nil
	}
	return "", fmt.Errorf("%w: unsupported field %q", ErrInvalidInput, name)
}

// ParseHoleStatUpdate builds a validated update from a field name and its raw JSON value.
func ParseHoleStatUpdate(field string, raw json.RawMessage) (HoleStatUpdate, error) {
	f, err := ParseStatField(field)
	if err != nil {
		return nil, err
	}

	var u HoleStatUpdate
	switch f {
	case StatScore, StatPutts, StatChipShots, StatSandShots:
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidInput, f)
		}
		switch f {
		case StatScore:
			u = ScoreUpdate{Strokes: n}
		case StatPutts:
			u = PuttsUpdate{Putts: n}
		case StatChipShots:
			u = ChipShotsUpdate{Shots: n}
		default:
			u = SandShotsUpdate{Shots: n}
		}
	case StatDrive, StatApproach:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %s must be a string", ErrInvalidInput, f)
		}
		if f == StatDrive {
			u = DriveUpdate{Result: Direction(s)}
		} else {
			u = ApproachUpdate{Result: Direction(s)}
		}
	case StatNote:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: note must be a string", ErrInvalidInput)
		}
		u = NoteUpdate{Text: s}
	}

	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}
