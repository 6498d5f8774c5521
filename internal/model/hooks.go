package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Primary keys are generated on the application side so that rows created in
// one transaction can reference each other before the insert.

func (c *Course) BeforeCreate(*gorm.DB) error     { c.ID = ensureID(c.ID); return nil }
func (h *Hole) BeforeCreate(*gorm.DB) error       { h.ID = ensureID(h.ID); return nil }
func (t *Tee) BeforeCreate(*gorm.DB) error        { t.ID = ensureID(t.ID); return nil }
func (t *TeeForHole) BeforeCreate(*gorm.DB) error { t.ID = ensureID(t.ID); return nil }
func (r *Round) BeforeCreate(*gorm.DB) error      { r.ID = ensureID(r.ID); return nil }
func (s *HoleStat) BeforeCreate(*gorm.DB) error   { s.ID = ensureID(s.ID); return nil }

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}
