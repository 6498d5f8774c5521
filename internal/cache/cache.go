// Package cache stores computed dashboards so repeated reads of the same month
// skip the aggregate queries.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DashboardCache caches one value per (user, year, month). Invalidate drops
// every cached month of the user at once.
type DashboardCache interface {
	// Get decodes the cached value into dst. ok is false on a miss. version is
	// the user's cache generation at read time, returned on a miss too.
	Get(ctx context.Context, userID uuid.UUID, year int, month time.Month, dst any) (version int64, ok bool, err error)
	// Set stores value under the generation a previous Get returned. If the
	// user was invalidated in between, the entry is written orphaned and never served.
	Set(ctx context.Context, userID uuid.UUID, version int64, year int, month time.Month, value any) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// Noop never stores anything. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID, int, time.Month, any) (int64, bool, error) {
	return 0, false, nil
}
func (Noop) Set(context.Context, uuid.UUID, int64, int, time.Month, any) error { return nil }
func (Noop) Invalidate(context.Context, uuid.UUID) error                      { return nil }
