package ports

import (
	"context"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for position samples.
// Samples are append-only; the live view reads the greatest recordedAt.
type TrackingRepository interface {
	// Add appends a position sample.
	Add(ctx context.Context, sample *tracking.Sample) error

	// DeleteByOrder hard-deletes all samples for an order. Used by purge.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error

	// DeleteOlderThan deletes samples recorded before the cutoff, always
	// keeping the newest sample per order so the live view never goes blank.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
