package trackingrepo

import (
	"context"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking sample repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Add appends a position sample.
func (r *GormTrackingRepository) Add(ctx context.Context, sample *tracking.Sample) error {
	if err := sample.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sample)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// DeleteByOrder removes all samples recorded for an order.
func (r *GormTrackingRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&SampleDTO{}, "order_id = ?", orderID.Bytes()).Error
}

// DeleteOlderThan removes samples recorded before the cutoff, keeping each
// order's newest sample so the latest-position query never goes blank for an
// order still in transit. Returns the number of rows removed.
func (r *GormTrackingRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM tracking_samples
		WHERE recorded_at < ?
		AND id NOT IN (
			SELECT DISTINCT ON (order_id) id
			FROM tracking_samples
			ORDER BY order_id, recorded_at DESC
		)
	`, cutoff)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
