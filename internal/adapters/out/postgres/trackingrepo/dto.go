// Package trackingrepo persists live-tracking position samples. Samples are
// append-only; retention is handled by the prune job through DeleteOlderThan.
package trackingrepo

import (
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// SampleDTO represents the database structure for position samples.
// The (order_id, recorded_at) index serves the latest-position query.
type SampleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index:ix_tracking_samples_order_recorded"`
	PartnerID  uuid.UUID `gorm:"type:uuid"`
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time `gorm:"index:ix_tracking_samples_order_recorded"`
}

// TableName specifies the database table name for position samples.
func (SampleDTO) TableName() string {
	return "tracking_samples"
}

// fromDomain converts a tracking sample to its database representation.
func fromDomain(sample *tracking.Sample) SampleDTO {
	return SampleDTO{
		ID:         sample.ID().Bytes(),
		OrderID:    sample.OrderID().Bytes(),
		PartnerID:  sample.PartnerID().Bytes(),
		Latitude:   sample.Point().Latitude(),
		Longitude:  sample.Point().Longitude(),
		RecordedAt: sample.RecordedAt(),
	}
}

// toDomain converts a database DTO to a tracking sample.
func toDomain(dto SampleDTO) (*tracking.Sample, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreSample(id, orderID, partnerID, point, dto.RecordedAt)
}
