// Package vendorrepo persists vendor profiles, including the shop location
// dispatch measures partner proximity against.
package vendorrepo

import (
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for vendor profiles.
// The shop location is nullable: dispatch refuses to run for a vendor that
// has not set one yet.
type VendorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BusinessName string
	Latitude     *float64
	Longitude    *float64
	IsActive     bool
	IsApproved   bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for vendor profiles.
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor aggregate to its database representation.
func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	var lat, lon *float64
	if point := aggregate.Location(); point != nil {
		latVal := point.Latitude()
		lonVal := point.Longitude()
		lat = &latVal
		lon = &lonVal
	}

	return VendorDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		BusinessName: aggregate.BusinessName(),
		Latitude:     lat,
		Longitude:    lon,
		IsActive:     aggregate.IsActive(),
		IsApproved:   aggregate.IsApproved(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a vendor aggregate.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}

		location = &point
	}

	return vendor.RestoreVendor(
		id,
		userID,
		dto.BusinessName,
		location,
		dto.IsActive,
		dto.IsApproved,
		dto.CreatedAt,
	)
}
