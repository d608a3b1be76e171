// Package partnerrepo persists delivery partner profiles, including the last
// known location that dispatch proximity ranking reads.
package partnerrepo

import (
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for delivery partner profiles.
// Latitude and longitude are nullable: a partner has no location until their
// client reports one, and an unlocated partner is never dispatchable.
type PartnerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	IsActive      bool      `gorm:"index"`
	IsVerified    bool
	VehicleType   string
	VehicleNumber string
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
}

// TableName specifies the database table name for delivery partner profiles.
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a delivery partner aggregate to its database representation.
func fromDomain(aggregate *partner.DeliveryPartner) PartnerDTO {
	var lat, lon *float64
	if point := aggregate.Location(); point != nil {
		latVal := point.Latitude()
		lonVal := point.Longitude()
		lat = &latVal
		lon = &lonVal
	}

	return PartnerDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		IsActive:      aggregate.IsActive(),
		IsVerified:    aggregate.IsVerified(),
		VehicleType:   aggregate.VehicleType(),
		VehicleNumber: aggregate.VehicleNumber(),
		Latitude:      lat,
		Longitude:     lon,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery partner aggregate.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
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

	return partner.RestoreDeliveryPartner(
		id,
		userID,
		dto.IsActive,
		dto.IsVerified,
		dto.VehicleType,
		dto.VehicleNumber,
		location,
		dto.CreatedAt,
	)
}
