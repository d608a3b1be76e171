package partner

import (
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"
)

// ErrDeliveryPartnerIsNotConstructed is returned when a DeliveryPartner was not
// created through a constructor.
var ErrDeliveryPartnerIsNotConstructed = errors.New(
	"DeliveryPartner must be created via NewDeliveryPartner constructor")

// DeliveryPartner is a courier who can be bound to orders by the dispatch
// engine. A partner enters the dispatch pool only when active, verified by an
// administrator, and reporting a known location.
type DeliveryPartner struct {
	// id is the unique identifier for the partner profile
	id kernel.UUID

	// userID is the owning platform user (one profile per user)
	userID kernel.UUID

	// isActive is the partner's own availability toggle
	isActive bool

	// isVerified is granted by an administrator after document review
	isVerified bool

	// vehicleType describes the delivery vehicle, e.g. "bike" or "scooter"
	vehicleType string

	// vehicleNumber is the registration plate
	vehicleNumber string

	// location is the partner's last known position (nil if never reported)
	location *kernel.GeoPoint

	// createdAt is the registration time; dispatch uses it to break distance ties
	createdAt time.Time

	isConstructed bool
}

// NewDeliveryPartner registers a new partner profile. New partners start active
// but unverified, so they stay out of the dispatch pool until an administrator
// verifies them.
func NewDeliveryPartner(
	id kernel.UUID,
	userID kernel.UUID,
	vehicleType string,
	vehicleNumber string,
) (*DeliveryPartner, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	if vehicleType == "" {
		return nil, errs.NewValueIsRequiredError("vehicleType")
	}

	return &DeliveryPartner{
		id:            id,
		userID:        userID,
		isActive:      true,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreDeliveryPartner reconstructs a partner from persistence.
func RestoreDeliveryPartner(
	id kernel.UUID,
	userID kernel.UUID,
	isActive bool,
	isVerified bool,
	vehicleType string,
	vehicleNumber string,
	location *kernel.GeoPoint,
	createdAt time.Time,
) (*DeliveryPartner, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &DeliveryPartner{
		id:            id,
		userID:        userID,
		isActive:      isActive,
		isVerified:    isVerified,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		location:      location,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the DeliveryPartner was created through a constructor.
func (p *DeliveryPartner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrDeliveryPartnerIsNotConstructed
	}
	return nil
}

// ID returns the partner profile id.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// UserID returns the owning platform user id.
func (p *DeliveryPartner) UserID() kernel.UUID {
	return p.userID
}

// IsActive reports the partner's availability toggle.
func (p *DeliveryPartner) IsActive() bool {
	return p.isActive
}

// IsVerified reports whether an administrator verified the partner.
func (p *DeliveryPartner) IsVerified() bool {
	return p.isVerified
}

// VehicleType returns the delivery vehicle type.
func (p *DeliveryPartner) VehicleType() string {
	return p.vehicleType
}

// VehicleNumber returns the vehicle registration plate.
func (p *DeliveryPartner) VehicleNumber() string {
	return p.vehicleNumber
}

// Location returns the last known position, or nil if never reported.
func (p *DeliveryPartner) Location() *kernel.GeoPoint {
	return p.location
}

// CreatedAt returns the registration time.
func (p *DeliveryPartner) CreatedAt() time.Time {
	return p.createdAt
}

// SetLocation updates the partner's last known position.
func (p *DeliveryPartner) SetLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	p.location = &point
	return nil
}

// SetActive flips the partner's availability toggle.
func (p *DeliveryPartner) SetActive(active bool) {
	p.isActive = active
}

// Verify marks the partner as verified by an administrator.
func (p *DeliveryPartner) Verify() {
	p.isVerified = true
}

// IsDispatchable reports whether the dispatch engine may consider this partner:
// active, verified, and with a known location.
func (p *DeliveryPartner) IsDispatchable() bool {
	return p.isActive && p.isVerified && p.location != nil
}
