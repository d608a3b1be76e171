package partnerrepo

import (
	"context"
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/partner"
	"quickbasket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM delivery partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery partner profile to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery partner profile. Location columns are
// written through the map form so clearing them persists as NULL.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"is_active":      dto.IsActive,
			"is_verified":    dto.IsVerified,
			"vehicle_type":   dto.VehicleType,
			"vehicle_number": dto.VehicleNumber,
			"latitude":       dto.Latitude,
			"longitude":      dto.Longitude,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery partner profile by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUser retrieves the delivery partner profile owned by a platform user.
func (r *GormPartnerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner by user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDispatchable retrieves every partner dispatch may consider: active,
// verified, and with a known location.
func (r *GormPartnerRepository) GetAllDispatchable(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Where("is_active AND is_verified AND latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.DeliveryPartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}
