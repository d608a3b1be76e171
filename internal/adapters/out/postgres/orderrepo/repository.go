package orderrepo

import (
	"context"
	"errors"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// uniqueViolation is the Postgres error code for unique constraint violations.
	uniqueViolation = "23505"

	// ordersPrimaryKey is the constraint name Postgres gives the orders
	// primary key. Its violation means the order id was inserted before.
	ordersPrimaryKey = "orders_pkey"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its item snapshots to the database. The order id
// comes from the checkout collaborator, so a second insert with the same id is
// a replay and surfaces as ports.ErrOrderAlreadyExists.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if violatesConstraint(err, ordersPrimaryKey) {
			return ports.ErrOrderAlreadyExists
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Transition persists a lifecycle transition as a compare-and-set: the row is
// updated only while its stored status still equals the status the aggregate
// was read in. Zero rows affected means someone got there first, reported as
// a stale-state error so the caller can retry against fresh state.
//
// Only transition-owned columns are written. Items and checkout amounts are
// immutable after Add; payment_status belongs to the checkout collaborator.
func (r *GormOrderRepository) Transition(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":     dto.Status,
			"partner_id": dto.PartnerID,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("order", aggregate.ID().String(), expected.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllInStatus retrieves all orders currently in the given status.
// Oldest first, so dispatch sweeps serve the longest-waiting orders.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at").
		Find(&dtos, "status = ?", int(status)).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete removes an order and its item snapshots.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes()).Error
}

// violatesConstraint reports whether err is a unique violation of the named
// Postgres constraint.
func violatesConstraint(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
	}
	return false
}
