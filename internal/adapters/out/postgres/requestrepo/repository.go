package requestrepo

import (
	"context"
	"errors"
	"fmt"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	// uniqueViolation is the Postgres error code for unique constraint violations.
	uniqueViolation = "23505"

	// ActiveRequestIndex is the partial unique index keeping one in-flight
	// request per order. Created at startup, referenced here by name to map
	// its violation to the domain error.
	ActiveRequestIndex = "ux_delivery_requests_active_order"

	// responseIndex is the unique index making the first partner decision final.
	responseIndex = "ux_request_responses_request_partner"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM delivery request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery request. When a concurrent dispatch already placed
// an active request for the same order, the partial unique index rejects the
// insert and the caller gets ports.ErrActiveRequestExists.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.DeliveryRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if violatesConstraint(err, ActiveRequestIndex) {
			return ports.ErrActiveRequestExists
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.DeliveryRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the order's in-flight request, if any.
func (r *GormRequestRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*request.DeliveryRequest, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status NOT IN ?", orderID.Bytes(), terminalStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active request for order", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Transition persists a request transition as a compare-and-set on the stored
// status, the same discipline orderrepo applies to orders.
func (r *GormRequestRepository) Transition(ctx context.Context, aggregate *request.DeliveryRequest, expected request.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]any{
			"status":       dto.Status,
			"picked_up_at": dto.PickedUpAt,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("request", aggregate.ID().String(), expected.String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// AddResponse records a partner's decision. A second decision for the same
// request and partner violates the response index and surfaces as
// request.ErrAlreadyResponded; the stored decision stands.
func (r *GormRequestRepository) AddResponse(ctx context.Context, response *request.Response) error {
	if err := response.Validate(); err != nil {
		return err
	}

	dto := responseFromDomain(response)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if violatesConstraint(err, responseIndex) {
			return request.ErrAlreadyResponded
		}
		return err
	}

	return nil
}

// GetRejectedPartnerIDs returns the partners that have rejected a request for
// this order, so dispatch never offers the order to them again.
func (r *GormRequestRepository) GetRejectedPartnerIDs(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	err := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Distinct("partner_id").
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(request.StatusRejectedByPartner)).
		Pluck("partner_id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, idErr := kernel.UUIDFromBytes(b[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// DeleteByOrder removes all requests for an order along with their responses.
func (r *GormRequestRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Exec(`
		DELETE FROM request_responses
		WHERE request_id IN (SELECT id FROM delivery_requests WHERE order_id = ?)
	`, orderID.Bytes()).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RequestDTO{}, "order_id = ?", orderID.Bytes()).Error
}

// terminalStatuses lists request statuses with nothing left in flight.
func terminalStatuses() []int {
	return []int{
		int(request.StatusRejectedByPartner),
		int(request.StatusDelivered),
		int(request.StatusCancelled),
	}
}

// EnsureActiveRequestIndex creates the partial unique index enforcing at most
// one non-terminal request per order. GORM tags cannot express a partial
// index, so it is created with raw DDL after AutoMigrate.
func EnsureActiveRequestIndex(db *gorm.DB) error {
	return db.Exec(fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON delivery_requests (order_id) WHERE status NOT IN (%d, %d, %d)",
		ActiveRequestIndex,
		int(request.StatusRejectedByPartner),
		int(request.StatusDelivered),
		int(request.StatusCancelled),
	)).Error
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
