package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLatestPositionQueryHandler reads the newest tracking sample for an order
// directly from the database.
type GetLatestPositionQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestPositionQueryHandler creates a handler for latest-position queries.
// Requires a GORM database connection for query execution.
func NewGetLatestPositionQueryHandler(db *gorm.DB) GetLatestPositionQueryHandler {
	return GetLatestPositionQueryHandler{db: db}
}

// Handle returns the order's newest sample by recorded-at. Returns an
// object-not-found error when the order has no samples yet or does not exist.
func (h GetLatestPositionQueryHandler) Handle(
	ctx context.Context,
	query GetLatestPositionQuery,
) (GetLatestPositionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLatestPositionQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.order_id,
			s.partner_id,
			o.customer_id,
			o.vendor_id,
			s.latitude,
			s.longitude,
			s.recorded_at
		FROM tracking_samples s
		JOIN orders o ON o.id = s.order_id
		WHERE s.order_id = ?
		ORDER BY s.recorded_at DESC, s.id
		LIMIT 1
	`, query.OrderID().Bytes()).Row()

	var orderID, partnerID, customerID, vendorID uuid.UUID
	var lat, lon float64
	var recordedAt time.Time

	err := row.Scan(&orderID, &partnerID, &customerID, &vendorID, &lat, &lon, &recordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetLatestPositionQueryResponse{},
			errs.NewObjectNotFoundError("position for order", query.OrderID().String())
	}
	if err != nil {
		return GetLatestPositionQueryResponse{}, err
	}

	return buildLatestPositionResponse(orderID, partnerID, customerID, vendorID, lat, lon, recordedAt)
}

// buildLatestPositionResponse converts scanned row values to domain types.
func buildLatestPositionResponse(
	orderID, partnerID, customerID, vendorID uuid.UUID,
	lat, lon float64,
	recordedAt time.Time,
) (GetLatestPositionQueryResponse, error) {
	resp := GetLatestPositionQueryResponse{RecordedAt: recordedAt}

	var err error
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetLatestPositionQueryResponse{}, err
	}
	if resp.PartnerID, err = kernel.UUIDFromBytes(partnerID[:]); err != nil {
		return GetLatestPositionQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetLatestPositionQueryResponse{}, err
	}
	if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
		return GetLatestPositionQueryResponse{}, err
	}
	if resp.Point, err = kernel.NewGeoPoint(lat, lon); err != nil {
		return GetLatestPositionQueryResponse{}, err
	}

	return resp, nil
}
