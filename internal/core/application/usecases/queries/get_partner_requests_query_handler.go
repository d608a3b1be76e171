package queries

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnerRequestsQueryHandler retrieves a partner's delivery request feed
// from the database.
type GetPartnerRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerRequestsQueryHandler creates a handler for partner feed queries.
// Requires a GORM database connection for query execution.
func NewGetPartnerRequestsQueryHandler(db *gorm.DB) GetPartnerRequestsQueryHandler {
	return GetPartnerRequestsQueryHandler{db: db}
}

// Handle returns every request ever offered to the partner, newest first.
func (h GetPartnerRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerRequestsQuery,
) ([]GetPartnerRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPartnerRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.order_id,
			r.vendor_id,
			r.status,
			o.status,
			o.final_amount,
			r.created_at
		FROM delivery_requests r
		JOIN orders o ON o.id = r.order_id
		JOIN delivery_partners p ON p.id = r.partner_id
		WHERE p.user_id = ?
		ORDER BY r.created_at DESC
	`, query.PartnerUserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPartnerRequestsQueryResponse
		var id, orderID, vendorID uuid.UUID
		var requestStatus, orderStatus int

		err = rows.Scan(
			&id,
			&orderID,
			&vendorID,
			&requestStatus,
			&orderStatus,
			&resp.FinalAmount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		resp.RequestStatus = request.Status(requestStatus).String()
		resp.OrderStatus = order.Status(orderStatus).String()

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
