package queries

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves a vendor's in-flight orders from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for vendor dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the vendor's non-terminal orders, oldest first, so the rows
// needing attention longest sit at the top of the dashboard.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.partner_id,
			o.status,
			o.final_amount,
			o.created_at
		FROM orders o
		JOIN vendors v ON v.id = o.vendor_id
		WHERE v.user_id = ?
		AND o.status NOT IN (?, ?, ?)
		ORDER BY o.created_at
	`,
		query.VendorUserID().Bytes(),
		int(order.Delivered), int(order.Cancelled), int(order.RejectedByVendor),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, customerID uuid.UUID
		var partnerID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&customerID,
			&partnerID,
			&status,
			&resp.FinalAmount,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if partnerID != nil {
			pID, pErr := kernel.UUIDFromBytes((*partnerID)[:])
			if pErr != nil {
				return nil, pErr
			}
			resp.PartnerID = &pID
		}
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
