// Package requestrepo persists delivery requests and partner responses.
//
// Two database constraints carry domain invariants that application code
// cannot enforce under concurrency:
//
//   - a partial unique index on delivery_requests(order_id) over non-terminal
//     statuses keeps at most one request in flight per order, and
//   - a unique index on request_responses(request_id, partner_id) makes the
//     first recorded decision final.
//
// The repository maps violations of those constraints to the domain errors
// the handlers expect. The indexes themselves are created at startup; see
// cmd/app.
package requestrepo

import (
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for delivery requests.
type RequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	VendorID    uuid.UUID `gorm:"type:uuid;index"`
	PartnerID   uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
}

// TableName specifies the database table name for delivery requests.
func (RequestDTO) TableName() string {
	return "delivery_requests"
}

// ResponseDTO represents one recorded partner decision.
type ResponseDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID   uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_request_responses_request_partner"`
	PartnerID   uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_request_responses_request_partner"`
	Decision    int
	RespondedAt time.Time
}

// TableName specifies the database table name for partner responses.
func (ResponseDTO) TableName() string {
	return "request_responses"
}

// fromDomain converts a delivery request aggregate to its database representation.
func fromDomain(aggregate *request.DeliveryRequest) RequestDTO {
	return RequestDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		VendorID:    aggregate.VendorID().Bytes(),
		PartnerID:   aggregate.PartnerID().Bytes(),
		Status:      int(aggregate.Status()),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery request aggregate.
func toDomain(dto RequestDTO) (*request.DeliveryRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	return request.RestoreDeliveryRequest(
		id,
		orderID,
		vendorID,
		partnerID,
		request.Status(dto.Status),
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CreatedAt,
	)
}

// responseFromDomain converts a partner response to its database representation.
func responseFromDomain(response *request.Response) ResponseDTO {
	return ResponseDTO{
		ID:          response.ID().Bytes(),
		RequestID:   response.RequestID().Bytes(),
		PartnerID:   response.PartnerID().Bytes(),
		Decision:    int(response.Decision()),
		RespondedAt: response.RespondedAt(),
	}
}
