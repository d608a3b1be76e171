// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexing for the hot
// lookups: vendor dashboards, partner bindings, and dispatch sweeps by status.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;index"`
	VendorID       uuid.UUID  `gorm:"type:uuid;index"`
	AddressID      uuid.UUID  `gorm:"type:uuid"`
	PartnerID      *uuid.UUID `gorm:"type:uuid;index"`
	Status         int        `gorm:"index"`
	PaymentStatus  string
	Subtotal       float64
	DiscountAmount float64
	FinalAmount    float64
	CouponCode     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Items          []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one checkout line snapshot. Items are written once with
// the order and never updated; ProductID is nullable because the catalog
// product may be deleted after checkout while the snapshot lives on.
type ItemDTO struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index"`
	ProductID *uuid.UUID `gorm:"type:uuid"`
	Name      string
	Price     float64
	Quantity  int
}

// TableName specifies the database table name for order item snapshots.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var productID *uuid.UUID
		if id := item.ProductID(); id != nil {
			raw := id.Bytes()
			productID = &raw
		}

		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: productID,
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		VendorID:       aggregate.VendorID().Bytes(),
		AddressID:      aggregate.AddressID().Bytes(),
		PartnerID:      partnerID,
		Status:         int(aggregate.Status()),
		PaymentStatus:  aggregate.PaymentStatus(),
		Subtotal:       aggregate.Subtotal(),
		DiscountAmount: aggregate.DiscountAmount(),
		FinalAmount:    aggregate.FinalAmount(),
		CouponCode:     aggregate.CouponCode(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Items:          items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and partner binding using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}

		partnerID = &pID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		var productID *kernel.UUID
		if itemDTO.ProductID != nil {
			prodID, prodErr := kernel.UUIDFromBytes((*itemDTO.ProductID)[:])
			if prodErr != nil {
				return nil, prodErr
			}

			productID = &prodID
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		vendorID,
		addressID,
		partnerID,
		items,
		order.Status(dto.Status),
		dto.PaymentStatus,
		dto.Subtotal,
		dto.DiscountAmount,
		dto.FinalAmount,
		dto.CouponCode,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
