// Package services provides domain services that coordinate logic spanning
// multiple aggregates.
//
// PartnerDispatcher selects the delivery partner for an approved order by
// great-circle proximity to the vendor's shop, excluding partners who already
// rejected the order and breaking distance ties by earliest registration.
package services
