// Package order provides the Order aggregate root and its delivery lifecycle
// state machine for the fulfillment core.
//
// The package includes:
//   - Order: The aggregate root carrying order identity, item snapshots, totals,
//     and the bound delivery partner
//   - Status: A state machine with a closed transition table for the delivery
//     lifecycle
//   - Item: An immutable checkout line snapshot
//
// Key business rules:
//   - The lifecycle runs Pending -> Approved -> Assigned -> Accepted ->
//     PickedUp -> OutForDelivery -> Delivered
//   - A partner rejection returns an Assigned order to Approved for re-dispatch
//   - Delivered, Cancelled, and RejectedByVendor are terminal
//   - Customers may cancel only while Pending or Approved; admins may cancel
//     any non-terminal order
//   - Payment fields are co-resident but never touched by lifecycle transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
