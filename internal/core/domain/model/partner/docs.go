// Package partner provides the DeliveryPartner entity: a courier profile with
// the availability, verification, and location state the dispatch engine reads.
package partner
