package services

import (
	"errors"
	"math"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/domain/model/partner"
	"quickbasket/internal/core/domain/model/vendor"
)

var (
	// ErrNoAvailablePartner is returned when the eligible pool is empty: no
	// partner is active, verified, locatable, within the radius, and not
	// already rejected for the order. The order stays dispatchable.
	ErrNoAvailablePartner = errors.New("no available delivery partner")

	// ErrVendorLocationUnset is returned when dispatch is attempted for a vendor
	// whose shop location has not been set. Distance cannot be computed without it.
	ErrVendorLocationUnset = errors.New("vendor location is not set")
)

// PartnerDispatcher is a domain service that selects the delivery partner for
// an approved order by great-circle proximity to the vendor's shop.
//
// Business rules:
//   - The order must be dispatchable (Approved)
//   - The vendor must have a shop location
//   - Only dispatchable partners (active, verified, with a known location) are
//     considered, minus any partner who already rejected this order
//   - Nearest partner wins; distance ties go to the earliest-registered partner
//   - An optional maximum radius (km) bounds the search; zero means unbounded
//
// The dispatcher mutates the order in memory (binding the winner); persisting
// the binding atomically is the caller's responsibility.
type PartnerDispatcher struct {
	// maxRadiusKm bounds the search; 0 disables the bound
	maxRadiusKm float64
}

// NewPartnerDispatcher creates a PartnerDispatcher. maxRadiusKm of 0 means
// partners at any distance are eligible.
func NewPartnerDispatcher(maxRadiusKm float64) PartnerDispatcher {
	return PartnerDispatcher{maxRadiusKm: maxRadiusKm}
}

// Dispatch selects the nearest eligible partner for the order and binds them.
//
// rejectedPartnerIDs lists partners who already rejected this order; they are
// excluded so re-dispatch never re-offers an assignment a partner turned down.
//
// Returns ErrVendorLocationUnset when the vendor has no shop location and
// ErrNoAvailablePartner when the eligible pool is empty; in both cases the
// order is left untouched.
func (d PartnerDispatcher) Dispatch(
	o *order.Order,
	v *vendor.Vendor,
	partners []*partner.DeliveryPartner,
	rejectedPartnerIDs []kernel.UUID,
) (*partner.DeliveryPartner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}

	if !v.HasLocation() {
		return nil, ErrVendorLocationUnset
	}

	best, err := d.findNearestPartner(*v.Location(), partners, rejectedPartnerIDs)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findNearestPartner evaluates the pool against the shop location.
//
// Selection criteria:
//   - Skips partners who are not dispatchable or who rejected the order
//   - Skips partners beyond the maximum radius, when one is set
//   - Minimizes haversine distance; ties break on earliest registration
func (d PartnerDispatcher) findNearestPartner(
	shop kernel.GeoPoint,
	partners []*partner.DeliveryPartner,
	rejectedPartnerIDs []kernel.UUID,
) (*partner.DeliveryPartner, error) {
	rejected := make(map[kernel.UUID]struct{}, len(rejectedPartnerIDs))
	for _, id := range rejectedPartnerIDs {
		rejected[id] = struct{}{}
	}

	var (
		best     *partner.DeliveryPartner
		bestDist = math.MaxFloat64
	)

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsDispatchable() {
			continue
		}

		if _, wasRejected := rejected[p.ID()]; wasRejected {
			continue
		}

		dist, err := shop.DistanceKm(*p.Location())
		if err != nil {
			return nil, err
		}

		if d.maxRadiusKm > 0 && dist > d.maxRadiusKm {
			continue
		}

		if dist < bestDist || (dist == bestDist && best != nil && p.CreatedAt().Before(best.CreatedAt())) {
			bestDist = dist
			best = p
		}
	}

	if best == nil {
		return nil, ErrNoAvailablePartner
	}

	return best, nil
}
