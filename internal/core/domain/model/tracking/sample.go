package tracking

import (
	"errors"
	"time"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/pkg/errs"
)

// ErrSampleIsNotConstructed is returned when a Sample was not created through
// a constructor.
var ErrSampleIsNotConstructed = errors.New("Sample must be created via NewSample constructor")

// Sample is one append-only position report for an order in transit. Samples
// are never updated in place; the live view is whichever sample carries the
// greatest recordedAt, so late-arriving older reports can never move the
// marker backwards.
type Sample struct {
	id         kernel.UUID
	orderID    kernel.UUID
	partnerID  kernel.UUID
	point      kernel.GeoPoint
	recordedAt time.Time

	isConstructed bool
}

// NewSample records a position report. The recording time comes from the
// reporting client so ordering survives network reordering; a zero time is
// rejected.
func NewSample(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID kernel.UUID,
	point kernel.GeoPoint,
	recordedAt time.Time,
) (*Sample, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		partnerID.Validate(),
		point.Validate(),
	); err != nil {
		return nil, err
	}

	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recordedAt")
	}

	return &Sample{
		id:            id,
		orderID:       orderID,
		partnerID:     partnerID,
		point:         point,
		recordedAt:    recordedAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreSample reconstructs a sample from persistence.
func RestoreSample(
	id kernel.UUID,
	orderID kernel.UUID,
	partnerID kernel.UUID,
	point kernel.GeoPoint,
	recordedAt time.Time,
) (*Sample, error) {
	return NewSample(id, orderID, partnerID, point, recordedAt)
}

// Validate ensures the Sample was created through a constructor.
func (s *Sample) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSampleIsNotConstructed
	}
	return nil
}

// ID returns the sample id.
func (s *Sample) ID() kernel.UUID {
	return s.id
}

// OrderID returns the tracked order.
func (s *Sample) OrderID() kernel.UUID {
	return s.orderID
}

// PartnerID returns the reporting partner.
func (s *Sample) PartnerID() kernel.UUID {
	return s.partnerID
}

// Point returns the reported position.
func (s *Sample) Point() kernel.GeoPoint {
	return s.point
}

// RecordedAt returns the client-side recording time.
func (s *Sample) RecordedAt() time.Time {
	return s.recordedAt
}

// IsNewerThan reports whether this sample should supersede other in the live
// view (strictly greater recordedAt).
func (s *Sample) IsNewerThan(other *Sample) bool {
	return other == nil || s.recordedAt.After(other.recordedAt)
}
