package commands

import (
	"context"

	"quickbasket/internal/core/domain/model/kernel"
	"quickbasket/internal/core/domain/model/order"
	"quickbasket/internal/core/ports"
	"quickbasket/internal/metrics"
)

// notify publishes a change signal after a successful commit. The signal layer
// is advisory: a failed publish never fails the command, consumers reconcile on
// their next read. A nil notifier disables signaling entirely.
func notify(ctx context.Context, notifier ports.ChangeNotifier, change ports.Change) {
	if notifier == nil {
		return
	}

	_ = notifier.Publish(ctx, change)
}

// orderChange builds the change signal for an order, addressed to every actor
// with a stake in it: the customer, the vendor, and the bound partner if any.
func orderChange(o *order.Order) ports.Change {
	scopes := map[ports.Scope]kernel.UUID{
		ports.ScopeCustomer: o.CustomerID(),
		ports.ScopeVendor:   o.VendorID(),
	}

	if o.Partner() != nil {
		scopes[ports.ScopePartner] = *o.Partner()
	}

	metrics.OrderTransitions.WithLabelValues(o.Status().String()).Inc()

	return ports.Change{
		Kind:        ports.ChangeKindOrder,
		ID:          o.ID(),
		OrderStatus: o.Status().String(),
		Scopes:      scopes,
	}
}

// requestChange builds the change signal for a delivery request, addressed to
// the bound partner and the vendor.
func requestChange(requestID, vendorID, partnerID kernel.UUID) ports.Change {
	return ports.Change{
		Kind: ports.ChangeKindRequest,
		ID:   requestID,
		Scopes: map[ports.Scope]kernel.UUID{
			ports.ScopeVendor:  vendorID,
			ports.ScopePartner: partnerID,
		},
	}
}
