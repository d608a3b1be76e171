// Package request provides the DeliveryRequest aggregate and the append-only
// Response record for the partner assignment protocol.
//
// A request binds one partner to one order for a single assignment attempt.
// An order has at most one non-terminal request at a time. Responses are
// append-only and unique per (request, partner): the first answer stands and a
// duplicate surfaces ErrAlreadyResponded.
package request
