package kernel

import (
	"errors"
	"fmt"

	"quickbasket/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when using an improperly initialized Actor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role identifies which of the platform's actor classes an authenticated user
// belongs to. Roles are supplied by the identity collaborator together with the
// user id; the core never trusts a client-supplied role claim.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders and may cancel them while still dispatchable.
	RoleCustomer

	// RoleVendor reviews pending orders and triggers dispatch.
	RoleVendor

	// RoleDeliveryPartner responds to assignments and progresses deliveries.
	RoleDeliveryPartner

	// RoleAdmin may override cancellation and purge terminal orders.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleCustomer:        "customer",
		RoleVendor:          "vendor",
		RoleDeliveryPartner: "delivery_partner",
		RoleAdmin:           "admin",
	}
}

// RoleFromString parses a role name as supplied by the identity collaborator.
// Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Actor is the authenticated party performing a core operation. It is an
// unforgeable input: the id and role come from the identity collaborator, never
// from the request body. Every mutating operation checks the actor against the
// authority matrix for the transition it drives.
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from the identity collaborator's output.
// Both the user id and the role must be valid.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role}, nil
}

// Validate ensures the Actor was created through the constructor.
func (a Actor) Validate() error {
	if a.role == RoleUnknown {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the acting user's id.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the acting user's role.
func (a Actor) Role() Role {
	return a.role
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}
