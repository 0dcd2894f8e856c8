// Package actor identifies the authenticated caller of an operation and the
// role it acts under. Every mutating operation receives an explicit Actor
// parameter; there is no ambient request context in the core.
package actor

import (
	"fmt"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// Role classifies the caller of an operation.
// Role checks are enforced by the core, not trusted from the transport layer.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	Unknown Role = iota

	// Customer books jobs and may cancel its own jobs.
	Customer

	// Translator accepts, starts, completes and cancels assigned jobs.
	Translator

	// Admin may act on any job and maintain admin metadata.
	Admin

	// SuperAdmin has the same privileges as Admin.
	SuperAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:    "Unknown",
		Customer:   "Customer",
		Translator: "Translator",
		Admin:      "Admin",
		SuperAdmin: "SuperAdmin",
	}
}

// RoleFromString parses a role name as supplied by the transport layer.
// Matching is exact; unrecognized names yield an error.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != Unknown && name == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the role is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == Admin || r == SuperAdmin
}

// Actor is the authenticated identity on whose behalf an operation runs.
// It is a value object; the zero value is invalid.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates a validated Actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor acts under.
func (a Actor) Role() Role {
	return a.role
}

// Validate checks that the actor carries a valid identity and role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
