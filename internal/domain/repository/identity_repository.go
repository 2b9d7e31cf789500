// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"varse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdentityNotFound is a domain-specific error returned when an identity is not found.
var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository defines the standard operations for identity persistence.
// The application layer depends on this interface, not the concrete implementation.
type IdentityRepository interface {
	// FindByID retrieves a single identity by its unique ID, with role profiles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByLogin retrieves a single identity whose username OR email matches the login value.
	FindByLogin(ctx context.Context, login string) (*entity.Identity, error)

	// Create persists a new identity. Uniqueness of username and email is
	// enforced by the storage layer; the second writer of a duplicate loses
	// with a conflict error.
	Create(ctx context.Context, identity *entity.Identity) error

	// Update modifies an existing identity.
	Update(ctx context.Context, identity *entity.Identity) error
}
