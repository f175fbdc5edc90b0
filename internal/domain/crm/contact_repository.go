package crm

import (
	"context"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactRepository defines the interface for contact persistence.
// All queries are scoped to an owner: a user can only observe and
// mutate contacts stamped with their own ID.
type ContactRepository interface {
	// FindByIDForOwner finds a contact by ID within the owner's records
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Contact, error)

	// FindAllForOwner finds all of the owner's contacts matching the filter.
	// Filter.Search matches case-insensitively against first name, last
	// name, email, and company; Filters["status"] applies an equality match.
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Contact, error)

	// CountForOwner counts the owner's contacts matching the filter
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a contact
	Save(ctx context.Context, contact *Contact) error

	// DeleteForOwner deletes a contact within the owner's records.
	// Associated activities and tag links are removed by the schema's
	// cascade rules. Returns ErrNotFound when no row matched.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
