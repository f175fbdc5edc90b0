package crm

import (
	"context"

	"github.com/google/uuid"
)

// TagRepository defines the interface for tag persistence and the
// contact-tag association
type TagRepository interface {
	// FindByIDForOwner finds a tag by ID within the owner's records
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Tag, error)

	// FindAllForOwner finds all of the owner's tags, ordered by name
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]Tag, error)

	// ExistsByName checks if the owner already has a tag with the name
	ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)

	// Save creates or updates a tag
	Save(ctx context.Context, tag *Tag) error

	// DeleteForOwner deletes a tag within the owner's records.
	// Associations to contacts are removed by the schema's cascade rules.
	// Returns ErrNotFound when no row matched.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error

	// Attach links a tag to a contact.
	// Returns ErrAlreadyExists when the association is already present.
	Attach(ctx context.Context, assoc ContactTag) error

	// Detach removes the link between a tag and a contact.
	// Returns ErrNotFound when no association matched.
	Detach(ctx context.Context, contactID, tagID uuid.UUID) error

	// FindByContact returns the tags attached to a contact, ordered by name
	FindByContact(ctx context.Context, contactID uuid.UUID) ([]Tag, error)
}
