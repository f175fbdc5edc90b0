package crm

import (
	"context"

	"github.com/google/uuid"
)

// ActivityRepository defines the interface for activity persistence
type ActivityRepository interface {
	// FindByIDForOwner finds an activity by ID within the owner's records
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Activity, error)

	// FindByContact finds all activities logged against a contact,
	// ordered by occurrence timestamp descending
	FindByContact(ctx context.Context, ownerID, contactID uuid.UUID) ([]Activity, error)

	// Save creates an activity
	Save(ctx context.Context, activity *Activity) error

	// DeleteForOwner deletes an activity within the owner's records.
	// Returns ErrNotFound when no row matched.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
