package crm

import (
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ActivityType represents the kind of interaction logged against a contact
type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeNote    ActivityType = "note"
)

// Activity represents a single interaction with a contact.
// Activities belong to exactly one contact and are immutable once
// logged; the only lifecycle operation after creation is deletion.
type Activity struct {
	shared.BaseEntity
	ContactID   uuid.UUID
	OwnerID     uuid.UUID
	Type        ActivityType
	Description string
	OccurredAt  time.Time
}

// NewActivity logs a new activity against a contact
func NewActivity(ownerID, contactID uuid.UUID, activityType ActivityType, description string, occurredAt time.Time) (*Activity, error) {
	if contactID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Activity must belong to a contact")
	}
	if err := validateActivityType(activityType); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if len(description) > 2000 {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 2000 characters")
	}

	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &Activity{
		BaseEntity:  shared.NewBaseEntity(),
		ContactID:   contactID,
		OwnerID:     ownerID,
		Type:        activityType,
		Description: description,
		OccurredAt:  occurredAt,
	}, nil
}

// IsOwnedBy reports whether the activity belongs to the given user
func (a *Activity) IsOwnedBy(userID uuid.UUID) bool {
	return a.OwnerID == userID
}

func validateActivityType(t ActivityType) error {
	switch t {
	case ActivityTypeCall, ActivityTypeMeeting, ActivityTypeEmail, ActivityTypeNote:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Activity type must be one of 'call', 'meeting', 'email', 'note'")
	}
}
