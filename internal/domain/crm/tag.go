package crm

import (
	"regexp"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Tag represents a user-owned label that can be attached to any of the
// owner's contacts. Tags are shared across contacts via ContactTag
// association records.
type Tag struct {
	shared.OwnedAggregateRoot
	Name  string
	Color string
}

// ContactTag is the association entity linking one contact to one tag.
// The pair is unique: attaching the same tag to a contact twice is a
// conflict enforced by the storage schema.
type ContactTag struct {
	ContactID uuid.UUID
	TagID     uuid.UUID
	CreatedAt time.Time
}

// DefaultTagColor is used when no display color is supplied
const DefaultTagColor = "#6b7280"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NewTag creates a new tag owned by the given user
func NewTag(ownerID uuid.UUID, name, color string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tag name cannot be empty")
	}
	if len(name) > 50 {
		return nil, shared.NewDomainError("INVALID_NAME", "Tag name cannot exceed 50 characters")
	}

	if color == "" {
		color = DefaultTagColor
	}
	if err := validateTagColor(color); err != nil {
		return nil, err
	}

	tag := &Tag{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               name,
		Color:              strings.ToLower(color),
	}

	tag.AddDomainEvent(NewTagCreatedEvent(tag))

	return tag, nil
}

// Rename updates the tag's name
func (t *Tag) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tag name cannot be empty")
	}
	if len(name) > 50 {
		return shared.NewDomainError("INVALID_NAME", "Tag name cannot exceed 50 characters")
	}

	t.Name = name
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// SetColor updates the tag's display color
func (t *Tag) SetColor(color string) error {
	if err := validateTagColor(color); err != nil {
		return err
	}

	t.Color = strings.ToLower(color)
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// NewContactTag creates a new association between a contact and a tag
func NewContactTag(contactID, tagID uuid.UUID) ContactTag {
	return ContactTag{
		ContactID: contactID,
		TagID:     tagID,
		CreatedAt: time.Now(),
	}
}

func validateTagColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return shared.NewDomainError("INVALID_COLOR", "Color must be a hex value like #3b82f6")
	}
	return nil
}
