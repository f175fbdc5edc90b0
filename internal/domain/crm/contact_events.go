package crm

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeContact  = "Contact"
	AggregateTypeActivity = "Activity"
	AggregateTypeTag      = "Tag"
)

// Event type constants
const (
	EventTypeContactCreated       = "ContactCreated"
	EventTypeContactUpdated       = "ContactUpdated"
	EventTypeContactStatusChanged = "ContactStatusChanged"
	EventTypeContactDeleted       = "ContactDeleted"
	EventTypeActivityLogged       = "ActivityLogged"
	EventTypeTagCreated           = "TagCreated"
	EventTypeTagAttached          = "TagAttached"
	EventTypeTagDetached          = "TagDetached"
)

// ContactCreatedEvent is published when a new contact is created
type ContactCreatedEvent struct {
	shared.BaseDomainEvent
	ContactID uuid.UUID     `json:"contact_id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Status    ContactStatus `json:"status"`
}

// NewContactCreatedEvent creates a new ContactCreatedEvent
func NewContactCreatedEvent(contact *Contact) *ContactCreatedEvent {
	return &ContactCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContactCreated, AggregateTypeContact, contact.ID),
		ContactID:       contact.ID,
		OwnerID:         contact.OwnerID,
		FirstName:       contact.FirstName,
		LastName:        contact.LastName,
		Status:          contact.Status,
	}
}

// ContactUpdatedEvent is published when a contact is updated
type ContactUpdatedEvent struct {
	shared.BaseDomainEvent
	ContactID uuid.UUID `json:"contact_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// NewContactUpdatedEvent creates a new ContactUpdatedEvent
func NewContactUpdatedEvent(contact *Contact) *ContactUpdatedEvent {
	return &ContactUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContactUpdated, AggregateTypeContact, contact.ID),
		ContactID:       contact.ID,
		FirstName:       contact.FirstName,
		LastName:        contact.LastName,
	}
}

// ContactStatusChangedEvent is published when a contact's status changes
type ContactStatusChangedEvent struct {
	shared.BaseDomainEvent
	ContactID uuid.UUID     `json:"contact_id"`
	OldStatus ContactStatus `json:"old_status"`
	NewStatus ContactStatus `json:"new_status"`
}

// NewContactStatusChangedEvent creates a new ContactStatusChangedEvent
func NewContactStatusChangedEvent(contact *Contact, oldStatus, newStatus ContactStatus) *ContactStatusChangedEvent {
	return &ContactStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContactStatusChanged, AggregateTypeContact, contact.ID),
		ContactID:       contact.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// ActivityLoggedEvent is published when an activity is logged against a contact
type ActivityLoggedEvent struct {
	shared.BaseDomainEvent
	ActivityID uuid.UUID    `json:"activity_id"`
	ContactID  uuid.UUID    `json:"contact_id"`
	Type       ActivityType `json:"activity_type"`
}

// NewActivityLoggedEvent creates a new ActivityLoggedEvent
func NewActivityLoggedEvent(activity *Activity) *ActivityLoggedEvent {
	return &ActivityLoggedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeActivityLogged, AggregateTypeActivity, activity.ID),
		ActivityID:      activity.ID,
		ContactID:       activity.ContactID,
		Type:            activity.Type,
	}
}

// TagCreatedEvent is published when a new tag is created
type TagCreatedEvent struct {
	shared.BaseDomainEvent
	TagID uuid.UUID `json:"tag_id"`
	Name  string    `json:"name"`
}

// NewTagCreatedEvent creates a new TagCreatedEvent
func NewTagCreatedEvent(tag *Tag) *TagCreatedEvent {
	return &TagCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTagCreated, AggregateTypeTag, tag.ID),
		TagID:           tag.ID,
		Name:            tag.Name,
	}
}
