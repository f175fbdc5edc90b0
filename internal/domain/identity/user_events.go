package identity

import (
	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeUserRegistered      = "UserRegistered"
	EventTypeUserEmailConfirmed  = "UserEmailConfirmed"
	EventTypeUserPasswordChanged = "UserPasswordChanged"
	EventTypeUserSignedIn        = "UserSignedIn"
	EventTypeUserSignedOut       = "UserSignedOut"
)

// UserRegisteredEvent is published when a new user registers
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}

// UserEmailConfirmedEvent is published when a user confirms their email
type UserEmailConfirmedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserEmailConfirmedEvent creates a new UserEmailConfirmedEvent
func NewUserEmailConfirmedEvent(user *User) *UserEmailConfirmedEvent {
	return &UserEmailConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserEmailConfirmed, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}

// UserPasswordChangedEvent is published when a user's password changes
type UserPasswordChangedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewUserPasswordChangedEvent creates a new UserPasswordChangedEvent
func NewUserPasswordChangedEvent(user *User) *UserPasswordChangedEvent {
	return &UserPasswordChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserPasswordChanged, AggregateTypeUser, user.ID),
		UserID:          user.ID,
	}
}
