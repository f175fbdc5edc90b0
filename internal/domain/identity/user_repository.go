package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (case-insensitive)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if a user with the given email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActionTokenRepository defines the interface for action token persistence
type ActionTokenRepository interface {
	// FindByToken finds a token by its opaque value and purpose
	FindByToken(ctx context.Context, token string, purpose TokenPurpose) (*ActionToken, error)

	// Save creates or updates a token
	Save(ctx context.Context, token *ActionToken) error

	// InvalidateForUser marks all unused tokens of the given purpose for a
	// user as used, so only the most recently issued token is honored
	InvalidateForUser(ctx context.Context, userID uuid.UUID, purpose TokenPurpose) error

	// DeleteExpired removes expired tokens
	DeleteExpired(ctx context.Context) (int64, error)
}
