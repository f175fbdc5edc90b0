package identity

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TokenPurpose identifies what an action token may be used for
type TokenPurpose string

const (
	TokenPurposeEmailConfirmation TokenPurpose = "email_confirmation"
	TokenPurposePasswordReset     TokenPurpose = "password_reset"
)

// ActionToken is a single-use expiring token mailed to a user to carry
// out an out-of-band action (confirm an email address, reset a password).
type ActionToken struct {
	shared.BaseEntity
	UserID    uuid.UUID
	Token     string
	Purpose   TokenPurpose
	ExpiresAt time.Time
	UsedAt    *time.Time
}

// NewActionToken creates a new action token for the given user and purpose
func NewActionToken(userID uuid.UUID, purpose TokenPurpose, ttl time.Duration) (*ActionToken, error) {
	if purpose != TokenPurposeEmailConfirmation && purpose != TokenPurposePasswordReset {
		return nil, shared.NewDomainError("INVALID_TOKEN_PURPOSE", "Unknown token purpose")
	}
	if ttl <= 0 {
		return nil, shared.NewDomainError("INVALID_TOKEN_TTL", "Token TTL must be positive")
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, shared.NewDomainError("TOKEN_GENERATION_ERROR", "Failed to generate token")
	}

	return &ActionToken{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Token:      hex.EncodeToString(raw),
		Purpose:    purpose,
		ExpiresAt:  time.Now().Add(ttl),
	}, nil
}

// IsExpired reports whether the token has passed its expiry
func (t *ActionToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// IsUsed reports whether the token has already been consumed
func (t *ActionToken) IsUsed() bool {
	return t.UsedAt != nil
}

// Consume marks the token as used.
// A token can be consumed exactly once, and only before expiry.
func (t *ActionToken) Consume() error {
	if t.IsUsed() {
		return shared.NewDomainError("TOKEN_USED", "Token has already been used")
	}
	if t.IsExpired() {
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	}

	now := time.Now()
	t.UsedAt = &now
	t.UpdatedAt = now

	return nil
}
