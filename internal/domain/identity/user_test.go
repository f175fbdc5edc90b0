package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates pending user", func(t *testing.T) {
		user, err := NewUser("User@Example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, UserStatusPending, user.Status)
		assert.Nil(t, user.EmailConfirmedAt)
		assert.False(t, user.IsEmailConfirmed())
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.Len(t, user.GetDomainEvents(), 1)
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		user, err := NewUser("not-an-email", "password123")

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("fails with short password", func(t *testing.T) {
		user, err := NewUser("user@example.com", "short")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})
}

func TestNewConfirmedUser(t *testing.T) {
	user, err := NewConfirmedUser("user@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, UserStatusActive, user.Status)
	assert.True(t, user.IsEmailConfirmed())
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("user@example.com", "password123")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("password123"))
	assert.False(t, user.VerifyPassword("wrong-password"))
}

func TestUser_ConfirmEmail(t *testing.T) {
	t.Run("confirms and activates pending user", func(t *testing.T) {
		user, err := NewUser("user@example.com", "password123")
		require.NoError(t, err)

		err = user.ConfirmEmail()

		require.NoError(t, err)
		assert.True(t, user.IsEmailConfirmed())
		assert.Equal(t, UserStatusActive, user.Status)
	})

	t.Run("fails when already confirmed", func(t *testing.T) {
		user, err := NewConfirmedUser("user@example.com", "password123")
		require.NoError(t, err)

		assert.Error(t, user.ConfirmEmail())
	})
}

func TestUser_LoginTracking(t *testing.T) {
	t.Run("locks after max failures", func(t *testing.T) {
		user, err := NewConfirmedUser("user@example.com", "password123")
		require.NoError(t, err)

		locked := false
		for i := 0; i < 3; i++ {
			locked = user.RecordLoginFailure(3, 15*time.Minute)
		}

		assert.True(t, locked)
		assert.True(t, user.IsLocked())
		assert.False(t, user.CanLogin())
	})

	t.Run("expired lock no longer blocks login", func(t *testing.T) {
		user, err := NewConfirmedUser("user@example.com", "password123")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			user.RecordLoginFailure(3, -time.Minute)
		}

		assert.False(t, user.IsLocked())
		assert.True(t, user.CanLogin())
	})

	t.Run("success resets failure tracking", func(t *testing.T) {
		user, err := NewConfirmedUser("user@example.com", "password123")
		require.NoError(t, err)
		user.RecordLoginFailure(5, 15*time.Minute)

		user.RecordLoginSuccess("198.51.100.7")

		assert.Zero(t, user.FailedAttempts)
		assert.Nil(t, user.LockedUntil)
		assert.Equal(t, "198.51.100.7", user.LastLoginIP)
		assert.NotNil(t, user.LastLoginAt)
	})
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewConfirmedUser("user@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("new-password-9"))

	assert.True(t, user.VerifyPassword("new-password-9"))
	assert.False(t, user.VerifyPassword("password123"))
}

func TestUser_ChangePassword(t *testing.T) {
	user, err := NewConfirmedUser("user@example.com", "password123")
	require.NoError(t, err)

	t.Run("fails with wrong current password", func(t *testing.T) {
		err := user.ChangePassword("nope", "new-password-9")
		assert.Error(t, err)
	})

	t.Run("succeeds with correct current password", func(t *testing.T) {
		err := user.ChangePassword("password123", "new-password-9")
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("new-password-9"))
	})
}
