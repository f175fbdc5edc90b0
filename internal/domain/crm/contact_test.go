package crm

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates contact successfully", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)

		require.NoError(t, err)
		assert.NotNil(t, contact)
		assert.Equal(t, "Jane", contact.FirstName)
		assert.Equal(t, "Doe", contact.LastName)
		assert.Equal(t, ContactStatusLead, contact.Status)
		assert.Equal(t, ownerID, contact.OwnerID)
		assert.Len(t, contact.GetDomainEvents(), 1)
	})

	t.Run("defaults status to lead", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", "")

		require.NoError(t, err)
		assert.Equal(t, ContactStatusLead, contact.Status)
	})

	t.Run("trims name whitespace", func(t *testing.T) {
		contact, err := NewContact(ownerID, "  Jane ", " Doe  ", ContactStatusLead)

		require.NoError(t, err)
		assert.Equal(t, "Jane", contact.FirstName)
		assert.Equal(t, "Doe", contact.LastName)
	})

	t.Run("fails with empty first name", func(t *testing.T) {
		contact, err := NewContact(ownerID, "", "Doe", ContactStatusLead)

		assert.Error(t, err)
		assert.Nil(t, contact)
		assert.Contains(t, err.Error(), "First name cannot be empty")
	})

	t.Run("fails with invalid status", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", "vip")

		assert.Error(t, err)
		assert.Nil(t, contact)
	})
}

func TestContact_SetEmail(t *testing.T) {
	ownerID := uuid.New()

	t.Run("sets and lowercases email", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)

		err = contact.SetEmail("Jane.Doe@Example.COM")

		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", contact.Email)
	})

	t.Run("allows clearing email", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)
		require.NoError(t, contact.SetEmail("jane@example.com"))

		err = contact.SetEmail("")

		require.NoError(t, err)
		assert.Empty(t, contact.Email)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)

		err = contact.SetEmail("not-an-email")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email format")
	})
}

func TestContact_SetPhone(t *testing.T) {
	ownerID := uuid.New()

	t.Run("accepts common phone formats", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)

		for _, phone := range []string{"+1 (555) 123-4567", "555 1234", "13800138000"} {
			assert.NoError(t, contact.SetPhone(phone))
			assert.Equal(t, phone, contact.Phone)
		}
	})

	t.Run("rejects letters in phone", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)

		assert.Error(t, contact.SetPhone("call me"))
	})
}

func TestContact_SetStatus(t *testing.T) {
	ownerID := uuid.New()

	t.Run("records status change event", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)
		contact.ClearDomainEvents()
		versionBefore := contact.GetVersion()

		err = contact.SetStatus(ContactStatusCustomer)

		require.NoError(t, err)
		assert.Equal(t, ContactStatusCustomer, contact.Status)
		assert.Equal(t, versionBefore+1, contact.GetVersion())
		require.Len(t, contact.GetDomainEvents(), 1)
		event, ok := contact.GetDomainEvents()[0].(*ContactStatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, ContactStatusLead, event.OldStatus)
		assert.Equal(t, ContactStatusCustomer, event.NewStatus)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)
		contact.ClearDomainEvents()

		require.NoError(t, contact.SetStatus(ContactStatusLead))
		assert.Empty(t, contact.GetDomainEvents())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
		require.NoError(t, err)

		assert.Error(t, contact.SetStatus("archived"))
	})
}

func TestContact_FullName(t *testing.T) {
	contact, err := NewContact(uuid.New(), "Jane", "Doe", ContactStatusLead)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", contact.FullName())
}

func TestContact_IsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	contact, err := NewContact(ownerID, "Jane", "Doe", ContactStatusLead)
	require.NoError(t, err)

	assert.True(t, contact.IsOwnedBy(ownerID))
	assert.False(t, contact.IsOwnedBy(uuid.New()))
}
