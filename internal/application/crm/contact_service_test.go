package crm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockContactRepository is a mock implementation of crm.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*crm.Contact, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Contact), args.Error(1)
}

func (m *MockContactRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]crm.Contact, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]crm.Contact), args.Error(1)
}

func (m *MockContactRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *crm.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockTagRepository is a mock implementation of crm.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*crm.Tag, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Tag), args.Error(1)
}

func (m *MockTagRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]crm.Tag, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]crm.Tag), args.Error(1)
}

func (m *MockTagRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepository) Save(ctx context.Context, tag *crm.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockTagRepository) Attach(ctx context.Context, assoc crm.ContactTag) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}

func (m *MockTagRepository) Detach(ctx context.Context, contactID, tagID uuid.UUID) error {
	args := m.Called(ctx, contactID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) FindByContact(ctx context.Context, contactID uuid.UUID) ([]crm.Tag, error) {
	args := m.Called(ctx, contactID)
	return args.Get(0).([]crm.Tag), args.Error(1)
}

// =============================================================================
// ContactService Tests
// =============================================================================

func newContactService() (*ContactService, *MockContactRepository, *MockTagRepository) {
	contactRepo := new(MockContactRepository)
	tagRepo := new(MockTagRepository)
	return NewContactService(contactRepo, tagRepo), contactRepo, tagRepo
}

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("creates contact with all fields", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()
		contactRepo.On("Save", ctx, mock.AnythingOfType("*crm.Contact")).Return(nil)

		resp, err := svc.Create(ctx, ownerID, CreateContactRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "Jane@Example.com",
			Phone:     "+1 (555) 123-4567",
			Company:   "Acme",
			Status:    "prospect",
			Notes:     "met at conference",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane", resp.FirstName)
		assert.Equal(t, "jane@example.com", resp.Email)
		assert.Equal(t, "prospect", resp.Status)
		assert.Equal(t, "Jane Doe", resp.FullName)
		contactRepo.AssertExpectations(t)
	})

	t.Run("status defaults to lead", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()
		contactRepo.On("Save", ctx, mock.AnythingOfType("*crm.Contact")).Return(nil)

		resp, err := svc.Create(ctx, ownerID, CreateContactRequest{
			FirstName: "Jane",
			LastName:  "Doe",
		})
		require.NoError(t, err)
		assert.Equal(t, "lead", resp.Status)
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		_, err := svc.Create(ctx, uuid.Nil, CreateContactRequest{
			FirstName: "Jane",
			LastName:  "Doe",
		})
		assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
		contactRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		svc, _, _ := newContactService()

		_, err := svc.Create(ctx, ownerID, CreateContactRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "not-an-email",
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
	})

	t.Run("rejects overlong company without save", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		_, err := svc.Create(ctx, ownerID, CreateContactRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Company:   strings.Repeat("a", 201),
		})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COMPANY", domainErr.Code)
		contactRepo.AssertNotCalled(t, "Save")
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()
		contactRepo.On("Save", ctx, mock.AnythingOfType("*crm.Contact")).Return(errors.New("db down"))

		_, err := svc.Create(ctx, ownerID, CreateContactRequest{
			FirstName: "Jane",
			LastName:  "Doe",
		})
		assert.Error(t, err)
	})
}

func TestContactService_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("returns contact with tags", func(t *testing.T) {
		svc, contactRepo, tagRepo := newContactService()

		contact, err := crm.NewContact(ownerID, "Jane", "Doe", crm.ContactStatusCustomer)
		require.NoError(t, err)
		tag, err := crm.NewTag(ownerID, "vip", "#ff0000")
		require.NoError(t, err)

		contactRepo.On("FindByIDForOwner", ctx, ownerID, contact.ID).Return(contact, nil)
		tagRepo.On("FindByContact", ctx, contact.ID).Return([]crm.Tag{*tag}, nil)

		resp, err := svc.GetByID(ctx, ownerID, contact.ID)
		require.NoError(t, err)
		assert.Equal(t, contact.ID, resp.ID)
		require.Len(t, resp.Tags, 1)
		assert.Equal(t, "vip", resp.Tags[0].Name)
	})

	t.Run("not found for another owner's contact", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()
		contactID := uuid.New()
		contactRepo.On("FindByIDForOwner", ctx, ownerID, contactID).Return(nil, shared.ErrNotFound)

		_, err := svc.GetByID(ctx, ownerID, contactID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("applies defaults and returns page", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		contact, err := crm.NewContact(ownerID, "Jane", "Doe", "")
		require.NoError(t, err)

		expectedFilter := shared.Filter{
			Page: 1, PageSize: 20,
			OrderBy: "created_at", OrderDir: "desc",
			Filters: map[string]any{},
		}
		contactRepo.On("FindAllForOwner", ctx, ownerID, expectedFilter).Return([]crm.Contact{*contact}, nil)
		contactRepo.On("CountForOwner", ctx, ownerID, expectedFilter).Return(int64(1), nil)

		page, err := svc.List(ctx, ownerID, ContactListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, 1, page.Page)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Jane", page.Items[0].FirstName)
	})

	t.Run("passes search and status filter through", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		expectedFilter := shared.Filter{
			Page: 2, PageSize: 10,
			OrderBy: "created_at", OrderDir: "desc",
			Search:  "acme",
			Filters: map[string]any{"status": "customer"},
		}
		contactRepo.On("FindAllForOwner", ctx, ownerID, expectedFilter).Return([]crm.Contact{}, nil)
		contactRepo.On("CountForOwner", ctx, ownerID, expectedFilter).Return(int64(0), nil)

		page, err := svc.List(ctx, ownerID, ContactListFilter{
			Search: "acme", Status: "customer", Page: 2, PageSize: 10,
		})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		contactRepo.AssertExpectations(t)
	})
}

func TestContactService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		contact, err := crm.NewContact(ownerID, "Jane", "Doe", "")
		require.NoError(t, err)
		contactRepo.On("FindByIDForOwner", ctx, ownerID, contact.ID).Return(contact, nil)
		contactRepo.On("Save", ctx, contact).Return(nil)

		company := "Acme"
		status := "customer"
		resp, err := svc.Update(ctx, ownerID, contact.ID, UpdateContactRequest{
			Company: &company,
			Status:  &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme", resp.Company)
		assert.Equal(t, "customer", resp.Status)
		assert.Equal(t, "Jane", resp.FirstName, "unspecified fields are untouched")
	})

	t.Run("rename uses current value for the missing half", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		contact, err := crm.NewContact(ownerID, "Jane", "Doe", "")
		require.NoError(t, err)
		contactRepo.On("FindByIDForOwner", ctx, ownerID, contact.ID).Return(contact, nil)
		contactRepo.On("Save", ctx, contact).Return(nil)

		first := "Janet"
		resp, err := svc.Update(ctx, ownerID, contact.ID, UpdateContactRequest{FirstName: &first})
		require.NoError(t, err)
		assert.Equal(t, "Janet Doe", resp.FullName)
	})

	t.Run("overlong company fails without save", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		contact, err := crm.NewContact(ownerID, "Jane", "Doe", "")
		require.NoError(t, err)
		contactRepo.On("FindByIDForOwner", ctx, ownerID, contact.ID).Return(contact, nil)

		company := strings.Repeat("a", 201)
		_, err = svc.Update(ctx, ownerID, contact.ID, UpdateContactRequest{Company: &company})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COMPANY", domainErr.Code)
		contactRepo.AssertNotCalled(t, "Save")
	})

	t.Run("invalid status fails without save", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()

		contact, err := crm.NewContact(ownerID, "Jane", "Doe", "")
		require.NoError(t, err)
		contactRepo.On("FindByIDForOwner", ctx, ownerID, contact.ID).Return(contact, nil)

		bad := "archived"
		_, err = svc.Update(ctx, ownerID, contact.ID, UpdateContactRequest{Status: &bad})
		require.Error(t, err)
		contactRepo.AssertNotCalled(t, "Save")
	})
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	contactID := uuid.New()

	t.Run("deletes contact", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()
		contactRepo.On("DeleteForOwner", ctx, ownerID, contactID).Return(nil)

		require.NoError(t, svc.Delete(ctx, ownerID, contactID))
		contactRepo.AssertExpectations(t)
	})

	t.Run("not found propagates", func(t *testing.T) {
		svc, contactRepo, _ := newContactService()
		contactRepo.On("DeleteForOwner", ctx, ownerID, contactID).Return(shared.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, ownerID, contactID), shared.ErrNotFound)
	})

	t.Run("rejects anonymous caller", func(t *testing.T) {
		svc, _, _ := newContactService()
		assert.ErrorIs(t, svc.Delete(ctx, uuid.Nil, contactID), shared.ErrNotAuthenticated)
	})
}
