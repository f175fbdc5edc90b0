package crm

import (
	"context"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
)

// ContactService handles contact-related business operations. Every
// operation is scoped to the calling user: contacts belonging to other
// users are invisible.
type ContactService struct {
	contactRepo crm.ContactRepository
	tagRepo     crm.TagRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo crm.ContactRepository, tagRepo crm.TagRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		tagRepo:     tagRepo,
	}
}

// Create creates a new contact stamped with the calling user as owner
func (s *ContactService) Create(ctx context.Context, ownerID uuid.UUID, req CreateContactRequest) (*ContactResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	contact, err := crm.NewContact(ownerID, req.FirstName, req.LastName, crm.ContactStatus(req.Status))
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		if err := contact.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" {
		if err := contact.SetPhone(req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Company != "" {
		if err := contact.SetCompany(req.Company); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		contact.SetNotes(req.Notes)
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// GetByID retrieves a contact with its tags
func (s *ContactService) GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*ContactResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	contact, err := s.contactRepo.FindByIDForOwner(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.FindByContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	response.Tags = ToTagResponses(tags)
	return &response, nil
}

// List retrieves the caller's contacts with search, filtering and pagination.
// Search matches first name, last name, email and company, case-insensitively.
func (s *ContactService) List(ctx context.Context, ownerID uuid.UUID, filter ContactListFilter) (*shared.Paginated[ContactListResponse], error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	contacts, err := s.contactRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.contactRepo.CountForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToContactListResponses(contacts), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update applies a partial update to a contact
func (s *ContactService) Update(ctx context.Context, ownerID, contactID uuid.UUID, req UpdateContactRequest) (*ContactResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	contact, err := s.contactRepo.FindByIDForOwner(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil || req.LastName != nil {
		firstName := contact.FirstName
		lastName := contact.LastName
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if err := contact.Rename(firstName, lastName); err != nil {
			return nil, err
		}
	}

	if req.Email != nil {
		if err := contact.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil {
		if err := contact.SetPhone(*req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Company != nil {
		if err := contact.SetCompany(*req.Company); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := contact.SetStatus(crm.ContactStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		contact.SetNotes(*req.Notes)
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// Delete removes a contact. Activities and tag assignments are removed by
// the database via ON DELETE CASCADE.
func (s *ContactService) Delete(ctx context.Context, ownerID, contactID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return shared.ErrNotAuthenticated
	}
	return s.contactRepo.DeleteForOwner(ctx, ownerID, contactID)
}
