package crm

import (
	"context"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
)

// TagService handles tag management and tag assignment on contacts
type TagService struct {
	tagRepo     crm.TagRepository
	contactRepo crm.ContactRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo crm.TagRepository, contactRepo crm.ContactRepository) *TagService {
	return &TagService{
		tagRepo:     tagRepo,
		contactRepo: contactRepo,
	}
}

// Create creates a new tag owned by the caller
func (s *TagService) Create(ctx context.Context, ownerID uuid.UUID, req CreateTagRequest) (*TagResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	exists, err := s.tagRepo.ExistsByName(ctx, ownerID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Tag with this name already exists")
	}

	tag, err := crm.NewTag(ownerID, req.Name, req.Color)
	if err != nil {
		return nil, err
	}

	if err := s.tagRepo.Save(ctx, tag); err != nil {
		return nil, err
	}

	response := ToTagResponse(tag)
	return &response, nil
}

// List returns the caller's tags ordered by name
func (s *TagService) List(ctx context.Context, ownerID uuid.UUID) ([]TagResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	tags, err := s.tagRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return ToTagResponses(tags), nil
}

// Delete removes a tag. Assignments to contacts are removed by the
// database via ON DELETE CASCADE.
func (s *TagService) Delete(ctx context.Context, ownerID, tagID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return shared.ErrNotAuthenticated
	}
	return s.tagRepo.DeleteForOwner(ctx, ownerID, tagID)
}

// Attach assigns a tag to a contact. Both must belong to the caller.
// Attaching an already-assigned tag fails with ALREADY_EXISTS.
func (s *TagService) Attach(ctx context.Context, ownerID, contactID, tagID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return shared.ErrNotAuthenticated
	}

	if _, err := s.contactRepo.FindByIDForOwner(ctx, ownerID, contactID); err != nil {
		return err
	}
	if _, err := s.tagRepo.FindByIDForOwner(ctx, ownerID, tagID); err != nil {
		return err
	}

	return s.tagRepo.Attach(ctx, crm.NewContactTag(contactID, tagID))
}

// Detach removes a tag assignment from a contact
func (s *TagService) Detach(ctx context.Context, ownerID, contactID, tagID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return shared.ErrNotAuthenticated
	}

	if _, err := s.contactRepo.FindByIDForOwner(ctx, ownerID, contactID); err != nil {
		return err
	}

	return s.tagRepo.Detach(ctx, contactID, tagID)
}

// ListForContact returns the tags assigned to a contact
func (s *TagService) ListForContact(ctx context.Context, ownerID, contactID uuid.UUID) ([]TagResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	if _, err := s.contactRepo.FindByIDForOwner(ctx, ownerID, contactID); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.FindByContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	return ToTagResponses(tags), nil
}
