package crm

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
)

// ActivityService handles activity logging on contacts
type ActivityService struct {
	activityRepo crm.ActivityRepository
	contactRepo  crm.ContactRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo crm.ActivityRepository, contactRepo crm.ContactRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		contactRepo:  contactRepo,
	}
}

// Log records an activity on a contact the caller owns
func (s *ActivityService) Log(ctx context.Context, ownerID, contactID uuid.UUID, req LogActivityRequest) (*ActivityResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	// The contact must exist and belong to the caller
	if _, err := s.contactRepo.FindByIDForOwner(ctx, ownerID, contactID); err != nil {
		return nil, err
	}

	var occurredAt time.Time
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	activity, err := crm.NewActivity(ownerID, contactID, crm.ActivityType(req.Type), req.Description, occurredAt)
	if err != nil {
		return nil, err
	}

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, err
	}

	response := ToActivityResponse(activity)
	return &response, nil
}

// ListByContact returns a contact's activities, most recent first
func (s *ActivityService) ListByContact(ctx context.Context, ownerID, contactID uuid.UUID) ([]ActivityResponse, error) {
	if ownerID == uuid.Nil {
		return nil, shared.ErrNotAuthenticated
	}

	if _, err := s.contactRepo.FindByIDForOwner(ctx, ownerID, contactID); err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.FindByContact(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	return ToActivityResponses(activities), nil
}

// Delete removes a logged activity
func (s *ActivityService) Delete(ctx context.Context, ownerID, activityID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return shared.ErrNotAuthenticated
	}
	return s.activityRepo.DeleteForOwner(ctx, ownerID, activityID)
}
