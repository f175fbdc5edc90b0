package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
)

// GormActivityRepository implements ActivityRepository using GORM
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GormActivityRepository
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// FindByIDForOwner finds an activity by ID within the owner's records
func (r *GormActivityRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*crm.Activity, error) {
	var model models.ActivityModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByContact finds all activities logged against a contact, most recent first
func (r *GormActivityRepository) FindByContact(ctx context.Context, ownerID, contactID uuid.UUID) ([]crm.Activity, error) {
	var activityModels []models.ActivityModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND contact_id = ?", ownerID, contactID).
		Order("occurred_at DESC").
		Find(&activityModels).Error; err != nil {
		return nil, err
	}

	activities := make([]crm.Activity, len(activityModels))
	for i, model := range activityModels {
		activities[i] = *model.ToDomain()
	}
	return activities, nil
}

// Save creates an activity
func (r *GormActivityRepository) Save(ctx context.Context, activity *crm.Activity) error {
	model := models.ActivityModelFromDomain(activity)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForOwner deletes an activity within the owner's records
func (r *GormActivityRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ActivityModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormActivityRepository implements ActivityRepository
var _ crm.ActivityRepository = (*GormActivityRepository)(nil)
