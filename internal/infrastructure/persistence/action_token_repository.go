package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
)

// GormActionTokenRepository implements ActionTokenRepository using GORM
type GormActionTokenRepository struct {
	db *gorm.DB
}

// NewGormActionTokenRepository creates a new GormActionTokenRepository
func NewGormActionTokenRepository(db *gorm.DB) *GormActionTokenRepository {
	return &GormActionTokenRepository{db: db}
}

// FindByToken finds a token by its opaque value and purpose
func (r *GormActionTokenRepository) FindByToken(ctx context.Context, token string, purpose identity.TokenPurpose) (*identity.ActionToken, error) {
	var model models.ActionTokenModel
	if err := r.db.WithContext(ctx).
		Where("token = ? AND purpose = ?", token, purpose).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a token
func (r *GormActionTokenRepository) Save(ctx context.Context, token *identity.ActionToken) error {
	model := models.ActionTokenModelFromDomain(token)
	return r.db.WithContext(ctx).Save(model).Error
}

// InvalidateForUser marks all unused tokens of the given purpose for a
// user as used, so only the most recently issued token is honored
func (r *GormActionTokenRepository) InvalidateForUser(ctx context.Context, userID uuid.UUID, purpose identity.TokenPurpose) error {
	return r.db.WithContext(ctx).
		Model(&models.ActionTokenModel{}).
		Where("user_id = ? AND purpose = ? AND used_at IS NULL", userID, purpose).
		Update("used_at", time.Now()).Error
}

// DeleteExpired removes expired tokens
func (r *GormActionTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&models.ActionTokenModel{}, "expires_at < ?", time.Now())
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure GormActionTokenRepository implements ActionTokenRepository
var _ identity.ActionTokenRepository = (*GormActionTokenRepository)(nil)
