package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations
const pgUniqueViolation = "23505"

// GormTagRepository implements TagRepository using GORM
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GormTagRepository
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// FindByIDForOwner finds a tag by ID within the owner's records
func (r *GormTagRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*crm.Tag, error) {
	var model models.TagModel
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

// FindAllForOwner finds all of the owner's tags, ordered by name
func (r *GormTagRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID) ([]crm.Tag, error) {
	var tagModels []models.TagModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]crm.Tag, len(tagModels))
	for i, model := range tagModels {
		tags[i] = *model.ToDomain()
	}
	return tags, nil
}

// ExistsByName checks if the owner already has a tag with the name
func (r *GormTagRepository) ExistsByName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a tag
func (r *GormTagRepository) Save(ctx context.Context, tag *crm.Tag) error {
	model := models.TagModelFromDomain(tag)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForOwner deletes a tag within the owner's records.
// Contact associations are removed by the schema's cascade rules.
func (r *GormTagRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TagModel{}, "owner_id = ? AND id = ?", ownerID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Attach links a tag to a contact. The association table's composite
// primary key turns a duplicate attach into ErrAlreadyExists.
func (r *GormTagRepository) Attach(ctx context.Context, assoc crm.ContactTag) error {
	model := models.ContactTagModelFromDomain(assoc)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Detach removes the link between a tag and a contact
func (r *GormTagRepository) Detach(ctx context.Context, contactID, tagID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.ContactTagModel{}, "contact_id = ? AND tag_id = ?", contactID, tagID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByContact returns the tags attached to a contact, ordered by name
func (r *GormTagRepository) FindByContact(ctx context.Context, contactID uuid.UUID) ([]crm.Tag, error) {
	var tagModels []models.TagModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN contact_tags ON contact_tags.tag_id = tags.id").
		Where("contact_tags.contact_id = ?", contactID).
		Order("tags.name ASC").
		Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]crm.Tag, len(tagModels))
	for i, model := range tagModels {
		tags[i] = *model.ToDomain()
	}
	return tags, nil
}

// isUniqueViolation reports whether the error is a PostgreSQL unique
// constraint violation. With TranslateError enabled GORM reports these
// as ErrDuplicatedKey; the raw pgx error is checked for code paths that
// bypass translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Ensure GormTagRepository implements TagRepository
var _ crm.TagRepository = (*GormTagRepository)(nil)
