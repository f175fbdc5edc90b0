package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/crm"
)

// ContactModel is the persistence model for the Contact domain entity.
type ContactModel struct {
	OwnedAggregateModel
	FirstName string            `gorm:"type:varchar(100);not null"`
	LastName  string            `gorm:"type:varchar(100);not null"`
	Email     string            `gorm:"type:varchar(200);index"`
	Phone     string            `gorm:"type:varchar(50)"`
	Company   string            `gorm:"type:varchar(200);index"`
	Status    crm.ContactStatus `gorm:"type:varchar(20);not null;default:'lead';index"`
	Notes     string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact entity.
func (m *ContactModel) ToDomain() *crm.Contact {
	contact := &crm.Contact{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Company:   m.Company,
		Status:    m.Status,
		Notes:     m.Notes,
	}
	m.PopulateOwnedAggregateRoot(&contact.OwnedAggregateRoot)
	return contact
}

// FromDomain populates the persistence model from a domain Contact entity.
func (m *ContactModel) FromDomain(c *crm.Contact) {
	m.FromDomainOwnedAggregateRoot(c.OwnedAggregateRoot)
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Company = c.Company
	m.Status = c.Status
	m.Notes = c.Notes
}

// ContactModelFromDomain creates a new persistence model from a domain Contact entity.
func ContactModelFromDomain(c *crm.Contact) *ContactModel {
	m := &ContactModel{}
	m.FromDomain(c)
	return m
}

// ActivityModel is the persistence model for the Activity domain entity.
type ActivityModel struct {
	BaseModel
	ContactID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	OwnerID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Type        crm.ActivityType `gorm:"type:varchar(20);not null"`
	Description string           `gorm:"type:text;not null"`
	OccurredAt  time.Time        `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ActivityModel) TableName() string {
	return "activities"
}

// ToDomain converts the persistence model to a domain Activity entity.
func (m *ActivityModel) ToDomain() *crm.Activity {
	return &crm.Activity{
		BaseEntity:  m.BaseModel.ToDomain(),
		ContactID:   m.ContactID,
		OwnerID:     m.OwnerID,
		Type:        m.Type,
		Description: m.Description,
		OccurredAt:  m.OccurredAt,
	}
}

// FromDomain populates the persistence model from a domain Activity entity.
func (m *ActivityModel) FromDomain(a *crm.Activity) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.ContactID = a.ContactID
	m.OwnerID = a.OwnerID
	m.Type = a.Type
	m.Description = a.Description
	m.OccurredAt = a.OccurredAt
}

// ActivityModelFromDomain creates a new persistence model from a domain Activity entity.
func ActivityModelFromDomain(a *crm.Activity) *ActivityModel {
	m := &ActivityModel{}
	m.FromDomain(a)
	return m
}

// TagModel is the persistence model for the Tag domain entity.
// The migration enforces per-owner name uniqueness.
type TagModel struct {
	OwnedAggregateModel
	Name  string `gorm:"type:varchar(50);not null;index"`
	Color string `gorm:"type:varchar(7);not null"`
}

// TableName returns the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts the persistence model to a domain Tag entity.
func (m *TagModel) ToDomain() *crm.Tag {
	tag := &crm.Tag{
		Name:  m.Name,
		Color: m.Color,
	}
	m.PopulateOwnedAggregateRoot(&tag.OwnedAggregateRoot)
	return tag
}

// FromDomain populates the persistence model from a domain Tag entity.
func (m *TagModel) FromDomain(t *crm.Tag) {
	m.FromDomainOwnedAggregateRoot(t.OwnedAggregateRoot)
	m.Name = t.Name
	m.Color = t.Color
}

// TagModelFromDomain creates a new persistence model from a domain Tag entity.
func TagModelFromDomain(t *crm.Tag) *TagModel {
	m := &TagModel{}
	m.FromDomain(t)
	return m
}

// ContactTagModel is the persistence model for the contact-tag association.
// The composite primary key makes duplicate assignments impossible.
type ContactTagModel struct {
	ContactID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContactTagModel) TableName() string {
	return "contact_tags"
}

// ToDomain converts the persistence model to a domain ContactTag value.
func (m *ContactTagModel) ToDomain() crm.ContactTag {
	return crm.ContactTag{
		ContactID: m.ContactID,
		TagID:     m.TagID,
		CreatedAt: m.CreatedAt,
	}
}

// ContactTagModelFromDomain creates a new persistence model from a domain ContactTag value.
func ContactTagModelFromDomain(ct crm.ContactTag) *ContactTagModel {
	return &ContactTagModel{
		ContactID: ct.ContactID,
		TagID:     ct.TagID,
		CreatedAt: ct.CreatedAt,
	}
}
