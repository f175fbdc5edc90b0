package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email             string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash      string              `gorm:"type:varchar(100);not null"`
	Status            identity.UserStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	EmailConfirmedAt  *time.Time
	LastLoginAt       *time.Time
	LastLoginIP       string `gorm:"type:varchar(45)"`
	FailedAttempts    int    `gorm:"not null;default:0"`
	LockedUntil       *time.Time
	PasswordChangedAt *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Status:            m.Status,
		EmailConfirmedAt:  m.EmailConfirmedAt,
		LastLoginAt:       m.LastLoginAt,
		LastLoginIP:       m.LastLoginIP,
		FailedAttempts:    m.FailedAttempts,
		LockedUntil:       m.LockedUntil,
		PasswordChangedAt: m.PasswordChangedAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Status = u.Status
	m.EmailConfirmedAt = u.EmailConfirmedAt
	m.LastLoginAt = u.LastLoginAt
	m.LastLoginIP = u.LastLoginIP
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
	m.PasswordChangedAt = u.PasswordChangedAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// ActionTokenModel is the persistence model for single-use action tokens
// (email confirmation, password reset).
type ActionTokenModel struct {
	BaseModel
	UserID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	Token     string                `gorm:"type:varchar(64);not null;uniqueIndex"`
	Purpose   identity.TokenPurpose `gorm:"type:varchar(30);not null;index"`
	ExpiresAt time.Time             `gorm:"not null;index"`
	UsedAt    *time.Time
}

// TableName returns the table name for GORM
func (ActionTokenModel) TableName() string {
	return "action_tokens"
}

// ToDomain converts the persistence model to a domain ActionToken entity.
func (m *ActionTokenModel) ToDomain() *identity.ActionToken {
	return &identity.ActionToken{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Token:      m.Token,
		Purpose:    m.Purpose,
		ExpiresAt:  m.ExpiresAt,
		UsedAt:     m.UsedAt,
	}
}

// FromDomain populates the persistence model from a domain ActionToken entity.
func (m *ActionTokenModel) FromDomain(t *identity.ActionToken) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.UserID = t.UserID
	m.Token = t.Token
	m.Purpose = t.Purpose
	m.ExpiresAt = t.ExpiresAt
	m.UsedAt = t.UsedAt
}

// ActionTokenModelFromDomain creates a new persistence model from a domain ActionToken entity.
func ActionTokenModelFromDomain(t *identity.ActionToken) *ActionTokenModel {
	m := &ActionTokenModel{}
	m.FromDomain(t)
	return m
}
