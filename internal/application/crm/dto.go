package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/crm/backend/internal/domain/crm"
)

// =============================================================================
// Contact DTOs
// =============================================================================

// CreateContactRequest represents a request to create a new contact
type CreateContactRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	Phone     string `json:"phone" binding:"max=50"`
	Company   string `json:"company" binding:"max=200"`
	Status    string `json:"status" binding:"omitempty,oneof=lead prospect customer inactive"`
	Notes     string `json:"notes"`
}

// UpdateContactRequest represents a partial update to a contact
type UpdateContactRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Company   *string `json:"company" binding:"omitempty,max=200"`
	Status    *string `json:"status" binding:"omitempty,oneof=lead prospect customer inactive"`
	Notes     *string `json:"notes"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID        uuid.UUID     `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	FullName  string        `json:"full_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Company   string        `json:"company"`
	Status    string        `json:"status"`
	Notes     string        `json:"notes"`
	Tags      []TagResponse `json:"tags,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Version   int           `json:"version"`
}

// ContactListResponse represents a list item for contacts
type ContactListResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListFilter represents filter options for the contact list
type ContactListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=lead prospect customer inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToContactResponse converts a domain Contact to ContactResponse
func ToContactResponse(c *crm.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Status:    string(c.Status),
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
}

// ToContactListResponse converts a domain Contact to ContactListResponse
func ToContactListResponse(c *crm.Contact) ContactListResponse {
	return ContactListResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

// ToContactListResponses converts a slice of domain Contacts
func ToContactListResponses(contacts []crm.Contact) []ContactListResponse {
	responses := make([]ContactListResponse, len(contacts))
	for i := range contacts {
		responses[i] = ToContactListResponse(&contacts[i])
	}
	return responses
}

// =============================================================================
// Activity DTOs
// =============================================================================

// LogActivityRequest represents a request to log an activity on a contact
type LogActivityRequest struct {
	Type        string     `json:"type" binding:"required,oneof=call meeting email note"`
	Description string     `json:"description" binding:"required,min=1,max=2000"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

// ActivityResponse represents an activity in API responses
type ActivityResponse struct {
	ID          uuid.UUID `json:"id"`
	ContactID   uuid.UUID `json:"contact_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToActivityResponse converts a domain Activity to ActivityResponse
func ToActivityResponse(a *crm.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID,
		ContactID:   a.ContactID,
		Type:        string(a.Type),
		Description: a.Description,
		OccurredAt:  a.OccurredAt,
		CreatedAt:   a.CreatedAt,
	}
}

// ToActivityResponses converts a slice of domain Activities
func ToActivityResponses(activities []crm.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = ToActivityResponse(&activities[i])
	}
	return responses
}

// =============================================================================
// Tag DTOs
// =============================================================================

// CreateTagRequest represents a request to create a new tag
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color" binding:"omitempty,len=7"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTagResponse converts a domain Tag to TagResponse
func ToTagResponse(t *crm.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

// ToTagResponses converts a slice of domain Tags
func ToTagResponses(tags []crm.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i := range tags {
		responses[i] = ToTagResponse(&tags[i])
	}
	return responses
}
