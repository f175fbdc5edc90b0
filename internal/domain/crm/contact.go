package crm

import (
	"regexp"
	"strings"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactStatus represents where a contact sits in the sales pipeline
type ContactStatus string

const (
	ContactStatusLead     ContactStatus = "lead"
	ContactStatusProspect ContactStatus = "prospect"
	ContactStatusCustomer ContactStatus = "customer"
	ContactStatusInactive ContactStatus = "inactive"
)

// Contact represents a person or company tracked in the CRM.
// It is the aggregate root for contact operations; activities and tag
// associations belong to it and are removed when it is deleted.
type Contact struct {
	shared.OwnedAggregateRoot
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Status    ContactStatus
	Notes     string
}

// NewContact creates a new contact owned by the given user
func NewContact(ownerID uuid.UUID, firstName, lastName string, status ContactStatus) (*Contact, error) {
	if err := validateName(firstName, "First name"); err != nil {
		return nil, err
	}
	if err := validateName(lastName, "Last name"); err != nil {
		return nil, err
	}
	if status == "" {
		status = ContactStatusLead
	}
	if err := validateContactStatus(status); err != nil {
		return nil, err
	}

	contact := &Contact{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		FirstName:          strings.TrimSpace(firstName),
		LastName:           strings.TrimSpace(lastName),
		Status:             status,
	}

	contact.AddDomainEvent(NewContactCreatedEvent(contact))

	return contact, nil
}

// Rename updates the contact's name fields
func (c *Contact) Rename(firstName, lastName string) error {
	if err := validateName(firstName, "First name"); err != nil {
		return err
	}
	if err := validateName(lastName, "Last name"); err != nil {
		return err
	}

	c.FirstName = strings.TrimSpace(firstName)
	c.LastName = strings.TrimSpace(lastName)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewContactUpdatedEvent(c))

	return nil
}

// SetEmail sets the contact's email address
func (c *Contact) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" {
		if len(email) > 200 {
			return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
		}
		if !contactEmailRegex.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
		}
		email = strings.ToLower(email)
	}

	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetPhone sets the contact's phone number
func (c *Contact) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone != "" {
		if len(phone) > 50 {
			return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
		}
		if !phoneRegex.MatchString(phone) {
			return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
		}
	}

	c.Phone = phone
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetCompany sets the contact's company
func (c *Contact) SetCompany(company string) error {
	if len(company) > 200 {
		return shared.NewDomainError("INVALID_COMPANY", "Company cannot exceed 200 characters")
	}

	c.Company = strings.TrimSpace(company)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetStatus moves the contact to a new pipeline status
func (c *Contact) SetStatus(status ContactStatus) error {
	if err := validateContactStatus(status); err != nil {
		return err
	}
	if c.Status == status {
		return nil
	}

	oldStatus := c.Status
	c.Status = status
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewContactStatusChangedEvent(c, oldStatus, status))

	return nil
}

// SetNotes sets the contact's free-text notes
func (c *Contact) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// FullName returns the contact's display name
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Validation functions

var (
	contactEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex        = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
)

func validateName(name, field string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", field+" cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", field+" cannot exceed 100 characters")
	}
	return nil
}

func validateContactStatus(status ContactStatus) error {
	switch status {
	case ContactStatusLead, ContactStatusProspect, ContactStatusCustomer, ContactStatusInactive:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of 'lead', 'prospect', 'customer', 'inactive'")
	}
}
