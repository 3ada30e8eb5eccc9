package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactInquiry represents a contact form submission awaiting follow-up
type ContactInquiry struct {
	ID          uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string        `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string        `json:"email" db:"email" gorm:"type:text;not null;index:idx_contact_inquiries_email"`
	Phone       *string       `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Subject     string        `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message     string        `json:"message" db:"message" gorm:"type:text;not null"`
	ServiceType string        `json:"service_type" db:"service_type" gorm:"type:text;not null;default:''"`
	Status      InquiryStatus `json:"status" db:"status" gorm:"type:text;not null;default:new;index:idx_contact_inquiries_status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime;index:idx_contact_inquiries_created_at"`
}

func (c *ContactInquiry) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = InquiryStatusNew
	}
	return nil
}

// Normalize trims user input and drops an empty phone number
func (c *ContactInquiry) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
	c.ServiceType = strings.TrimSpace(c.ServiceType)
	if c.Phone != nil {
		phone := strings.TrimSpace(*c.Phone)
		if phone == "" {
			c.Phone = nil
		} else {
			c.Phone = &phone
		}
	}
}

func (c *ContactInquiry) Validate() (field string, reason string) {
	switch {
	case c.Name == "":
		return "name", "is required"
	case c.Email == "":
		return "email", "is required"
	case !ValidEmail(c.Email):
		return "email", "is not a valid email address"
	case c.Subject == "":
		return "subject", "is required"
	case c.Message == "":
		return "message", "is required"
	case c.Status != "" && !c.Status.Valid():
		return "status", "must be one of new, contacted, converted, closed"
	}
	return "", ""
}

// ValidEmail reports whether address is a bare address such as jane@example.com
func ValidEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}
