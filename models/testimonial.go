package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// Testimonial represents a client quote displayed on the public site
type Testimonial struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ClientName   string    `json:"client_name" db:"client_name" gorm:"type:text;not null"`
	ProjectTitle *string   `json:"project_title,omitempty" db:"project_title" gorm:"type:text"`
	Rating       int       `json:"rating" db:"rating" gorm:"type:integer;not null;default:5"`
	Testimonial  string    `json:"testimonial" db:"testimonial" gorm:"type:text;not null"`
	Active       bool      `json:"active" db:"active" gorm:"not null;index:idx_testimonials_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime;index:idx_testimonials_created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Rating == 0 {
		t.Rating = DefaultRating
	}
	return nil
}

// Validate mirrors the dashboard dialog: client name and text are required, rating is 1-5
func (t *Testimonial) Validate() (field string, reason string) {
	switch {
	case strings.TrimSpace(t.ClientName) == "":
		return "client_name", "is required"
	case strings.TrimSpace(t.Testimonial) == "":
		return "testimonial", "is required"
	case t.Rating < MinRating || t.Rating > MaxRating:
		return "rating", "must be between 1 and 5"
	}
	return "", ""
}
