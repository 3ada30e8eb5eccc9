package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project represents a construction project shown in the portfolio and managed from the dashboard
type Project struct {
	ID             uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title          string          `json:"title" db:"title" gorm:"type:text;not null"`
	Description    string          `json:"description" db:"description" gorm:"type:text;not null"`
	Category       string          `json:"category" db:"category" gorm:"type:text;not null;index:idx_projects_category"`
	Location       string          `json:"location" db:"location" gorm:"type:text;not null"`
	Status         ProjectStatus   `json:"status" db:"status" gorm:"type:text;not null;default:planning;index:idx_projects_status"`
	Budget         float64         `json:"budget" db:"budget" gorm:"type:numeric;not null;default:0"`
	ImageURL       *string         `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	CompletionDate *datatypes.Date `json:"completion_date,omitempty" db:"completion_date"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime;index:idx_projects_created_at"`
}

// BeforeCreate assigns the primary key and default status
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = ProjectStatusPlanning
	}
	return nil
}

// Validate performs the required-field checks the dashboard form enforces.
// It returns the name of the first offending field, or "" when the project is acceptable.
func (p *Project) Validate() (field string, reason string) {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return "title", "is required"
	case strings.TrimSpace(p.Description) == "":
		return "description", "is required"
	case strings.TrimSpace(p.Category) == "":
		return "category", "is required"
	case strings.TrimSpace(p.Location) == "":
		return "location", "is required"
	case !p.Status.Valid():
		return "status", "must be one of planning, in_progress, completed"
	case p.Budget < 0:
		return "budget", "must not be negative"
	}
	return "", ""
}

// DisplayYear is the completion year when known, otherwise the year the project was added
func (p *Project) DisplayYear() int {
	if p.CompletionDate != nil {
		return time.Time(*p.CompletionDate).Year()
	}
	return p.CreatedAt.Year()
}
