package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is a registered dashboard user. Only profiles with IsAdmin may use the admin API.
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_profiles_email"`
	FullName     *string   `json:"full_name,omitempty" db:"full_name" gorm:"type:text"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"not null;autoCreateTime"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
