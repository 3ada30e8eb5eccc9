package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/models"
)

type ProfileRepo struct {
	db    *gorm.DB
	table table[models.Profile]
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db: db, table: newTable[models.Profile](db, "profile", "email", "is_admin", "created_at")}
}

func (r *ProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return r.table.findByID(ctx, id)
}

// FindByEmail looks a profile up by its normalized email address
func (r *ProfileRepo) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var profile models.Profile
	result := r.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&profile)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("profile %s: %w", email, errs.ErrNotFound)
	}
	return &profile, nil
}

func (r *ProfileRepo) Add(ctx context.Context, profile *models.Profile) error {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	return r.table.add(ctx, profile)
}

// SetAdmin grants or revokes dashboard access
func (r *ProfileRepo) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	return r.table.update(ctx, id, map[string]any{"is_admin": isAdmin})
}

func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}
