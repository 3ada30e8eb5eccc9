package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/constructco-site-backend/models"
)

var contactInquiryColumns = []string{"status", "service_type", "email", "created_at"}

type ContactInquiryRepo struct {
	db    *gorm.DB
	table table[models.ContactInquiry]
}

func NewContactInquiryRepo(db *gorm.DB) *ContactInquiryRepo {
	return &ContactInquiryRepo{db: db, table: newTable[models.ContactInquiry](db, "contact inquiry", contactInquiryColumns...)}
}

func (r *ContactInquiryRepo) List(ctx context.Context, opts ListOptions) ([]*models.ContactInquiry, error) {
	return r.table.list(ctx, opts)
}

func (r *ContactInquiryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.ContactInquiry, error) {
	return r.table.findByID(ctx, id)
}

func (r *ContactInquiryRepo) Add(ctx context.Context, inquiry *models.ContactInquiry) error {
	return r.table.add(ctx, inquiry)
}

// SetStatus moves an inquiry to another follow-up stage
func (r *ContactInquiryRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.InquiryStatus) error {
	return r.table.update(ctx, id, map[string]any{"status": status})
}

func (r *ContactInquiryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.table.delete(ctx, id)
}

func (r *ContactInquiryRepo) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}
