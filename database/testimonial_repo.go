package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/constructco-site-backend/models"
)

var testimonialColumns = []string{"active", "rating", "client_name", "created_at"}

var testimonialWritable = []string{"client_name", "project_title", "rating", "testimonial", "active"}

type TestimonialRepo struct {
	db    *gorm.DB
	table table[models.Testimonial]
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db: db, table: newTable[models.Testimonial](db, "testimonial", testimonialColumns...)}
}

func (r *TestimonialRepo) List(ctx context.Context, opts ListOptions) ([]*models.Testimonial, error) {
	return r.table.list(ctx, opts)
}

// Featured returns the newest active testimonials for the public site
func (r *TestimonialRepo) Featured(ctx context.Context, limit int) ([]*models.Testimonial, error) {
	return r.List(ctx, ListOptions{Limit: limit}.Where("active", true))
}

func (r *TestimonialRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	return r.table.findByID(ctx, id)
}

func (r *TestimonialRepo) Add(ctx context.Context, testimonial *models.Testimonial) error {
	return r.table.add(ctx, testimonial)
}

func (r *TestimonialRepo) Update(ctx context.Context, testimonial *models.Testimonial) error {
	return r.table.update(ctx, testimonial.ID, testimonial, testimonialWritable...)
}

// SetActive shows or hides a testimonial on the public site
func (r *TestimonialRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.table.update(ctx, id, map[string]any{"active": active})
}

func (r *TestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.table.delete(ctx, id)
}

func (r *TestimonialRepo) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}
