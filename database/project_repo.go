package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/constructco-site-backend/models"
)

// projectColumns are the columns the dashboard and site may filter or order by
var projectColumns = []string{"status", "category", "location", "title", "budget", "completion_date", "created_at"}

// projectWritable are the columns a full update overwrites
var projectWritable = []string{"title", "description", "category", "location", "status", "budget", "image_url", "completion_date"}

type ProjectRepo struct {
	db    *gorm.DB
	table table[models.Project]
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db, table: newTable[models.Project](db, "project", projectColumns...)}
}

// List returns projects matching the options, newest first by default
func (r *ProjectRepo) List(ctx context.Context, opts ListOptions) ([]*models.Project, error) {
	return r.table.list(ctx, opts)
}

// Featured returns the newest completed projects for the public portfolio
func (r *ProjectRepo) Featured(ctx context.Context, limit int) ([]*models.Project, error) {
	return r.List(ctx, ListOptions{Limit: limit}.Where("status", models.ProjectStatusCompleted))
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return r.table.findByID(ctx, id)
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.table.add(ctx, project)
}

// Update overwrites every editable column of an existing project
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.table.update(ctx, project.ID, project, projectWritable...)
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.table.delete(ctx, id)
}

func (r *ProjectRepo) Count(ctx context.Context) (int64, error) {
	return r.table.count(ctx)
}
