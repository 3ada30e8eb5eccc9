package database

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Database struct {
	db                 *gorm.DB
	projectRepo        *ProjectRepo
	testimonialRepo    *TestimonialRepo
	contactInquiryRepo *ContactInquiryRepo
	profileRepo        *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		projectRepo:        NewProjectRepo(db),
		testimonialRepo:    NewTestimonialRepo(db),
		contactInquiryRepo: NewContactInquiryRepo(db),
		profileRepo:        NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactInquiryRepo() *ContactInquiryRepo {
	return d.contactInquiryRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

// Ping checks that the database still answers
func (d Database) Ping(ctx context.Context) error {
	return ping(ctx, d.db)
}

// Stats holds the dashboard's aggregate counts
type Stats struct {
	TotalProjects     int64 `json:"totalProjects"`
	TotalInquiries    int64 `json:"totalInquiries"`
	TotalUsers        int64 `json:"totalUsers"`
	TotalTestimonials int64 `json:"totalTestimonials"`
}

// Stats counts the rows of every dashboard table concurrently. Any failed count fails the call.
func (d Database) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalProjects, err = d.projectRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalInquiries, err = d.contactInquiryRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalUsers, err = d.profileRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalTestimonials, err = d.testimonialRepo.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
