package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "In Progress", ProjectStatusInProgress.Label())
	assert.Equal(t, "Completed", ProjectStatusCompleted.Label())
	assert.Equal(t, "Planning", ProjectStatus("demolished").Label())
	assert.False(t, ProjectStatus("demolished").Valid())

	assert.Equal(t, "Converted", InquiryStatusConverted.Label())
	assert.Equal(t, "New", InquiryStatus("").Label())
	assert.True(t, InquiryStatusClosed.Valid())
}

func TestServiceTypeLabel(t *testing.T) {
	assert.Equal(t, "Villa Construction", ServiceTypeLabel("villa"))
	assert.Equal(t, "Renovation & Remodeling", ServiceTypeLabel("renovation"))
	assert.Equal(t, "garage", ServiceTypeLabel("garage"))
	assert.Len(t, ServiceTypes, 6)
}

func TestFormatBudget(t *testing.T) {
	cases := map[float64]string{
		2_500_000: "$2.5M",
		1_000_000: "$1.0M",
		450_000:   "$450K",
		1_000:     "$1K",
		950:       "$950",
		0:         "$0",
	}
	for budget, want := range cases {
		assert.Equal(t, want, FormatBudget(budget), "budget %v", budget)
	}
}

func TestProjectValidate(t *testing.T) {
	p := Project{Title: "t", Description: "d", Category: "villa", Location: "l", Status: ProjectStatusPlanning}
	field, _ := p.Validate()
	assert.Empty(t, field)

	p.Location = "  "
	field, reason := p.Validate()
	assert.Equal(t, "location", field)
	assert.Equal(t, "is required", reason)

	p.Location = "l"
	p.Budget = -1
	field, _ = p.Validate()
	assert.Equal(t, "budget", field)

	p.Budget = 0
	p.Status = "paused"
	field, _ = p.Validate()
	assert.Equal(t, "status", field)
}

func TestProjectDisplayYear(t *testing.T) {
	p := Project{CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 2024, p.DisplayYear())

	done := datatypes.Date(time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC))
	p.CompletionDate = &done
	assert.Equal(t, 2021, p.DisplayYear())
}

func TestTestimonialValidate(t *testing.T) {
	tm := Testimonial{ClientName: "c", Testimonial: "t", Rating: 5}
	field, _ := tm.Validate()
	assert.Empty(t, field)

	tm.Rating = 6
	field, _ = tm.Validate()
	assert.Equal(t, "rating", field)

	tm.Rating = 0
	field, _ = tm.Validate()
	assert.Equal(t, "rating", field)
}

func TestContactInquiryNormalizeAndValidate(t *testing.T) {
	blank := "   "
	c := ContactInquiry{
		Name:    " Jane Doe ",
		Email:   " Jane@Example.COM ",
		Phone:   &blank,
		Subject: "villa Inquiry",
		Message: "Hi",
	}
	c.Normalize()
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.Nil(t, c.Phone)

	field, _ := c.Validate()
	assert.Empty(t, field)

	c.Email = "not-an-email"
	field, _ = c.Validate()
	assert.Equal(t, "email", field)

	c.Email = "Jane <jane@example.com>"
	field, _ = c.Validate()
	assert.Equal(t, "email", field)

	c.Email = "jane@example.com"
	c.Status = "archived"
	field, _ = c.Validate()
	assert.Equal(t, "status", field)
}
