package models

import (
	"fmt"
	"strconv"
)

// ProjectStatus is the lifecycle stage of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// ProjectStatuses lists the statuses in display order
var ProjectStatuses = []ProjectStatus{ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted}

var projectStatusLabels = map[ProjectStatus]string{
	ProjectStatusPlanning:   "Planning",
	ProjectStatusInProgress: "In Progress",
	ProjectStatusCompleted:  "Completed",
}

func (s ProjectStatus) Valid() bool {
	_, ok := projectStatusLabels[s]
	return ok
}

// Label returns the display label, falling back to Planning for unknown values
func (s ProjectStatus) Label() string {
	if label, ok := projectStatusLabels[s]; ok {
		return label
	}
	return projectStatusLabels[ProjectStatusPlanning]
}

// InquiryStatus is the follow-up stage of a contact inquiry
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusConverted InquiryStatus = "converted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

var InquiryStatuses = []InquiryStatus{InquiryStatusNew, InquiryStatusContacted, InquiryStatusConverted, InquiryStatusClosed}

var inquiryStatusLabels = map[InquiryStatus]string{
	InquiryStatusNew:       "New",
	InquiryStatusContacted: "Contacted",
	InquiryStatusConverted: "Converted",
	InquiryStatusClosed:    "Closed",
}

func (s InquiryStatus) Valid() bool {
	_, ok := inquiryStatusLabels[s]
	return ok
}

// Label returns the display label, falling back to New for unknown values
func (s InquiryStatus) Label() string {
	if label, ok := inquiryStatusLabels[s]; ok {
		return label
	}
	return inquiryStatusLabels[InquiryStatusNew]
}

// ServiceType is a kind of work a visitor can ask about on the contact form
type ServiceType struct {
	Value string
	Label string
}

var ServiceTypes = []ServiceType{
	{Value: "residential", Label: "Residential Construction"},
	{Value: "commercial", Label: "Commercial Construction"},
	{Value: "villa", Label: "Villa Construction"},
	{Value: "apartment", Label: "Apartment Buildings"},
	{Value: "renovation", Label: "Renovation & Remodeling"},
	{Value: "interior", Label: "Interior Design"},
}

// ServiceTypeLabel returns the label for a service type value, or the value itself if unknown
func ServiceTypeLabel(value string) string {
	for _, st := range ServiceTypes {
		if st.Value == value {
			return st.Label
		}
	}
	return value
}

// FormatBudget renders a budget the way the portfolio cards show it: $1.2M, $450K, $950
func FormatBudget(budget float64) string {
	switch {
	case budget >= 1_000_000:
		return fmt.Sprintf("$%.1fM", budget/1_000_000)
	case budget >= 1_000:
		return fmt.Sprintf("$%.0fK", budget/1_000)
	}
	return "$" + strconv.FormatFloat(budget, 'f', -1, 64)
}
