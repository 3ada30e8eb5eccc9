package web

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/rpupo63/constructco-site-backend/models"
)

// DashboardData is the admin overview rendered at /dashboard
type DashboardData struct {
	Email          string
	TotalProjects  int64
	TotalInquiries int64
	TotalUsers     int64
	TotalReviews   int64
	Projects       []*models.Project
	Inquiries      []*models.ContactInquiry
	Testimonials   []*models.Testimonial
}

func Dashboard(data DashboardData) templ.Component {
	return Layout("Admin Dashboard | "+BrandName, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<header class="dashboard-header"><div><h1>Admin Dashboard</h1><p>ConstructCo Management</p></div><div>`)
		h.text(data.Email)
		h.raw(` <form method="post" action="/logout"><button type="submit">Sign Out</button></form> <a href="/">Back to Site</a></div></header><main class="dashboard">`)

		h.raw(`<div class="stats">`)
		for _, s := range []struct {
			label string
			value int64
		}{
			{"Total Projects", data.TotalProjects},
			{"Contact Inquiries", data.TotalInquiries},
			{"Total Users", data.TotalUsers},
			{"Testimonials", data.TotalReviews},
		} {
			h.raw(`<div class="card"><span>`)
			h.text(s.label)
			h.raw(`</span><strong>`)
			h.text(strconv.FormatInt(s.value, 10))
			h.raw(`</strong></div>`)
		}
		h.raw(`</div>`)

		h.raw(`<section><h2>Projects</h2><table><thead><tr><th>Title</th><th>Category</th><th>Location</th><th>Status</th><th>Budget</th></tr></thead><tbody>`)
		for _, p := range data.Projects {
			h.raw(`<tr><td>`)
			h.text(p.Title)
			h.raw(`</td><td>`)
			h.text(p.Category)
			h.raw(`</td><td>`)
			h.text(p.Location)
			h.raw(`</td><td>`)
			h.text(p.Status.Label())
			h.raw(`</td><td>`)
			h.text(models.FormatBudget(p.Budget))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)

		h.raw(`<section><h2>Contact Inquiries</h2><table><thead><tr><th>Name</th><th>Email</th><th>Subject</th><th>Service</th><th>Status</th><th>Received</th></tr></thead><tbody>`)
		for _, c := range data.Inquiries {
			h.raw(`<tr><td>`)
			h.text(c.Name)
			h.raw(`</td><td>`)
			h.text(c.Email)
			h.raw(`</td><td>`)
			h.text(c.Subject)
			h.raw(`</td><td>`)
			h.text(models.ServiceTypeLabel(c.ServiceType))
			h.raw(`</td><td>`)
			h.text(c.Status.Label())
			h.raw(`</td><td>`)
			h.text(c.CreatedAt.Format("Jan 2, 2006"))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section>`)

		h.raw(`<section><h2>Testimonials</h2><table><thead><tr><th>Client</th><th>Project</th><th>Rating</th><th>Active</th></tr></thead><tbody>`)
		for _, t := range data.Testimonials {
			h.raw(`<tr><td>`)
			h.text(t.ClientName)
			h.raw(`</td><td>`)
			if t.ProjectTitle != nil {
				h.text(*t.ProjectTitle)
			}
			h.raw(`</td><td>`)
			h.render(ctx, Stars(t.Rating))
			h.raw(`</td><td>`)
			if t.Active {
				h.raw(`Active`)
			} else {
				h.raw(`Hidden`)
			}
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></section></main>`)
	}))
}

// Login renders the sign-in form; message is shown above it when not empty
func Login(message string) templ.Component {
	return Layout("Sign In | "+BrandName, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<main class="login"><h1>Sign In</h1>`)
		if message != "" {
			h.raw(`<p class="toast toast-error" role="alert">`)
			h.text(message)
			h.raw(`</p>`)
		}
		h.raw(`<form method="post" action="/login"><label>Email<input type="email" name="email" required></label>`)
		h.raw(`<label>Password<input type="password" name="password" required></label><button type="submit">Sign In</button></form>`)
		h.raw(`<a href="/">Back to Site</a></main>`)
	}))
}
