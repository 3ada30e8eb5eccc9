package web

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/constructco-site-backend/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestHomeRendersSectionsAndEscapesContent(t *testing.T) {
	title := "Palm <Residence>"
	html := render(t, Home(HomeData{
		Projects: []*models.Project{{
			Title:       "<script>alert(1)</script>",
			Description: "Waterfront villa",
			Category:    "villa",
			Location:    "Dubai",
			Status:      models.ProjectStatusCompleted,
			Budget:      2_500_000,
			CreatedAt:   time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		}},
		Testimonials: []*models.Testimonial{{ClientName: "Sam", ProjectTitle: &title, Rating: 4, Testimonial: "Great team"}},
		Year:         2025,
	}))

	for _, id := range []string{`id="home"`, `id="services"`, `id="projects"`, `id="about"`, `id="testimonials"`, `id="contact"`} {
		assert.Contains(t, html, id)
	}
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "$2.5M")
	assert.Contains(t, html, "<dd>2022</dd>")
	assert.Contains(t, html, "/static/images/villa-project.jpg")
	assert.Contains(t, html, "Palm &lt;Residence&gt;")
	assert.Equal(t, 4, strings.Count(html, "star filled"))
	assert.Contains(t, html, "98%")
	assert.Contains(t, html, ContactEmail)
	assert.NotContains(t, html, "Dashboard</a>")
	assert.NotContains(t, html, "Message sent!")
}

func TestHomeEmptyStatesAndDashboardLink(t *testing.T) {
	html := render(t, Home(HomeData{ShowDashboard: true, Notice: NoticeFailed}))

	assert.Contains(t, html, "No completed projects to display yet.")
	assert.Contains(t, html, "No testimonials to display yet.")
	assert.Contains(t, html, `href="/dashboard">Dashboard</a>`)
	assert.Contains(t, html, "Failed to send message. Please try again.")
}

func TestNoticeSent(t *testing.T) {
	html := render(t, NoticeBanner(NoticeSent))
	assert.Contains(t, html, "Message sent!")
	assert.Contains(t, html, "within 24 hours")
	assert.Empty(t, render(t, NoticeBanner(NoticeNone)))
}

func TestProjectImage(t *testing.T) {
	own := "https://cdn.example.com/p.jpg"
	empty := ""
	assert.Equal(t, own, ProjectImage(&own, "villa"))
	assert.Equal(t, "/static/images/apartment-project.jpg", ProjectImage(&empty, "renovation"))
	assert.Equal(t, "/static/images/villa-project.jpg", ProjectImage(nil, "residential"))
	assert.Equal(t, "/static/images/commercial-project.jpg", ProjectImage(nil, "commercial"))
	assert.Equal(t, defaultProjectImage, ProjectImage(nil, "bridge"))
}

func TestProjectCardCapitalizesMultibyteCategory(t *testing.T) {
	html := render(t, ProjectCard(&models.Project{Title: "Chapel", Category: "église"}))
	assert.True(t, utf8.ValidString(html))
	assert.Contains(t, html, "Église")

	assert.Equal(t, "Villa", capitalize("villa"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Ünterhaus", capitalize("ünterhaus"))
}

func TestProjectCardRejectsUnsafeImageURL(t *testing.T) {
	bad := "javascript:alert(1)"
	html := render(t, ProjectCard(&models.Project{Title: "x", Category: "villa", ImageURL: &bad}))
	assert.NotContains(t, html, "javascript:")
}

func TestContactFormListsServiceTypes(t *testing.T) {
	html := render(t, Contact())
	assert.Contains(t, html, `action="/contact"`)
	for _, st := range models.ServiceTypes {
		assert.Contains(t, html, `value="`+st.Value+`"`)
	}
	assert.Contains(t, html, "Renovation &amp; Remodeling")
}

func TestDashboardShowsLabels(t *testing.T) {
	html := render(t, Dashboard(DashboardData{
		Email:         "admin@example.com",
		TotalProjects: 3,
		Projects:      []*models.Project{{Title: "Tower", Status: models.ProjectStatusInProgress, Budget: 450_000}},
		Inquiries:     []*models.ContactInquiry{{Name: "Jane", Status: "bogus", ServiceType: "interior"}},
	}))
	assert.Contains(t, html, "Admin Dashboard")
	assert.Contains(t, html, "ConstructCo Management")
	assert.Contains(t, html, "In Progress")
	assert.Contains(t, html, "$450K")
	assert.Contains(t, html, "<td>New</td>")
	assert.Contains(t, html, "Interior Design")
}

func TestLoginMessage(t *testing.T) {
	assert.Contains(t, render(t, Login("Invalid email or password")), "Invalid email or password")
	assert.NotContains(t, render(t, Login("")), "toast")
}
