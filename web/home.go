package web

import (
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/rpupo63/constructco-site-backend/models"
)

// Notice is the toast shown after a contact form submission
type Notice int

const (
	NoticeNone Notice = iota
	NoticeSent
	NoticeFailed
)

// HomeData is everything the landing page needs
type HomeData struct {
	Projects      []*models.Project
	Testimonials  []*models.Testimonial
	ShowDashboard bool
	Notice        Notice
	Year          int
}

// Home renders the full landing page
func Home(data HomeData) templ.Component {
	return Layout(BrandName+" | Construction & Development",
		Header(data.ShowDashboard),
		NoticeBanner(data.Notice),
		Hero(),
		Services(),
		Projects(data.Projects),
		About(),
		Testimonials(data.Testimonials),
		Contact(),
		Footer(data.Year),
	)
}

func Layout(title string, body ...templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="/static/site.css"></head><body>`)
		for _, c := range body {
			h.render(ctx, c)
		}
		h.raw(`</body></html>`)
	})
}

func Header(showDashboard bool) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<header class="site-header"><a class="brand" href="/#home">`)
		h.text(BrandName)
		h.raw(`</a><nav>`)
		for _, link := range navLinks {
			h.raw(`<a href="`)
			h.url(link.Href)
			h.raw(`">`)
			h.text(link.Label)
			h.raw(`</a>`)
		}
		if showDashboard {
			h.raw(`<a class="dashboard-link" href="/dashboard">Dashboard</a>`)
		}
		h.raw(`</nav><a class="button" href="#contact">Get Quote</a></header>`)
	})
}

func NoticeBanner(notice Notice) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		switch notice {
		case NoticeSent:
			h.raw(`<div class="toast toast-success" role="status"><strong>Message sent!</strong> `)
			h.text("Thank you for your inquiry. We'll get back to you within 24 hours.")
			h.raw(`</div>`)
		case NoticeFailed:
			h.raw(`<div class="toast toast-error" role="alert"><strong>Error</strong> `)
			h.text("Failed to send message. Please try again.")
			h.raw(`</div>`)
		}
	})
}

func Hero() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="home" class="hero"><h1>Building Tomorrow's Landmarks Today</h1>`)
		h.raw(`<p>From luxury villas to commercial complexes, we deliver construction projects on time, on budget and built to last.</p>`)
		h.raw(`<a class="button" href="#projects">View Our Work</a> <a class="button button-outline" href="#contact">Start Your Project</a></section>`)
	})
}

func Services() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="services"><h2>Our Construction Services</h2>`)
		h.raw(`<p>From concept to completion, we provide comprehensive construction and development services tailored to meet your specific needs and exceed your expectations.</p><div class="grid">`)
		for _, s := range services {
			h.raw(`<div class="card"><h3>`)
			h.text(s.Title)
			h.raw(`</h3><p>`)
			h.text(s.Description)
			h.raw(`</p><ul>`)
			for _, f := range s.Features {
				h.raw(`<li>`)
				h.text(f)
				h.raw(`</li>`)
			}
			h.raw(`</ul></div>`)
		}
		h.raw(`</div></section>`)
	})
}

func Projects(projects []*models.Project) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="projects"><h2>Featured Projects</h2>`)
		h.raw(`<p>Explore our portfolio of successful construction projects that showcase our commitment to excellence, innovation, and quality craftsmanship.</p>`)
		if len(projects) == 0 {
			h.raw(`<p class="empty">No completed projects to display yet.</p></section>`)
			return
		}
		h.raw(`<div class="grid">`)
		for _, p := range projects {
			h.render(ctx, ProjectCard(p))
		}
		h.raw(`</div></section>`)
	})
}

func ProjectCard(p *models.Project) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<article class="card project"><img src="`)
		h.url(ProjectImage(p.ImageURL, p.Category))
		h.raw(`" alt="`)
		h.text(p.Title)
		h.raw(`" loading="lazy"><span class="badge">`)
		h.text(capitalize(p.Category))
		h.raw(`</span><h3>`)
		h.text(p.Title)
		h.raw(`</h3><p>`)
		h.text(p.Description)
		h.raw(`</p><dl><dt>Location</dt><dd>`)
		h.text(p.Location)
		h.raw(`</dd><dt>Completed</dt><dd>`)
		h.text(strconv.Itoa(p.DisplayYear()))
		h.raw(`</dd><dt>Budget</dt><dd>`)
		h.text(models.FormatBudget(p.Budget))
		h.raw(`</dd></dl></article>`)
	})
}

func About() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="about"><h2>Building Excellence Since 2009</h2>`)
		h.raw(`<p>`)
		h.text(BrandName + " has been at the forefront of construction and development, delivering exceptional results that stand the test of time. Our commitment to quality, innovation, and client satisfaction has made us a trusted partner for residential and commercial projects.")
		h.raw(`</p>`)
		for _, hl := range highlights {
			h.raw(`<h4>`)
			h.text(hl.Title)
			h.raw(`</h4><p>`)
			h.text(hl.Description)
			h.raw(`</p>`)
		}
		h.raw(`<div class="grid values">`)
		for _, v := range values {
			h.raw(`<div class="card"><h3>`)
			h.text(v.Title)
			h.raw(`</h3><p>`)
			h.text(v.Description)
			h.raw(`</p></div>`)
		}
		h.raw(`</div><div class="stats">`)
		for _, s := range companyStats {
			h.raw(`<div><strong>`)
			h.text(s.Value)
			h.raw(`</strong><span>`)
			h.text(s.Label)
			h.raw(`</span></div>`)
		}
		h.raw(`</div></section>`)
	})
}

func Testimonials(testimonials []*models.Testimonial) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="testimonials"><h2>What Our Clients Say</h2>`)
		h.raw(`<p>`)
		h.text("Don't just take our word for it. Here's what our satisfied clients have to say about their experience working with us.")
		h.raw(`</p>`)
		if len(testimonials) == 0 {
			h.raw(`<p class="empty">No testimonials to display yet.</p></section>`)
			return
		}
		h.raw(`<div class="grid">`)
		for _, t := range testimonials {
			h.raw(`<figure class="card testimonial">`)
			h.render(ctx, Stars(t.Rating))
			h.raw(`<blockquote>&quot;`)
			h.text(t.Testimonial)
			h.raw(`&quot;</blockquote><figcaption><strong>`)
			h.text(t.ClientName)
			h.raw(`</strong>`)
			if t.ProjectTitle != nil && *t.ProjectTitle != "" {
				h.raw(`<span>`)
				h.text(*t.ProjectTitle)
				h.raw(`</span>`)
			}
			h.raw(`</figcaption></figure>`)
		}
		h.raw(`</div></section>`)
	})
}

// Stars renders five stars with the first rating of them filled
func Stars(rating int) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="stars" aria-label="`)
		h.text(strconv.Itoa(rating) + " out of " + strconv.Itoa(models.MaxRating) + " stars")
		h.raw(`">`)
		for i := 1; i <= models.MaxRating; i++ {
			if i <= rating {
				h.raw(`<span class="star filled">&#9733;</span>`)
			} else {
				h.raw(`<span class="star">&#9734;</span>`)
			}
		}
		h.raw(`</div>`)
	})
}

func Contact() templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="contact"><h2>Get In Touch</h2>`)
		h.raw(`<p>`)
		h.text("Ready to start your construction project? Contact us today for a free consultation and let's discuss how we can bring your vision to life.")
		h.raw(`</p><div class="contact-info"><h3>Visit Our Office</h3><address>`)
		h.text(strings.Join(officeAddress, ", "))
		h.raw(`</address><h3>Call Us</h3><p>`)
		h.text(ContactPhone)
		h.raw(`</p><h3>Email Us</h3><p>`)
		h.text(ContactEmail)
		h.raw(`</p><h3>Working Hours</h3><ul>`)
		for _, line := range workingHours {
			h.raw(`<li>`)
			h.text(line)
			h.raw(`</li>`)
		}
		h.raw(`</ul></div>`)

		h.raw(`<form class="contact-form" method="post" action="/contact">`)
		h.raw(`<label>First Name<input name="firstName" required></label>`)
		h.raw(`<label>Last Name<input name="lastName" required></label>`)
		h.raw(`<label>Email<input type="email" name="email" required></label>`)
		h.raw(`<label>Phone<input type="tel" name="phone"></label>`)
		h.raw(`<label>Project Type<select name="projectType"><option value="">Select project type</option>`)
		for _, st := range models.ServiceTypes {
			h.raw(`<option value="`)
			h.text(st.Value)
			h.raw(`">`)
			h.text(st.Label)
			h.raw(`</option>`)
		}
		h.raw(`</select></label>`)
		h.raw(`<label>Message<textarea name="message" rows="5" required></textarea></label>`)
		h.raw(`<button type="submit">Send Message</button></form></section>`)
	})
}

func Footer(year int) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<footer><div><strong>`)
		h.text(BrandName)
		h.raw(`</strong><p>Building dreams into reality with exceptional construction and development services.</p></div>`)
		h.raw(`<div><h3>Our Services</h3><ul>`)
		for _, s := range services {
			h.raw(`<li><a href="#services">`)
			h.text(s.Title)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></div><div><h3>Quick Links</h3><ul>`)
		for _, link := range navLinks {
			h.raw(`<li><a href="`)
			h.url(link.Href)
			h.raw(`">`)
			h.text(link.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></div><div><h3>Contact Info</h3><p>`)
		h.text(strings.Join(officeAddress[:2], ", "))
		h.raw(`</p><p>`)
		h.text(ContactPhone)
		h.raw(`</p><p>`)
		h.text(ContactEmail)
		h.raw(`</p></div><p class="copyright">&copy; `)
		h.text(strconv.Itoa(year) + " " + BrandName + ". All rights reserved.")
		h.raw(`</p></footer>`)
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
