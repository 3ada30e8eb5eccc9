package web

const (
	BrandName    = "ConstructPro"
	ContactEmail = "info@constructpro.com"
	ContactPhone = "+1 (555) 123-4567"
)

type navLink struct {
	Label string
	Href  string
}

var navLinks = []navLink{
	{"Home", "#home"},
	{"Services", "#services"},
	{"Projects", "#projects"},
	{"About", "#about"},
	{"Contact", "#contact"},
}

type service struct {
	Title       string
	Description string
	Features    []string
}

var services = []service{
	{
		Title:       "Commercial Construction",
		Description: "Office buildings, retail spaces, and commercial complexes built to the highest standards with modern design and functionality.",
		Features:    []string{"Office Buildings", "Retail Spaces", "Industrial Facilities"},
	},
	{
		Title:       "Residential Development",
		Description: "Beautiful homes, villas, and apartment complexes designed for modern living with attention to every detail.",
		Features:    []string{"Luxury Villas", "Apartment Complexes", "Custom Homes"},
	},
	{
		Title:       "Renovation & Remodeling",
		Description: "Transform existing spaces with our expert renovation services, bringing new life to old structures.",
		Features:    []string{"Home Renovations", "Office Upgrades", "Historic Restoration"},
	},
	{
		Title:       "Architectural Design",
		Description: "Innovative architectural solutions that blend functionality with aesthetic appeal for exceptional results.",
		Features:    []string{"3D Modeling", "Interior Design", "Landscape Planning"},
	},
	{
		Title:       "Project Management",
		Description: "End-to-end project management ensuring timely delivery, budget adherence, and quality assurance.",
		Features:    []string{"Timeline Management", "Quality Control", "Budget Planning"},
	},
	{
		Title:       "Maintenance & Support",
		Description: "Comprehensive maintenance and support services to ensure your property remains in perfect condition.",
		Features:    []string{"Regular Maintenance", "Emergency Repairs", "Warranty Support"},
	},
}

type value struct {
	Title       string
	Description string
}

var values = []value{
	{"Excellence", "We maintain the highest standards of quality in every project we undertake."},
	{"Collaboration", "Working closely with clients to bring their vision to life through teamwork."},
	{"Precision", "Attention to detail and accuracy in every aspect of construction and design."},
	{"Innovation", "Embracing cutting-edge technology and sustainable building practices."},
}

var highlights = []value{
	{"Experienced Leadership", "Our leadership team brings decades of combined experience in construction, architecture, and project management."},
	{"Sustainable Practices", "We prioritize environmentally responsible construction methods and materials for a sustainable future."},
	{"Advanced Technology", "Utilizing the latest construction technology and digital tools to ensure precision and efficiency."},
}

type stat struct {
	Value string
	Label string
}

var companyStats = []stat{
	{"250+", "Completed Projects"},
	{"15+", "Years Experience"},
	{"50+", "Team Members"},
	{"98%", "Client Satisfaction"},
}

var officeAddress = []string{"123 Construction Avenue", "Building District, City 12345", "United States"}

var workingHours = []string{"Monday - Friday: 8:00 AM - 6:00 PM", "Saturday: 9:00 AM - 4:00 PM", "Sunday: Closed"}

// fallbackImages maps a project category to the stock photo shown when a project has no image
var fallbackImages = map[string]string{
	"villa":       "/static/images/villa-project.jpg",
	"apartment":   "/static/images/apartment-project.jpg",
	"commercial":  "/static/images/commercial-project.jpg",
	"residential": "/static/images/villa-project.jpg",
	"renovation":  "/static/images/apartment-project.jpg",
}

const defaultProjectImage = "/static/images/villa-project.jpg"

// ProjectImage returns the project's own image or the stock photo for its category
func ProjectImage(imageURL *string, category string) string {
	if imageURL != nil && *imageURL != "" {
		return *imageURL
	}
	if img, ok := fallbackImages[category]; ok {
		return img
	}
	return defaultProjectImage
}
