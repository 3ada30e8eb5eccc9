package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler        siteHandler
	healthHandler      healthHandler
	authHandler        authHandler
	statsHandler       statsHandler
	projectHandler     projectHandler
	testimonialHandler testimonialHandler
	inquiryHandler     inquiryHandler
	uploadHandler      uploadHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ListResponse wraps every collection the API returns
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
