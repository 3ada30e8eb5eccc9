package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectView is a project plus its display label
type projectView struct {
	*models.Project
	StatusLabel string `json:"statusLabel"`
}

func newProjectView(p *models.Project) projectView {
	return projectView{Project: p, StatusLabel: p.Status.Label()}
}

func newProjectViews(projects []*models.Project) []projectView {
	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}
	return views
}

// projectRequest is the body accepted for create and update. completion_date
// may be a plain date (2006-01-02) or an RFC 3339 timestamp.
type projectRequest struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Category       string               `json:"category"`
	Location       string               `json:"location"`
	Status         models.ProjectStatus `json:"status"`
	Budget         float64              `json:"budget"`
	ImageURL       *string              `json:"image_url"`
	CompletionDate *string              `json:"completion_date"`
}

func (req projectRequest) toModel() (*models.Project, error) {
	project := &models.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Location:    strings.TrimSpace(req.Location),
		Status:      req.Status,
		Budget:      req.Budget,
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusPlanning
	}
	if req.ImageURL != nil && strings.TrimSpace(*req.ImageURL) != "" {
		imageURL := strings.TrimSpace(*req.ImageURL)
		project.ImageURL = &imageURL
	}
	if req.CompletionDate != nil && *req.CompletionDate != "" {
		date, err := parseDate(*req.CompletionDate)
		if err != nil {
			return nil, errs.NewInvalidFieldError("completion_date", "must be a date like 2006-01-02")
		}
		project.CompletionDate = &date
	}

	if field, reason := project.Validate(); field != "" {
		return nil, errs.NewValidationError(field, reason)
	}
	return project, nil
}

func parseDate(raw string) (datatypes.Date, error) {
	var lastErr error
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return datatypes.Date(t), nil
		}
		lastErr = err
	}
	return datatypes.Date{}, lastErr
}

// getFeaturedProjects returns the newest completed projects for the public portfolio
// @Summary Featured projects
// @Tags Projects
// @Produce json
// @Success 200 {object} ListResponse[projectView]
// @Router /api/projects/featured [get]
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.Featured(r.Context(), featuredLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "featured projects", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(newProjectViews(projects)))
	}
}

// getAllProjects lists every project, newest first
// @Summary Get all projects
// @Tags Projects
// @Produce json
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param limit query int false "Maximum rows"
// @Success 200 {object} ListResponse[projectView]
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/admin/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, "status", "category")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.projectRepo.List(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(newProjectViews(projects)))
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} projectView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		h.responder.WriteJSON(w, newProjectView(project))
	}
}

// createProject creates a new project
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectRequest true "Project data"
// @Success 201 {object} projectView
// @Failure 400 {object} ErrorResponse
// @Router /api/admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := decodeJSON(w, r, "project", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Add(r.Context(), project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().Str("projectID", project.ID.String()).Msg("Created project")
		h.responder.WriteJSONStatus(w, http.StatusCreated, newProjectView(project))
	}
}

// updateProject replaces the editable fields of an existing project
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body projectRequest true "Updated project data"
// @Success 200 {object} projectView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req projectRequest
		if err := decodeJSON(w, r, "project", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		project.ID = projectID

		if err := h.projectRepo.Update(r.Context(), project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}
		h.responder.WriteJSON(w, newProjectView(updated))
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
