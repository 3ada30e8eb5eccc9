package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/models"
)

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()

	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
	}
}

// testimonialRequest is the body accepted for create and update. A missing
// rating means 5 and a missing active flag means shown.
type testimonialRequest struct {
	ClientName   string  `json:"client_name"`
	ProjectTitle *string `json:"project_title"`
	Rating       *int    `json:"rating"`
	Testimonial  string  `json:"testimonial"`
	Active       *bool   `json:"active"`
}

func (req testimonialRequest) toModel() (*models.Testimonial, error) {
	testimonial := &models.Testimonial{
		ClientName:  strings.TrimSpace(req.ClientName),
		Testimonial: strings.TrimSpace(req.Testimonial),
		Rating:      models.DefaultRating,
		Active:      true,
	}
	if req.ProjectTitle != nil && strings.TrimSpace(*req.ProjectTitle) != "" {
		title := strings.TrimSpace(*req.ProjectTitle)
		testimonial.ProjectTitle = &title
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.Active != nil {
		testimonial.Active = *req.Active
	}

	if field, reason := testimonial.Validate(); field != "" {
		return nil, errs.NewValidationError(field, reason)
	}
	return testimonial, nil
}

// getFeaturedTestimonials returns the newest active testimonials for the public site
// @Summary Featured testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {object} ListResponse[models.Testimonial]
// @Router /api/testimonials/featured [get]
func (h testimonialHandler) getFeaturedTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := h.testimonialRepo.Featured(r.Context(), featuredLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "featured testimonials", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(testimonials))
	}
}

// getAllTestimonials lists testimonials newest first, optionally filtered by ?active=true|false
// @Summary Get all testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {object} ListResponse[models.Testimonial]
// @Router /api/admin/testimonials [get]
func (h testimonialHandler) getAllTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if raw := r.URL.Query().Get("active"); raw != "" {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("active", "must be true or false"))
				return
			}
			opts = opts.Where("active", active)
		}

		testimonials, err := h.testimonialRepo.List(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "testimonials", err))
			return
		}
		h.responder.WriteJSON(w, newListResponse(testimonials))
	}
}

// @Summary Get testimonial
// @Tags Testimonials
// @Param testimonialID path string true "Testimonial ID" format(uuid)
// @Router /api/admin/testimonials/{testimonialID} [get]
func (h testimonialHandler) getTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := idParam(r, "testimonialID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		testimonial, err := h.testimonialRepo.FindByID(r.Context(), testimonialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "testimonial", err))
			return
		}
		h.responder.WriteJSON(w, testimonial)
	}
}

// @Summary Create testimonial
// @Tags Testimonials
// @Accept json
// @Param testimonial body testimonialRequest true "Testimonial data"
// @Success 201 {object} models.Testimonial
// @Router /api/admin/testimonials [post]
func (h testimonialHandler) createTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req testimonialRequest
		if err := decodeJSON(w, r, "testimonial", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		testimonial, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.testimonialRepo.Add(r.Context(), testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "testimonial", err))
			return
		}

		h.logger.Info().Str("testimonialID", testimonial.ID.String()).Msg("Created testimonial")
		h.responder.WriteJSONStatus(w, http.StatusCreated, testimonial)
	}
}

// @Summary Update testimonial
// @Tags Testimonials
// @Accept json
// @Param testimonialID path string true "Testimonial ID" format(uuid)
// @Param testimonial body testimonialRequest true "Testimonial data"
// @Router /api/admin/testimonials/{testimonialID} [put]
func (h testimonialHandler) updateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := idParam(r, "testimonialID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req testimonialRequest
		if err := decodeJSON(w, r, "testimonial", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		testimonial, err := req.toModel()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		testimonial.ID = testimonialID

		if err := h.testimonialRepo.Update(r.Context(), testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "testimonial", err))
			return
		}

		updated, err := h.testimonialRepo.FindByID(r.Context(), testimonialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "testimonial", err))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

// setTestimonialActive shows or hides a testimonial
// @Summary Toggle testimonial visibility
// @Tags Testimonials
// @Accept json
// @Param testimonialID path string true "Testimonial ID" format(uuid)
// @Router /api/admin/testimonials/{testimonialID}/active [patch]
func (h testimonialHandler) setTestimonialActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := idParam(r, "testimonialID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			Active *bool `json:"active"`
		}
		if err := decodeJSON(w, r, "testimonial status", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Active == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("active"))
			return
		}

		if err := h.testimonialRepo.SetActive(r.Context(), testimonialID, *req.Active); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "testimonial", err))
			return
		}

		updated, err := h.testimonialRepo.FindByID(r.Context(), testimonialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "testimonial", err))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

// @Summary Delete testimonial
// @Tags Testimonials
// @Param testimonialID path string true "Testimonial ID" format(uuid)
// @Router /api/admin/testimonials/{testimonialID} [delete]
func (h testimonialHandler) deleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := idParam(r, "testimonialID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.testimonialRepo.Delete(r.Context(), testimonialID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "testimonial", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "testimonial deleted successfully",
		})
	}
}
