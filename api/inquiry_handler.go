package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/models"
)

type inquiryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	inquiryRepo *database.ContactInquiryRepo
	intake      inquiryIntake
}

func newInquiryHandler(inquiryRepo *database.ContactInquiryRepo, intake inquiryIntake) inquiryHandler {
	logger := log.With().Str("handlerName", "inquiryHandler").Logger()

	return inquiryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		inquiryRepo: inquiryRepo,
		intake:      intake,
	}
}

// inquiryView is an inquiry plus its display labels
type inquiryView struct {
	*models.ContactInquiry
	StatusLabel      string `json:"statusLabel"`
	ServiceTypeLabel string `json:"serviceTypeLabel,omitempty"`
}

func newInquiryView(c *models.ContactInquiry) inquiryView {
	view := inquiryView{ContactInquiry: c, StatusLabel: c.Status.Label()}
	if c.ServiceType != "" {
		view.ServiceTypeLabel = models.ServiceTypeLabel(c.ServiceType)
	}
	return view
}

type inquiryRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Subject     string  `json:"subject"`
	Message     string  `json:"message"`
	ServiceType string  `json:"service_type"`
}

// submitInquiry stores a public contact inquiry. Any status in the body is ignored.
// @Summary Submit contact inquiry
// @Tags Contact Inquiries
// @Accept json
// @Produce json
// @Param inquiry body inquiryRequest true "Inquiry"
// @Success 201 {object} inquiryView
// @Failure 400 {object} ErrorResponse
// @Router /api/contact-inquiries [post]
func (h inquiryHandler) submitInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req inquiryRequest
		if err := decodeJSON(w, r, "contact inquiry", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry := &models.ContactInquiry{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			Subject:     req.Subject,
			Message:     req.Message,
			ServiceType: req.ServiceType,
		}
		if err := h.intake.submit(r.Context(), inquiry, "api"); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newInquiryView(inquiry))
	}
}

// getAllInquiries lists inquiries newest first, optionally filtered by ?status=
// @Summary Get all contact inquiries
// @Tags Contact Inquiries
// @Produce json
// @Success 200 {object} ListResponse[inquiryView]
// @Router /api/admin/contact-inquiries [get]
func (h inquiryHandler) getAllInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := listOptions(r, "status", "service_type")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiries, err := h.inquiryRepo.List(r.Context(), opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "contact inquiries", err))
			return
		}

		views := make([]inquiryView, 0, len(inquiries))
		for _, c := range inquiries {
			views = append(views, newInquiryView(c))
		}
		h.responder.WriteJSON(w, newListResponse(views))
	}
}

// @Summary Get contact inquiry
// @Tags Contact Inquiries
// @Param inquiryID path string true "Inquiry ID" format(uuid)
// @Router /api/admin/contact-inquiries/{inquiryID} [get]
func (h inquiryHandler) getInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiryID, err := idParam(r, "inquiryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry, err := h.inquiryRepo.FindByID(r.Context(), inquiryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact inquiry", err))
			return
		}
		h.responder.WriteJSON(w, newInquiryView(inquiry))
	}
}

// setInquiryStatus moves an inquiry to another follow-up stage
// @Summary Update inquiry status
// @Tags Contact Inquiries
// @Accept json
// @Param inquiryID path string true "Inquiry ID" format(uuid)
// @Router /api/admin/contact-inquiries/{inquiryID}/status [patch]
func (h inquiryHandler) setInquiryStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiryID, err := idParam(r, "inquiryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req struct {
			Status models.InquiryStatus `json:"status"`
		}
		if err := decodeJSON(w, r, "inquiry status", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Status == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("status"))
			return
		}
		if !req.Status.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be one of new, contacted, converted, closed"))
			return
		}

		if err := h.inquiryRepo.SetStatus(r.Context(), inquiryID, req.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact inquiry", err))
			return
		}

		updated, err := h.inquiryRepo.FindByID(r.Context(), inquiryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "contact inquiry", err))
			return
		}
		h.responder.WriteJSON(w, newInquiryView(updated))
	}
}

// @Summary Delete contact inquiry
// @Tags Contact Inquiries
// @Param inquiryID path string true "Inquiry ID" format(uuid)
// @Router /api/admin/contact-inquiries/{inquiryID} [delete]
func (h inquiryHandler) deleteInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiryID, err := idParam(r, "inquiryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.inquiryRepo.Delete(r.Context(), inquiryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact inquiry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact inquiry deleted successfully",
		})
	}
}
