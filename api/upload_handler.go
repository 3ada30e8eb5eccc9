package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/constructco-site-backend/errs"
	"github.com/rpupo63/constructco-site-backend/services"
)

const maxUploadSize = 10 << 20 // 10MB

type uploadHandler struct {
	responder  Responder
	logger     zerolog.Logger
	imageStore services.ImageStore
}

func newUploadHandler(imageStore services.ImageStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()
	return uploadHandler{responder: NewResponder(logger), logger: logger, imageStore: imageStore}
}

// uploadImage stores a project image and returns its public URL
// @Summary Upload project image
// @Tags Admin
// @Accept multipart/form-data
// @Param file formData file true "Image"
// @Success 201 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /api/admin/uploads [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.imageStore == nil {
			h.responder.WriteError(w, errs.NewUnavailableError("image storage is not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			if strings.Contains(err.Error(), "request body too large") {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadSize))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("upload", err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("file", "must be an image"))
			return
		}

		url, err := h.imageStore.Put(r.Context(), header.Filename, contentType, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to store image", err))
			return
		}

		h.logger.Info().Str("url", url).Int64("size", header.Size).Msg("Stored project image")
		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]string{"url": url})
	}
}
