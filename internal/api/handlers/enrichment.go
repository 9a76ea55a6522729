package handlers

import (
	"io"
	"net/http"

	"github.com/glamzz/glamzz-store/internal/api/middleware"
	"github.com/glamzz/glamzz-store/internal/errors"
	"github.com/glamzz/glamzz-store/internal/models"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/internal/utils"
	"github.com/glamzz/glamzz-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// uploads are data-URI-encoded afterwards, keep the raw file modest
const maxUploadBytes = 8 << 20

type EnrichmentHandler struct {
	enrichmentService *service.EnrichmentService
	validator         *validator.Validate
}

func NewEnrichmentHandler(enrichmentService *service.EnrichmentService) *EnrichmentHandler {
	return &EnrichmentHandler{enrichmentService: enrichmentService, validator: validator.New()}
}

// Regenerate produces a styled preview image for one product. The enrichment
// map is untouched until the client commits the returned payload.
func (h *EnrichmentHandler) Regenerate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID := r.PathValue("id")

		var req models.RegenerateImageRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.enrichmentService.RegenerateOne(r.Context(), productID, req.Style)
		if err != nil {
			logger.Warn("Image regeneration failed", "productId", productID, "style", string(req.Style))
			response.Error(w, err)
			return
		}

		logger.Info("Preview image generated", "productId", productID, "style", string(req.Style))
		response.Success(w, http.StatusOK, resp)
	}
}

func (h *EnrichmentHandler) Commit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID := r.PathValue("id")

		var req models.CommitImageRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.enrichmentService.CommitImage(productID, req.Payload); err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Image committed", "productId", productID)
		response.Success(w, http.StatusOK, map[string]string{"product_id": productID})
	}
}

// Upload accepts a multipart "image" file and commits it as the product's
// enrichment payload, bypassing generation.
func (h *EnrichmentHandler) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID := r.PathValue("id")

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			response.Error(w, errors.BadRequestError("Invalid multipart form"))
			return
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			response.Error(w, errors.ValidationError("An image file is required"))
			return
		}
		defer file.Close()

		fileBytes, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			response.Error(w, errors.BadRequestError("Failed to read uploaded file"))
			return
		}

		payload, err := h.enrichmentService.UploadLocalImage(productID, fileBytes)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Local image uploaded", "productId", productID, "bytes", len(fileBytes))
		response.Success(w, http.StatusOK, models.RegenerateImageResponse{
			ProductID: productID,
			Payload:   payload,
		})
	}
}

func (h *EnrichmentHandler) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.enrichmentService.Status())
	}
}
