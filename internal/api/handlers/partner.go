package handlers

import (
	"net/http"

	"github.com/glamzz/glamzz-store/internal/api/middleware"
	"github.com/glamzz/glamzz-store/internal/models"
	service "github.com/glamzz/glamzz-store/internal/services"
	"github.com/glamzz/glamzz-store/internal/utils"
	"github.com/glamzz/glamzz-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type PartnerHandler struct {
	partnerService *service.PartnerService
	validator      *validator.Validate
}

func NewPartnerHandler(partnerService *service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService, validator: validator.New()}
}

// Apply handles both the "Become a Seller" and "Model Opportunities" forms;
// the path decides which program.
func (h *PartnerHandler) Apply() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		kind := models.PartnerKind(r.PathValue("kind"))

		var req models.PartnerApplicationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		app, err := h.partnerService.Apply(r.Context(), kind, &req)
		if err != nil {
			logger.Warn("Partner application rejected", "kind", string(kind), "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Partner application received", "kind", string(kind))
		response.Success(w, http.StatusCreated, app)
	}
}
