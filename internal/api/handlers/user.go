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

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return h.authenticate("Signed up successfully!")
}

func (h *UserHandler) Login() http.HandlerFunc {
	return h.authenticate("Logged in successfully!")
}

func (h *UserHandler) authenticate(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AuthRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Authenticate(&req)
		if err != nil {
			logger.Error("Authentication failed", "error", err.Error())
			response.Error(w, err)
			return
		}

		resp.Message = message

		logger.Info("Session established", "email", req.Email)
		response.Success(w, http.StatusOK, resp)
	}
}

func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		h.userService.Logout()

		logger.Info("Session cleared")
		response.Success(w, http.StatusOK, map[string]string{"message": "Logged out successfully!"})
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, err := h.userService.Profile()
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}
