package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/utafrali/ReviewDeskGo/internal/service"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
	"github.com/utafrali/ReviewDeskGo/pkg/httputil"
	"github.com/utafrali/ReviewDeskGo/pkg/validator"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

func NewAuthHandler(users *service.UserService, l *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: l}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	user, err := h.users.Register(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: user})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteValidationError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	if err := validator.Validate(input); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	user, err := h.users.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: user})
}
