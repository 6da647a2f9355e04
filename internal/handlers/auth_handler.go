package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/services"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"go.uber.org/zap"
)

// AuthHandler - структура для обработки HTTP-запросов аутентификации.
type AuthHandler struct {
	Service *services.AuthService
	Logger  *zap.Logger
	Timeout time.Duration
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(service *services.AuthService, logger *zap.Logger, timeout time.Duration) *AuthHandler {
	return &AuthHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
	}
}

type signinFunc func(ctx context.Context, req models.SigninRequest) (*models.AuthResponse, error)

func (h *AuthHandler) signin(w http.ResponseWriter, r *http.Request, fn signinFunc) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var req models.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := fn(ctx, req)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed signin attempt", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to sign in", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// SigninDonor обрабатывает запросы входа донора.
func (h *AuthHandler) SigninDonor(w http.ResponseWriter, r *http.Request) {
	h.signin(w, r, h.Service.SigninDonor)
}

// SigninHospital обрабатывает запросы входа больницы.
func (h *AuthHandler) SigninHospital(w http.ResponseWriter, r *http.Request) {
	h.signin(w, r, h.Service.SigninHospital)
}

// SigninHospitalAdmin обрабатывает запросы входа администратора больницы.
func (h *AuthHandler) SigninHospitalAdmin(w http.ResponseWriter, r *http.Request) {
	h.signin(w, r, h.Service.SigninHospitalAdmin)
}

// SigninSystemManager обрабатывает запросы входа системного менеджера.
func (h *AuthHandler) SigninSystemManager(w http.ResponseWriter, r *http.Request) {
	h.signin(w, r, h.Service.SigninSystemManager)
}
