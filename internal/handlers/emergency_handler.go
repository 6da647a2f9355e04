package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/services"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// EmergencyHandler - структура для обработки HTTP-запросов к экстренным заявкам.
type EmergencyHandler struct {
	Service *services.EmergencyService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewEmergencyHandler создаёт новый экземпляр EmergencyHandler.
func NewEmergencyHandler(service *services.EmergencyService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *EmergencyHandler {
	return &EmergencyHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetRequests обрабатывает запросы для получения списка экстренных заявок.
func (h *EmergencyHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")
	bloodTypes := r.URL.Query()["blood_type"]

	requests, err := h.Service.FetchRequests(ctx, limitStr, offsetStr, bloodTypes)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch emergency requests", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch emergency requests", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch emergency requests")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(requests); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetRequestById обрабатывает запросы для получения экстренной заявки по идентификатору.
func (h *EmergencyHandler) GetRequestById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	requestId := r.PathValue("requestId")

	request, err := h.Service.FetchRequestById(ctx, requestId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch emergency request", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch emergency request", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch emergency request")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(request); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CreateRequest обрабатывает запросы для создания экстренной заявки.
func (h *EmergencyHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var input models.EmergencyRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.CreateRequest(ctx, input)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to create emergency request", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to create emergency request", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create emergency request")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(request); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// AcceptRequest обрабатывает запросы для принятия экстренной заявки.
func (h *EmergencyHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	requestId := r.PathValue("requestId")

	var input models.AcceptRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.AcceptRequest(ctx, requestId, input)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to accept emergency request", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to accept emergency request", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to accept emergency request")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(request); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeclineRequest обрабатывает запросы для отклонения экстренной заявки.
func (h *EmergencyHandler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	requestId := r.PathValue("requestId")

	var input models.DeclineRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.DeclineRequest(ctx, requestId, input.Reason)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to decline emergency request", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to decline emergency request", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to decline emergency request")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(request); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteRequest обрабатывает запросы для удаления экстренной заявки.
func (h *EmergencyHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	requestId := r.PathValue("requestId")

	if err := h.Service.DeleteRequest(ctx, requestId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete emergency request", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete emergency request", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete emergency request")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
