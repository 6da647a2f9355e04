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

// DonorHandler - структура для обработки HTTP-запросов к донорам.
type DonorHandler struct {
	Service *services.DonorService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewDonorHandler создаёт новый экземпляр DonorHandler.
func NewDonorHandler(service *services.DonorService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *DonorHandler {
	return &DonorHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetDonors обрабатывает запросы для получения списка доноров.
func (h *DonorHandler) GetDonors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	donors, err := h.Service.FetchDonors(ctx, limitStr, offsetStr)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch donors", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch donors", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch donors")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(donors); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetDonorById обрабатывает запросы для получения донора по идентификатору.
func (h *DonorHandler) GetDonorById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	donorId := r.PathValue("donorId")

	donor, err := h.Service.FetchDonorById(ctx, donorId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch donor", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch donor", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch donor")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(donor); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// SignupDonor обрабатывает запросы для регистрации донора.
func (h *DonorHandler) SignupDonor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var donorReq models.DonorRequest
	if err := json.NewDecoder(r.Body).Decode(&donorReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	donor, err := h.Service.SignupDonor(ctx, donorReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to sign up donor", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to sign up donor", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to sign up donor")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(donor); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// UpdateDonor обрабатывает запросы для изменения данных донора.
func (h *DonorHandler) UpdateDonor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	donorId := r.PathValue("donorId")

	var donorReq models.DonorRequest
	if err := json.NewDecoder(r.Body).Decode(&donorReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	donor, err := h.Service.UpdateDonor(ctx, donorId, donorReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to update donor", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to update donor", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to update donor")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(donor); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// ToggleDonorStatus обрабатывает запросы для смены статуса активности донора.
func (h *DonorHandler) ToggleDonorStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	donorId := r.PathValue("donorId")

	donor, err := h.Service.ToggleDonorStatus(ctx, donorId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to toggle donor status", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to toggle donor status", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to toggle donor status")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(donor); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteDonor обрабатывает запросы для удаления донора.
func (h *DonorHandler) DeleteDonor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	donorId := r.PathValue("donorId")

	if err := h.Service.DeleteDonor(ctx, donorId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete donor", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete donor", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete donor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
