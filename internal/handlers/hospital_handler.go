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

// HospitalHandler - структура для обработки HTTP-запросов к больницам.
type HospitalHandler struct {
	Service *services.HospitalService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewHospitalHandler создаёт новый экземпляр HospitalHandler.
func NewHospitalHandler(service *services.HospitalService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *HospitalHandler {
	return &HospitalHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetHospitals обрабатывает запросы для получения списка больниц.
func (h *HospitalHandler) GetHospitals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	hospitals, err := h.Service.FetchHospitals(ctx, limitStr, offsetStr)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch hospitals", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch hospitals", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch hospitals")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(hospitals); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetHospitalById обрабатывает запросы для получения больницы по идентификатору.
func (h *HospitalHandler) GetHospitalById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	hospitalId := r.PathValue("hospitalId")

	hospital, err := h.Service.FetchHospitalById(ctx, hospitalId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch hospital", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch hospital", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch hospital")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(hospital); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CreateHospital обрабатывает запросы для регистрации больницы.
func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var hospReq models.HospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&hospReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hospital, err := h.Service.CreateHospital(ctx, hospReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to create hospital", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to create hospital", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create hospital")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(hospital); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// UpdateHospital обрабатывает запросы для изменения данных больницы.
func (h *HospitalHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	hospitalId := r.PathValue("hospitalId")

	var hospReq models.HospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&hospReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hospital, err := h.Service.UpdateHospital(ctx, hospitalId, hospReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to update hospital", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to update hospital", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to update hospital")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(hospital); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteHospital обрабатывает запросы для удаления больницы.
func (h *HospitalHandler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	hospitalId := r.PathValue("hospitalId")

	if err := h.Service.DeleteHospital(ctx, hospitalId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete hospital", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete hospital", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete hospital")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
