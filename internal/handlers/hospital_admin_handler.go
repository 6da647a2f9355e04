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

// HospitalAdminHandler - структура для обработки HTTP-запросов к администраторам больниц.
type HospitalAdminHandler struct {
	Service *services.HospitalAdminService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewHospitalAdminHandler создаёт новый экземпляр HospitalAdminHandler.
func NewHospitalAdminHandler(service *services.HospitalAdminService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *HospitalAdminHandler {
	return &HospitalAdminHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetHospitalAdmins обрабатывает запросы для получения списка администраторов.
func (h *HospitalAdminHandler) GetHospitalAdmins(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	admins, err := h.Service.FetchHospitalAdmins(ctx, limitStr, offsetStr)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch hospital admins", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch hospital admins", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch hospital admins")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(admins); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetHospitalAdminsByHospital обрабатывает запросы для получения администраторов больницы.
func (h *HospitalAdminHandler) GetHospitalAdminsByHospital(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	hospitalId := r.PathValue("hospitalId")

	admins, err := h.Service.FetchHospitalAdminsByHospital(ctx, hospitalId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch hospital admins", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch hospital admins", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch hospital admins")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(admins); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetHospitalAdminById обрабатывает запросы для получения администратора по идентификатору.
func (h *HospitalAdminHandler) GetHospitalAdminById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	adminId := r.PathValue("adminId")

	admin, err := h.Service.FetchHospitalAdminById(ctx, adminId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch hospital admin", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch hospital admin", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch hospital admin")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(admin); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CreateHospitalAdmin обрабатывает запросы для регистрации администратора больницы.
func (h *HospitalAdminHandler) CreateHospitalAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var adminReq models.HospitalAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&adminReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := h.Service.CreateHospitalAdmin(ctx, adminReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to create hospital admin", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to create hospital admin", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create hospital admin")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(admin); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// UpdateHospitalAdmin обрабатывает запросы для изменения данных администратора.
func (h *HospitalAdminHandler) UpdateHospitalAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	adminId := r.PathValue("adminId")

	var adminReq models.HospitalAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&adminReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := h.Service.UpdateHospitalAdmin(ctx, adminId, adminReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to update hospital admin", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to update hospital admin", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to update hospital admin")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(admin); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// ToggleHospitalAdminStatus обрабатывает запросы для смены статуса активности администратора.
func (h *HospitalAdminHandler) ToggleHospitalAdminStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	adminId := r.PathValue("adminId")

	admin, err := h.Service.ToggleHospitalAdminStatus(ctx, adminId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to toggle hospital admin status", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to toggle hospital admin status", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to toggle hospital admin status")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(admin); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteHospitalAdmin обрабатывает запросы для удаления администратора.
func (h *HospitalAdminHandler) DeleteHospitalAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	adminId := r.PathValue("adminId")

	if err := h.Service.DeleteHospitalAdmin(ctx, adminId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete hospital admin", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete hospital admin", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete hospital admin")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
