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

// SystemManagerHandler - структура для обработки HTTP-запросов к системным менеджерам.
type SystemManagerHandler struct {
	Service *services.SystemManagerService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewSystemManagerHandler создаёт новый экземпляр SystemManagerHandler.
func NewSystemManagerHandler(service *services.SystemManagerService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *SystemManagerHandler {
	return &SystemManagerHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetSystemManagers обрабатывает запросы для получения списка менеджеров.
func (h *SystemManagerHandler) GetSystemManagers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	managers, err := h.Service.FetchSystemManagers(ctx, limitStr, offsetStr)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch system managers", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch system managers", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch system managers")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(managers); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetSystemManagerById обрабатывает запросы для получения менеджера по идентификатору.
func (h *SystemManagerHandler) GetSystemManagerById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	managerId := r.PathValue("managerId")

	manager, err := h.Service.FetchSystemManagerById(ctx, managerId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch system manager", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch system manager", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch system manager")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(manager); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CreateSystemManager обрабатывает запросы для регистрации менеджера.
func (h *SystemManagerHandler) CreateSystemManager(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var mgrReq models.SystemManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&mgrReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	manager, err := h.Service.CreateSystemManager(ctx, mgrReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to create system manager", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to create system manager", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create system manager")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(manager); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// UpdateSystemManager обрабатывает запросы для изменения данных менеджера.
func (h *SystemManagerHandler) UpdateSystemManager(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	managerId := r.PathValue("managerId")

	var mgrReq models.SystemManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&mgrReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	manager, err := h.Service.UpdateSystemManager(ctx, managerId, mgrReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to update system manager", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to update system manager", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to update system manager")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(manager); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteSystemManager обрабатывает запросы для удаления менеджера.
func (h *SystemManagerHandler) DeleteSystemManager(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	managerId := r.PathValue("managerId")

	if err := h.Service.DeleteSystemManager(ctx, managerId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete system manager", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete system manager", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete system manager")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
