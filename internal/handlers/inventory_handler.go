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

// InventoryHandler - структура для обработки HTTP-запросов к запасам крови.
type InventoryHandler struct {
	Service *services.InventoryService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewInventoryHandler создаёт новый экземпляр InventoryHandler.
func NewInventoryHandler(service *services.InventoryService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *InventoryHandler {
	return &InventoryHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetInventory обрабатывает запросы для получения списка записей запаса.
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	records, err := h.Service.FetchInventory(ctx, limitStr, offsetStr)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch inventory", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch inventory", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch inventory")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(records); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetHospitalInventory обрабатывает запросы для получения запаса конкретной больницы.
func (h *InventoryHandler) GetHospitalInventory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	hospitalId := r.PathValue("hospitalId")

	records, err := h.Service.FetchHospitalInventory(ctx, hospitalId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch hospital inventory", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch hospital inventory", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch hospital inventory")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(records); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetAvailability обрабатывает запросы для получения суммарного запаса больницы по группе крови.
func (h *InventoryHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	hospitalName := r.URL.Query().Get("hospital")
	bloodType := models.BloodType(r.URL.Query().Get("blood_type"))

	availability, err := h.Service.FetchAvailability(ctx, hospitalName, bloodType)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch stock availability", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch stock availability", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch stock availability")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(availability); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetInventoryById обрабатывает запросы для получения записи запаса по идентификатору.
func (h *InventoryHandler) GetInventoryById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	recordId := r.PathValue("recordId")

	record, err := h.Service.FetchInventoryById(ctx, recordId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch inventory record", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch inventory record", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch inventory record")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(record); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CreateInventory обрабатывает запросы для создания записи запаса.
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var invReq models.InventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&invReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.RecordStock(ctx, invReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to create inventory record", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to create inventory record", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create inventory record")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(record); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// AdjustStock обрабатывает запросы для пополнения или списания запаса.
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PATCH is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	recordId := r.PathValue("recordId")

	var adjReq models.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&adjReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.AdjustStock(ctx, recordId, adjReq.Delta)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to adjust stock", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to adjust stock", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to adjust stock")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(record); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteInventory обрабатывает запросы для удаления записи запаса.
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	recordId := r.PathValue("recordId")

	if err := h.Service.DeleteInventory(ctx, recordId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete inventory record", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete inventory record", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete inventory record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
