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

// AppointmentHandler - структура для обработки HTTP-запросов к записям на донацию.
type AppointmentHandler struct {
	Service *services.AppointmentService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewAppointmentHandler создаёт новый экземпляр AppointmentHandler.
func NewAppointmentHandler(service *services.AppointmentService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *AppointmentHandler {
	return &AppointmentHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetAppointments обрабатывает запросы для получения списка записей на донацию.
func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	appointments, err := h.Service.FetchAppointments(ctx, limitStr, offsetStr)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch appointments", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch appointments", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch appointments")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(appointments); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetAppointmentById обрабатывает запросы для получения записи на донацию по идентификатору.
func (h *AppointmentHandler) GetAppointmentById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	appointmentId := r.PathValue("appointmentId")

	appointment, err := h.Service.FetchAppointmentById(ctx, appointmentId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch appointment", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch appointment", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch appointment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(appointment); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CreateAppointment обрабатывает запросы для создания записи на донацию.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var apptReq models.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&apptReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appointment, err := h.Service.CreateAppointment(ctx, apptReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to create appointment", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to create appointment", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create appointment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(appointment); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// RescheduleAppointment обрабатывает запросы для переноса даты и времени донации.
func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	appointmentId := r.PathValue("appointmentId")

	var dtReq models.AppointmentDateTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&dtReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appointment, err := h.Service.UpdateAppointmentDateTime(ctx, appointmentId, dtReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to reschedule appointment", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to reschedule appointment", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to reschedule appointment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(appointment); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// AcceptAppointment обрабатывает запросы для подтверждения записи на донацию.
func (h *AppointmentHandler) AcceptAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	appointmentId := r.PathValue("appointmentId")

	appointment, err := h.Service.AcceptAppointment(ctx, appointmentId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to accept appointment", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to accept appointment", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to accept appointment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(appointment); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CancelAppointment обрабатывает запросы для отмены записи на донацию.
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	appointmentId := r.PathValue("appointmentId")

	appointment, err := h.Service.CancelAppointment(ctx, appointmentId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to cancel appointment", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to cancel appointment", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to cancel appointment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(appointment); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// MarkArrived обрабатывает запросы для отметки прибытия донора.
func (h *AppointmentHandler) MarkArrived(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only PUT is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	appointmentId := r.PathValue("appointmentId")

	appointment, err := h.Service.MarkArrived(ctx, appointmentId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to mark appointment arrival", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to mark appointment arrival", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to mark appointment arrival")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(appointment); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteAppointment обрабатывает запросы для удаления записи на донацию.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	appointmentId := r.PathValue("appointmentId")

	if err := h.Service.DeleteAppointment(ctx, appointmentId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete appointment", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete appointment", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete appointment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
