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

// FeedbackHandler - структура для обработки HTTP-запросов к отзывам.
type FeedbackHandler struct {
	Service *services.FeedbackService
	Logger  *zap.Logger
	Timeout time.Duration
	dbPool  *pgxpool.Pool
}

// NewFeedbackHandler создаёт новый экземпляр FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService, logger *zap.Logger, timeout time.Duration, dbPool *pgxpool.Pool) *FeedbackHandler {
	return &FeedbackHandler{
		Service: service,
		Logger:  logger,
		Timeout: timeout,
		dbPool:  dbPool,
	}
}

// GetFeedback обрабатывает запросы для получения списка отзывов.
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	feedback, err := h.Service.FetchFeedback(ctx, limitStr, offsetStr)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch feedback", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch feedback", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch feedback")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(feedback); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// GetFeedbackById обрабатывает запросы для получения отзыва по идентификатору.
func (h *FeedbackHandler) GetFeedbackById(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only GET is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	feedbackId := r.PathValue("feedbackId")

	feedback, err := h.Service.FetchFeedbackById(ctx, feedbackId)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to fetch feedback", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to fetch feedback", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to fetch feedback")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(feedback); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// CreateFeedback обрабатывает запросы для создания отзыва.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only POST is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	var fbReq models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&fbReq); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	feedback, err := h.Service.CreateFeedback(ctx, fbReq)
	if err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to create feedback", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to create feedback", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to create feedback")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(feedback); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteFeedback обрабатывает запросы для удаления отзыва.
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.SendErrorResponse(w, http.StatusBadRequest, "invalid method, only DELETE is allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	feedbackId := r.PathValue("feedbackId")

	if err := h.Service.DeleteFeedback(ctx, feedbackId); err != nil {
		if errorResponse, ok := err.(*models.ErrorResponse); ok {
			h.Logger.Warn("failed to delete feedback", zap.Error(err))
			utils.SendError(w, errorResponse)
			return
		}
		h.Logger.Error("failed to delete feedback", zap.Error(err))
		utils.SendErrorResponse(w, http.StatusInternalServerError, "failed to delete feedback")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
