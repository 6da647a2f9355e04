package services

import (
	"context"
	"net/http"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackService struct {
	Repo   repository.FeedbackRepository
	dbPool *pgxpool.Pool
}

// NewFeedbackService создает новый экземпляр FeedbackService.
func NewFeedbackService(repo repository.FeedbackRepository, dbPool *pgxpool.Pool) *FeedbackService {
	return &FeedbackService{Repo: repo, dbPool: dbPool}
}

// FetchFeedback возвращает список отзывов.
func (s *FeedbackService) FetchFeedback(ctx context.Context, limitStr, offsetStr string) ([]models.Feedback, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.Repo.GetFeedback(ctx, limit, offset)
}

// FetchFeedbackById возвращает отзыв по идентификатору.
func (s *FeedbackService) FetchFeedbackById(ctx context.Context, feedbackId string) (*models.Feedback, error) {
	if feedbackId == "" {
		return nil, models.NewValidationError("missing required parameter: feedbackId")
	}
	return s.Repo.GetFeedbackById(ctx, feedbackId)
}

// CreateFeedback создает отзыв после проверки всех обязательных полей.
func (s *FeedbackService) CreateFeedback(ctx context.Context, fbReq models.FeedbackRequest) (*models.Feedback, error) {
	if fbReq.DonorID == "" || fbReq.HospitalID == "" || fbReq.SystemManagerID == "" || fbReq.Comments == "" ||
		fbReq.FeedbackType == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	allowedTypes := map[models.FeedbackType]bool{
		models.PositiveFeedback: true,
		models.NegativeFeedback: true,
		models.NeutralFeedback:  true,
	}
	if !allowedTypes[fbReq.FeedbackType] {
		return nil, models.NewValidationError("invalid feedback type, must be 'Positive', 'Negative' or 'Neutral'")
	}

	donorExists, err := utils.CheckDonorExists(ctx, s.dbPool, fbReq.DonorID)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check donor existence")
	}
	if !donorExists {
		return nil, models.NewNotFound("donor not found")
	}

	hospitalExists, err := utils.CheckHospitalExists(ctx, s.dbPool, fbReq.HospitalID)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital existence")
	}
	if !hospitalExists {
		return nil, models.NewNotFound("hospital not found")
	}

	managerExists, err := utils.CheckSystemManagerExists(ctx, s.dbPool, fbReq.SystemManagerID)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check system manager existence")
	}
	if !managerExists {
		return nil, models.NewNotFound("system manager not found")
	}
	return s.Repo.CreateFeedback(ctx, fbReq)
}

// DeleteFeedback удаляет отзыв.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, feedbackId string) error {
	if feedbackId == "" {
		return models.NewValidationError("missing required parameter: feedbackId")
	}
	return s.Repo.DeleteFeedback(ctx, feedbackId)
}
