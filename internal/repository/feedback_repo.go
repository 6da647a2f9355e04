package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const feedbackColumns = `id, donor_id, hospital_id, system_manager_id, comments, feedback_type, created_at, updated_at`

// FeedbackRepository - интерфейс для работы с отзывами.
type FeedbackRepository interface {
	GetFeedback(ctx context.Context, limit, offset int) ([]models.Feedback, error)
	GetFeedbackById(ctx context.Context, feedbackId string) (*models.Feedback, error)
	CreateFeedback(ctx context.Context, fbReq models.FeedbackRequest) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, feedbackId string) error
}

// PostgresFeedbackRepository - реализация FeedbackRepository для базы данных.
type PostgresFeedbackRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresFeedbackRepository создаёт новый экземпляр PostgresFeedbackRepository.
func NewPostgresFeedbackRepository(db *pgxpool.Pool) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{DB: db}
}

func scanFeedbackRow(row pgx.Row, f *models.Feedback) error {
	return row.Scan(
		&f.ID,
		&f.DonorID,
		&f.HospitalID,
		&f.SystemManagerID,
		&f.Comments,
		&f.FeedbackType,
		&f.CreatedAt,
		&f.UpdatedAt)
}

// GetFeedback возвращает список отзывов.
func (r *PostgresFeedbackRepository) GetFeedback(ctx context.Context, limit, offset int) ([]models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := scanFeedbackRow(rows, &f); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, nil
}

// GetFeedbackById возвращает отзыв по идентификатору.
func (r *PostgresFeedbackRepository) GetFeedbackById(ctx context.Context, feedbackId string) (*models.Feedback, error) {
	var f models.Feedback
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`
	err := scanFeedbackRow(r.DB.QueryRow(ctx, query, feedbackId), &f)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("feedback not found")
		}
		return nil, err
	}
	return &f, nil
}

// CreateFeedback создает новый отзыв.
func (r *PostgresFeedbackRepository) CreateFeedback(ctx context.Context, fbReq models.FeedbackRequest) (*models.Feedback, error) {
	now := time.Now().UTC()
	newFeedback := models.Feedback{
		ID:              uuid.New().String(),
		DonorID:         fbReq.DonorID,
		HospitalID:      fbReq.HospitalID,
		SystemManagerID: fbReq.SystemManagerID,
		Comments:        fbReq.Comments,
		FeedbackType:    fbReq.FeedbackType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO feedback (id, donor_id, hospital_id, system_manager_id, comments, feedback_type, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
   `,
		newFeedback.ID,
		newFeedback.DonorID,
		newFeedback.HospitalID,
		newFeedback.SystemManagerID,
		newFeedback.Comments,
		newFeedback.FeedbackType,
		newFeedback.CreatedAt,
		newFeedback.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert feedback: %w", err)
	}
	return &newFeedback, nil
}

// DeleteFeedback удаляет отзыв.
func (r *PostgresFeedbackRepository) DeleteFeedback(ctx context.Context, feedbackId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, feedbackId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("feedback not found")
	}
	return nil
}
