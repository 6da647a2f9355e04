package models

import "time"

type FeedbackType string // Тип отзыва

const (
	PositiveFeedback FeedbackType = "Positive"
	NegativeFeedback FeedbackType = "Negative"
	NeutralFeedback  FeedbackType = "Neutral"
)

// Feedback представляет модель отзыва донора.
type Feedback struct {
	ID              string       `json:"id"`
	DonorID         string       `json:"donorId"`
	HospitalID      string       `json:"hospitalId"`
	SystemManagerID string       `json:"systemManagerId"`
	Comments        string       `json:"comments"`
	FeedbackType    FeedbackType `json:"feedbackType"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// FeedbackRequest представляет структуру запроса для создания отзыва.
type FeedbackRequest struct {
	DonorID         string       `json:"donorId"`
	HospitalID      string       `json:"hospitalId"`
	SystemManagerID string       `json:"systemManagerId"`
	Comments        string       `json:"comments"`
	FeedbackType    FeedbackType `json:"feedbackType"`
}
