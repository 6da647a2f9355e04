package models

import (
	"fmt"
	"net/http"
)

type ErrorKind string // Категория ошибки, возвращаемой клиенту

const (
	ValidationError        ErrorKind = "ValidationError"        // Некорректные или отсутствующие поля
	InsufficientStock      ErrorKind = "InsufficientStock"      // Недостаточно запаса крови
	InvalidStateTransition ErrorKind = "InvalidStateTransition" // Недопустимый переход статуса
	NotFound               ErrorKind = "NotFound"               // Сущность не найдена
)

// ErrorResponse описывает ошибку с кодом, категорией и сообщением.
type ErrorResponse struct {
	StatusCode int       `json:"-"`
	Kind       ErrorKind `json:"error,omitempty"`
	Message    string    `json:"reason"`
	Shortfall  int       `json:"shortfall,omitempty"`
}

// NewErrorResponse создает новую ошибку с кодом и сообщением.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message}
}

// NewValidationError создает ошибку валидации входных данных.
func NewValidationError(message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Kind:       ValidationError,
		Message:    message}
}

// NewInsufficientStock создает ошибку нехватки запаса с величиной дефицита.
func NewInsufficientStock(bloodType BloodType, available, requested int) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: http.StatusConflict,
		Kind:       InsufficientStock,
		Message:    fmt.Sprintf("insufficient %s stock. Available: %d units", bloodType, available),
		Shortfall:  requested - available}
}

// NewInvalidStateTransition создает ошибку недопустимого перехода статуса.
func NewInvalidStateTransition(message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: http.StatusConflict,
		Kind:       InvalidStateTransition,
		Message:    message}
}

// NewNotFound создает ошибку отсутствия сущности.
func NewNotFound(message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: http.StatusNotFound,
		Kind:       NotFound,
		Message:    message}
}

// Реализация метода Error() для удовлетворения интерфейса error.
func (e *ErrorResponse) Error() string {
	return e.Message
}
