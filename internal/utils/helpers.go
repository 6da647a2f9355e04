package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"

	"github.com/lifeline-lk/blood-bank-service/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// SendErrorResponse отправляет ошибку в формате JSON
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Println(err)
	}
}

// SendError отправляет типизированную ошибку в формате JSON
func SendError(w http.ResponseWriter, errResp *models.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errResp.StatusCode)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		log.Println(err)
	}
}

// ParseLimitOffset обрабатывает limit и offset
func ParseLimitOffset(limitStr, offsetStr string) (int, int, error) {
	var limit, offset int
	var err error

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 || limit > 50 {
			return 0, 0, fmt.Errorf("invalid limit parameter, must be a positive integer [0:50]")
		}
	} else {
		limit = 5
	}

	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset parameter, must be a non-negative integer")
		}
	} else {
		offset = 0
	}

	return limit, offset, nil
}

// IsValidPhoneNumber проверяет, что номер телефона состоит ровно из 10 цифр.
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidEmail проверяет формат email.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ContainsStatus - функция для проверки допустимого перехода статуса запроса
func ContainsStatus(validTransitions []models.AcceptStatus, newStatus models.AcceptStatus) bool {
	for _, validStatus := range validTransitions {
		if validStatus == newStatus {
			return true
		}
	}
	return false
}

// CheckHospitalExists проверяет, существует ли больница
func CheckHospitalExists(ctx context.Context, dbPool *pgxpool.Pool, hospitalId string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM hospitals WHERE id = $1)`
	err := dbPool.QueryRow(ctx, query, hospitalId).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CheckHospitalExistsByName проверяет, существует ли больница с указанным названием.
func CheckHospitalExistsByName(ctx context.Context, dbPool *pgxpool.Pool, hospitalName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM hospitals WHERE name = $1)`
	err := dbPool.QueryRow(ctx, query, hospitalName).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CheckDonorExists проверяет, существует ли донор
func CheckDonorExists(ctx context.Context, dbPool *pgxpool.Pool, donorId string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM donors WHERE id = $1)`
	err := dbPool.QueryRow(ctx, query, donorId).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CheckDonorEmailTaken проверяет, занят ли email донора.
func CheckDonorEmailTaken(ctx context.Context, dbPool *pgxpool.Pool, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM donors WHERE email = $1)`
	err := dbPool.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CheckDonorPhoneTaken проверяет, занят ли номер телефона донора.
func CheckDonorPhoneTaken(ctx context.Context, dbPool *pgxpool.Pool, phoneNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM donors WHERE phone_number = $1)`
	err := dbPool.QueryRow(ctx, query, phoneNumber).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CheckSystemManagerExists проверяет, существует ли системный менеджер
func CheckSystemManagerExists(ctx context.Context, dbPool *pgxpool.Pool, managerId string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM system_managers WHERE id = $1)`
	err := dbPool.QueryRow(ctx, query, managerId).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CheckInventoryExistsForHospital проверяет, есть ли уже запись запаса для пары (больница, группа крови).
func CheckInventoryExistsForHospital(ctx context.Context, dbPool *pgxpool.Pool, hospitalId string, bloodType models.BloodType) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM blood_inventory WHERE hospital_id = $1 AND blood_type = $2)`
	err := dbPool.QueryRow(ctx, query, hospitalId, bloodType).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
