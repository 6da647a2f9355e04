package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type SystemManagerService struct {
	Repo   repository.SystemManagerRepository
	dbPool *pgxpool.Pool
}

// NewSystemManagerService создает новый экземпляр SystemManagerService.
func NewSystemManagerService(repo repository.SystemManagerRepository, dbPool *pgxpool.Pool) *SystemManagerService {
	return &SystemManagerService{Repo: repo, dbPool: dbPool}
}

// FetchSystemManagers возвращает список системных менеджеров.
func (s *SystemManagerService) FetchSystemManagers(ctx context.Context, limitStr, offsetStr string) ([]models.SystemManager, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.Repo.GetSystemManagers(ctx, limit, offset)
}

// FetchSystemManagerById возвращает менеджера по идентификатору.
func (s *SystemManagerService) FetchSystemManagerById(ctx context.Context, managerId string) (*models.SystemManager, error) {
	if managerId == "" {
		return nil, models.NewValidationError("missing required parameter: managerId")
	}
	return s.Repo.GetSystemManagerById(ctx, managerId)
}

// CreateSystemManager создает менеджера с проверкой уникальных полей и хешированием пароля.
func (s *SystemManagerService) CreateSystemManager(ctx context.Context, mgrReq models.SystemManagerRequest) (*models.SystemManager, error) {
	if mgrReq.FirstName == "" || mgrReq.LastName == "" || mgrReq.PhoneNumber == "" || mgrReq.Email == "" ||
		mgrReq.Password == "" || mgrReq.NIC == "" || mgrReq.Address == "" || mgrReq.DOB.IsZero() || mgrReq.Role == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	if !utils.IsValidEmail(mgrReq.Email) {
		return nil, models.NewValidationError("invalid email format")
	}

	if len(mgrReq.Password) < MinPasswordLength {
		return nil, models.NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	if !utils.IsValidPhoneNumber(mgrReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", mgrReq.PhoneNumber))
	}

	duplicateField, err := s.Repo.FindDuplicateField(ctx, mgrReq.Email, mgrReq.PhoneNumber, mgrReq.NIC)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check duplicate fields")
	}
	if duplicateField != "" {
		return nil, models.NewValidationError(fmt.Sprintf("%s already in use", duplicateField))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(mgrReq.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to hash password")
	}
	return s.Repo.CreateSystemManager(ctx, mgrReq, string(hashed))
}

// UpdateSystemManager обновляет данные менеджера.
func (s *SystemManagerService) UpdateSystemManager(ctx context.Context, managerId string, mgrReq models.SystemManagerRequest) (*models.SystemManager, error) {
	if managerId == "" {
		return nil, models.NewValidationError("missing required parameter: managerId")
	}

	if mgrReq.PhoneNumber != "" && !utils.IsValidPhoneNumber(mgrReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", mgrReq.PhoneNumber))
	}
	return s.Repo.UpdateSystemManager(ctx, managerId, mgrReq)
}

// DeleteSystemManager удаляет менеджера.
func (s *SystemManagerService) DeleteSystemManager(ctx context.Context, managerId string) error {
	if managerId == "" {
		return models.NewValidationError("missing required parameter: managerId")
	}
	return s.Repo.DeleteSystemManager(ctx, managerId)
}
