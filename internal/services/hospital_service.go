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

type HospitalService struct {
	Repo   repository.HospitalRepository
	dbPool *pgxpool.Pool
}

// NewHospitalService создает новый экземпляр HospitalService.
func NewHospitalService(repo repository.HospitalRepository, dbPool *pgxpool.Pool) *HospitalService {
	return &HospitalService{Repo: repo, dbPool: dbPool}
}

// FetchHospitals возвращает список больниц.
func (s *HospitalService) FetchHospitals(ctx context.Context, limitStr, offsetStr string) ([]models.Hospital, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.Repo.GetHospitals(ctx, limit, offset)
}

// FetchHospitalById возвращает больницу по идентификатору.
func (s *HospitalService) FetchHospitalById(ctx context.Context, hospitalId string) (*models.Hospital, error) {
	if hospitalId == "" {
		return nil, models.NewValidationError("missing required parameter: hospitalId")
	}
	return s.Repo.GetHospitalById(ctx, hospitalId)
}

// CreateHospital создает больницу с хешированием пароля.
func (s *HospitalService) CreateHospital(ctx context.Context, hospReq models.HospitalRequest) (*models.Hospital, error) {
	if hospReq.Name == "" || hospReq.Email == "" || hospReq.Password == "" || hospReq.PhoneNumber == "" ||
		hospReq.Address == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	if !utils.IsValidEmail(hospReq.Email) {
		return nil, models.NewValidationError("invalid email format")
	}

	if len(hospReq.Password) < MinPasswordLength {
		return nil, models.NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	if !utils.IsValidPhoneNumber(hospReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", hospReq.PhoneNumber))
	}

	nameTaken, err := utils.CheckHospitalExistsByName(ctx, s.dbPool, hospReq.Name)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital name")
	}
	if nameTaken {
		return nil, models.NewValidationError("hospital name already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(hospReq.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to hash password")
	}
	return s.Repo.CreateHospital(ctx, hospReq, string(hashed))
}

// UpdateHospital обновляет данные больницы.
func (s *HospitalService) UpdateHospital(ctx context.Context, hospitalId string, hospReq models.HospitalRequest) (*models.Hospital, error) {
	if hospitalId == "" {
		return nil, models.NewValidationError("missing required parameter: hospitalId")
	}

	if hospReq.PhoneNumber != "" && !utils.IsValidPhoneNumber(hospReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", hospReq.PhoneNumber))
	}
	return s.Repo.UpdateHospital(ctx, hospitalId, hospReq)
}

// DeleteHospital удаляет больницу.
func (s *HospitalService) DeleteHospital(ctx context.Context, hospitalId string) error {
	if hospitalId == "" {
		return models.NewValidationError("missing required parameter: hospitalId")
	}
	return s.Repo.DeleteHospital(ctx, hospitalId)
}
