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

type HospitalAdminService struct {
	Repo   repository.HospitalAdminRepository
	dbPool *pgxpool.Pool
}

// NewHospitalAdminService создает новый экземпляр HospitalAdminService.
func NewHospitalAdminService(repo repository.HospitalAdminRepository, dbPool *pgxpool.Pool) *HospitalAdminService {
	return &HospitalAdminService{Repo: repo, dbPool: dbPool}
}

// FetchHospitalAdmins возвращает список администраторов больниц.
func (s *HospitalAdminService) FetchHospitalAdmins(ctx context.Context, limitStr, offsetStr string) ([]models.HospitalAdmin, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.Repo.GetHospitalAdmins(ctx, limit, offset)
}

// FetchHospitalAdminsByHospital возвращает администраторов одной больницы.
func (s *HospitalAdminService) FetchHospitalAdminsByHospital(ctx context.Context, hospitalId string) ([]models.HospitalAdmin, error) {
	if hospitalId == "" {
		return nil, models.NewValidationError("missing required parameter: hospitalId")
	}

	hospitalExists, err := utils.CheckHospitalExists(ctx, s.dbPool, hospitalId)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital existence")
	}
	if !hospitalExists {
		return nil, models.NewNotFound("hospital not found")
	}
	return s.Repo.GetHospitalAdminsByHospital(ctx, hospitalId)
}

// FetchHospitalAdminById возвращает администратора по идентификатору.
func (s *HospitalAdminService) FetchHospitalAdminById(ctx context.Context, adminId string) (*models.HospitalAdmin, error) {
	if adminId == "" {
		return nil, models.NewValidationError("missing required parameter: adminId")
	}
	return s.Repo.GetHospitalAdminById(ctx, adminId)
}

// CreateHospitalAdmin создает администратора с хешированием пароля.
func (s *HospitalAdminService) CreateHospitalAdmin(ctx context.Context, adminReq models.HospitalAdminRequest) (*models.HospitalAdmin, error) {
	if adminReq.HospitalID == "" || adminReq.FirstName == "" || adminReq.LastName == "" || adminReq.Email == "" ||
		adminReq.Password == "" || adminReq.PhoneNumber == "" || adminReq.NIC == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	if !utils.IsValidEmail(adminReq.Email) {
		return nil, models.NewValidationError("invalid email format")
	}

	if len(adminReq.Password) < MinPasswordLength {
		return nil, models.NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	if !utils.IsValidPhoneNumber(adminReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", adminReq.PhoneNumber))
	}

	hospitalExists, err := utils.CheckHospitalExists(ctx, s.dbPool, adminReq.HospitalID)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital existence")
	}
	if !hospitalExists {
		return nil, models.NewNotFound("hospital not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminReq.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to hash password")
	}
	return s.Repo.CreateHospitalAdmin(ctx, adminReq, string(hashed))
}

// UpdateHospitalAdmin обновляет данные администратора.
func (s *HospitalAdminService) UpdateHospitalAdmin(ctx context.Context, adminId string, adminReq models.HospitalAdminRequest) (*models.HospitalAdmin, error) {
	if adminId == "" {
		return nil, models.NewValidationError("missing required parameter: adminId")
	}

	if adminReq.PhoneNumber != "" && !utils.IsValidPhoneNumber(adminReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", adminReq.PhoneNumber))
	}
	return s.Repo.UpdateHospitalAdmin(ctx, adminId, adminReq)
}

// ToggleHospitalAdminStatus переключает флаг активности администратора.
func (s *HospitalAdminService) ToggleHospitalAdminStatus(ctx context.Context, adminId string) (*models.HospitalAdmin, error) {
	if adminId == "" {
		return nil, models.NewValidationError("missing required parameter: adminId")
	}
	return s.Repo.ToggleHospitalAdminStatus(ctx, adminId)
}

// DeleteHospitalAdmin удаляет администратора.
func (s *HospitalAdminService) DeleteHospitalAdmin(ctx context.Context, adminId string) error {
	if adminId == "" {
		return models.NewValidationError("missing required parameter: adminId")
	}
	return s.Repo.DeleteHospitalAdmin(ctx, adminId)
}
