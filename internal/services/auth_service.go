package services

import (
	"context"
	"net/http"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Роли, зашиваемые в токен доступа.
const (
	RoleDonor         = "Donor"
	RoleHospital      = "Hospital"
	RoleHospitalAdmin = "HospitalAdmin"
	RoleSystemManager = "SystemManager"
)

type AuthService struct {
	donorRepo    repository.DonorRepository
	hospitalRepo repository.HospitalRepository
	adminRepo    repository.HospitalAdminRepository
	managerRepo  repository.SystemManagerRepository
	jwtSecret    string
	logger       *zap.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(
	donorRepo repository.DonorRepository,
	hospitalRepo repository.HospitalRepository,
	adminRepo repository.HospitalAdminRepository,
	managerRepo repository.SystemManagerRepository,
	jwtSecret string,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		donorRepo:    donorRepo,
		hospitalRepo: hospitalRepo,
		adminRepo:    adminRepo,
		managerRepo:  managerRepo,
		jwtSecret:    jwtSecret,
		logger:       logger,
	}
}

// signinError - единый ответ на неверные учётные данные, без уточнения поля.
func signinError() *models.ErrorResponse {
	return models.NewErrorResponse(http.StatusUnauthorized, "incorrect email or password")
}

func (s *AuthService) issueToken(userId, role string, user interface{}) (*models.AuthResponse, error) {
	token, err := utils.CreateToken(userId, role, s.jwtSecret)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to sign token")
	}
	return &models.AuthResponse{Token: token, User: user, Role: role}, nil
}

// comparePassword сверяет пароль с хешем. Пароли хранятся только как bcrypt-хеши.
func comparePassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// SigninDonor выполняет вход донора.
func (s *AuthService) SigninDonor(ctx context.Context, req models.SigninRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, models.NewValidationError("all fields are required")
	}

	donor, err := s.donorRepo.GetDonorByEmail(ctx, req.Email)
	if err != nil {
		return nil, signinError()
	}
	if !comparePassword(donor.Password, req.Password) {
		return nil, signinError()
	}
	return s.issueToken(donor.ID, RoleDonor, donor)
}

// SigninHospital выполняет вход больницы.
func (s *AuthService) SigninHospital(ctx context.Context, req models.SigninRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, models.NewValidationError("all fields are required")
	}

	hospital, err := s.hospitalRepo.GetHospitalByEmail(ctx, req.Email)
	if err != nil {
		return nil, signinError()
	}
	if !comparePassword(hospital.Password, req.Password) {
		return nil, signinError()
	}
	return s.issueToken(hospital.ID, RoleHospital, hospital)
}

// SigninHospitalAdmin выполняет вход администратора больницы.
func (s *AuthService) SigninHospitalAdmin(ctx context.Context, req models.SigninRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, models.NewValidationError("all fields are required")
	}

	admin, err := s.adminRepo.GetHospitalAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, signinError()
	}
	if !comparePassword(admin.Password, req.Password) {
		return nil, signinError()
	}
	return s.issueToken(admin.ID, RoleHospitalAdmin, admin)
}

// SigninSystemManager выполняет вход системного менеджера.
func (s *AuthService) SigninSystemManager(ctx context.Context, req models.SigninRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, models.NewValidationError("all fields are required")
	}

	manager, err := s.managerRepo.GetSystemManagerByEmail(ctx, req.Email)
	if err != nil {
		return nil, signinError()
	}
	if !comparePassword(manager.Password, req.Password) {
		return nil, signinError()
	}
	return s.issueToken(manager.ID, RoleSystemManager, manager)
}
