package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// MinDonorAge - минимальный возраст донора в годах.
const MinDonorAge = 18

// MinPasswordLength - минимальная длина пароля.
const MinPasswordLength = 8

type DonorService struct {
	Repo   repository.DonorRepository
	dbPool *pgxpool.Pool
}

// NewDonorService создает новый экземпляр DonorService.
func NewDonorService(repo repository.DonorRepository, dbPool *pgxpool.Pool) *DonorService {
	return &DonorService{Repo: repo, dbPool: dbPool}
}

// FetchDonors возвращает список доноров.
func (s *DonorService) FetchDonors(ctx context.Context, limitStr, offsetStr string) ([]models.Donor, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.Repo.GetDonors(ctx, limit, offset)
}

// FetchDonorById возвращает донора по идентификатору.
func (s *DonorService) FetchDonorById(ctx context.Context, donorId string) (*models.Donor, error) {
	if donorId == "" {
		return nil, models.NewValidationError("missing required parameter: donorId")
	}
	return s.Repo.GetDonorById(ctx, donorId)
}

// SignupDonor регистрирует нового донора с хешированием пароля.
func (s *DonorService) SignupDonor(ctx context.Context, donorReq models.DonorRequest) (*models.Donor, error) {
	if donorReq.FirstName == "" || donorReq.LastName == "" || donorReq.Gender == "" || donorReq.PhoneNumber == "" ||
		donorReq.Email == "" || donorReq.Password == "" || donorReq.DOB.IsZero() || donorReq.BloodType == "" ||
		donorReq.Location == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	if !utils.IsValidEmail(donorReq.Email) {
		return nil, models.NewValidationError("invalid email format")
	}

	if len(donorReq.Password) < MinPasswordLength {
		return nil, models.NewValidationError(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}

	if !utils.IsValidPhoneNumber(donorReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", donorReq.PhoneNumber))
	}

	if donorReq.Gender != models.Male && donorReq.Gender != models.Female && donorReq.Gender != models.Other {
		return nil, models.NewValidationError("invalid gender, must be 'Male', 'Female' or 'Other'")
	}

	if !models.IsValidBloodType(donorReq.BloodType) {
		return nil, models.NewValidationError(fmt.Sprintf("invalid blood type: %s", donorReq.BloodType))
	}

	if donorReq.DOB.After(time.Now().AddDate(-MinDonorAge, 0, 0)) {
		return nil, models.NewValidationError(fmt.Sprintf("donor must be at least %d years old", MinDonorAge))
	}

	emailTaken, err := utils.CheckDonorEmailTaken(ctx, s.dbPool, donorReq.Email)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check email")
	}
	if emailTaken {
		return nil, models.NewValidationError("email already exists")
	}

	phoneTaken, err := utils.CheckDonorPhoneTaken(ctx, s.dbPool, donorReq.PhoneNumber)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check phone number")
	}
	if phoneTaken {
		return nil, models.NewValidationError("phone number already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(donorReq.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to hash password")
	}
	return s.Repo.CreateDonor(ctx, donorReq, string(hashed))
}

// UpdateDonor обновляет данные донора.
func (s *DonorService) UpdateDonor(ctx context.Context, donorId string, donorReq models.DonorRequest) (*models.Donor, error) {
	if donorId == "" {
		return nil, models.NewValidationError("missing required parameter: donorId")
	}

	if donorReq.PhoneNumber != "" && !utils.IsValidPhoneNumber(donorReq.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", donorReq.PhoneNumber))
	}

	if donorReq.BloodType != "" && !models.IsValidBloodType(donorReq.BloodType) {
		return nil, models.NewValidationError(fmt.Sprintf("invalid blood type: %s", donorReq.BloodType))
	}
	return s.Repo.UpdateDonor(ctx, donorId, donorReq)
}

// ToggleDonorStatus переключает флаг активности донора.
func (s *DonorService) ToggleDonorStatus(ctx context.Context, donorId string) (*models.Donor, error) {
	if donorId == "" {
		return nil, models.NewValidationError("missing required parameter: donorId")
	}
	return s.Repo.ToggleDonorStatus(ctx, donorId)
}

// DeleteDonor удаляет донора.
func (s *DonorService) DeleteDonor(ctx context.Context, donorId string) error {
	if donorId == "" {
		return models.NewValidationError("missing required parameter: donorId")
	}
	return s.Repo.DeleteDonor(ctx, donorId)
}
