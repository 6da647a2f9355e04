package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EmergencyService struct {
	Repo   repository.EmergencyRepository
	dbPool *pgxpool.Pool
}

// NewEmergencyService создает новый экземпляр EmergencyService.
func NewEmergencyService(repo repository.EmergencyRepository, dbPool *pgxpool.Pool) *EmergencyService {
	return &EmergencyService{Repo: repo, dbPool: dbPool}
}

// FetchRequests возвращает список экстренных запросов с фильтром по группам крови.
func (s *EmergencyService) FetchRequests(ctx context.Context, limitStr, offsetStr string, bloodTypes []string) ([]models.EmergencyRequest, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	var filteredTypes []string
	for _, bt := range bloodTypes {
		if models.IsValidBloodType(models.BloodType(bt)) {
			filteredTypes = append(filteredTypes, bt)
		}
	}
	return s.Repo.GetRequests(ctx, limit, offset, filteredTypes)
}

// FetchRequestById возвращает экстренный запрос по идентификатору.
func (s *EmergencyService) FetchRequestById(ctx context.Context, requestId string) (*models.EmergencyRequest, error) {
	if requestId == "" {
		return nil, models.NewValidationError("missing required parameter: requestId")
	}
	return s.Repo.GetRequestById(ctx, requestId)
}

// CreateRequest создает экстренный запрос после проверки всех обязательных полей.
func (s *EmergencyService) CreateRequest(ctx context.Context, input models.EmergencyRequestInput) (*models.EmergencyRequest, error) {
	if input.Name == "" || input.PhoneNumber == "" || input.ProofOfIDNum == "" || input.PatientBlood == "" ||
		input.Reason == "" || input.CriticalLevel == "" || input.WithinDate.IsZero() || input.HospitalName == "" ||
		input.Address == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	if !utils.IsValidPhoneNumber(input.PhoneNumber) {
		return nil, models.NewValidationError(fmt.Sprintf("%s is not a valid phone number", input.PhoneNumber))
	}

	if !models.IsValidBloodType(input.PatientBlood) {
		return nil, models.NewValidationError(fmt.Sprintf("invalid blood type: %s", input.PatientBlood))
	}

	if input.Units < 1 {
		return nil, models.NewValidationError("units must be at least 1")
	}

	allowedLevels := map[models.CriticalLevel]bool{
		models.LowLevel:    true,
		models.MediumLevel: true,
		models.HighLevel:   true,
	}
	if !allowedLevels[input.CriticalLevel] {
		return nil, models.NewValidationError("invalid critical level, must be 'Low', 'Medium' or 'High'")
	}
	return s.Repo.CreateRequest(ctx, input)
}

// AcceptRequest принимает запрос от имени больницы или донора и списывает запас.
func (s *EmergencyService) AcceptRequest(ctx context.Context, requestId string, input models.AcceptRequestInput) (*models.EmergencyRequest, error) {
	if requestId == "" || input.AcceptedBy == "" || input.AcceptedByType == "" {
		return nil, models.NewValidationError("missing required fields: requestId, acceptedBy or acceptedByType")
	}

	if input.AcceptedByType != models.HospitalActor && input.AcceptedByType != models.DonorActor {
		return nil, models.NewValidationError("invalid acceptedByType, must be 'Hospital' or 'Donor'")
	}

	currentRequest, err := s.Repo.GetRequestById(ctx, requestId)
	if err != nil {
		return nil, err
	}

	allowedStatusTransition := map[models.AcceptStatus][]models.AcceptStatus{
		models.PendingRequest:  {models.AcceptedRequest, models.DeclinedRequest},
		models.AcceptedRequest: {},
		models.DeclinedRequest: {},
	}
	validTransition := allowedStatusTransition[currentRequest.AcceptStatus]
	if !utils.ContainsStatus(validTransition, models.AcceptedRequest) {
		return nil, models.NewInvalidStateTransition(
			fmt.Sprintf("cannot accept request in status %s, only Pending requests can be accepted", currentRequest.AcceptStatus))
	}

	hospitalExists, err := utils.CheckHospitalExistsByName(ctx, s.dbPool, currentRequest.HospitalName)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital existence")
	}
	if !hospitalExists {
		return nil, models.NewNotFound(fmt.Sprintf("hospital %s not found", currentRequest.HospitalName))
	}
	return s.Repo.AcceptRequest(ctx, requestId, input.AcceptedBy, input.AcceptedByType)
}

// DeclineRequest отклоняет запрос. Пустая причина заменяется причиной по умолчанию.
func (s *EmergencyService) DeclineRequest(ctx context.Context, requestId, reason string) (*models.EmergencyRequest, error) {
	if requestId == "" {
		return nil, models.NewValidationError("missing required parameter: requestId")
	}

	currentRequest, err := s.Repo.GetRequestById(ctx, requestId)
	if err != nil {
		return nil, err
	}

	allowedStatusTransition := map[models.AcceptStatus][]models.AcceptStatus{
		models.PendingRequest:  {models.AcceptedRequest, models.DeclinedRequest},
		models.AcceptedRequest: {},
		models.DeclinedRequest: {},
	}
	validTransition := allowedStatusTransition[currentRequest.AcceptStatus]
	if !utils.ContainsStatus(validTransition, models.DeclinedRequest) {
		return nil, models.NewInvalidStateTransition(
			fmt.Sprintf("cannot decline request in status %s, only Pending requests can be declined", currentRequest.AcceptStatus))
	}

	if reason == "" {
		reason = models.DefaultDeclineReason
	}
	return s.Repo.DeclineRequest(ctx, requestId, reason)
}

// DeleteRequest удаляет запрос в любом статусе без возврата списанного запаса.
func (s *EmergencyService) DeleteRequest(ctx context.Context, requestId string) error {
	if requestId == "" {
		return models.NewValidationError("missing required parameter: requestId")
	}
	return s.Repo.DeleteRequest(ctx, requestId)
}
