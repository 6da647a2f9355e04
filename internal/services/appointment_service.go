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

type AppointmentService struct {
	Repo   repository.AppointmentRepository
	dbPool *pgxpool.Pool
}

// NewAppointmentService создает новый экземпляр AppointmentService.
func NewAppointmentService(repo repository.AppointmentRepository, dbPool *pgxpool.Pool) *AppointmentService {
	return &AppointmentService{Repo: repo, dbPool: dbPool}
}

// allowedAppointmentTransition описывает допустимые переходы статуса записи.
var allowedAppointmentTransition = map[models.AppointmentAcceptStatus][]models.AppointmentAcceptStatus{
	models.PendingAppointment:     {models.RescheduledAppointment, models.AcceptedAppointment, models.CancelledAppointment},
	models.RescheduledAppointment: {models.AcceptedAppointment, models.CancelledAppointment},
	models.AcceptedAppointment:    {models.CancelledAppointment},
	models.CancelledAppointment:   {},
}

func containsAppointmentStatus(validTransitions []models.AppointmentAcceptStatus, newStatus models.AppointmentAcceptStatus) bool {
	for _, validStatus := range validTransitions {
		if validStatus == newStatus {
			return true
		}
	}
	return false
}

// FetchAppointments возвращает список записей на донацию.
func (s *AppointmentService) FetchAppointments(ctx context.Context, limitStr, offsetStr string) ([]models.Appointment, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.Repo.GetAppointments(ctx, limit, offset)
}

// FetchAppointmentById возвращает запись на донацию по идентификатору.
func (s *AppointmentService) FetchAppointmentById(ctx context.Context, appointmentId string) (*models.Appointment, error) {
	if appointmentId == "" {
		return nil, models.NewValidationError("missing required parameter: appointmentId")
	}
	return s.Repo.GetAppointmentById(ctx, appointmentId)
}

// CreateAppointment создает запись на донацию после проверки всех обязательных полей.
func (s *AppointmentService) CreateAppointment(ctx context.Context, apptReq models.AppointmentRequest) (*models.Appointment, error) {
	if apptReq.DonorID == "" || apptReq.HospitalID == "" || apptReq.AppointmentDate.IsZero() ||
		apptReq.AppointmentTime == "" || apptReq.ReceiptNumber == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	donorExists, err := utils.CheckDonorExists(ctx, s.dbPool, apptReq.DonorID)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check donor existence")
	}
	if !donorExists {
		return nil, models.NewNotFound("donor not found")
	}

	hospitalExists, err := utils.CheckHospitalExists(ctx, s.dbPool, apptReq.HospitalID)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital existence")
	}
	if !hospitalExists {
		return nil, models.NewNotFound("hospital not found")
	}
	return s.Repo.CreateAppointment(ctx, apptReq)
}

// UpdateAppointmentDateTime переносит запись на новые дату и время.
func (s *AppointmentService) UpdateAppointmentDateTime(ctx context.Context, appointmentId string, dtReq models.AppointmentDateTimeRequest) (*models.Appointment, error) {
	if appointmentId == "" || dtReq.AppointmentDate.IsZero() || dtReq.AppointmentTime == "" {
		return nil, models.NewValidationError("missing required fields: appointmentId, appointmentDate or appointmentTime")
	}

	currentAppt, err := s.Repo.GetAppointmentById(ctx, appointmentId)
	if err != nil {
		return nil, err
	}

	validTransition := allowedAppointmentTransition[currentAppt.AcceptStatus]
	if !containsAppointmentStatus(validTransition, models.RescheduledAppointment) {
		return nil, models.NewInvalidStateTransition(
			fmt.Sprintf("cannot re-schedule appointment in status %s", currentAppt.AcceptStatus))
	}
	return s.Repo.UpdateAppointmentDateTime(ctx, appointmentId, dtReq.AppointmentDate, dtReq.AppointmentTime)
}

// AcceptAppointment подтверждает запись на донацию.
func (s *AppointmentService) AcceptAppointment(ctx context.Context, appointmentId string) (*models.Appointment, error) {
	if appointmentId == "" {
		return nil, models.NewValidationError("missing required parameter: appointmentId")
	}

	currentAppt, err := s.Repo.GetAppointmentById(ctx, appointmentId)
	if err != nil {
		return nil, err
	}

	validTransition := allowedAppointmentTransition[currentAppt.AcceptStatus]
	if !containsAppointmentStatus(validTransition, models.AcceptedAppointment) {
		return nil, models.NewInvalidStateTransition(
			fmt.Sprintf("cannot accept appointment in status %s", currentAppt.AcceptStatus))
	}
	return s.Repo.UpdateAppointmentStatus(ctx, appointmentId, models.AcceptedAppointment, currentAppt.ProgressStatus)
}

// CancelAppointment отменяет запись на донацию.
func (s *AppointmentService) CancelAppointment(ctx context.Context, appointmentId string) (*models.Appointment, error) {
	if appointmentId == "" {
		return nil, models.NewValidationError("missing required parameter: appointmentId")
	}

	currentAppt, err := s.Repo.GetAppointmentById(ctx, appointmentId)
	if err != nil {
		return nil, err
	}

	validTransition := allowedAppointmentTransition[currentAppt.AcceptStatus]
	if !containsAppointmentStatus(validTransition, models.CancelledAppointment) {
		return nil, models.NewInvalidStateTransition(
			fmt.Sprintf("cannot cancel appointment in status %s", currentAppt.AcceptStatus))
	}
	return s.Repo.UpdateAppointmentStatus(ctx, appointmentId, models.CancelledAppointment, models.CancelledProgress)
}

// MarkArrived отмечает прибытие донора, донация переходит в статус In Progress.
func (s *AppointmentService) MarkArrived(ctx context.Context, appointmentId string) (*models.Appointment, error) {
	if appointmentId == "" {
		return nil, models.NewValidationError("missing required parameter: appointmentId")
	}

	currentAppt, err := s.Repo.GetAppointmentById(ctx, appointmentId)
	if err != nil {
		return nil, err
	}

	if currentAppt.AcceptStatus != models.AcceptedAppointment {
		return nil, models.NewInvalidStateTransition(
			fmt.Sprintf("cannot mark arrival for appointment in status %s, appointment must be Accepted", currentAppt.AcceptStatus))
	}
	return s.Repo.UpdateAppointmentStatus(ctx, appointmentId, currentAppt.AcceptStatus, models.InProgress)
}

// DeleteAppointment удаляет запись на донацию.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, appointmentId string) error {
	if appointmentId == "" {
		return models.NewValidationError("missing required parameter: appointmentId")
	}
	return s.Repo.DeleteAppointment(ctx, appointmentId)
}
