package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/services"

	"github.com/stretchr/testify/require"
)

// MockAppointmentRepo реализует repository.AppointmentRepository
type MockAppointmentRepo struct {
	appointment      *models.Appointment
	UpdateStatusFunc func(ctx context.Context, appointmentId string, acceptStatus models.AppointmentAcceptStatus, progressStatus models.ProgressStatus) (*models.Appointment, error)
}

func (m *MockAppointmentRepo) GetAppointments(ctx context.Context, limit, offset int) ([]models.Appointment, error) {
	return []models.Appointment{}, nil
}

func (m *MockAppointmentRepo) GetAppointmentById(ctx context.Context, appointmentId string) (*models.Appointment, error) {
	if m.appointment == nil {
		return nil, models.NewNotFound("appointment not found")
	}
	return m.appointment, nil
}

func (m *MockAppointmentRepo) CreateAppointment(ctx context.Context, apptReq models.AppointmentRequest) (*models.Appointment, error) {
	return &models.Appointment{
		ID:             "ap-1",
		DonorID:        apptReq.DonorID,
		HospitalID:     apptReq.HospitalID,
		AcceptStatus:   models.PendingAppointment,
		ProgressStatus: models.NotStarted,
	}, nil
}

func (m *MockAppointmentRepo) UpdateAppointmentDateTime(ctx context.Context, appointmentId string, date time.Time, timeOfDay string) (*models.Appointment, error) {
	rescheduled := *m.appointment
	rescheduled.AcceptStatus = models.RescheduledAppointment
	rescheduled.AppointmentDate = date
	rescheduled.AppointmentTime = timeOfDay
	return &rescheduled, nil
}

func (m *MockAppointmentRepo) UpdateAppointmentStatus(ctx context.Context, appointmentId string, acceptStatus models.AppointmentAcceptStatus, progressStatus models.ProgressStatus) (*models.Appointment, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, appointmentId, acceptStatus, progressStatus)
	}
	updated := *m.appointment
	updated.AcceptStatus = acceptStatus
	updated.ProgressStatus = progressStatus
	return &updated, nil
}

func (m *MockAppointmentRepo) DeleteAppointment(ctx context.Context, appointmentId string) error {
	return nil
}

func appointmentInStatus(status models.AppointmentAcceptStatus) *models.Appointment {
	return &models.Appointment{
		ID:             "ap-1",
		DonorID:        "donor-1",
		HospitalID:     "hosp-1",
		AcceptStatus:   status,
		ProgressStatus: models.NotStarted,
	}
}

func TestAcceptAppointmentTransitions(t *testing.T) {
	tests := []struct {
		from    models.AppointmentAcceptStatus
		wantErr bool
	}{
		{models.PendingAppointment, false},
		{models.RescheduledAppointment, false},
		{models.AcceptedAppointment, true},
		{models.CancelledAppointment, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			repo := &MockAppointmentRepo{appointment: appointmentInStatus(tt.from)}
			svc := services.NewAppointmentService(repo, nil)

			appt, err := svc.AcceptAppointment(context.Background(), "ap-1")
			if tt.wantErr {
				require.Error(t, err)
				errResp, ok := err.(*models.ErrorResponse)
				require.True(t, ok)
				require.Equal(t, http.StatusConflict, errResp.StatusCode)
				require.Equal(t, models.InvalidStateTransition, errResp.Kind)
				return
			}
			require.NoError(t, err)
			require.Equal(t, models.AcceptedAppointment, appt.AcceptStatus)
		})
	}
}

func TestCancelAppointmentFromCancelledFails(t *testing.T) {
	repo := &MockAppointmentRepo{appointment: appointmentInStatus(models.CancelledAppointment)}
	svc := services.NewAppointmentService(repo, nil)

	_, err := svc.CancelAppointment(context.Background(), "ap-1")
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, models.InvalidStateTransition, errResp.Kind)
}

func TestCancelAppointmentSetsCancelledProgress(t *testing.T) {
	repo := &MockAppointmentRepo{appointment: appointmentInStatus(models.AcceptedAppointment)}
	svc := services.NewAppointmentService(repo, nil)

	appt, err := svc.CancelAppointment(context.Background(), "ap-1")
	require.NoError(t, err)
	require.Equal(t, models.CancelledAppointment, appt.AcceptStatus)
	require.Equal(t, models.CancelledProgress, appt.ProgressStatus)
}

func TestRescheduleAppointmentFromAcceptedFails(t *testing.T) {
	repo := &MockAppointmentRepo{appointment: appointmentInStatus(models.AcceptedAppointment)}
	svc := services.NewAppointmentService(repo, nil)

	_, err := svc.UpdateAppointmentDateTime(context.Background(), "ap-1", models.AppointmentDateTimeRequest{
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		AppointmentTime: "10:30",
	})
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, models.InvalidStateTransition, errResp.Kind)
}

func TestRescheduleAppointmentFromPending(t *testing.T) {
	repo := &MockAppointmentRepo{appointment: appointmentInStatus(models.PendingAppointment)}
	svc := services.NewAppointmentService(repo, nil)

	appt, err := svc.UpdateAppointmentDateTime(context.Background(), "ap-1", models.AppointmentDateTimeRequest{
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		AppointmentTime: "10:30",
	})
	require.NoError(t, err)
	require.Equal(t, models.RescheduledAppointment, appt.AcceptStatus)
}

func TestMarkArrivedRequiresAccepted(t *testing.T) {
	for _, status := range []models.AppointmentAcceptStatus{
		models.PendingAppointment,
		models.RescheduledAppointment,
		models.CancelledAppointment,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &MockAppointmentRepo{appointment: appointmentInStatus(status)}
			svc := services.NewAppointmentService(repo, nil)

			_, err := svc.MarkArrived(context.Background(), "ap-1")
			require.Error(t, err)

			errResp, ok := err.(*models.ErrorResponse)
			require.True(t, ok)
			require.Equal(t, models.InvalidStateTransition, errResp.Kind)
		})
	}
}

func TestMarkArrivedStartsDonation(t *testing.T) {
	repo := &MockAppointmentRepo{appointment: appointmentInStatus(models.AcceptedAppointment)}
	svc := services.NewAppointmentService(repo, nil)

	appt, err := svc.MarkArrived(context.Background(), "ap-1")
	require.NoError(t, err)
	require.Equal(t, models.AcceptedAppointment, appt.AcceptStatus)
	require.Equal(t, models.InProgress, appt.ProgressStatus)
}
