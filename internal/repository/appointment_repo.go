package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const appointmentColumns = `id, donor_id, hospital_id, hospital_admin_id, feedback_status, appointment_date,
	appointment_time, receipt_number, progress_status, accept_status, created_at, updated_at`

// AppointmentRepository - интерфейс для работы с записями на донацию.
type AppointmentRepository interface {
	GetAppointments(ctx context.Context, limit, offset int) ([]models.Appointment, error)
	GetAppointmentById(ctx context.Context, appointmentId string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, apptReq models.AppointmentRequest) (*models.Appointment, error)
	UpdateAppointmentDateTime(ctx context.Context, appointmentId string, date time.Time, timeOfDay string) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentId string, acceptStatus models.AppointmentAcceptStatus, progressStatus models.ProgressStatus) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentId string) error
}

// PostgresAppointmentRepository - реализация AppointmentRepository для базы данных.
type PostgresAppointmentRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresAppointmentRepository создаёт новый экземпляр PostgresAppointmentRepository.
func NewPostgresAppointmentRepository(db *pgxpool.Pool) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{DB: db}
}

func scanAppointmentRow(row pgx.Row, a *models.Appointment) error {
	return row.Scan(
		&a.ID,
		&a.DonorID,
		&a.HospitalID,
		&a.HospitalAdminID,
		&a.FeedbackStatus,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&a.ReceiptNumber,
		&a.ProgressStatus,
		&a.AcceptStatus,
		&a.CreatedAt,
		&a.UpdatedAt)
}

// GetAppointments возвращает список записей на донацию.
func (r *PostgresAppointmentRepository) GetAppointments(ctx context.Context, limit, offset int) ([]models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY appointment_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := scanAppointmentRow(rows, &a); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

// GetAppointmentById возвращает запись на донацию по идентификатору.
func (r *PostgresAppointmentRepository) GetAppointmentById(ctx context.Context, appointmentId string) (*models.Appointment, error) {
	var a models.Appointment
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	err := scanAppointmentRow(r.DB.QueryRow(ctx, query, appointmentId), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("appointment not found")
		}
		return nil, err
	}
	return &a, nil
}

// CreateAppointment создает новую запись на донацию в статусе Pending / Not Started.
func (r *PostgresAppointmentRepository) CreateAppointment(ctx context.Context, apptReq models.AppointmentRequest) (*models.Appointment, error) {
	now := time.Now().UTC()
	newAppointment := models.Appointment{
		ID:              uuid.New().String(),
		DonorID:         apptReq.DonorID,
		HospitalID:      apptReq.HospitalID,
		FeedbackStatus:  false,
		AppointmentDate: apptReq.AppointmentDate,
		AppointmentTime: apptReq.AppointmentTime,
		ReceiptNumber:   apptReq.ReceiptNumber,
		ProgressStatus:  models.NotStarted,
		AcceptStatus:    models.PendingAppointment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO appointments (id, donor_id, hospital_id, feedback_status, appointment_date, appointment_time,
           receipt_number, progress_status, accept_status, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
   `,
		newAppointment.ID,
		newAppointment.DonorID,
		newAppointment.HospitalID,
		newAppointment.FeedbackStatus,
		newAppointment.AppointmentDate,
		newAppointment.AppointmentTime,
		newAppointment.ReceiptNumber,
		newAppointment.ProgressStatus,
		newAppointment.AcceptStatus,
		newAppointment.CreatedAt,
		newAppointment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert appointment: %w", err)
	}
	return &newAppointment, nil
}

// UpdateAppointmentDateTime переносит запись на новые дату и время со сбросом статуса в Re-Scheduled.
func (r *PostgresAppointmentRepository) UpdateAppointmentDateTime(ctx context.Context, appointmentId string, date time.Time, timeOfDay string) (*models.Appointment, error) {
	var a models.Appointment
	query := `UPDATE appointments
	          SET appointment_date = $1, appointment_time = $2, accept_status = $3, updated_at = now()
	          WHERE id = $4
	          RETURNING ` + appointmentColumns
	err := scanAppointmentRow(r.DB.QueryRow(ctx, query, date, timeOfDay, models.RescheduledAppointment, appointmentId), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("appointment not found")
		}
		return nil, err
	}
	return &a, nil
}

// UpdateAppointmentStatus обновляет статусы решения и прохождения донации.
func (r *PostgresAppointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointmentId string, acceptStatus models.AppointmentAcceptStatus, progressStatus models.ProgressStatus) (*models.Appointment, error) {
	var a models.Appointment
	query := `UPDATE appointments
	          SET accept_status = $1, progress_status = $2, updated_at = now()
	          WHERE id = $3
	          RETURNING ` + appointmentColumns
	err := scanAppointmentRow(r.DB.QueryRow(ctx, query, acceptStatus, progressStatus, appointmentId), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("appointment not found")
		}
		return nil, err
	}
	return &a, nil
}

// DeleteAppointment удаляет запись на донацию.
func (r *PostgresAppointmentRepository) DeleteAppointment(ctx context.Context, appointmentId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, appointmentId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("appointment not found")
	}
	return nil
}
