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

const hospitalColumns = `id, name, email, password, phone_number, address, active_status, created_at, updated_at`

// HospitalRepository - интерфейс для работы с больницами.
type HospitalRepository interface {
	GetHospitals(ctx context.Context, limit, offset int) ([]models.Hospital, error)
	GetHospitalById(ctx context.Context, hospitalId string) (*models.Hospital, error)
	GetHospitalByEmail(ctx context.Context, email string) (*models.Hospital, error)
	CreateHospital(ctx context.Context, hospReq models.HospitalRequest, hashedPassword string) (*models.Hospital, error)
	UpdateHospital(ctx context.Context, hospitalId string, hospReq models.HospitalRequest) (*models.Hospital, error)
	DeleteHospital(ctx context.Context, hospitalId string) error
}

// PostgresHospitalRepository - реализация HospitalRepository для базы данных.
type PostgresHospitalRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresHospitalRepository создаёт новый экземпляр PostgresHospitalRepository.
func NewPostgresHospitalRepository(db *pgxpool.Pool) *PostgresHospitalRepository {
	return &PostgresHospitalRepository{DB: db}
}

func scanHospitalRow(row pgx.Row, h *models.Hospital) error {
	return row.Scan(
		&h.ID,
		&h.Name,
		&h.Email,
		&h.Password,
		&h.PhoneNumber,
		&h.Address,
		&h.ActiveStatus,
		&h.CreatedAt,
		&h.UpdatedAt)
}

// GetHospitals возвращает список больниц.
func (r *PostgresHospitalRepository) GetHospitals(ctx context.Context, limit, offset int) ([]models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hospitals []models.Hospital
	for rows.Next() {
		var h models.Hospital
		if err := scanHospitalRow(rows, &h); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, nil
}

// GetHospitalById возвращает больницу по идентификатору.
func (r *PostgresHospitalRepository) GetHospitalById(ctx context.Context, hospitalId string) (*models.Hospital, error) {
	var h models.Hospital
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1`
	err := scanHospitalRow(r.DB.QueryRow(ctx, query, hospitalId), &h)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("hospital not found")
		}
		return nil, err
	}
	return &h, nil
}

// GetHospitalByEmail возвращает больницу по email. Используется при входе в систему.
func (r *PostgresHospitalRepository) GetHospitalByEmail(ctx context.Context, email string) (*models.Hospital, error) {
	var h models.Hospital
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE email = $1`
	err := scanHospitalRow(r.DB.QueryRow(ctx, query, email), &h)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("hospital not found")
		}
		return nil, err
	}
	return &h, nil
}

// CreateHospital создает новую больницу с уже захешированным паролем.
func (r *PostgresHospitalRepository) CreateHospital(ctx context.Context, hospReq models.HospitalRequest, hashedPassword string) (*models.Hospital, error) {
	now := time.Now().UTC()
	newHospital := models.Hospital{
		ID:           uuid.New().String(),
		Name:         hospReq.Name,
		Email:        hospReq.Email,
		Password:     hashedPassword,
		PhoneNumber:  hospReq.PhoneNumber,
		Address:      hospReq.Address,
		ActiveStatus: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO hospitals (id, name, email, password, phone_number, address, active_status, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
   `,
		newHospital.ID,
		newHospital.Name,
		newHospital.Email,
		newHospital.Password,
		newHospital.PhoneNumber,
		newHospital.Address,
		newHospital.ActiveStatus,
		newHospital.CreatedAt,
		newHospital.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert hospital: %w", err)
	}
	return &newHospital, nil
}

// UpdateHospital обновляет данные больницы.
func (r *PostgresHospitalRepository) UpdateHospital(ctx context.Context, hospitalId string, hospReq models.HospitalRequest) (*models.Hospital, error) {
	var h models.Hospital
	query := `UPDATE hospitals
	          SET name = $1, phone_number = $2, address = $3, updated_at = now()
	          WHERE id = $4
	          RETURNING ` + hospitalColumns
	err := scanHospitalRow(r.DB.QueryRow(ctx, query, hospReq.Name, hospReq.PhoneNumber, hospReq.Address, hospitalId), &h)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("hospital not found")
		}
		return nil, err
	}
	return &h, nil
}

// DeleteHospital удаляет больницу вместе с её записями запаса.
func (r *PostgresHospitalRepository) DeleteHospital(ctx context.Context, hospitalId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM hospitals WHERE id = $1`, hospitalId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("hospital not found")
	}
	return nil
}
