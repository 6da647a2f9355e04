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

const donorColumns = `id, first_name, last_name, gender, phone_number, email, password, dob, blood_type, location,
	image, active_status, health_status, appointment_status, created_at, updated_at`

// DonorRepository - интерфейс для работы с донорами.
type DonorRepository interface {
	GetDonors(ctx context.Context, limit, offset int) ([]models.Donor, error)
	GetDonorById(ctx context.Context, donorId string) (*models.Donor, error)
	GetDonorByEmail(ctx context.Context, email string) (*models.Donor, error)
	CreateDonor(ctx context.Context, donorReq models.DonorRequest, hashedPassword string) (*models.Donor, error)
	UpdateDonor(ctx context.Context, donorId string, donorReq models.DonorRequest) (*models.Donor, error)
	ToggleDonorStatus(ctx context.Context, donorId string) (*models.Donor, error)
	DeleteDonor(ctx context.Context, donorId string) error
}

// PostgresDonorRepository - реализация DonorRepository для базы данных.
type PostgresDonorRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresDonorRepository создаёт новый экземпляр PostgresDonorRepository.
func NewPostgresDonorRepository(db *pgxpool.Pool) *PostgresDonorRepository {
	return &PostgresDonorRepository{DB: db}
}

func scanDonorRow(row pgx.Row, d *models.Donor) error {
	return row.Scan(
		&d.ID,
		&d.FirstName,
		&d.LastName,
		&d.Gender,
		&d.PhoneNumber,
		&d.Email,
		&d.Password,
		&d.DOB,
		&d.BloodType,
		&d.Location,
		&d.Image,
		&d.ActiveStatus,
		&d.HealthStatus,
		&d.AppointmentStatus,
		&d.CreatedAt,
		&d.UpdatedAt)
}

// GetDonors возвращает список доноров.
func (r *PostgresDonorRepository) GetDonors(ctx context.Context, limit, offset int) ([]models.Donor, error) {
	query := `SELECT ` + donorColumns + ` FROM donors ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donors []models.Donor
	for rows.Next() {
		var d models.Donor
		if err := scanDonorRow(rows, &d); err != nil {
			return nil, err
		}
		donors = append(donors, d)
	}
	return donors, nil
}

// GetDonorById возвращает донора по идентификатору.
func (r *PostgresDonorRepository) GetDonorById(ctx context.Context, donorId string) (*models.Donor, error) {
	var d models.Donor
	query := `SELECT ` + donorColumns + ` FROM donors WHERE id = $1`
	err := scanDonorRow(r.DB.QueryRow(ctx, query, donorId), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("donor not found")
		}
		return nil, err
	}
	return &d, nil
}

// GetDonorByEmail возвращает донора по email. Используется при входе в систему.
func (r *PostgresDonorRepository) GetDonorByEmail(ctx context.Context, email string) (*models.Donor, error) {
	var d models.Donor
	query := `SELECT ` + donorColumns + ` FROM donors WHERE email = $1`
	err := scanDonorRow(r.DB.QueryRow(ctx, query, email), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("donor not found")
		}
		return nil, err
	}
	return &d, nil
}

// CreateDonor создает нового донора с уже захешированным паролем.
func (r *PostgresDonorRepository) CreateDonor(ctx context.Context, donorReq models.DonorRequest, hashedPassword string) (*models.Donor, error) {
	now := time.Now().UTC()
	newDonor := models.Donor{
		ID:                uuid.New().String(),
		FirstName:         donorReq.FirstName,
		LastName:          donorReq.LastName,
		Gender:            donorReq.Gender,
		PhoneNumber:       donorReq.PhoneNumber,
		Email:             donorReq.Email,
		Password:          hashedPassword,
		DOB:               donorReq.DOB,
		BloodType:         donorReq.BloodType,
		Location:          donorReq.Location,
		Image:             donorReq.Image,
		ActiveStatus:      true,
		HealthStatus:      true,
		AppointmentStatus: false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO donors (id, first_name, last_name, gender, phone_number, email, password, dob, blood_type, location,
           image, active_status, health_status, appointment_status, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
   `,
		newDonor.ID,
		newDonor.FirstName,
		newDonor.LastName,
		newDonor.Gender,
		newDonor.PhoneNumber,
		newDonor.Email,
		newDonor.Password,
		newDonor.DOB,
		newDonor.BloodType,
		newDonor.Location,
		newDonor.Image,
		newDonor.ActiveStatus,
		newDonor.HealthStatus,
		newDonor.AppointmentStatus,
		newDonor.CreatedAt,
		newDonor.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert donor: %w", err)
	}
	return &newDonor, nil
}

// UpdateDonor обновляет данные донора. Пароль через этот путь не меняется.
func (r *PostgresDonorRepository) UpdateDonor(ctx context.Context, donorId string, donorReq models.DonorRequest) (*models.Donor, error) {
	var d models.Donor
	query := `UPDATE donors
	          SET first_name = $1, last_name = $2, gender = $3, phone_number = $4, dob = $5, blood_type = $6,
	              location = $7, image = COALESCE($8, image), updated_at = now()
	          WHERE id = $9
	          RETURNING ` + donorColumns
	err := scanDonorRow(r.DB.QueryRow(ctx, query,
		donorReq.FirstName,
		donorReq.LastName,
		donorReq.Gender,
		donorReq.PhoneNumber,
		donorReq.DOB,
		donorReq.BloodType,
		donorReq.Location,
		donorReq.Image,
		donorId), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("donor not found")
		}
		return nil, err
	}
	return &d, nil
}

// ToggleDonorStatus переключает флаг активности донора.
func (r *PostgresDonorRepository) ToggleDonorStatus(ctx context.Context, donorId string) (*models.Donor, error) {
	var d models.Donor
	query := `UPDATE donors SET active_status = NOT active_status, updated_at = now() WHERE id = $1 RETURNING ` + donorColumns
	err := scanDonorRow(r.DB.QueryRow(ctx, query, donorId), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("donor not found")
		}
		return nil, err
	}
	return &d, nil
}

// DeleteDonor удаляет донора.
func (r *PostgresDonorRepository) DeleteDonor(ctx context.Context, donorId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM donors WHERE id = $1`, donorId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("donor not found")
	}
	return nil
}
