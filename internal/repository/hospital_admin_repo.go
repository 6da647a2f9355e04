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

const hospitalAdminColumns = `id, hospital_id, first_name, last_name, email, password, phone_number, nic, image,
	active_status, created_at, updated_at`

// HospitalAdminRepository - интерфейс для работы с администраторами больниц.
type HospitalAdminRepository interface {
	GetHospitalAdmins(ctx context.Context, limit, offset int) ([]models.HospitalAdmin, error)
	GetHospitalAdminsByHospital(ctx context.Context, hospitalId string) ([]models.HospitalAdmin, error)
	GetHospitalAdminById(ctx context.Context, adminId string) (*models.HospitalAdmin, error)
	GetHospitalAdminByEmail(ctx context.Context, email string) (*models.HospitalAdmin, error)
	CreateHospitalAdmin(ctx context.Context, adminReq models.HospitalAdminRequest, hashedPassword string) (*models.HospitalAdmin, error)
	UpdateHospitalAdmin(ctx context.Context, adminId string, adminReq models.HospitalAdminRequest) (*models.HospitalAdmin, error)
	ToggleHospitalAdminStatus(ctx context.Context, adminId string) (*models.HospitalAdmin, error)
	DeleteHospitalAdmin(ctx context.Context, adminId string) error
}

// PostgresHospitalAdminRepository - реализация HospitalAdminRepository для базы данных.
type PostgresHospitalAdminRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresHospitalAdminRepository создаёт новый экземпляр PostgresHospitalAdminRepository.
func NewPostgresHospitalAdminRepository(db *pgxpool.Pool) *PostgresHospitalAdminRepository {
	return &PostgresHospitalAdminRepository{DB: db}
}

func scanHospitalAdminRow(row pgx.Row, a *models.HospitalAdmin) error {
	return row.Scan(
		&a.ID,
		&a.HospitalID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Password,
		&a.PhoneNumber,
		&a.NIC,
		&a.Image,
		&a.ActiveStatus,
		&a.CreatedAt,
		&a.UpdatedAt)
}

// GetHospitalAdmins возвращает список администраторов больниц.
func (r *PostgresHospitalAdminRepository) GetHospitalAdmins(ctx context.Context, limit, offset int) ([]models.HospitalAdmin, error) {
	query := `SELECT ` + hospitalAdminColumns + ` FROM hospital_admins ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.HospitalAdmin
	for rows.Next() {
		var a models.HospitalAdmin
		if err := scanHospitalAdminRow(rows, &a); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, nil
}

// GetHospitalAdminsByHospital возвращает список администраторов одной больницы.
func (r *PostgresHospitalAdminRepository) GetHospitalAdminsByHospital(ctx context.Context, hospitalId string) ([]models.HospitalAdmin, error) {
	query := `SELECT ` + hospitalAdminColumns + ` FROM hospital_admins WHERE hospital_id = $1 ORDER BY last_name, first_name`
	rows, err := r.DB.Query(ctx, query, hospitalId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.HospitalAdmin
	for rows.Next() {
		var a models.HospitalAdmin
		if err := scanHospitalAdminRow(rows, &a); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, nil
}

// GetHospitalAdminById возвращает администратора по идентификатору.
func (r *PostgresHospitalAdminRepository) GetHospitalAdminById(ctx context.Context, adminId string) (*models.HospitalAdmin, error) {
	var a models.HospitalAdmin
	query := `SELECT ` + hospitalAdminColumns + ` FROM hospital_admins WHERE id = $1`
	err := scanHospitalAdminRow(r.DB.QueryRow(ctx, query, adminId), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("hospital admin not found")
		}
		return nil, err
	}
	return &a, nil
}

// GetHospitalAdminByEmail возвращает администратора по email. Используется при входе в систему.
func (r *PostgresHospitalAdminRepository) GetHospitalAdminByEmail(ctx context.Context, email string) (*models.HospitalAdmin, error) {
	var a models.HospitalAdmin
	query := `SELECT ` + hospitalAdminColumns + ` FROM hospital_admins WHERE email = $1`
	err := scanHospitalAdminRow(r.DB.QueryRow(ctx, query, email), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("hospital admin not found")
		}
		return nil, err
	}
	return &a, nil
}

// CreateHospitalAdmin создает нового администратора с уже захешированным паролем.
func (r *PostgresHospitalAdminRepository) CreateHospitalAdmin(ctx context.Context, adminReq models.HospitalAdminRequest, hashedPassword string) (*models.HospitalAdmin, error) {
	now := time.Now().UTC()
	newAdmin := models.HospitalAdmin{
		ID:           uuid.New().String(),
		HospitalID:   adminReq.HospitalID,
		FirstName:    adminReq.FirstName,
		LastName:     adminReq.LastName,
		Email:        adminReq.Email,
		Password:     hashedPassword,
		PhoneNumber:  adminReq.PhoneNumber,
		NIC:          adminReq.NIC,
		Image:        adminReq.Image,
		ActiveStatus: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO hospital_admins (id, hospital_id, first_name, last_name, email, password, phone_number, nic, image,
           active_status, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
   `,
		newAdmin.ID,
		newAdmin.HospitalID,
		newAdmin.FirstName,
		newAdmin.LastName,
		newAdmin.Email,
		newAdmin.Password,
		newAdmin.PhoneNumber,
		newAdmin.NIC,
		newAdmin.Image,
		newAdmin.ActiveStatus,
		newAdmin.CreatedAt,
		newAdmin.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert hospital admin: %w", err)
	}
	return &newAdmin, nil
}

// UpdateHospitalAdmin обновляет данные администратора.
func (r *PostgresHospitalAdminRepository) UpdateHospitalAdmin(ctx context.Context, adminId string, adminReq models.HospitalAdminRequest) (*models.HospitalAdmin, error) {
	var a models.HospitalAdmin
	query := `UPDATE hospital_admins
	          SET first_name = $1, last_name = $2, phone_number = $3, nic = $4, image = COALESCE($5, image), updated_at = now()
	          WHERE id = $6
	          RETURNING ` + hospitalAdminColumns
	err := scanHospitalAdminRow(r.DB.QueryRow(ctx, query,
		adminReq.FirstName,
		adminReq.LastName,
		adminReq.PhoneNumber,
		adminReq.NIC,
		adminReq.Image,
		adminId), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("hospital admin not found")
		}
		return nil, err
	}
	return &a, nil
}

// ToggleHospitalAdminStatus переключает флаг активности администратора.
func (r *PostgresHospitalAdminRepository) ToggleHospitalAdminStatus(ctx context.Context, adminId string) (*models.HospitalAdmin, error) {
	var a models.HospitalAdmin
	query := `UPDATE hospital_admins SET active_status = NOT active_status, updated_at = now() WHERE id = $1 RETURNING ` + hospitalAdminColumns
	err := scanHospitalAdminRow(r.DB.QueryRow(ctx, query, adminId), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("hospital admin not found")
		}
		return nil, err
	}
	return &a, nil
}

// DeleteHospitalAdmin удаляет администратора.
func (r *PostgresHospitalAdminRepository) DeleteHospitalAdmin(ctx context.Context, adminId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM hospital_admins WHERE id = $1`, adminId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("hospital admin not found")
	}
	return nil
}
