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

const systemManagerColumns = `id, first_name, last_name, phone_number, email, password, nic, address, image, dob, role,
	active_status, created_at, updated_at`

// SystemManagerRepository - интерфейс для работы с системными менеджерами.
type SystemManagerRepository interface {
	GetSystemManagers(ctx context.Context, limit, offset int) ([]models.SystemManager, error)
	GetSystemManagerById(ctx context.Context, managerId string) (*models.SystemManager, error)
	GetSystemManagerByEmail(ctx context.Context, email string) (*models.SystemManager, error)
	FindDuplicateField(ctx context.Context, email, phoneNumber, nic string) (string, error)
	CreateSystemManager(ctx context.Context, mgrReq models.SystemManagerRequest, hashedPassword string) (*models.SystemManager, error)
	UpdateSystemManager(ctx context.Context, managerId string, mgrReq models.SystemManagerRequest) (*models.SystemManager, error)
	DeleteSystemManager(ctx context.Context, managerId string) error
}

// PostgresSystemManagerRepository - реализация SystemManagerRepository для базы данных.
type PostgresSystemManagerRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresSystemManagerRepository создаёт новый экземпляр PostgresSystemManagerRepository.
func NewPostgresSystemManagerRepository(db *pgxpool.Pool) *PostgresSystemManagerRepository {
	return &PostgresSystemManagerRepository{DB: db}
}

func scanSystemManagerRow(row pgx.Row, m *models.SystemManager) error {
	return row.Scan(
		&m.ID,
		&m.FirstName,
		&m.LastName,
		&m.PhoneNumber,
		&m.Email,
		&m.Password,
		&m.NIC,
		&m.Address,
		&m.Image,
		&m.DOB,
		&m.Role,
		&m.ActiveStatus,
		&m.CreatedAt,
		&m.UpdatedAt)
}

// GetSystemManagers возвращает список системных менеджеров.
func (r *PostgresSystemManagerRepository) GetSystemManagers(ctx context.Context, limit, offset int) ([]models.SystemManager, error) {
	query := `SELECT ` + systemManagerColumns + ` FROM system_managers ORDER BY last_name, first_name LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var managers []models.SystemManager
	for rows.Next() {
		var m models.SystemManager
		if err := scanSystemManagerRow(rows, &m); err != nil {
			return nil, err
		}
		managers = append(managers, m)
	}
	return managers, nil
}

// GetSystemManagerById возвращает менеджера по идентификатору.
func (r *PostgresSystemManagerRepository) GetSystemManagerById(ctx context.Context, managerId string) (*models.SystemManager, error) {
	var m models.SystemManager
	query := `SELECT ` + systemManagerColumns + ` FROM system_managers WHERE id = $1`
	err := scanSystemManagerRow(r.DB.QueryRow(ctx, query, managerId), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("system manager not found")
		}
		return nil, err
	}
	return &m, nil
}

// GetSystemManagerByEmail возвращает менеджера по email. Используется при входе в систему.
func (r *PostgresSystemManagerRepository) GetSystemManagerByEmail(ctx context.Context, email string) (*models.SystemManager, error) {
	var m models.SystemManager
	query := `SELECT ` + systemManagerColumns + ` FROM system_managers WHERE email = $1`
	err := scanSystemManagerRow(r.DB.QueryRow(ctx, query, email), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("system manager not found")
		}
		return nil, err
	}
	return &m, nil
}

// FindDuplicateField возвращает имя первого занятого уникального поля: email, phone number или NIC.
func (r *PostgresSystemManagerRepository) FindDuplicateField(ctx context.Context, email, phoneNumber, nic string) (string, error) {
	var existing models.SystemManager
	query := `SELECT ` + systemManagerColumns + ` FROM system_managers WHERE email = $1 OR phone_number = $2 OR nic = $3 LIMIT 1`
	err := scanSystemManagerRow(r.DB.QueryRow(ctx, query, email, phoneNumber, nic), &existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	switch {
	case existing.Email == email:
		return "email", nil
	case existing.PhoneNumber == phoneNumber:
		return "phone number", nil
	default:
		return "NIC", nil
	}
}

// CreateSystemManager создает нового менеджера с уже захешированным паролем.
func (r *PostgresSystemManagerRepository) CreateSystemManager(ctx context.Context, mgrReq models.SystemManagerRequest, hashedPassword string) (*models.SystemManager, error) {
	now := time.Now().UTC()
	newManager := models.SystemManager{
		ID:           uuid.New().String(),
		FirstName:    mgrReq.FirstName,
		LastName:     mgrReq.LastName,
		PhoneNumber:  mgrReq.PhoneNumber,
		Email:        mgrReq.Email,
		Password:     hashedPassword,
		NIC:          mgrReq.NIC,
		Address:      mgrReq.Address,
		Image:        mgrReq.Image,
		DOB:          mgrReq.DOB,
		Role:         mgrReq.Role,
		ActiveStatus: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO system_managers (id, first_name, last_name, phone_number, email, password, nic, address, image, dob,
           role, active_status, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
   `,
		newManager.ID,
		newManager.FirstName,
		newManager.LastName,
		newManager.PhoneNumber,
		newManager.Email,
		newManager.Password,
		newManager.NIC,
		newManager.Address,
		newManager.Image,
		newManager.DOB,
		newManager.Role,
		newManager.ActiveStatus,
		newManager.CreatedAt,
		newManager.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert system manager: %w", err)
	}
	return &newManager, nil
}

// UpdateSystemManager обновляет данные менеджера.
func (r *PostgresSystemManagerRepository) UpdateSystemManager(ctx context.Context, managerId string, mgrReq models.SystemManagerRequest) (*models.SystemManager, error) {
	var m models.SystemManager
	query := `UPDATE system_managers
	          SET first_name = $1, last_name = $2, phone_number = $3, nic = $4, address = $5,
	              image = COALESCE($6, image), dob = $7, role = $8, updated_at = now()
	          WHERE id = $9
	          RETURNING ` + systemManagerColumns
	err := scanSystemManagerRow(r.DB.QueryRow(ctx, query,
		mgrReq.FirstName,
		mgrReq.LastName,
		mgrReq.PhoneNumber,
		mgrReq.NIC,
		mgrReq.Address,
		mgrReq.Image,
		mgrReq.DOB,
		mgrReq.Role,
		managerId), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("system manager not found")
		}
		return nil, err
	}
	return &m, nil
}

// DeleteSystemManager удаляет менеджера.
func (r *PostgresSystemManagerRepository) DeleteSystemManager(ctx context.Context, managerId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM system_managers WHERE id = $1`, managerId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("system manager not found")
	}
	return nil
}
