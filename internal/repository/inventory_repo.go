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

const inventoryColumns = `id, hospital_id, blood_type, available_stocks, expiration_date, expired_status, created_at, updated_at`

// InventoryRepository - интерфейс для работы с запасами крови.
type InventoryRepository interface {
	GetInventory(ctx context.Context, limit, offset int) ([]models.InventoryRecord, error)
	GetInventoryByHospital(ctx context.Context, hospitalId string) ([]models.InventoryRecord, error)
	GetInventoryById(ctx context.Context, recordId string) (*models.InventoryRecord, error)
	CreateInventory(ctx context.Context, invReq models.InventoryRequest) (*models.InventoryRecord, error)
	AdjustStock(ctx context.Context, recordId string, delta int) (*models.InventoryRecord, error)
	AvailableStock(ctx context.Context, hospitalName string, bloodType models.BloodType) (int, error)
	MarkExpired(ctx context.Context, threshold time.Time) (int64, error)
	DeleteInventory(ctx context.Context, recordId string) error
}

// PostgresInventoryRepository - реализация InventoryRepository для базы данных.
type PostgresInventoryRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresInventoryRepository создаёт новый экземпляр PostgresInventoryRepository.
func NewPostgresInventoryRepository(db *pgxpool.Pool) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{DB: db}
}

func scanInventoryRow(row pgx.Row, rec *models.InventoryRecord) error {
	return row.Scan(
		&rec.ID,
		&rec.HospitalID,
		&rec.BloodType,
		&rec.AvailableStocks,
		&rec.ExpirationDate,
		&rec.ExpiredStatus,
		&rec.CreatedAt,
		&rec.UpdatedAt)
}

// GetInventory возвращает список записей запаса.
func (r *PostgresInventoryRepository) GetInventory(ctx context.Context, limit, offset int) ([]models.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM blood_inventory ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.InventoryRecord
	for rows.Next() {
		var rec models.InventoryRecord
		if err := scanInventoryRow(rows, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetInventoryByHospital возвращает список записей запаса больницы.
func (r *PostgresInventoryRepository) GetInventoryByHospital(ctx context.Context, hospitalId string) ([]models.InventoryRecord, error) {
	query := `SELECT ` + inventoryColumns + ` FROM blood_inventory WHERE hospital_id = $1 ORDER BY blood_type`
	rows, err := r.DB.Query(ctx, query, hospitalId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.InventoryRecord
	for rows.Next() {
		var rec models.InventoryRecord
		if err := scanInventoryRow(rows, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetInventoryById возвращает запись запаса по идентификатору.
func (r *PostgresInventoryRepository) GetInventoryById(ctx context.Context, recordId string) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	query := `SELECT ` + inventoryColumns + ` FROM blood_inventory WHERE id = $1`
	err := scanInventoryRow(r.DB.QueryRow(ctx, query, recordId), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("blood inventory record not found")
		}
		return nil, err
	}
	return &rec, nil
}

// CreateInventory создает новую запись запаса.
func (r *PostgresInventoryRepository) CreateInventory(ctx context.Context, invReq models.InventoryRequest) (*models.InventoryRecord, error) {
	now := time.Now().UTC()
	newRecord := models.InventoryRecord{
		ID:              uuid.New().String(),
		HospitalID:      invReq.HospitalID,
		BloodType:       invReq.BloodType,
		AvailableStocks: invReq.AvailableStocks,
		ExpirationDate:  invReq.ExpirationDate,
		ExpiredStatus:   false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO blood_inventory (id, hospital_id, blood_type, available_stocks, expiration_date, expired_status, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
   `,
		newRecord.ID,
		newRecord.HospitalID,
		newRecord.BloodType,
		newRecord.AvailableStocks,
		newRecord.ExpirationDate,
		newRecord.ExpiredStatus,
		newRecord.CreatedAt,
		newRecord.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert blood inventory record: %w", err)
	}
	return &newRecord, nil
}

// AdjustStock применяет знаковую корректировку запаса одним условным обновлением.
// Обновление проходит только если итоговый остаток неотрицателен, чтобы исключить
// гонку между конкурентными списаниями.
func (r *PostgresInventoryRepository) AdjustStock(ctx context.Context, recordId string, delta int) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	query := `UPDATE blood_inventory
	          SET available_stocks = available_stocks + $1, updated_at = now()
	          WHERE id = $2 AND available_stocks + $1 >= 0
	          RETURNING ` + inventoryColumns
	err := scanInventoryRow(r.DB.QueryRow(ctx, query, delta, recordId), &rec)
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Либо записи нет, либо списание ушло бы в минус.
	current, err := r.GetInventoryById(ctx, recordId)
	if err != nil {
		return nil, err
	}
	return nil, models.NewInsufficientStock(current.BloodType, current.AvailableStocks, -delta)
}

// AvailableStock возвращает доступный запас по паре (больница, группа крови).
// Просроченные записи не учитываются, даже если флаг ещё не выставлен.
func (r *PostgresInventoryRepository) AvailableStock(ctx context.Context, hospitalName string, bloodType models.BloodType) (int, error) {
	var available int
	query := `SELECT COALESCE(SUM(bi.available_stocks), 0)
	          FROM blood_inventory bi
	          JOIN hospitals h ON bi.hospital_id = h.id
	          WHERE h.name = $1 AND bi.blood_type = $2
	            AND bi.expired_status = FALSE AND bi.expiration_date > now()`
	err := r.DB.QueryRow(ctx, query, hospitalName, bloodType).Scan(&available)
	if err != nil {
		return 0, err
	}
	return available, nil
}

// MarkExpired помечает просроченными записи, созданные раньше порога хранения.
// Повторный запуск по уже помеченным записям ничего не меняет.
func (r *PostgresInventoryRepository) MarkExpired(ctx context.Context, threshold time.Time) (int64, error) {
	query := `UPDATE blood_inventory
	          SET expired_status = TRUE, updated_at = now()
	          WHERE created_at < $1 AND expired_status = FALSE`
	tag, err := r.DB.Exec(ctx, query, threshold)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteInventory удаляет запись запаса.
func (r *PostgresInventoryRepository) DeleteInventory(ctx context.Context, recordId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM blood_inventory WHERE id = $1`, recordId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("blood inventory record not found")
	}
	return nil
}
