package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const emergencyColumns = `id, name, phone_number, proof_of_id_number, proof_document, patient_blood, units, reason,
	critical_level, within_date, hospital_name, address, active_status, accept_status, decline_reason,
	accepted_by, accepted_by_type, created_at, updated_at`

// EmergencyRepository - интерфейс для работы с экстренными запросами крови.
type EmergencyRepository interface {
	GetRequests(ctx context.Context, limit, offset int, bloodTypes []string) ([]models.EmergencyRequest, error)
	GetRequestById(ctx context.Context, requestId string) (*models.EmergencyRequest, error)
	CreateRequest(ctx context.Context, input models.EmergencyRequestInput) (*models.EmergencyRequest, error)
	AcceptRequest(ctx context.Context, requestId, actorId string, actorKind models.ActorKind) (*models.EmergencyRequest, error)
	DeclineRequest(ctx context.Context, requestId, reason string) (*models.EmergencyRequest, error)
	DeleteRequest(ctx context.Context, requestId string) error
	CancelExpired(ctx context.Context, now time.Time) (int64, error)
}

// PostgresEmergencyRepository - реализация EmergencyRepository для базы данных.
type PostgresEmergencyRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresEmergencyRepository создаёт новый экземпляр PostgresEmergencyRepository.
func NewPostgresEmergencyRepository(db *pgxpool.Pool) *PostgresEmergencyRepository {
	return &PostgresEmergencyRepository{DB: db}
}

func scanEmergencyRow(row pgx.Row, req *models.EmergencyRequest) error {
	return row.Scan(
		&req.ID,
		&req.Name,
		&req.PhoneNumber,
		&req.ProofOfIDNum,
		&req.ProofDocument,
		&req.PatientBlood,
		&req.Units,
		&req.Reason,
		&req.CriticalLevel,
		&req.WithinDate,
		&req.HospitalName,
		&req.Address,
		&req.ActiveStatus,
		&req.AcceptStatus,
		&req.DeclineReason,
		&req.AcceptedBy,
		&req.AcceptedByType,
		&req.CreatedAt,
		&req.UpdatedAt)
}

// GetRequests возвращает список экстренных запросов с фильтром по группам крови.
func (r *PostgresEmergencyRepository) GetRequests(ctx context.Context, limit, offset int, bloodTypes []string) ([]models.EmergencyRequest, error) {
	query := `SELECT ` + emergencyColumns + ` FROM emergency_requests`
	var filters []string
	var args []interface{}
	argIndex := 1

	if len(bloodTypes) > 0 {
		filters = append(filters, fmt.Sprintf("patient_blood = ANY($%d)", argIndex))
		args = append(args, pq.Array(bloodTypes))
		argIndex++
	}

	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.EmergencyRequest
	for rows.Next() {
		var req models.EmergencyRequest
		if err := scanEmergencyRow(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// GetRequestById возвращает экстренный запрос по идентификатору.
func (r *PostgresEmergencyRepository) GetRequestById(ctx context.Context, requestId string) (*models.EmergencyRequest, error) {
	var req models.EmergencyRequest
	query := `SELECT ` + emergencyColumns + ` FROM emergency_requests WHERE id = $1`
	err := scanEmergencyRow(r.DB.QueryRow(ctx, query, requestId), &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("emergency request not found")
		}
		return nil, err
	}
	return &req, nil
}

// CreateRequest создает новый экстренный запрос в статусе Pending/Inactive.
func (r *PostgresEmergencyRepository) CreateRequest(ctx context.Context, input models.EmergencyRequestInput) (*models.EmergencyRequest, error) {
	now := time.Now().UTC()
	newRequest := models.EmergencyRequest{
		ID:            uuid.New().String(),
		Name:          input.Name,
		PhoneNumber:   input.PhoneNumber,
		ProofOfIDNum:  input.ProofOfIDNum,
		ProofDocument: input.ProofDocument,
		PatientBlood:  input.PatientBlood,
		Units:         input.Units,
		Reason:        input.Reason,
		CriticalLevel: input.CriticalLevel,
		WithinDate:    input.WithinDate,
		HospitalName:  input.HospitalName,
		Address:       input.Address,
		ActiveStatus:  models.InactiveRequest,
		AcceptStatus:  models.PendingRequest,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	_, err := r.DB.Exec(ctx, `
       INSERT INTO emergency_requests (id, name, phone_number, proof_of_id_number, proof_document, patient_blood, units,
           reason, critical_level, within_date, hospital_name, address, active_status, accept_status, created_at, updated_at)
       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
   `,
		newRequest.ID,
		newRequest.Name,
		newRequest.PhoneNumber,
		newRequest.ProofOfIDNum,
		newRequest.ProofDocument,
		newRequest.PatientBlood,
		newRequest.Units,
		newRequest.Reason,
		newRequest.CriticalLevel,
		newRequest.WithinDate,
		newRequest.HospitalName,
		newRequest.Address,
		newRequest.ActiveStatus,
		newRequest.AcceptStatus,
		newRequest.CreatedAt,
		newRequest.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert emergency request: %w", err)
	}
	return &newRequest, nil
}

// AcceptRequest принимает запрос и списывает запас одной транзакцией.
// Списание - условное обновление: проходит только при достаточном остатке,
// иначе транзакция откатывается и запрос остаётся в статусе Pending.
func (r *PostgresEmergencyRepository) AcceptRequest(ctx context.Context, requestId, actorId string, actorKind models.ActorKind) (*models.EmergencyRequest, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var req models.EmergencyRequest
	selectQuery := `SELECT ` + emergencyColumns + ` FROM emergency_requests WHERE id = $1 FOR UPDATE`
	err = scanEmergencyRow(tx.QueryRow(ctx, selectQuery, requestId), &req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("emergency request not found")
		}
		return nil, err
	}

	if req.AcceptStatus != models.PendingRequest {
		return nil, models.NewInvalidStateTransition(
			fmt.Sprintf("cannot accept request in status %s, only Pending requests can be accepted", req.AcceptStatus))
	}

	debitQuery := `UPDATE blood_inventory bi
	               SET available_stocks = bi.available_stocks - $1, updated_at = now()
	               FROM hospitals h
	               WHERE bi.hospital_id = h.id AND h.name = $2 AND bi.blood_type = $3
	                 AND bi.expired_status = FALSE AND bi.expiration_date > now()
	                 AND bi.available_stocks >= $1`
	tag, err := tx.Exec(ctx, debitQuery, req.Units, req.HospitalName, req.PatientBlood)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		var available int
		availQuery := `SELECT COALESCE(SUM(bi.available_stocks), 0)
		               FROM blood_inventory bi
		               JOIN hospitals h ON bi.hospital_id = h.id
		               WHERE h.name = $1 AND bi.blood_type = $2
		                 AND bi.expired_status = FALSE AND bi.expiration_date > now()`
		if err := tx.QueryRow(ctx, availQuery, req.HospitalName, req.PatientBlood).Scan(&available); err != nil {
			return nil, err
		}
		return nil, models.NewInsufficientStock(req.PatientBlood, available, req.Units)
	}

	var updated models.EmergencyRequest
	updateQuery := `UPDATE emergency_requests
	                SET accept_status = $1, accepted_by = $2, accepted_by_type = $3, updated_at = now()
	                WHERE id = $4 AND accept_status = $5
	                RETURNING ` + emergencyColumns
	err = scanEmergencyRow(tx.QueryRow(ctx, updateQuery, models.AcceptedRequest, actorId, actorKind, requestId, models.PendingRequest), &updated)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeclineRequest отклоняет запрос с указанием причины.
func (r *PostgresEmergencyRepository) DeclineRequest(ctx context.Context, requestId, reason string) (*models.EmergencyRequest, error) {
	var updated models.EmergencyRequest
	query := `UPDATE emergency_requests
	          SET accept_status = $1, decline_reason = $2, updated_at = now()
	          WHERE id = $3
	          RETURNING ` + emergencyColumns
	err := scanEmergencyRow(r.DB.QueryRow(ctx, query, models.DeclinedRequest, reason, requestId), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.NewNotFound("emergency request not found")
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteRequest удаляет запрос в любом статусе. Списанный запас не восстанавливается.
func (r *PostgresEmergencyRepository) DeleteRequest(ctx context.Context, requestId string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM emergency_requests WHERE id = $1`, requestId)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.NewNotFound("emergency request not found")
	}
	return nil
}

// CancelExpired отклоняет все запросы с истёкшей датой потребности независимо
// от текущего статуса, включая уже принятые. Повторный запуск - no-op.
func (r *PostgresEmergencyRepository) CancelExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE emergency_requests
	          SET accept_status = $1, active_status = $2, updated_at = now()
	          WHERE within_date < $3 AND (accept_status != $1 OR active_status != $2)`
	tag, err := r.DB.Exec(ctx, query, models.DeclinedRequest, models.InactiveRequest, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
