package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"
	"github.com/lifeline-lk/blood-bank-service/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryRetentionDays - срок хранения цельной крови в днях.
const InventoryRetentionDays = 42

type InventoryService struct {
	Repo   repository.InventoryRepository
	dbPool *pgxpool.Pool
}

// NewInventoryService создает новый экземпляр InventoryService.
func NewInventoryService(repo repository.InventoryRepository, dbPool *pgxpool.Pool) *InventoryService {
	return &InventoryService{Repo: repo, dbPool: dbPool}
}

// FetchInventory возвращает список записей запаса.
func (s *InventoryService) FetchInventory(ctx context.Context, limitStr, offsetStr string) ([]models.InventoryRecord, error) {
	limit, offset, err := utils.ParseLimitOffset(limitStr, offsetStr)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return s.Repo.GetInventory(ctx, limit, offset)
}

// FetchHospitalInventory возвращает записи запаса одной больницы.
func (s *InventoryService) FetchHospitalInventory(ctx context.Context, hospitalId string) ([]models.InventoryRecord, error) {
	if hospitalId == "" {
		return nil, models.NewValidationError("missing required parameter: hospitalId")
	}

	hospitalExists, err := utils.CheckHospitalExists(ctx, s.dbPool, hospitalId)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital existence")
	}
	if !hospitalExists {
		return nil, models.NewNotFound("hospital not found")
	}
	return s.Repo.GetInventoryByHospital(ctx, hospitalId)
}

// FetchInventoryById возвращает запись запаса по идентификатору.
func (s *InventoryService) FetchInventoryById(ctx context.Context, recordId string) (*models.InventoryRecord, error) {
	if recordId == "" {
		return nil, models.NewValidationError("missing required parameter: recordId")
	}
	return s.Repo.GetInventoryById(ctx, recordId)
}

// RecordStock создает запись запаса после проверки всех обязательных полей.
func (s *InventoryService) RecordStock(ctx context.Context, invReq models.InventoryRequest) (*models.InventoryRecord, error) {
	if invReq.HospitalID == "" || invReq.BloodType == "" || invReq.ExpirationDate.IsZero() {
		return nil, models.NewValidationError("missing required fields")
	}

	if !models.IsValidBloodType(invReq.BloodType) {
		return nil, models.NewValidationError(fmt.Sprintf("invalid blood type: %s", invReq.BloodType))
	}

	if invReq.AvailableStocks < 0 {
		return nil, models.NewValidationError("availableStocks must be non-negative")
	}

	if !invReq.ExpirationDate.After(time.Now()) {
		return nil, models.NewValidationError("expiration date must be in the future")
	}

	hospitalExists, err := utils.CheckHospitalExists(ctx, s.dbPool, invReq.HospitalID)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check hospital existence")
	}
	if !hospitalExists {
		return nil, models.NewNotFound("hospital not found")
	}

	recordExists, err := utils.CheckInventoryExistsForHospital(ctx, s.dbPool, invReq.HospitalID, invReq.BloodType)
	if err != nil {
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "failed to check inventory existence")
	}
	if recordExists {
		return nil, models.NewValidationError(
			fmt.Sprintf("inventory record for blood type %s already exists for this hospital, use restock instead", invReq.BloodType))
	}
	return s.Repo.CreateInventory(ctx, invReq)
}

// AdjustStock применяет знаковую корректировку запаса.
func (s *InventoryService) AdjustStock(ctx context.Context, recordId string, delta int) (*models.InventoryRecord, error) {
	if recordId == "" {
		return nil, models.NewValidationError("missing required parameter: recordId")
	}
	if delta == 0 {
		return nil, models.NewValidationError("delta must be non-zero")
	}
	return s.Repo.AdjustStock(ctx, recordId, delta)
}

// FetchAvailability возвращает суммарный непросроченный запас больницы по группе крови.
func (s *InventoryService) FetchAvailability(ctx context.Context, hospitalName string, bloodType models.BloodType) (*models.StockAvailability, error) {
	if hospitalName == "" {
		return nil, models.NewValidationError("missing required parameter: hospital")
	}
	if !models.IsValidBloodType(bloodType) {
		return nil, models.NewValidationError(fmt.Sprintf("invalid blood type: %s", bloodType))
	}

	units, err := s.Repo.AvailableStock(ctx, hospitalName, bloodType)
	if err != nil {
		return nil, err
	}
	return &models.StockAvailability{
		HospitalName:   hospitalName,
		BloodType:      bloodType,
		AvailableUnits: units,
	}, nil
}

// SweepExpired помечает просроченными записи старше срока хранения.
func (s *InventoryService) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	threshold := now.AddDate(0, 0, -InventoryRetentionDays)
	return s.Repo.MarkExpired(ctx, threshold)
}

// DeleteInventory удаляет запись запаса.
func (s *InventoryService) DeleteInventory(ctx context.Context, recordId string) error {
	if recordId == "" {
		return models.NewValidationError("missing required parameter: recordId")
	}
	return s.Repo.DeleteInventory(ctx, recordId)
}
