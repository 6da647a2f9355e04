package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/handlers"
	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockInventoryRepo реализует repository.InventoryRepository
type MockInventoryRepo struct {
	record             *models.InventoryRecord
	records            []models.InventoryRecord
	AdjustStockFunc    func(ctx context.Context, recordId string, delta int) (*models.InventoryRecord, error)
	AvailableStockFunc func(ctx context.Context, hospitalName string, bloodType models.BloodType) (int, error)
}

func (m *MockInventoryRepo) GetInventory(ctx context.Context, limit, offset int) ([]models.InventoryRecord, error) {
	return m.records, nil
}

func (m *MockInventoryRepo) GetInventoryByHospital(ctx context.Context, hospitalId string) ([]models.InventoryRecord, error) {
	return m.records, nil
}

func (m *MockInventoryRepo) GetInventoryById(ctx context.Context, recordId string) (*models.InventoryRecord, error) {
	if m.record == nil {
		return nil, models.NewNotFound("inventory record not found")
	}
	return m.record, nil
}

func (m *MockInventoryRepo) CreateInventory(ctx context.Context, invReq models.InventoryRequest) (*models.InventoryRecord, error) {
	return &models.InventoryRecord{
		ID:              "9a7b0c4d-0000-0000-0000-000000000001",
		HospitalID:      invReq.HospitalID,
		BloodType:       invReq.BloodType,
		AvailableStocks: invReq.AvailableStocks,
		ExpirationDate:  invReq.ExpirationDate,
	}, nil
}

func (m *MockInventoryRepo) AdjustStock(ctx context.Context, recordId string, delta int) (*models.InventoryRecord, error) {
	if m.AdjustStockFunc != nil {
		return m.AdjustStockFunc(ctx, recordId, delta)
	}
	return m.record, nil
}

func (m *MockInventoryRepo) AvailableStock(ctx context.Context, hospitalName string, bloodType models.BloodType) (int, error) {
	if m.AvailableStockFunc != nil {
		return m.AvailableStockFunc(ctx, hospitalName, bloodType)
	}
	return 0, nil
}

func (m *MockInventoryRepo) MarkExpired(ctx context.Context, threshold time.Time) (int64, error) {
	return 0, nil
}

func (m *MockInventoryRepo) DeleteInventory(ctx context.Context, recordId string) error {
	return nil
}

func newInventoryHandler(repo *MockInventoryRepo) *handlers.InventoryHandler {
	svc := services.NewInventoryService(repo, nil)
	return handlers.NewInventoryHandler(svc, zap.NewNop(), 5*time.Second, nil)
}

func TestGetInventoryReturnsList(t *testing.T) {
	repo := &MockInventoryRepo{
		records: []models.InventoryRecord{
			{ID: "rec-1", BloodType: models.APositive, AvailableStocks: 12},
			{ID: "rec-2", BloodType: models.ONegative, AvailableStocks: 3},
		},
	}
	handler := newInventoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	rec := httptest.NewRecorder()
	handler.GetInventory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.InventoryRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
}

func TestGetAvailabilityHandler(t *testing.T) {
	repo := &MockInventoryRepo{
		AvailableStockFunc: func(ctx context.Context, hospitalName string, bloodType models.BloodType) (int, error) {
			return 14, nil
		},
	}
	handler := newInventoryHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/availability?hospital=City+General&blood_type=O-", nil)
	rec := httptest.NewRecorder()
	handler.GetAvailability(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.StockAvailability
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, "City General", got.HospitalName)
	require.Equal(t, models.ONegative, got.BloodType)
	require.Equal(t, 14, got.AvailableUnits)
}

func TestGetAvailabilityHandlerInvalidBloodType(t *testing.T) {
	handler := newInventoryHandler(&MockInventoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/availability?hospital=City+General&blood_type=C%2B", nil)
	rec := httptest.NewRecorder()
	handler.GetAvailability(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdjustStockHandlerDebit(t *testing.T) {
	repo := &MockInventoryRepo{
		AdjustStockFunc: func(ctx context.Context, recordId string, delta int) (*models.InventoryRecord, error) {
			return &models.InventoryRecord{ID: recordId, BloodType: models.ONegative, AvailableStocks: 1}, nil
		},
	}
	handler := newInventoryHandler(repo)

	req := httptest.NewRequest(http.MethodPatch, "/api/inventory/rec-1/stock", strings.NewReader(`{"delta": -2}`))
	req.SetPathValue("recordId", "rec-1")
	rec := httptest.NewRecorder()
	handler.AdjustStock(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.InventoryRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, 1, got.AvailableStocks)
}

func TestAdjustStockHandlerInsufficientStock(t *testing.T) {
	repo := &MockInventoryRepo{
		AdjustStockFunc: func(ctx context.Context, recordId string, delta int) (*models.InventoryRecord, error) {
			return nil, models.NewInsufficientStock(models.ONegative, 3, 5)
		},
	}
	handler := newInventoryHandler(repo)

	req := httptest.NewRequest(http.MethodPatch, "/api/inventory/rec-1/stock", strings.NewReader(`{"delta": -5}`))
	req.SetPathValue("recordId", "rec-1")
	rec := httptest.NewRecorder()
	handler.AdjustStock(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	require.Equal(t, models.InsufficientStock, errResp.Kind)
	require.Equal(t, 2, errResp.Shortfall)
}

func TestAdjustStockHandlerZeroDelta(t *testing.T) {
	handler := newInventoryHandler(&MockInventoryRepo{})

	req := httptest.NewRequest(http.MethodPatch, "/api/inventory/rec-1/stock", strings.NewReader(`{"delta": 0}`))
	req.SetPathValue("recordId", "rec-1")
	rec := httptest.NewRecorder()
	handler.AdjustStock(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInventoryByIdNotFound(t *testing.T) {
	handler := newInventoryHandler(&MockInventoryRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/missing", nil)
	req.SetPathValue("recordId", "missing")
	rec := httptest.NewRecorder()
	handler.GetInventoryById(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteInventoryHandler(t *testing.T) {
	handler := newInventoryHandler(&MockInventoryRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/api/inventory/rec-1", nil)
	req.SetPathValue("recordId", "rec-1")
	rec := httptest.NewRecorder()
	handler.DeleteInventory(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}
