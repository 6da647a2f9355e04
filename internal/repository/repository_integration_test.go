//go:build integration

package repository_test

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/models"
	"github.com/lifeline-lk/blood-bank-service/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Тесты запускаются против живой базы с применёнными миграциями:
// TEST_POSTGRES_CONN=postgresql://... go test -tags integration ./internal/repository/...
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	connStr := os.Getenv("TEST_POSTGRES_CONN")
	if connStr == "" {
		t.Skip("TEST_POSTGRES_CONN is not set")
	}

	pool, err := pgxpool.New(context.Background(), connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE emergency_requests, blood_inventory, hospitals CASCADE`)
	require.NoError(t, err)
	return pool
}

func seedHospital(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(), `
       INSERT INTO hospitals (name, email, password, phone_number, address)
       VALUES ($1, $2, 'x', '0112223344', 'Colombo')
       RETURNING id
   `, name, name+"@test.local").Scan(&id)
	require.NoError(t, err)
	return id
}

func seedStock(t *testing.T, pool *pgxpool.Pool, hospitalId string, bloodType models.BloodType, units int, expiration time.Time) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(), `
       INSERT INTO blood_inventory (hospital_id, blood_type, available_stocks, expiration_date)
       VALUES ($1, $2, $3, $4)
       RETURNING id
   `, hospitalId, bloodType, units, expiration).Scan(&id)
	require.NoError(t, err)
	return id
}

func emergencyInput(hospitalName string, units int) models.EmergencyRequestInput {
	return models.EmergencyRequestInput{
		Name:          "K. Perera",
		PhoneNumber:   "0771234567",
		ProofOfIDNum:  "982345671V",
		PatientBlood:  models.ONegative,
		Units:         units,
		Reason:        "surgery",
		CriticalLevel: models.HighLevel,
		WithinDate:    time.Now().Add(48 * time.Hour),
		HospitalName:  hospitalName,
		Address:       "Colombo",
	}
}

func TestIntegrationCreateRequestDefaults(t *testing.T) {
	pool := testPool(t)
	seedHospital(t, pool, "City General")
	repo := repository.NewPostgresEmergencyRepository(pool)

	created, err := repo.CreateRequest(context.Background(), emergencyInput("City General", 2))
	require.NoError(t, err)

	stored, err := repo.GetRequestById(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, models.PendingRequest, stored.AcceptStatus)
	require.Equal(t, models.InactiveRequest, stored.ActiveStatus)
}

// Два запроса на 2 единицы против остатка в 3: первый принимается,
// второй упирается в нехватку и остаётся в статусе Pending.
func TestIntegrationAcceptRequestNoOversell(t *testing.T) {
	pool := testPool(t)
	hospitalId := seedHospital(t, pool, "City General")
	seedStock(t, pool, hospitalId, models.ONegative, 3, time.Now().Add(30*24*time.Hour))

	emergencyRepo := repository.NewPostgresEmergencyRepository(pool)
	inventoryRepo := repository.NewPostgresInventoryRepository(pool)

	first, err := emergencyRepo.CreateRequest(context.Background(), emergencyInput("City General", 2))
	require.NoError(t, err)
	second, err := emergencyRepo.CreateRequest(context.Background(), emergencyInput("City General", 2))
	require.NoError(t, err)

	accepted, err := emergencyRepo.AcceptRequest(context.Background(), first.ID, "hospital-1", models.HospitalActor)
	require.NoError(t, err)
	require.Equal(t, models.AcceptedRequest, accepted.AcceptStatus)

	available, err := inventoryRepo.AvailableStock(context.Background(), "City General", models.ONegative)
	require.NoError(t, err)
	require.Equal(t, 1, available)

	_, err = emergencyRepo.AcceptRequest(context.Background(), second.ID, "hospital-1", models.HospitalActor)
	require.Error(t, err)

	errResp, ok := err.(*models.ErrorResponse)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, errResp.StatusCode)
	require.Equal(t, models.InsufficientStock, errResp.Kind)
	require.Equal(t, 1, errResp.Shortfall)

	stored, err := emergencyRepo.GetRequestById(context.Background(), second.ID)
	require.NoError(t, err)
	require.Equal(t, models.PendingRequest, stored.AcceptStatus)

	available, err = inventoryRepo.AvailableStock(context.Background(), "City General", models.ONegative)
	require.NoError(t, err)
	require.Equal(t, 1, available)
}

func TestIntegrationAvailableStockSkipsExpired(t *testing.T) {
	pool := testPool(t)
	hospitalId := seedHospital(t, pool, "City General")
	seedStock(t, pool, hospitalId, models.ONegative, 5, time.Now().Add(-time.Hour))

	inventoryRepo := repository.NewPostgresInventoryRepository(pool)

	available, err := inventoryRepo.AvailableStock(context.Background(), "City General", models.ONegative)
	require.NoError(t, err)
	require.Equal(t, 0, available)
}

func TestIntegrationMarkExpiredIdempotent(t *testing.T) {
	pool := testPool(t)
	hospitalId := seedHospital(t, pool, "City General")
	recordId := seedStock(t, pool, hospitalId, models.ONegative, 5, time.Now().Add(-time.Hour))

	_, err := pool.Exec(context.Background(),
		`UPDATE blood_inventory SET created_at = now() - INTERVAL '50 days' WHERE id = $1`, recordId)
	require.NoError(t, err)

	inventoryRepo := repository.NewPostgresInventoryRepository(pool)
	threshold := time.Now().AddDate(0, 0, -42)

	count, err := inventoryRepo.MarkExpired(context.Background(), threshold)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = inventoryRepo.MarkExpired(context.Background(), threshold)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestIntegrationCancelExpiredIdempotent(t *testing.T) {
	pool := testPool(t)
	seedHospital(t, pool, "City General")
	emergencyRepo := repository.NewPostgresEmergencyRepository(pool)

	input := emergencyInput("City General", 2)
	input.WithinDate = time.Now().Add(-24 * time.Hour)
	created, err := emergencyRepo.CreateRequest(context.Background(), input)
	require.NoError(t, err)

	count, err := emergencyRepo.CancelExpired(context.Background(), time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	stored, err := emergencyRepo.GetRequestById(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, models.DeclinedRequest, stored.AcceptStatus)
	require.Equal(t, models.InactiveRequest, stored.ActiveStatus)

	count, err = emergencyRepo.CancelExpired(context.Background(), time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}
