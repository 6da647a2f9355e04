package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSweepRunsBothCleanups(t *testing.T) {
	var gotThreshold time.Time
	var gotNow time.Time

	inventoryRepo := &MockInventoryRepo{
		MarkExpiredFunc: func(ctx context.Context, threshold time.Time) (int64, error) {
			gotThreshold = threshold
			return 2, nil
		},
	}
	emergencyRepo := &MockEmergencyRepo{
		CancelExpiredFunc: func(ctx context.Context, now time.Time) (int64, error) {
			gotNow = now
			return 1, nil
		},
	}

	sweeper := services.NewSweeperService(inventoryRepo, emergencyRepo, zap.NewNop(), time.Hour)

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	sweeper.Sweep(context.Background(), now)

	require.Equal(t, now.AddDate(0, 0, -services.InventoryRetentionDays), gotThreshold)
	require.Equal(t, now, gotNow)
}

func TestSweepContinuesAfterInventoryError(t *testing.T) {
	cancelCalled := false

	inventoryRepo := &MockInventoryRepo{
		MarkExpiredFunc: func(ctx context.Context, threshold time.Time) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}
	emergencyRepo := &MockEmergencyRepo{
		CancelExpiredFunc: func(ctx context.Context, now time.Time) (int64, error) {
			cancelCalled = true
			return 0, nil
		},
	}

	sweeper := services.NewSweeperService(inventoryRepo, emergencyRepo, zap.NewNop(), time.Hour)
	sweeper.Sweep(context.Background(), time.Now().UTC())

	require.True(t, cancelCalled)
}

func TestSweeperRunStopsOnContextCancel(t *testing.T) {
	sweeper := services.NewSweeperService(&MockInventoryRepo{}, &MockEmergencyRepo{}, zap.NewNop(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
