package services

import (
	"context"
	"time"

	"github.com/lifeline-lk/blood-bank-service/internal/repository"

	"go.uber.org/zap"
)

// SweeperService периодически помечает просроченные записи запаса и отклоняет
// запросы с истёкшей датой потребности.
type SweeperService struct {
	inventoryRepo repository.InventoryRepository
	emergencyRepo repository.EmergencyRepository
	logger        *zap.Logger
	interval      time.Duration
}

// NewSweeperService создает новый экземпляр SweeperService.
func NewSweeperService(inventoryRepo repository.InventoryRepository, emergencyRepo repository.EmergencyRepository, logger *zap.Logger, interval time.Duration) *SweeperService {
	return &SweeperService{
		inventoryRepo: inventoryRepo,
		emergencyRepo: emergencyRepo,
		logger:        logger,
		interval:      interval,
	}
}

// Run запускает цикл обхода до отмены контекста.
func (s *SweeperService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sweep(ctx, time.Now().UTC())
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx, time.Now().UTC())
		}
	}
}

// Sweep выполняет один проход обеих чисток. Оба обновления идемпотентны,
// повторный запуск по тем же данным ничего не меняет.
func (s *SweeperService) Sweep(ctx context.Context, now time.Time) {
	threshold := now.AddDate(0, 0, -InventoryRetentionDays)
	expired, err := s.inventoryRepo.MarkExpired(ctx, threshold)
	if err != nil {
		s.logger.Error("failed to mark expired inventory", zap.Error(err))
	} else if expired > 0 {
		s.logger.Info("marked expired inventory records", zap.Int64("count", expired))
	}

	// Запросы с прошедшей датой потребности отклоняются независимо от статуса,
	// в том числе уже принятые.
	cancelled, err := s.emergencyRepo.CancelExpired(ctx, now)
	if err != nil {
		s.logger.Error("failed to cancel expired emergency requests", zap.Error(err))
	} else if cancelled > 0 {
		s.logger.Info("cancelled expired emergency requests", zap.Int64("count", cancelled))
	}
}
