package service

import (
	"context"
	"time"

	"hotel-frontdesk-backend/internal/repository"

	"go.uber.org/zap"
)

// TokenJanitor periodically revokes refresh tokens past their expiry
type TokenJanitor struct {
	userRepo *repository.UserRepository
	interval time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewTokenJanitor(userRepo *repository.UserRepository, interval time.Duration, log *zap.Logger) *TokenJanitor {
	return &TokenJanitor{
		userRepo: userRepo,
		interval: interval,
		now:      time.Now,
		log:      log,
	}
}

// Start runs the janitor until ctx is cancelled
func (j *TokenJanitor) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.log.Info("token janitor started", zap.Duration("interval", j.interval))

	for {
		select {
		case <-ctx.Done():
			j.log.Info("token janitor stopped")
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep revokes every expired refresh token once and returns how many it revoked
func (j *TokenJanitor) Sweep(ctx context.Context) int64 {
	n, err := j.userRepo.RevokeExpiredRefreshTokens(ctx, j.now())
	if err != nil {
		j.log.Error("failed to revoke expired refresh tokens", zap.Error(err))
		return 0
	}
	if n > 0 {
		j.log.Info("revoked expired refresh tokens", zap.Int64("count", n))
	}
	return n
}
