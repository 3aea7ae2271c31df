package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	repo       domain.ContactRepository
	redisCheck func(ctx context.Context) error
}

// NewHealthUsecase reports on the record store and, when redisCheck is set, the rate limit backend.
func NewHealthUsecase(repo domain.ContactRepository, redisCheck func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{repo: repo, redisCheck: redisCheck}
}

// Check returns per-dependency status. Only the record store decides overall health;
// the rate limiter falls back to memory without redis.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok", "record_store": "ok"}
	healthy := true

	if err := u.repo.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["record_store"] = "unreachable"
		healthy = false
	}

	if u.redisCheck != nil {
		if err := u.redisCheck(ctx); err != nil {
			status["rate_limit"] = "memory"
		} else {
			status["rate_limit"] = "redis"
		}
	}
	return status, healthy
}
