package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"employees-srv/internal/employee/repository"
	pkgRedis "employees-srv/pkg/redis"
)

const employeeCountKey = "employees:count"

// GetEmployeeCount returns repository.ErrCacheMiss when no count is cached.
func (r *implCacheRepository) GetEmployeeCount(ctx context.Context) (int, error) {
	data, err := r.redis.Get(ctx, employeeCountKey)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNil) {
			return 0, repository.ErrCacheMiss
		}
		return 0, fmt.Errorf("GetEmployeeCount: %w", err)
	}

	count, err := strconv.Atoi(data)
	if err != nil || count < 0 {
		r.l.Warnf(ctx, "employee.repository.redis.GetEmployeeCount: corrupt cached count %q", data)
		return 0, repository.ErrCacheMiss
	}
	return count, nil
}

func (r *implCacheRepository) SaveEmployeeCount(ctx context.Context, count int, ttl time.Duration) error {
	if err := r.redis.Set(ctx, employeeCountKey, strconv.Itoa(count), ttl); err != nil {
		return fmt.Errorf("SaveEmployeeCount: %w", err)
	}
	return nil
}

func (r *implCacheRepository) InvalidateEmployeeCount(ctx context.Context) error {
	if err := r.redis.Delete(ctx, employeeCountKey); err != nil {
		return fmt.Errorf("InvalidateEmployeeCount: %w", err)
	}
	return nil
}
