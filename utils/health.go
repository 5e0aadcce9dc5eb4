package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of the service and its cache.
type HealthStatus struct {
	Status    string    `json:"status"`
	Cache     string    `json:"cache"`
	CheckedAt time.Time `json:"checkedAt"`
}

// CheckHealth pings the cache client, if any. A missing cache is reported as
// disabled rather than unhealthy.
func CheckHealth(ctx context.Context, cacheClient *redis.Client) HealthStatus {
	status := HealthStatus{Status: "ok", Cache: "disabled", CheckedAt: time.Now()}
	if cacheClient == nil {
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := cacheClient.Ping(ctx).Err(); err != nil {
		status.Status = "degraded"
		status.Cache = "unreachable"
		return status
	}
	status.Cache = "ok"
	return status
}
