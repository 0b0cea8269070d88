package analytics

import (
	"context"
	"time"

	"paradise/internal/domain"
	"paradise/internal/repository"
)

// Repository is the append-only event store: no update method exists.
type Repository interface {
	Create(ctx context.Context, e *domain.AnalyticsEvent) error
	Count(ctx context.Context, f repository.EventFilters) (int64, error)
	CountUniqueSessions(ctx context.Context, f repository.EventFilters) (int64, error)
	CountByType(ctx context.Context, f repository.EventFilters) (map[domain.EventType]int64, error)
	CountByLanguage(ctx context.Context, f repository.EventFilters) (map[string]int64, error)
	TopPages(ctx context.Context, limit int) ([]repository.PageCount, error)
	DailySeries(ctx context.Context, now time.Time, days int) ([]repository.DailyCount, error)
	Recent(ctx context.Context, f repository.EventFilters, limit int) ([]domain.AnalyticsEvent, error)
	CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
