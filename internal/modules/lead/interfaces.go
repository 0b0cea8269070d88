package lead

import (
	"context"
	"time"

	"paradise/internal/domain"
	"paradise/internal/repository"
)

// Repository defines the lead data access the service needs.
type Repository interface {
	CreateTx(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.LeadFilters) ([]domain.Lead, int64, error)
	ListAll(ctx context.Context, f repository.LeadFilters) ([]domain.Lead, error)
	Stats(ctx context.Context, now time.Time) (*repository.LeadStats, error)
}
