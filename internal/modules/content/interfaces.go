package content

import (
	"context"

	"paradise/internal/domain"
	"paradise/internal/repository"
)

type PortfolioRepository interface {
	List(ctx context.Context, f repository.PortfolioFilters) ([]domain.PortfolioItem, error)
	GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error)
	Create(ctx context.Context, item *domain.PortfolioItem) error
	Update(ctx context.Context, item *domain.PortfolioItem) error
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	List(ctx context.Context, f repository.ProductFilters) ([]domain.Product, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, img *domain.ProductImage) error
	DeleteImage(ctx context.Context, productID, imageID int64) error
}
