package repository

import (
	"context"

	"gorm.io/gorm"

	"paradise/internal/domain"
)

type PortfolioFilters struct {
	Category      string
	PublishedOnly bool
}

type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) List(ctx context.Context, f PortfolioFilters) ([]domain.PortfolioItem, error) {
	q := r.db.WithContext(ctx).Model(&domain.PortfolioItem{})

	if f.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var items []domain.PortfolioItem
	err := q.Order("display_order ASC, created_at DESC").Find(&items).Error
	return items, err
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	var item domain.PortfolioItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, item *domain.PortfolioItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *PortfolioRepository) Update(ctx context.Context, item *domain.PortfolioItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.PortfolioItem{}, id).Error
}
