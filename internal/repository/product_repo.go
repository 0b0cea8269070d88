package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"paradise/internal/domain"
)

// ErrSlugTaken surfaces the unique index on products.slug as a typed error so
// the service layer does not inspect driver errors.
var ErrSlugTaken = errors.New("product slug already taken")

type ProductFilters struct {
	Category      string
	IsFeatured    *bool
	Search        string
	PublishedOnly bool
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, f ProductFilters) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})

	if f.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.IsFeatured != nil {
		q = q.Where("is_featured = ?", *f.IsFeatured)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"name_ru LIKE ? OR name_en LIKE ? OR name_uz LIKE ? OR description_ru LIKE ?",
			like, like, like, like,
		)
	}

	var products []domain.Product
	err := q.Order("display_order ASC, created_at DESC").Find(&products).Error
	return products, err
}

// GetBySlug loads a product with its gallery in display order.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.Product, error) {
	q := r.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}

	var product domain.Product
	err := q.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	}).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return mapSlugError(err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return mapSlugError(err)
	}
	return nil
}

// Delete removes the product and its gallery. The FK constraint cascades on
// Postgres; the explicit child delete keeps SQLite behavior identical.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&domain.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Product{}, id).Error
	})
}

func (r *ProductRepository) AddImage(ctx context.Context, img *domain.ProductImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *ProductRepository) DeleteImage(ctx context.Context, productID, imageID int64) error {
	tx := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&domain.ProductImage{}, imageID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func mapSlugError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrSlugTaken
	}
	return err
}
