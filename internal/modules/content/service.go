package content

import (
	"context"
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"paradise/internal/domain"
	"paradise/internal/repository"
)

type Service struct {
	portfolio PortfolioRepository
	products  ProductRepository
}

func NewService(portfolio PortfolioRepository, products ProductRepository) *Service {
	return &Service{portfolio: portfolio, products: products}
}

/* ---------- public catalog ---------- */

// PublicPortfolio lists published portfolio items projected into lang.
func (s *Service) PublicPortfolio(ctx context.Context, lang domain.Language, category string) ([]PortfolioItemView, error) {
	items, err := s.portfolio.List(ctx, repository.PortfolioFilters{
		Category:      category,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, err
	}

	views := make([]PortfolioItemView, 0, len(items))
	for i := range items {
		views = append(views, portfolioView(&items[i], lang))
	}
	return views, nil
}

// PublicProducts lists published products projected into lang.
func (s *Service) PublicProducts(ctx context.Context, lang domain.Language, category, search string, featured *bool) ([]ProductListView, error) {
	products, err := s.products.List(ctx, repository.ProductFilters{
		Category:      category,
		Search:        search,
		IsFeatured:    featured,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, err
	}

	views := make([]ProductListView, 0, len(products))
	for i := range products {
		views = append(views, productListView(&products[i], lang))
	}
	return views, nil
}

// PublicProductBySlug loads one published product with its gallery.
// An unpublished product is indistinguishable from a missing one.
func (s *Service) PublicProductBySlug(ctx context.Context, lang domain.Language, productSlug string) (*ProductDetailView, error) {
	p, err := s.products.GetBySlug(ctx, productSlug, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	view := productDetailView(p, lang)
	return &view, nil
}

/* ---------- operator portfolio ---------- */

func (s *Service) ListPortfolio(ctx context.Context, category string) ([]domain.PortfolioItem, error) {
	return s.portfolio.List(ctx, repository.PortfolioFilters{Category: category})
}

func (s *Service) GetPortfolio(ctx context.Context, id int64) (*domain.PortfolioItem, error) {
	item, err := s.portfolio.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *Service) CreatePortfolio(ctx context.Context, req PortfolioRequest) (*domain.PortfolioItem, error) {
	item := &domain.PortfolioItem{IsPublished: true}
	applyPortfolio(item, req)
	if err := s.portfolio.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdatePortfolio(ctx context.Context, id int64, req PortfolioRequest) (*domain.PortfolioItem, error) {
	item, err := s.GetPortfolio(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPortfolio(item, req)
	if err := s.portfolio.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) DeletePortfolio(ctx context.Context, id int64) error {
	if _, err := s.GetPortfolio(ctx, id); err != nil {
		return err
	}
	return s.portfolio.Delete(ctx, id)
}

func applyPortfolio(item *domain.PortfolioItem, req PortfolioRequest) {
	item.Image = req.Image
	item.TitleRU = req.TitleRU
	item.TitleEN = req.TitleEN
	item.TitleUZ = req.TitleUZ
	item.DescriptionRU = req.DescriptionRU
	item.DescriptionEN = req.DescriptionEN
	item.DescriptionUZ = req.DescriptionUZ
	item.Category = domain.ContentCategory(req.Category)
	item.Order = req.Order
	if req.IsPublished != nil {
		item.IsPublished = *req.IsPublished
	}
}

/* ---------- operator products ---------- */

func (s *Service) ListProducts(ctx context.Context, f repository.ProductFilters) ([]domain.Product, error) {
	return s.products.List(ctx, f)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) CreateProduct(ctx context.Context, req ProductRequest) (*domain.Product, error) {
	p := &domain.Product{IsPublished: true}
	if err := applyProduct(p, req); err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, mapRepoError(err)
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (*domain.Product, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProduct(p, req); err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, mapRepoError(err)
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *Service) AddProductImage(ctx context.Context, productID int64, req ProductImageRequest) (*domain.ProductImage, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	img := &domain.ProductImage{
		ProductID: productID,
		Image:     req.Image,
		Caption:   req.Caption,
		Order:     req.Order,
	}
	if err := s.products.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *Service) DeleteProductImage(ctx context.Context, productID, imageID int64) error {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}
	if err := s.products.DeleteImage(ctx, productID, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}

func applyProduct(p *domain.Product, req ProductRequest) error {
	// The slug is derived once and then sticks: renaming a product must not
	// silently change its public URL.
	switch {
	case req.Slug != "":
		p.Slug = slug.Make(req.Slug)
	case p.Slug != "":
		// keep
	case req.NameEN != "":
		p.Slug = slug.Make(req.NameEN)
	case req.NameRU != "":
		p.Slug = slug.Make(req.NameRU)
	default:
		return ErrSlugUnderivable
	}
	p.MainImage = req.MainImage
	p.NameRU = req.NameRU
	p.NameEN = req.NameEN
	p.NameUZ = req.NameUZ
	p.ShortDescriptionRU = req.ShortDescriptionRU
	p.ShortDescriptionEN = req.ShortDescriptionEN
	p.ShortDescriptionUZ = req.ShortDescriptionUZ
	p.DescriptionRU = req.DescriptionRU
	p.DescriptionEN = req.DescriptionEN
	p.DescriptionUZ = req.DescriptionUZ
	p.Category = domain.ContentCategory(req.Category)
	if req.Features != nil {
		p.Features = datatypes.NewJSONType(req.Features)
	}
	p.Order = req.Order
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrSlugTaken) {
		return ErrSlugTaken
	}
	return err
}
