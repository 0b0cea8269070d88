package content

import (
	"paradise/internal/domain"
)

// PortfolioItemView is the public, language-projected portfolio card.
type PortfolioItemView struct {
	ID              int64  `json:"id"`
	Image           string `json:"image"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	CategoryDisplay string `json:"category_display"`
	Order           int    `json:"order"`
}

// ProductListView is the public catalog card without the gallery.
type ProductListView struct {
	ID               int64    `json:"id"`
	Slug             string   `json:"slug"`
	MainImage        string   `json:"main_image"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description,omitempty"`
	Category         string   `json:"category"`
	CategoryDisplay  string   `json:"category_display"`
	FeaturesList     []string `json:"features_list"`
	IsFeatured       bool     `json:"is_featured"`
	Order            int      `json:"order"`
}

// ProductDetailView adds the full description and the image gallery.
type ProductDetailView struct {
	ProductListView
	Description string             `json:"description"`
	Images      []ProductImageView `json:"images"`
}

type ProductImageView struct {
	ID      int64  `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
	Order   int    `json:"order"`
}

// PortfolioRequest is the operator-side create/update payload.
type PortfolioRequest struct {
	Image         string `json:"image" validate:"required,max=500"`
	TitleRU       string `json:"title_ru" validate:"required,max=200"`
	TitleEN       string `json:"title_en" validate:"max=200"`
	TitleUZ       string `json:"title_uz" validate:"max=200"`
	DescriptionRU string `json:"description_ru" validate:"required"`
	DescriptionEN string `json:"description_en"`
	DescriptionUZ string `json:"description_uz"`
	Category      string `json:"category" validate:"required,oneof=woven_labels printed_labels hang_tags stickers packaging"`
	Order         int    `json:"order"`
	IsPublished   *bool  `json:"is_published"`
}

// ProductRequest is the operator-side create/update payload. Slug is optional:
// when empty it is derived from the English name, falling back to Russian.
type ProductRequest struct {
	Slug               string              `json:"slug" validate:"max=200"`
	MainImage          string              `json:"main_image" validate:"required,max=500"`
	NameRU             string              `json:"name_ru" validate:"required,max=200"`
	NameEN             string              `json:"name_en" validate:"max=200"`
	NameUZ             string              `json:"name_uz" validate:"max=200"`
	ShortDescriptionRU string              `json:"short_description_ru" validate:"max=300"`
	ShortDescriptionEN string              `json:"short_description_en" validate:"max=300"`
	ShortDescriptionUZ string              `json:"short_description_uz" validate:"max=300"`
	DescriptionRU      string              `json:"description_ru" validate:"required"`
	DescriptionEN      string              `json:"description_en"`
	DescriptionUZ      string              `json:"description_uz"`
	Category           string              `json:"category" validate:"required,oneof=woven_labels printed_labels hang_tags stickers packaging"`
	Features           map[string][]string `json:"features"`
	Order              int                 `json:"order"`
	IsPublished        *bool               `json:"is_published"`
	IsFeatured         *bool               `json:"is_featured"`
}

type ProductImageRequest struct {
	Image   string `json:"image" validate:"required,max=500"`
	Caption string `json:"caption" validate:"max=200"`
	Order   int    `json:"order"`
}

func categoryDisplay(cat domain.ContentCategory, lang domain.Language) string {
	ru := map[domain.ContentCategory]string{
		domain.CategoryWovenLabels:   "Вшивные этикетки",
		domain.CategoryPrintedLabels: "Печатные этикетки",
		domain.CategoryHangTags:      "Навесные бирки",
		domain.CategoryStickers:      "Стикеры",
		domain.CategoryPackaging:     "Упаковка",
	}
	en := map[domain.ContentCategory]string{
		domain.CategoryWovenLabels:   "Woven Labels",
		domain.CategoryPrintedLabels: "Printed Labels",
		domain.CategoryHangTags:      "Hang Tags",
		domain.CategoryStickers:      "Stickers",
		domain.CategoryPackaging:     "Packaging",
	}
	uz := map[domain.ContentCategory]string{
		domain.CategoryWovenLabels:   "Tikilgan yorliqlar",
		domain.CategoryPrintedLabels: "Bosma yorliqlar",
		domain.CategoryHangTags:      "Osma birkalar",
		domain.CategoryStickers:      "Stikerlar",
		domain.CategoryPackaging:     "Qadoqlash",
	}

	var m map[domain.ContentCategory]string
	switch lang {
	case domain.LangEN:
		m = en
	case domain.LangUZ:
		m = uz
	default:
		m = ru
	}
	if v, ok := m[cat]; ok {
		return v
	}
	return string(cat)
}

func portfolioView(item *domain.PortfolioItem, lang domain.Language) PortfolioItemView {
	return PortfolioItemView{
		ID:              item.ID,
		Image:           item.Image,
		Title:           item.Title().Get(lang),
		Description:     item.Description().Get(lang),
		Category:        string(item.Category),
		CategoryDisplay: categoryDisplay(item.Category, lang),
		Order:           item.Order,
	}
}

func productListView(p *domain.Product, lang domain.Language) ProductListView {
	return ProductListView{
		ID:               p.ID,
		Slug:             p.Slug,
		MainImage:        p.MainImage,
		Name:             p.Name().Get(lang),
		ShortDescription: p.ShortDescription().Get(lang),
		Category:         string(p.Category),
		CategoryDisplay:  categoryDisplay(p.Category, lang),
		FeaturesList:     p.FeaturesFor(lang),
		IsFeatured:       p.IsFeatured,
		Order:            p.Order,
	}
}

func productDetailView(p *domain.Product, lang domain.Language) ProductDetailView {
	images := make([]ProductImageView, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImageView{
			ID:      img.ID,
			Image:   img.Image,
			Caption: img.Caption,
			Order:   img.Order,
		})
	}
	return ProductDetailView{
		ProductListView: productListView(p, lang),
		Description:     p.Description().Get(lang),
		Images:          images,
	}
}
