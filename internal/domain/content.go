package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
	LangUZ Language = "uz"
)

// ParseLanguage normalizes a request language code; anything unknown maps to RU.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case LangEN:
		return LangEN
	case LangUZ:
		return LangUZ
	default:
		return LangRU
	}
}

// Localized is one logical attribute stored as three parallel fields.
// RU is mandatory and is the fallback for empty EN/UZ variants.
type Localized struct {
	RU string
	EN string
	UZ string
}

func (l Localized) Get(lang Language) string {
	switch lang {
	case LangEN:
		if l.EN != "" {
			return l.EN
		}
	case LangUZ:
		if l.UZ != "" {
			return l.UZ
		}
	}
	return l.RU
}

type ContentCategory string

const (
	CategoryWovenLabels   ContentCategory = "woven_labels"
	CategoryPrintedLabels ContentCategory = "printed_labels"
	CategoryHangTags      ContentCategory = "hang_tags"
	CategoryStickers      ContentCategory = "stickers"
	CategoryPackaging     ContentCategory = "packaging"
)

func ValidContentCategories() []ContentCategory {
	return []ContentCategory{
		CategoryWovenLabels, CategoryPrintedLabels,
		CategoryHangTags, CategoryStickers, CategoryPackaging,
	}
}

// PortfolioItem is a showcase entry, fully operator-managed.
type PortfolioItem struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Image string `json:"image" gorm:"size:500;not null"`

	TitleRU string `json:"title_ru" gorm:"size:200;not null"`
	TitleEN string `json:"title_en,omitempty" gorm:"size:200"`
	TitleUZ string `json:"title_uz,omitempty" gorm:"size:200"`

	DescriptionRU string `json:"description_ru" gorm:"type:text;not null"`
	DescriptionEN string `json:"description_en,omitempty" gorm:"type:text"`
	DescriptionUZ string `json:"description_uz,omitempty" gorm:"type:text"`

	Category    ContentCategory `json:"category" gorm:"size:100;index"`
	Order       int             `json:"order" gorm:"column:display_order;index;default:0"`
	IsPublished bool            `json:"is_published" gorm:"index;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PortfolioItem) TableName() string { return "portfolio_items" }

func (p *PortfolioItem) Title() Localized {
	return Localized{RU: p.TitleRU, EN: p.TitleEN, UZ: p.TitleUZ}
}

func (p *PortfolioItem) Description() Localized {
	return Localized{RU: p.DescriptionRU, EN: p.DescriptionEN, UZ: p.DescriptionUZ}
}

// Product is a catalog entry with a trilingual card and an ordered image gallery.
type Product struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Slug      string `json:"slug" gorm:"size:200;uniqueIndex;not null"`
	MainImage string `json:"main_image" gorm:"size:500;not null"`

	NameRU string `json:"name_ru" gorm:"size:200;not null"`
	NameEN string `json:"name_en,omitempty" gorm:"size:200"`
	NameUZ string `json:"name_uz,omitempty" gorm:"size:200"`

	ShortDescriptionRU string `json:"short_description_ru,omitempty" gorm:"size:300"`
	ShortDescriptionEN string `json:"short_description_en,omitempty" gorm:"size:300"`
	ShortDescriptionUZ string `json:"short_description_uz,omitempty" gorm:"size:300"`

	DescriptionRU string `json:"description_ru" gorm:"type:text;not null"`
	DescriptionEN string `json:"description_en,omitempty" gorm:"type:text"`
	DescriptionUZ string `json:"description_uz,omitempty" gorm:"type:text"`

	Category ContentCategory `json:"category" gorm:"size:100;index"`

	// Per-language bullet lists: {"ru": [...], "en": [...], "uz": [...]}
	Features datatypes.JSONType[map[string][]string] `json:"features"`

	Order       int  `json:"order" gorm:"column:display_order;index;default:0"`
	IsPublished bool `json:"is_published" gorm:"index;default:true"`
	IsFeatured  bool `json:"is_featured" gorm:"index;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }

func (p *Product) Name() Localized {
	return Localized{RU: p.NameRU, EN: p.NameEN, UZ: p.NameUZ}
}

func (p *Product) ShortDescription() Localized {
	return Localized{RU: p.ShortDescriptionRU, EN: p.ShortDescriptionEN, UZ: p.ShortDescriptionUZ}
}

func (p *Product) Description() Localized {
	return Localized{RU: p.DescriptionRU, EN: p.DescriptionEN, UZ: p.DescriptionUZ}
}

// FeaturesFor returns the bullet list for lang, falling back to RU.
func (p *Product) FeaturesFor(lang Language) []string {
	m := p.Features.Data()
	if m == nil {
		return []string{}
	}
	if list, ok := m[string(lang)]; ok && len(list) > 0 {
		return list
	}
	if list, ok := m[string(LangRU)]; ok {
		return list
	}
	return []string{}
}

// ProductImage is one gallery photo, owned exclusively by its product.
type ProductImage struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	ProductID int64  `json:"product_id" gorm:"index;not null"`
	Image     string `json:"image" gorm:"size:500;not null"`
	Caption   string `json:"caption,omitempty" gorm:"size:200"`
	Order     int    `json:"order" gorm:"column:display_order;default:0"`
}

func (ProductImage) TableName() string { return "product_images" }
