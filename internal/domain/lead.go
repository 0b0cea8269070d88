package domain

import "time"

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadClosed    LeadStatus = "closed"
	LeadRejected  LeadStatus = "rejected"
)

func ValidLeadStatuses() []LeadStatus {
	return []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadClosed, LeadRejected}
}

type ProductType string

const (
	ProductWoven    ProductType = "woven"
	ProductPrinted  ProductType = "printed"
	ProductHangTags ProductType = "hang_tags"
	ProductStickers ProductType = "stickers"
	ProductOther    ProductType = "other"
)

func ValidProductTypes() []ProductType {
	return []ProductType{ProductWoven, ProductPrinted, ProductHangTags, ProductStickers, ProductOther}
}

// DisplayName returns the operator-facing label for reports and notifications.
func (p ProductType) DisplayName(lang Language) string {
	ru := map[ProductType]string{
		ProductWoven:    "Вшивные этикетки",
		ProductPrinted:  "Печатные этикетки",
		ProductHangTags: "Навесные бирки",
		ProductStickers: "Стикеры",
		ProductOther:    "Другое",
	}
	en := map[ProductType]string{
		ProductWoven:    "Woven Labels",
		ProductPrinted:  "Printed Labels",
		ProductHangTags: "Hang Tags",
		ProductStickers: "Stickers",
		ProductOther:    "Other",
	}
	if lang == LangEN {
		if v, ok := en[p]; ok {
			return v
		}
	}
	if v, ok := ru[p]; ok {
		return v
	}
	return string(p)
}

func (s LeadStatus) DisplayName() string {
	labels := map[LeadStatus]string{
		LeadNew:       "Новый",
		LeadContacted: "Связались",
		LeadQualified: "Квалифицирован",
		LeadClosed:    "Закрыт",
		LeadRejected:  "Отклонен",
	}
	if v, ok := labels[s]; ok {
		return v
	}
	return string(s)
}

// Lead is one contact form submission. Provenance fields (ip, user agent,
// source, language) are stamped once at creation and never changed afterwards.
type Lead struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	Name    string `json:"name" gorm:"size:200;not null"`
	Company string `json:"company" gorm:"size:200;not null"`
	Phone   string `json:"phone" gorm:"size:50;not null"`
	Email   string `json:"email,omitempty" gorm:"size:254"`

	ProductType ProductType `json:"product_type" gorm:"size:100;index;not null"`
	Quantity    *int        `json:"quantity,omitempty"`
	Message     string      `json:"message,omitempty" gorm:"type:text"`
	FilePath    string      `json:"file,omitempty" gorm:"size:500"`

	Status LeadStatus `json:"status" gorm:"size:20;index;default:new"`
	Notes  string     `json:"notes,omitempty" gorm:"type:text"`

	Source    string `json:"source,omitempty" gorm:"size:100"`
	Language  string `json:"language" gorm:"size:10;default:ru"`
	IPAddress string `json:"-" gorm:"size:45"`
	UserAgent string `json:"-" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"index:idx_leads_created_at,sort:desc"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }
