package lead

import (
	"time"

	"paradise/internal/domain"
)

// SubmitRequest is the public contact form payload. It binds from JSON or
// multipart form data; the attachment travels separately as a file part.
type SubmitRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=200"`
	Company     string `json:"company" form:"company" validate:"required,max=200"`
	Phone       string `json:"phone" form:"phone" validate:"required,max=50"`
	Email       string `json:"email" form:"email" validate:"omitempty,email"`
	ProductType string `json:"product_type" form:"product_type" validate:"required,oneof=woven printed hang_tags stickers other"`
	Quantity    *int   `json:"quantity" form:"quantity" validate:"omitempty,gt=0"`
	Message     string `json:"message" form:"message"`
	Language    string `json:"language" form:"language"`
	Source      string `json:"source" form:"source"`
}

// UpdateRequest is the operator-side mutation: workflow status and notes only.
// Contact and provenance fields are immutable after intake.
type UpdateRequest struct {
	Status domain.LeadStatus `json:"status" validate:"required,oneof=new contacted qualified closed rejected"`
	Notes  string            `json:"notes"`
}

type ListResponse struct {
	Leads []domain.Lead `json:"leads"`
	Total int64         `json:"total"`
}

type StatsResponse struct {
	TotalLeads     int64            `json:"total_leads"`
	NewLeads       int64            `json:"new_leads"`
	ContactedLeads int64            `json:"contacted_leads"`
	QualifiedLeads int64            `json:"qualified_leads"`
	ClosedLeads    int64            `json:"closed_leads"`
	LeadsThisWeek  int64            `json:"leads_this_week"`
	LeadsThisMonth int64            `json:"leads_this_month"`
	ByProductType  map[string]int64 `json:"by_product_type"`
	ByLanguage     map[string]int64 `json:"by_language"`
	RecentLeads    []domain.Lead    `json:"recent_leads"`
}

func thankYouMessage(lang string) string {
	switch domain.ParseLanguage(lang) {
	case domain.LangEN:
		return "Thank you! Your request has been received. We will contact you shortly."
	case domain.LangUZ:
		return "Rahmat! So'rovingiz qabul qilindi. Tez orada siz bilan bog'lanamiz."
	default:
		return "Спасибо! Ваша заявка принята. Мы свяжемся с вами в ближайшее время."
	}
}

// parseDate accepts YYYY-MM-DD filter values from query params and CLIs.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
