package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"paradise/internal/domain"
)

type LeadFilters struct {
	Status      string
	ProductType string
	Language    string
	Search      string
	StartDate   *time.Time
	EndDate     *time.Time
	Ordering    string
	Limit       int
	Offset      int
}

type LeadStats struct {
	Total         int64
	ByStatus      map[domain.LeadStatus]int64
	ThisWeek      int64
	ThisMonth     int64
	ByProductType map[domain.ProductType]int64
	ByLanguage    map[string]int64
	Recent        []domain.Lead
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// CreateTx inserts the lead inside a single transaction so the row either
// fully exists or does not before any notification is attempted.
func (r *LeadRepository) CreateTx(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(lead).Error
	})
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var lead domain.Lead
	if err := r.db.WithContext(ctx).First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Lead{}, id).Error
}

func (r *LeadRepository) filtered(ctx context.Context, f LeadFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Lead{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ProductType != "" {
		q = q.Where("product_type = ?", f.ProductType)
	}
	if f.Language != "" {
		q = q.Where("language = ?", f.Language)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			"name LIKE ? OR company LIKE ? OR phone LIKE ? OR email LIKE ? OR message LIKE ?",
			like, like, like, like, like,
		)
	}
	if f.StartDate != nil {
		q = q.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("created_at <= ?", *f.EndDate)
	}

	return q
}

// List returns leads matching the filters plus the unpaginated total.
func (r *LeadRepository) List(ctx context.Context, f LeadFilters) ([]domain.Lead, int64, error) {
	var leads []domain.Lead
	var total int64

	q := r.filtered(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	switch f.Ordering {
	case "created_at":
		order = "created_at ASC"
	case "updated_at", "-updated_at", "status", "name", "company":
		order = orderingToSQL(f.Ordering)
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	err := q.Order(order).Find(&leads).Error
	return leads, total, err
}

func orderingToSQL(ordering string) string {
	if len(ordering) > 0 && ordering[0] == '-' {
		return ordering[1:] + " DESC"
	}
	return ordering + " ASC"
}

// ListAll streams every lead matching the filters in creation order, for export.
func (r *LeadRepository) ListAll(ctx context.Context, f LeadFilters) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.filtered(ctx, f).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// Stats aggregates the operator dashboard snapshot in a handful of group-bys.
func (r *LeadRepository) Stats(ctx context.Context, now time.Time) (*LeadStats, error) {
	stats := &LeadStats{
		ByStatus:      make(map[domain.LeadStatus]int64),
		ByProductType: make(map[domain.ProductType]int64),
		ByLanguage:    make(map[string]int64),
	}

	base := func() *gorm.DB { return r.db.WithContext(ctx).Model(&domain.Lead{}) }

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&stats.ThisWeek).Error; err != nil {
		return nil, err
	}
	if err := base().Where("created_at >= ?", now.AddDate(0, 0, -30)).Count(&stats.ThisMonth).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var byStatus []bucket
	if err := base().Select("status AS key, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		stats.ByStatus[domain.LeadStatus(b.Key)] = b.Count
	}

	var byProduct []bucket
	if err := base().Select("product_type AS key, COUNT(*) AS count").Group("product_type").Scan(&byProduct).Error; err != nil {
		return nil, err
	}
	for _, b := range byProduct {
		stats.ByProductType[domain.ProductType(b.Key)] = b.Count
	}

	var byLanguage []bucket
	if err := base().Select("language AS key, COUNT(*) AS count").Group("language").Scan(&byLanguage).Error; err != nil {
		return nil, err
	}
	for _, b := range byLanguage {
		stats.ByLanguage[b.Key] = b.Count
	}

	if err := base().Order("created_at DESC").Limit(5).Find(&stats.Recent).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
