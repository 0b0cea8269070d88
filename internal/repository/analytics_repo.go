package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"paradise/internal/domain"
)

type EventFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	EventType string
	Language  string
	Page      string // substring match
}

type PageCount struct {
	Page  string `json:"page"`
	Views int64  `json:"views"`
}

type DailyCount struct {
	Date            string `json:"date"`
	PageViews       int64  `json:"page_views"`
	FormSubmissions int64  `json:"form_submissions"`
}

// AnalyticsRepository is append-only: events are created, read, aggregated and
// bulk-deleted by the retention sweep. There is deliberately no update method.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, e *domain.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AnalyticsRepository) filtered(ctx context.Context, f EventFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.AnalyticsEvent{})

	if f.StartDate != nil {
		q = q.Where("timestamp >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("timestamp <= ?", *f.EndDate)
	}
	if f.EventType != "" {
		q = q.Where("event_type = ?", f.EventType)
	}
	if f.Language != "" {
		q = q.Where("language = ?", f.Language)
	}
	if f.Page != "" {
		q = q.Where("page LIKE ?", "%"+f.Page+"%")
	}

	return q
}

func (r *AnalyticsRepository) Count(ctx context.Context, f EventFilters) (int64, error) {
	var n int64
	err := r.filtered(ctx, f).Count(&n).Error
	return n, err
}

func (r *AnalyticsRepository) CountUniqueSessions(ctx context.Context, f EventFilters) (int64, error) {
	var n int64
	err := r.filtered(ctx, f).Distinct("session_id").Count(&n).Error
	return n, err
}

func (r *AnalyticsRepository) CountByType(ctx context.Context, f EventFilters) (map[domain.EventType]int64, error) {
	type bucket struct {
		Key   string
		Count int64
	}
	var rows []bucket
	err := r.filtered(ctx, f).
		Select("event_type AS key, COUNT(*) AS count").
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[domain.EventType]int64, len(rows))
	for _, b := range rows {
		out[domain.EventType(b.Key)] = b.Count
	}
	return out, nil
}

func (r *AnalyticsRepository) CountByLanguage(ctx context.Context, f EventFilters) (map[string]int64, error) {
	type bucket struct {
		Key   string
		Count int64
	}
	var rows []bucket
	err := r.filtered(ctx, f).
		Select("language AS key, COUNT(*) AS count").
		Group("language").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, b := range rows {
		out[b.Key] = b.Count
	}
	return out, nil
}

// TopPages returns the most viewed pages, page_view events only.
func (r *AnalyticsRepository) TopPages(ctx context.Context, limit int) ([]PageCount, error) {
	var rows []PageCount
	err := r.db.WithContext(ctx).
		Model(&domain.AnalyticsEvent{}).
		Select("page, COUNT(*) AS views").
		Where("event_type = ?", domain.EventPageView).
		Group("page").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	if rows == nil {
		rows = []PageCount{}
	}
	return rows, err
}

// DailySeries returns one row per calendar day for the trailing `days` days,
// oldest first, zero-filled for days without events.
func (r *AnalyticsRepository) DailySeries(ctx context.Context, now time.Time, days int) ([]DailyCount, error) {
	since := now.AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	type row struct {
		Day       string
		EventType string
		Count     int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&domain.AnalyticsEvent{}).
		Select("DATE(timestamp) AS day, event_type, COUNT(*) AS count").
		Where("timestamp >= ?", since).
		Where("event_type IN ?", []domain.EventType{domain.EventPageView, domain.EventFormSubmit}).
		Group("DATE(timestamp), event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*DailyCount, days)
	series := make([]DailyCount, 0, days)
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		series = append(series, DailyCount{Date: date})
		byDay[date] = &series[len(series)-1]
	}
	for _, r := range rows {
		dc, ok := byDay[r.Day]
		if !ok {
			continue
		}
		switch domain.EventType(r.EventType) {
		case domain.EventPageView:
			dc.PageViews = r.Count
		case domain.EventFormSubmit:
			dc.FormSubmissions = r.Count
		}
	}

	return series, nil
}

// Recent returns the newest events matching the filters, capped by limit.
func (r *AnalyticsRepository) Recent(ctx context.Context, f EventFilters, limit int) ([]domain.AnalyticsEvent, error) {
	var events []domain.AnalyticsEvent
	err := r.filtered(ctx, f).Order("timestamp DESC").Limit(limit).Find(&events).Error
	if events == nil {
		events = []domain.AnalyticsEvent{}
	}
	return events, err
}

// CountOlderThan reports how many events a sweep with this cutoff would remove.
func (r *AnalyticsRepository) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.AnalyticsEvent{}).
		Where("timestamp < ?", cutoff).
		Count(&n).Error
	return n, err
}

// DeleteOlderThan removes events older than the cutoff and returns the count.
func (r *AnalyticsRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&domain.AnalyticsEvent{})
	return tx.RowsAffected, tx.Error
}
