package analytics

import (
	"context"
	"time"

	"paradise/internal/domain"
	"paradise/internal/repository"
)

const (
	topPagesLimit     = 10
	dailySeriesDays   = 30
	recentEventsLimit = 100
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Track validates and persists one event. The ip and user agent come from the
// request, never from the payload.
func (s *Service) Track(ctx context.Context, req TrackRequest, ip, userAgent string) (*domain.AnalyticsEvent, error) {
	eventType := domain.EventType(req.EventType)
	if !eventType.Valid() {
		return nil, ErrUnknownEventType
	}

	if req.Language == "" {
		req.Language = string(domain.LangRU)
	}

	event := &domain.AnalyticsEvent{
		EventType: eventType,
		Page:      req.Page,
		Language:  req.Language,
		Referrer:  req.Referrer,
		SessionID: req.SessionID,
		Metadata:  req.Metadata,
		IPAddress: ip,
		UserAgent: userAgent,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Dashboard assembles the operator overview: lifetime totals, trailing-week
// views, top pages and a zero-filled 30 day series.
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	now := s.now()

	pageViews, err := s.repo.Count(ctx, repository.EventFilters{EventType: string(domain.EventPageView)})
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.CountUniqueSessions(ctx, repository.EventFilters{})
	if err != nil {
		return nil, err
	}

	submissions, err := s.repo.Count(ctx, repository.EventFilters{EventType: string(domain.EventFormSubmit)})
	if err != nil {
		return nil, err
	}

	weekAgo := now.AddDate(0, 0, -7)
	weekViews, err := s.repo.Count(ctx, repository.EventFilters{
		EventType: string(domain.EventPageView),
		StartDate: &weekAgo,
	})
	if err != nil {
		return nil, err
	}

	topPages, err := s.repo.TopPages(ctx, topPagesLimit)
	if err != nil {
		return nil, err
	}

	byType, err := s.repo.CountByType(ctx, repository.EventFilters{})
	if err != nil {
		return nil, err
	}

	byLanguage, err := s.repo.CountByLanguage(ctx, repository.EventFilters{})
	if err != nil {
		return nil, err
	}

	series, err := s.repo.DailySeries(ctx, now, dailySeriesDays)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		TotalPageViews:  pageViews,
		UniqueSessions:  sessions,
		FormSubmissions: submissions,
		ViewsThisWeek:   weekViews,
		TopPages:        topPages,
		ByEventType:     typeKeys(byType),
		ByLanguage:      byLanguage,
		DailySeries:     series,
	}, nil
}

// Report returns a filtered summary plus the newest matching events.
func (s *Service) Report(ctx context.Context, f repository.EventFilters) (*ReportResponse, error) {
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	sessions, err := s.repo.CountUniqueSessions(ctx, f)
	if err != nil {
		return nil, err
	}

	byType, err := s.repo.CountByType(ctx, f)
	if err != nil {
		return nil, err
	}

	byLanguage, err := s.repo.CountByLanguage(ctx, f)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Recent(ctx, f, recentEventsLimit)
	if err != nil {
		return nil, err
	}

	return &ReportResponse{
		TotalEvents:    total,
		UniqueSessions: sessions,
		ByEventType:    typeKeys(byType),
		ByLanguage:     byLanguage,
		RecentEvents:   recent,
	}, nil
}

// Cleanup removes events older than the retention window. With dryRun only the
// would-be-removed count is reported and nothing is deleted.
func (s *Service) Cleanup(ctx context.Context, days int, dryRun bool) (*CleanupResult, error) {
	if days < 1 {
		return nil, ErrInvalidRetention
	}

	cutoff := s.now().AddDate(0, 0, -days)
	result := &CleanupResult{Cutoff: cutoff, DryRun: dryRun}

	if dryRun {
		n, err := s.repo.CountOlderThan(ctx, cutoff)
		if err != nil {
			return nil, err
		}
		result.Removed = n
		return result, nil
	}

	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	result.Removed = n
	return result, nil
}

func typeKeys(m map[domain.EventType]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
