package analytics

import (
	"time"

	"paradise/internal/domain"
	"paradise/internal/repository"
)

// TrackRequest is the public event payload pushed by the frontend.
type TrackRequest struct {
	EventType string                 `json:"event_type" validate:"required"`
	Page      string                 `json:"page" validate:"required,max=500"`
	Language  string                 `json:"language"`
	Referrer  string                 `json:"referrer"`
	SessionID string                 `json:"session_id" validate:"required,max=100"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type DashboardResponse struct {
	TotalPageViews  int64                   `json:"total_page_views"`
	UniqueSessions  int64                   `json:"unique_sessions"`
	FormSubmissions int64                   `json:"form_submissions"`
	ViewsThisWeek   int64                   `json:"views_this_week"`
	TopPages        []repository.PageCount  `json:"top_pages"`
	ByEventType     map[string]int64        `json:"by_event_type"`
	ByLanguage      map[string]int64        `json:"by_language"`
	DailySeries     []repository.DailyCount `json:"daily_series"`
}

type ReportResponse struct {
	TotalEvents    int64                   `json:"total_events"`
	UniqueSessions int64                   `json:"unique_sessions"`
	ByEventType    map[string]int64        `json:"by_event_type"`
	ByLanguage     map[string]int64        `json:"by_language"`
	RecentEvents   []domain.AnalyticsEvent `json:"recent_events"`
}

type CleanupResult struct {
	Cutoff  time.Time `json:"cutoff"`
	Removed int64     `json:"removed"`
	DryRun  bool      `json:"dry_run"`
}
