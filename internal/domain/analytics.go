package domain

import (
	"time"

	"gorm.io/datatypes"
)

type EventType string

const (
	EventPageView    EventType = "page_view"
	EventFormSubmit  EventType = "form_submit"
	EventFormStart   EventType = "form_start"
	EventFileUpload  EventType = "file_upload"
	EventButtonClick EventType = "button_click"
	EventLinkClick   EventType = "link_click"
)

func ValidEventTypes() []EventType {
	return []EventType{
		EventPageView, EventFormSubmit, EventFormStart,
		EventFileUpload, EventButtonClick, EventLinkClick,
	}
}

func (e EventType) Valid() bool {
	for _, v := range ValidEventTypes() {
		if e == v {
			return true
		}
	}
	return false
}

// AnalyticsEvent is an append-only record of one frontend interaction.
// Rows are never updated; the only delete path is the retention sweep.
type AnalyticsEvent struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	EventType EventType `json:"event_type" gorm:"size:50;not null;index:idx_events_type_ts,priority:1"`
	Page      string    `json:"page" gorm:"size:500;not null"`
	Language  string    `json:"language" gorm:"size:10;index"`

	Referrer  string `json:"referrer,omitempty" gorm:"size:500"`
	IPAddress string `json:"-" gorm:"size:45"`
	UserAgent string `json:"-" gorm:"type:text"`
	SessionID string `json:"session_id" gorm:"size:100;index:idx_events_session_ts,priority:1"`

	Metadata datatypes.JSONMap `json:"metadata,omitempty"`

	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime;index:idx_events_ts,sort:desc;index:idx_events_type_ts,priority:2,sort:desc;index:idx_events_session_ts,priority:2,sort:desc"`
}

func (AnalyticsEvent) TableName() string { return "analytics_events" }
