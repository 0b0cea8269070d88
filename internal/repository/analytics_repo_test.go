package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"paradise/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AnalyticsEvent{}))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, eventType domain.EventType, page, session string, ts time.Time) {
	t.Helper()
	e := &domain.AnalyticsEvent{
		EventType: eventType,
		Page:      page,
		Language:  "ru",
		SessionID: session,
	}
	require.NoError(t, db.Create(e).Error)
	// autoCreateTime stamps now(); pin the timestamp explicitly for the test
	require.NoError(t, db.Model(e).UpdateColumn("timestamp", ts).Error)
}

func TestRepeatedIdenticalEventsCreateSeparateRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	e1 := &domain.AnalyticsEvent{EventType: domain.EventPageView, Page: "/", SessionID: "s1", Language: "ru"}
	e2 := &domain.AnalyticsEvent{EventType: domain.EventPageView, Page: "/", SessionID: "s1", Language: "ru"}
	require.NoError(t, repo.Create(ctx, e1))
	require.NoError(t, repo.Create(ctx, e2))

	assert.NotEqual(t, e1.ID, e2.ID)

	n, err := repo.Count(ctx, EventFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCountUniqueSessions(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedEvent(t, db, domain.EventPageView, "/", "s1", now)
	seedEvent(t, db, domain.EventPageView, "/products", "s1", now)
	seedEvent(t, db, domain.EventPageView, "/", "s2", now)

	n, err := repo.CountUniqueSessions(ctx, EventFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestTopPagesCountsPageViewsOnly(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedEvent(t, db, domain.EventPageView, "/products", "s1", now)
	seedEvent(t, db, domain.EventPageView, "/products", "s2", now)
	seedEvent(t, db, domain.EventPageView, "/", "s1", now)
	seedEvent(t, db, domain.EventButtonClick, "/", "s1", now)

	pages, err := repo.TopPages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "/products", pages[0].Page)
	assert.Equal(t, int64(2), pages[0].Views)
	assert.Equal(t, int64(1), pages[1].Views)
}

func TestDailySeriesZeroFillsMissingDays(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)

	seedEvent(t, db, domain.EventPageView, "/", "s1", now.AddDate(0, 0, -1))
	seedEvent(t, db, domain.EventFormSubmit, "/contact", "s1", now.AddDate(0, 0, -1))
	seedEvent(t, db, domain.EventPageView, "/", "s2", now.AddDate(0, 0, -5))

	series, err := repo.DailySeries(ctx, now, 30)
	require.NoError(t, err)
	require.Len(t, series, 30)

	// oldest first, every day present
	assert.Equal(t, now.AddDate(0, 0, -29).Format("2006-01-02"), series[0].Date)
	assert.Equal(t, now.Format("2006-01-02"), series[29].Date)

	counted := int64(0)
	for _, d := range series {
		counted += d.PageViews + d.FormSubmissions
	}
	assert.Equal(t, int64(3), counted)
}

func TestRetentionSweepDeletesOnlyOldRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -90)

	seedEvent(t, db, domain.EventPageView, "/", "s1", now.AddDate(0, 0, -100))
	seedEvent(t, db, domain.EventPageView, "/", "s2", now.AddDate(0, 0, -91))
	seedEvent(t, db, domain.EventPageView, "/", "s3", now.AddDate(0, 0, -10))

	pending, err := repo.CountOlderThan(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending)

	removed, err := repo.DeleteOlderThan(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	remaining, err := repo.Count(ctx, EventFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)

	// a second identical sweep finds nothing left to remove
	removed, err = repo.DeleteOlderThan(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestRecentRespectsFiltersAndLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		seedEvent(t, db, domain.EventPageView, "/products", "s1", now.Add(-time.Duration(i)*time.Minute))
	}
	seedEvent(t, db, domain.EventButtonClick, "/", "s2", now)

	events, err := repo.Recent(ctx, EventFilters{EventType: string(domain.EventPageView)}, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, domain.EventPageView, e.EventType)
	}
}
