package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paradise/internal/domain"
	"paradise/internal/repository"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, e *domain.AnalyticsEvent) error {
	args := m.Called(ctx, e)
	e.ID = 1
	return args.Error(0)
}

func (m *mockRepo) Count(ctx context.Context, f repository.EventFilters) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) CountUniqueSessions(ctx context.Context, f repository.EventFilters) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) CountByType(ctx context.Context, f repository.EventFilters) (map[domain.EventType]int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(map[domain.EventType]int64), args.Error(1)
}

func (m *mockRepo) CountByLanguage(ctx context.Context, f repository.EventFilters) (map[string]int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *mockRepo) TopPages(ctx context.Context, limit int) ([]repository.PageCount, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]repository.PageCount), args.Error(1)
}

func (m *mockRepo) DailySeries(ctx context.Context, now time.Time, days int) ([]repository.DailyCount, error) {
	args := m.Called(ctx, now, days)
	return args.Get(0).([]repository.DailyCount), args.Error(1)
}

func (m *mockRepo) Recent(ctx context.Context, f repository.EventFilters, limit int) ([]domain.AnalyticsEvent, error) {
	args := m.Called(ctx, f, limit)
	return args.Get(0).([]domain.AnalyticsEvent), args.Error(1)
}

func (m *mockRepo) CountOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestTrackRejectsUnknownEventType(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	_, err := svc.Track(context.Background(), TrackRequest{
		EventType: "mouse_wiggle",
		Page:      "/",
	}, "203.0.113.7", "test-agent")

	assert.ErrorIs(t, err, ErrUnknownEventType)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTrackStampsRequestProvenance(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.AnalyticsEvent) bool {
		return e.IPAddress == "203.0.113.7" &&
			e.UserAgent == "test-agent" &&
			e.EventType == domain.EventPageView &&
			e.Language == "ru"
	})).Return(nil)

	svc := NewService(repo)
	event, err := svc.Track(context.Background(), TrackRequest{
		EventType: "page_view",
		Page:      "/products",
	}, "203.0.113.7", "test-agent")

	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	repo.AssertExpectations(t)
}

func TestCleanupDryRunCountsWithoutDeleting(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CountOlderThan", mock.Anything, mock.Anything).Return(int64(120), nil)

	svc := NewService(repo)
	result, err := svc.Cleanup(context.Background(), 90, true)

	require.NoError(t, err)
	assert.Equal(t, int64(120), result.Removed)
	assert.True(t, result.DryRun)
	repo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
}

func TestCleanupDeletesOlderThanCutoff(t *testing.T) {
	repo := new(mockRepo)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	wantCutoff := now.AddDate(0, 0, -90)
	repo.On("DeleteOlderThan", mock.Anything, wantCutoff).Return(int64(120), nil)

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	result, err := svc.Cleanup(context.Background(), 90, false)

	require.NoError(t, err)
	assert.Equal(t, int64(120), result.Removed)
	assert.False(t, result.DryRun)
	repo.AssertExpectations(t)
}

func TestCleanupRejectsZeroDays(t *testing.T) {
	svc := NewService(new(mockRepo))
	_, err := svc.Cleanup(context.Background(), 0, false)
	assert.ErrorIs(t, err, ErrInvalidRetention)
}

func TestDashboardAssemblesAllSections(t *testing.T) {
	repo := new(mockRepo)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	repo.On("Count", mock.Anything, repository.EventFilters{EventType: "page_view"}).Return(int64(1000), nil)
	repo.On("CountUniqueSessions", mock.Anything, repository.EventFilters{}).Return(int64(300), nil)
	repo.On("Count", mock.Anything, repository.EventFilters{EventType: "form_submit"}).Return(int64(25), nil)
	repo.On("Count", mock.Anything, repository.EventFilters{EventType: "page_view", StartDate: &weekAgo}).Return(int64(90), nil)
	repo.On("TopPages", mock.Anything, 10).Return([]repository.PageCount{{Page: "/", Views: 500}}, nil)
	repo.On("CountByType", mock.Anything, repository.EventFilters{}).Return(map[domain.EventType]int64{domain.EventPageView: 1000}, nil)
	repo.On("CountByLanguage", mock.Anything, repository.EventFilters{}).Return(map[string]int64{"ru": 800, "en": 200}, nil)
	repo.On("DailySeries", mock.Anything, now, 30).Return(make([]repository.DailyCount, 30), nil)

	svc := NewService(repo)
	svc.now = func() time.Time { return now }

	data, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1000), data.TotalPageViews)
	assert.Equal(t, int64(300), data.UniqueSessions)
	assert.Equal(t, int64(25), data.FormSubmissions)
	assert.Equal(t, int64(90), data.ViewsThisWeek)
	assert.Len(t, data.TopPages, 1)
	assert.Equal(t, int64(1000), data.ByEventType["page_view"])
	assert.Len(t, data.DailySeries, 30)
}

func TestReportCapsRecentEvents(t *testing.T) {
	repo := new(mockRepo)
	f := repository.EventFilters{Language: "en"}

	repo.On("Count", mock.Anything, f).Return(int64(5000), nil)
	repo.On("CountUniqueSessions", mock.Anything, f).Return(int64(700), nil)
	repo.On("CountByType", mock.Anything, f).Return(map[domain.EventType]int64{}, nil)
	repo.On("CountByLanguage", mock.Anything, f).Return(map[string]int64{}, nil)
	repo.On("Recent", mock.Anything, f, 100).Return([]domain.AnalyticsEvent{}, nil)

	svc := NewService(repo)
	data, err := svc.Report(context.Background(), f)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), data.TotalEvents)
	repo.AssertExpectations(t)
}
