package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func trackRouter(repo *mockRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/analytics/track", NewHandler(NewService(repo)).Track)
	return r
}

func postTrack(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/track", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestTrackEndpointCreated(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	r := trackRouter(repo)

	w := postTrack(r, `{"event_type":"page_view","page":"/products","session_id":"sess-1"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			EventID int64 `json:"event_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.Data.EventID)
}

func TestTrackRequiresSessionID(t *testing.T) {
	repo := new(mockRepo)
	r := trackRouter(repo)

	w := postTrack(r, `{"event_type":"page_view","page":"/products"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    int                 `json:"code"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "session_id")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTrackRejectsOversizedPage(t *testing.T) {
	repo := new(mockRepo)
	r := trackRouter(repo)

	long := strings.Repeat("a", 501)
	w := postTrack(r, `{"event_type":"page_view","page":"/`+long+`","session_id":"sess-1"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
