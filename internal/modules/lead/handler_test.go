package lead

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paradise/internal/middleware"
	"paradise/internal/pkg/ratelimit"
)

func submitRouter(svc *Service, limiter *ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{}
	if limiter != nil {
		handlers = append(handlers, middleware.RateLimit(limiter))
	}
	handlers = append(handlers, NewHandler(svc).Submit)
	r.POST("/api/leads/submit", handlers...)
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/leads/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"name": "Айгуль",
	"company": "ТОО Текстиль",
	"phone": "+998 90 123 45 67",
	"product_type": "woven",
	"language": "ru"
}`

func TestSubmitEndpointCreated(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CreateTx", mock.Anything, mock.Anything).Return(nil)
	r := submitRouter(newTestService(repo, nil, nil, nil), nil)

	w := postJSON(r, validBody)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		LeadID  int64  `json:"lead_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.LeadID)
	assert.Contains(t, resp.Message, "Спасибо")
}

func TestSubmitEndpointFieldErrors(t *testing.T) {
	repo := new(mockRepo)
	r := submitRouter(newTestService(repo, nil, nil, nil), nil)

	w := postJSON(r, `{"name":"А","company":"Б","phone":"12345","product_type":"woven"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    int                 `json:"code"`
			Message string              `json:"message"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Details["phone"])
	repo.AssertNotCalled(t, "CreateTx", mock.Anything, mock.Anything)
}

func TestSubmitEndpointRateLimited(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CreateTx", mock.Anything, mock.Anything).Return(nil)

	limiter := ratelimit.New(5, time.Hour)
	r := submitRouter(newTestService(repo, nil, nil, nil), limiter)

	for i := 0; i < 5; i++ {
		w := postJSON(r, validBody)
		require.Equal(t, http.StatusCreated, w.Code, "request %d", i+1)
	}

	w := postJSON(r, validBody)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code int `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusTooManyRequests, resp.Error.Code)
	repo.AssertNumberOfCalls(t, "CreateTx", 5)
}
