package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	r.GET("/api/content/products", h.Products)
	return r
}

func seedCatalog(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()

	featured := productRequest()
	featured.Slug = "featured-labels"
	yes := true
	featured.IsFeatured = &yes
	_, err := svc.CreateProduct(ctx, featured)
	require.NoError(t, err)

	plain := productRequest()
	plain.Slug = "plain-labels"
	_, err = svc.CreateProduct(ctx, plain)
	require.NoError(t, err)
}

func listProducts(t *testing.T, r *gin.Engine, path string) []ProductListView {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []ProductListView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestProductsFilteredByFeaturedFlag(t *testing.T) {
	svc := newTestService(t)
	seedCatalog(t, svc)
	r := catalogRouter(svc)

	all := listProducts(t, r, "/api/content/products")
	assert.Len(t, all, 2)

	featured := listProducts(t, r, "/api/content/products?is_featured=true")
	require.Len(t, featured, 1)
	assert.Equal(t, "featured-labels", featured[0].Slug)
	assert.True(t, featured[0].IsFeatured)
}

func TestProductsFeaturedLegacyParam(t *testing.T) {
	svc := newTestService(t)
	seedCatalog(t, svc)
	r := catalogRouter(svc)

	featured := listProducts(t, r, "/api/content/products?featured=true")
	require.Len(t, featured, 1)
	assert.Equal(t, "featured-labels", featured[0].Slug)
}
