package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paradise/internal/domain"
	"paradise/internal/pkg/response"
	"paradise/internal/pkg/validator"
	"paradise/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// requestLanguage resolves the response language from the "lang" query param,
// falling back to Russian for anything missing or unknown.
func requestLanguage(c *gin.Context) domain.Language {
	return domain.ParseLanguage(c.Query("lang"))
}

/* ---------- public ---------- */

// Portfolio handles GET /api/portfolio.
func (h *Handler) Portfolio(c *gin.Context) {
	views, err := h.service.PublicPortfolio(c.Request.Context(), requestLanguage(c), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось загрузить портфолио")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// Products handles GET /api/products.
func (h *Handler) Products(c *gin.Context) {
	var featured *bool
	v := c.Query("is_featured")
	if v == "" {
		v = c.Query("featured")
	}
	if v != "" {
		b := v == "true" || v == "1"
		featured = &b
	}

	views, err := h.service.PublicProducts(c.Request.Context(), requestLanguage(c), c.Query("category"), c.Query("search"), featured)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось загрузить каталог")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// ProductBySlug handles GET /api/products/:slug.
func (h *Handler) ProductBySlug(c *gin.Context) {
	view, err := h.service.PublicProductBySlug(c.Request.Context(), requestLanguage(c), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

/* ---------- operator portfolio ---------- */

func (h *Handler) AdminListPortfolio(c *gin.Context) {
	items, err := h.service.ListPortfolio(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось загрузить портфолио")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) AdminGetPortfolio(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.service.GetPortfolio(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) AdminCreatePortfolio(c *gin.Context) {
	var req PortfolioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.service.CreatePortfolio(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) AdminUpdatePortfolio(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req PortfolioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.service.UpdatePortfolio(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) AdminDeletePortfolio(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeletePortfolio(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- operator products ---------- */

func (h *Handler) AdminListProducts(c *gin.Context) {
	f := repository.ProductFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	products, err := h.service.ListProducts(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось загрузить каталог")
		return
	}
	response.Success(c, http.StatusOK, products)
}

func (h *Handler) AdminGetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AdminAddProductImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req ProductImageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	img, err := h.service.AddProductImage(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, img)
}

func (h *Handler) AdminDeleteProductImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	imageID, err := strconv.ParseInt(c.Param("imageId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}
	if err := h.service.DeleteProductImage(c.Request.Context(), id, imageID); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- helpers ---------- */

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPortfolioNotFound):
		response.Error(c, http.StatusNotFound, "Элемент портфолио не найден")
	case errors.Is(err, ErrProductNotFound):
		response.Error(c, http.StatusNotFound, "Продукт не найден")
	case errors.Is(err, ErrImageNotFound):
		response.Error(c, http.StatusNotFound, "Изображение не найдено")
	case errors.Is(err, ErrSlugTaken):
		response.ErrorWithDetails(c, http.StatusBadRequest, "Некорректные данные", gin.H{
			"slug": []string{"Такой slug уже используется"},
		})
	case errors.Is(err, ErrSlugUnderivable):
		response.ErrorWithDetails(c, http.StatusBadRequest, "Некорректные данные", gin.H{
			"slug": []string{"Укажите slug или название продукта"},
		})
	default:
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return 0, false
	}
	return id, true
}

func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректные данные")
		return false
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Некорректные данные", fields)
		return false
	}
	return true
}
