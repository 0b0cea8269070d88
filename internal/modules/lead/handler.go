package lead

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"paradise/internal/domain"
	"paradise/internal/pkg/response"
	"paradise/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/leads/submit. The form arrives either as JSON or
// as multipart form data with an optional "file" part.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	var file *multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "Некорректные данные формы")
			return
		}
		if fh, err := c.FormFile("file"); err == nil {
			file = fh
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "Некорректные данные формы")
			return
		}
	}

	lead, message, err := h.service.Submit(c.Request.Context(), req, file, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "Проверьте правильность заполнения формы", verr.Fields)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Произошла ошибка. Попробуйте позже.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"lead_id": lead.ID,
	})
}

// List handles GET /api/admin/leads with filter and pagination query params.
func (h *Handler) List(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось получить список заявок")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	lead, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректные данные")
		return
	}
	if fields := validateUpdate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Некорректные данные", fields)
		return
	}

	lead, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректный идентификатор")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось получить статистику")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Export handles GET /api/admin/leads/export and streams a CSV attachment.
func (h *Handler) Export(c *gin.Context) {
	filters, err := filtersFromQuery(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	filters.Limit = 0
	filters.Offset = 0

	filename := fmt.Sprintf("leads_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := h.service.ExportCSV(c.Request.Context(), filters, c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось выгрузить заявки")
		return
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrLeadNotFound):
		response.Error(c, http.StatusNotFound, "Заявка не найдена")
	default:
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}

func validateUpdate(req UpdateRequest) map[string][]string {
	if req.Status == "" {
		return map[string][]string{"status": {"Обязательное поле"}}
	}
	for _, s := range domain.ValidLeadStatuses() {
		if req.Status == s {
			return nil
		}
	}
	return map[string][]string{"status": {"Недопустимый статус"}}
}

func filtersFromQuery(c *gin.Context) (repository.LeadFilters, error) {
	f := repository.LeadFilters{
		Status:      c.Query("status"),
		ProductType: c.Query("product_type"),
		Language:    c.Query("language"),
		Search:      c.Query("search"),
		Ordering:    c.Query("ordering"),
		Limit:       intQuery(c, "limit", 50),
		Offset:      intQuery(c, "offset", 0),
	}

	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		return f, errors.New("Некорректная дата начала (ожидается ГГГГ-ММ-ДД)")
	}
	f.StartDate = start

	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		return f, errors.New("Некорректная дата окончания (ожидается ГГГГ-ММ-ДД)")
	}
	if end != nil {
		e := end.Add(24*time.Hour - time.Nanosecond)
		f.EndDate = &e
	}

	return f, nil
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
