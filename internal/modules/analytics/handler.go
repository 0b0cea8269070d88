package analytics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

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

// Track handles POST /api/analytics/track from the public frontend.
func (h *Handler) Track(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректные данные события")
		return
	}

	if fields := validator.Validate(req); len(fields) > 0 {
		details := gin.H{}
		for field, tags := range fields {
			msgs := make([]string, 0, len(tags))
			for _, tag := range tags {
				msgs = append(msgs, fmt.Sprintf("Недопустимое значение (%s)", tag))
			}
			details[field] = msgs
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "Некорректные данные события", details)
		return
	}

	event, err := h.service.Track(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrUnknownEventType) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "Некорректные данные события", gin.H{
				"event_type": []string{"Неизвестный тип события"},
			})
			return
		}
		response.Error(c, http.StatusInternalServerError, "Не удалось сохранить событие")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event_id": event.ID})
}

// Dashboard handles GET /api/admin/analytics/dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	data, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось собрать статистику")
		return
	}
	response.Success(c, http.StatusOK, data)
}

// Report handles GET /api/admin/analytics/report with filter query params.
func (h *Handler) Report(c *gin.Context) {
	f := repository.EventFilters{
		EventType: c.Query("event_type"),
		Language:  c.Query("language"),
		Page:      c.Query("page"),
	}

	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректная дата начала (ожидается ГГГГ-ММ-ДД)")
		return
	}
	f.StartDate = start

	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректная дата окончания (ожидается ГГГГ-ММ-ДД)")
		return
	}
	if end != nil {
		e := end.Add(24*time.Hour - time.Nanosecond)
		f.EndDate = &e
	}

	data, err := h.service.Report(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Не удалось собрать отчет")
		return
	}
	response.Success(c, http.StatusOK, data)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
