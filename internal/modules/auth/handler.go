package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"paradise/internal/pkg/response"
	"paradise/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Некорректные данные")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Некорректные данные", fields)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Неверный email или пароль")
		case errors.Is(err, ErrUserInactive):
			response.Error(c, http.StatusForbidden, "Учетная запись отключена")
		default:
			response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Me handles GET /api/admin/me for the authenticated operator.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Не авторизован")
		return
	}

	view, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusUnauthorized, "Не авторизован")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	response.Success(c, http.StatusOK, view)
}
