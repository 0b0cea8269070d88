package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type checkResult struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type Handler struct {
	db      *gorm.DB
	enabled bool
}

func NewHandler(db *gorm.DB, enabled bool) *Handler {
	return &Handler{db: db, enabled: enabled}
}

// Check handles GET /api/health. It reports per-dependency detail and answers
// 503 whenever any check fails or the endpoint is administratively disabled.
func (h *Handler) Check(c *gin.Context) {
	if !h.enabled {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "disabled",
		})
		return
	}

	checks := gin.H{}
	healthy := true

	if err := h.pingDB(c); err != nil {
		checks["database"] = checkResult{Status: "error", Detail: err.Error()}
		healthy = false
	} else {
		checks["database"] = checkResult{Status: "ok"}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "error"
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

func (h *Handler) pingDB(c *gin.Context) error {
	var one int
	return h.db.WithContext(c.Request.Context()).Raw("SELECT 1").Scan(&one).Error
}
