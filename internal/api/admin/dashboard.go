package admin

import (
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	statsService *service.StatsService
}

func NewDashboardHandler(statsService *service.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService}
}

// GetDashboard 首页概览数字
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.statsService.DashboardSummary()
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
