package admin

import (
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CollectorHandler 回收员管理
type CollectorHandler struct {
	collectorService *service.CollectorService
}

func NewCollectorHandler(collectorService *service.CollectorService) *CollectorHandler {
	return &CollectorHandler{collectorService}
}

func (h *CollectorHandler) GetCollectors(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.CollectorQuery{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Page:    p.Page,
		PerPage: p.PerPage,
	}

	items, total, stats, err := h.collectorService.ListCollectors(q)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
		"items":    items,
		"stats":    stats,
	})
}
