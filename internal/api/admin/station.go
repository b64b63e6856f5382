package admin

import (
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StationHandler 回收网点管理
type StationHandler struct {
	stationService *service.StationService
}

func NewStationHandler(stationService *service.StationService) *StationHandler {
	return &StationHandler{stationService}
}

func (h *StationHandler) GetStations(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.StationQuery{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		StatusID: c.Query("status_id"),
		Page:     p.Page,
		PerPage:  p.PerPage,
	}

	items, total, stats, err := h.stationService.ListStations(q)
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

func (h *StationHandler) CreateStation(c *gin.Context) {
	var input service.StationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}

	item, err := h.stationService.CreateStation(input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}
