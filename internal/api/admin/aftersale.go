package admin

import (
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AfterSaleHandler 售后工单管理
type AfterSaleHandler struct {
	afterSaleService *service.AfterSaleService
}

func NewAfterSaleHandler(afterSaleService *service.AfterSaleService) *AfterSaleHandler {
	return &AfterSaleHandler{afterSaleService}
}

func (h *AfterSaleHandler) GetAfterSales(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.AfterSaleQuery{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		Type:      c.Query("type"),
		DateStart: c.Query("date_start"),
		DateEnd:   c.Query("date_end"),
		Page:      p.Page,
		PerPage:   p.PerPage,
	}

	items, total, stats, err := h.afterSaleService.ListAfterSales(q)
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
