package admin

import (
	"net/http"
	"strconv"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// OrderHandler 后台回收订单管理
type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService}
}

// GetOrders 订单列表，支持订单号/用户搜索、状态和预约日期筛选
func (h *OrderHandler) GetOrders(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.OrderQuery{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		DateStart: c.Query("date_start"),
		DateEnd:   c.Query("date_end"),
		Page:      p.Page,
		PerPage:   p.PerPage,
	}

	items, total, stats, err := h.orderService.ListOrders(q)
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

func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的订单ID"))
		return
	}

	detail, err := h.orderService.GetOrderDetail(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
