package mp

import (
	"net/http"
	"strconv"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService}
}

// GetOrders 当前用户的订单列表，可按状态筛选
func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	orders, err := h.orderService.ListUserOrders(userID, c.Query("status"))
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CreateOrder 预约上门回收
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input struct {
		UserID          int    `json:"user_id"`
		CategoryID      int    `json:"category_id"`
		EstimatedWeight string `json:"estimated_weight"`
		AppointmentDate string `json:"appointment_date"`
		TimeSlot        string `json:"time_slot"`
		AddressID       *int   `json:"address_id"`
		Remark          string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}

	userID, ok := resolveUserID(c, input.UserID)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	if input.CategoryID == 0 || input.AppointmentDate == "" || input.TimeSlot == "" {
		errors.HandleError(c, errors.New(errors.ErrValidation, "缺少必填参数"))
		return
	}

	if input.EstimatedWeight == "" {
		input.EstimatedWeight = "5-10kg"
	}

	orderID, orderNo, err := h.orderService.CreateOrder(&model.CreateOrderInput{
		UserID:          userID,
		CategoryID:      input.CategoryID,
		EstimatedWeight: input.EstimatedWeight,
		AppointmentDate: input.AppointmentDate,
		TimeSlot:        input.TimeSlot,
		AddressID:       input.AddressID,
		Remark:          input.Remark,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"order_id": orderID,
		"order_no": orderNo,
		"message":  "预约成功",
	})
}

// CancelOrder 取消待上门的订单
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的订单ID"))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	if err := h.orderService.CancelOrder(orderID, userID); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "订单已取消",
	})
}
