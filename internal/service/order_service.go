package service

import (
	"fmt"
	"time"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

// OrderService 处理回收订单的业务逻辑
type OrderService struct {
	orderRepo    interfaces.OrderRepository
	categoryRepo interfaces.CategoryRepository
}

// NewOrderService 创建一个新的 OrderService 实例
func NewOrderService(orderRepo interfaces.OrderRepository, categoryRepo interfaces.CategoryRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, categoryRepo: categoryRepo}
}

func joinedAddress(o model.Order) *string {
	addr := util.JoinAddress(o.Province, o.City, o.District, o.AddressDetail)
	if addr == "" {
		return nil
	}
	return &addr
}

func carbonOrZero(c *float64) float64 {
	if c == nil {
		return 0.0
	}
	return *c
}

// ListOrders 后台订单列表：分页订单 + 状态统计 + 批量取回的品类明细
func (s *OrderService) ListOrders(q model.OrderQuery) ([]model.AdminOrderItem, int, *model.OrderStats, error) {
	orders, total, stats, err := s.orderRepo.List(q)
	if err != nil {
		return nil, 0, nil, err
	}

	orderIDs := make([]int, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}
	itemsByOrder, err := s.orderRepo.ItemsByOrderIDs(orderIDs)
	if err != nil {
		return nil, 0, nil, err
	}

	items := make([]model.AdminOrderItem, 0, len(orders))
	for _, o := range orders {
		orderItems := itemsByOrder[o.ID]
		categories := make([]string, 0, len(orderItems))
		for _, it := range orderItems {
			categories = append(categories, it.CategoryName)
		}
		var estimatedWeight *string
		if len(orderItems) > 0 {
			estimatedWeight = orderItems[0].EstimatedWeight
		}

		items = append(items, model.AdminOrderItem{
			ID:              o.ID,
			OrderNo:         o.OrderNo,
			Status:          o.Status,
			StatusLabel:     model.OrderStatusLabel(o.Status),
			UserName:        o.UserName,
			UserPhone:       o.UserPhone,
			Categories:      categories,
			EstimatedWeight: estimatedWeight,
			AppointmentDate: util.FormatDate(o.AppointmentDate),
			TimeSlot:        o.TimeSlot,
			Address:         joinedAddress(o),
			CollectorName:   o.CollectorName,
			CollectorPhone:  o.CollectorPhone,
			EstimatedPoints: o.EstimatedPoints,
			ActualPoints:    o.ActualPoints,
			CarbonSavedKg:   carbonOrZero(o.CarbonSavedKg),
			CreatedAt:       util.FormatDateTime(o.CreatedAt),
		})
	}
	return items, total, stats, nil
}

// GetOrderDetail 后台订单详情
func (s *OrderService) GetOrderDetail(id int) (*model.OrderDetailResponse, error) {
	o, err := s.orderRepo.FindDetail(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errors.New(errors.ErrOrderNotFound, "Order not found")
	}

	itemRows, err := s.orderRepo.ItemsByOrderID(id)
	if err != nil {
		return nil, err
	}
	items := make([]model.OrderDetailItem, 0, len(itemRows))
	for _, it := range itemRows {
		items = append(items, model.OrderDetailItem{
			CategoryID:      it.CategoryID,
			CategoryName:    it.CategoryName,
			EstimatedWeight: it.EstimatedWeight,
			ActualWeight:    it.ActualWeight,
			PointsEarned:    it.PointsEarned,
		})
	}

	var collector *model.OrderCollectorInfo
	if o.CollectorID != nil {
		collector = &model.OrderCollectorInfo{
			ID:    *o.CollectorID,
			Name:  o.CollectorName,
			Phone: o.CollectorPhone,
		}
	}

	return &model.OrderDetailResponse{
		ID:          o.ID,
		OrderNo:     o.OrderNo,
		Status:      o.Status,
		StatusLabel: model.OrderStatusLabel(o.Status),
		User: model.OrderUserInfo{
			ID:       o.UserID,
			Nickname: o.UserName,
			Phone:    o.UserPhone,
		},
		AppointmentDate: util.FormatDate(o.AppointmentDate),
		TimeSlot:        o.TimeSlot,
		Address:         joinedAddress(*o),
		Collector:       collector,
		EstimatedPoints: o.EstimatedPoints,
		ActualPoints:    o.ActualPoints,
		CarbonSavedKg:   carbonOrZero(o.CarbonSavedKg),
		Remark:          o.Remark,
		PhotoURLs:       model.DecodeImageList(o.PhotoURLs),
		CreatedAt:       util.FormatDateTime(o.CreatedAt),
		UpdatedAt:       util.FormatDateTime(o.UpdatedAt),
		CompletedAt:     util.FormatDateTime(o.CompletedAt),
		Items:           items,
	}, nil
}

// ListUserOrders 小程序端订单列表，品类拼成逗号分隔字符串
func (s *OrderService) ListUserOrders(userID int, status string) ([]model.MPOrderItem, error) {
	orders, err := s.orderRepo.ListByUser(userID, status)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]int, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}
	itemsByOrder, err := s.orderRepo.ItemsByOrderIDs(orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]model.MPOrderItem, 0, len(orders))
	for _, o := range orders {
		orderItems := itemsByOrder[o.ID]
		categories := ""
		for i, it := range orderItems {
			if i > 0 {
				categories += ", "
			}
			categories += it.CategoryName
		}
		var estimatedWeight *string
		if len(orderItems) > 0 {
			estimatedWeight = orderItems[0].EstimatedWeight
		}

		result = append(result, model.MPOrderItem{
			ID:              o.ID,
			OrderNo:         o.OrderNo,
			Status:          o.Status,
			StatusLabel:     model.OrderStatusLabel(o.Status),
			Categories:      categories,
			EstimatedWeight: estimatedWeight,
			AppointmentDate: util.FormatDate(o.AppointmentDate),
			TimeSlot:        o.TimeSlot,
			CollectorName:   o.CollectorName,
			CollectorPhone:  o.CollectorPhone,
			EstimatedPoints: o.EstimatedPoints,
			ActualPoints:    o.ActualPoints,
			CarbonSavedKg:   carbonOrZero(o.CarbonSavedKg),
			CreatedAt:       util.FormatMinute(o.CreatedAt),
			CompletedAt:     util.FormatMinute(o.CompletedAt),
		})
	}
	return result, nil
}

// CreateOrder 小程序端下单：生成订单号、按品类单价估算积分、写入订单及明细
func (s *OrderService) CreateOrder(in *model.CreateOrderInput) (int, string, error) {
	if in.CategoryID == 0 || in.AppointmentDate == "" || in.TimeSlot == "" {
		return 0, "", errors.New(errors.ErrValidation, "缺少必填参数")
	}
	if in.EstimatedWeight == "" {
		in.EstimatedWeight = "5-10kg"
	}

	// 订单号：日期 + 毫秒时间戳尾数
	now := time.Now()
	orderNo := now.Format("20060102") + fmt.Sprintf("%05d", now.UnixMilli()%100000)

	pointsPerKg := 10
	points, err := s.categoryRepo.PointsPerKg(in.CategoryID)
	if err != nil {
		return 0, "", err
	}
	if points != nil {
		pointsPerKg = *points
	}
	// 预估按 5kg 计
	estimatedPoints := pointsPerKg * 5

	orderID, err := s.orderRepo.Create(in, orderNo, estimatedPoints)
	if err != nil {
		return 0, "", err
	}

	util.Logger.Info("订单创建成功",
		zap.Int("order_id", orderID),
		zap.String("order_no", orderNo),
		zap.Int("user_id", in.UserID))
	return orderID, orderNo, nil
}

// CancelOrder 取消待上门订单
func (s *OrderService) CancelOrder(orderID, userID int) error {
	return s.orderRepo.Cancel(orderID, userID)
}
