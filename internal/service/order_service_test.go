package service

import (
	"testing"
	"time"

	"recycle-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository 是 OrderRepository 接口的模拟实现
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(q model.OrderQuery) ([]model.Order, int, *model.OrderStats, error) {
	args := m.Called(q)
	if args.Get(2) == nil {
		return args.Get(0).([]model.Order), args.Int(1), nil, args.Error(3)
	}
	return args.Get(0).([]model.Order), args.Int(1), args.Get(2).(*model.OrderStats), args.Error(3)
}

func (m *MockOrderRepository) ItemsByOrderIDs(orderIDs []int) (map[int][]model.OrderItem, error) {
	args := m.Called(orderIDs)
	return args.Get(0).(map[int][]model.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) FindDetail(id int) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) ItemsByOrderID(orderID int) ([]model.OrderItem, error) {
	args := m.Called(orderID)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID int, status string) ([]model.Order, error) {
	args := m.Called(userID, status)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(in *model.CreateOrderInput, orderNo string, estimatedPoints int) (int, error) {
	args := m.Called(in, orderNo, estimatedPoints)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) Cancel(orderID, userID int) error {
	args := m.Called(orderID, userID)
	return args.Error(0)
}

// TestCreateOrderValidation 测试下单必填参数
func TestCreateOrderValidation(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewOrderService(orderRepo, categoryRepo)

	_, _, err := service.CreateOrder(&model.CreateOrderInput{UserID: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "缺少必填参数")
}

// TestCreateOrder 测试订单号格式和积分估算
func TestCreateOrder(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewOrderService(orderRepo, categoryRepo)

	points := 8
	categoryRepo.On("PointsPerKg", 2).Return(&points, nil)
	orderRepo.On("Create", mock.AnythingOfType("*model.CreateOrderInput"), mock.AnythingOfType("string"), 40).
		Return(11, nil)

	in := &model.CreateOrderInput{
		UserID:          1,
		CategoryID:      2,
		AppointmentDate: "2026-09-02",
		TimeSlot:        "09:00-11:00",
	}
	orderID, orderNo, err := service.CreateOrder(in)
	assert.NoError(t, err)
	assert.Equal(t, 11, orderID)
	// 订单号 = 8位日期 + 5位毫秒尾数
	assert.Len(t, orderNo, 13)
	assert.Equal(t, time.Now().Format("20060102"), orderNo[:8])
	// 未填重量时使用默认档位
	assert.Equal(t, "5-10kg", in.EstimatedWeight)
}

// TestCreateOrderDefaultPoints 测试品类没有配置单价时按每公斤10分估算
func TestCreateOrderDefaultPoints(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewOrderService(orderRepo, categoryRepo)

	categoryRepo.On("PointsPerKg", 3).Return(nil, nil)
	orderRepo.On("Create", mock.AnythingOfType("*model.CreateOrderInput"), mock.AnythingOfType("string"), 50).
		Return(12, nil)

	_, _, err := service.CreateOrder(&model.CreateOrderInput{
		UserID:          1,
		CategoryID:      3,
		AppointmentDate: "2026-09-02",
		TimeSlot:        "14:00-16:00",
	})
	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}
