package service

import (
	"testing"

	"recycle-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAfterSaleRepository 是 AfterSaleRepository 接口的模拟实现
type MockAfterSaleRepository struct {
	mock.Mock
}

func (m *MockAfterSaleRepository) List(q model.AfterSaleQuery) ([]model.AfterSale, int, *model.AfterSaleStats, error) {
	args := m.Called(q)
	if args.Get(2) == nil {
		return args.Get(0).([]model.AfterSale), args.Int(1), nil, args.Error(3)
	}
	return args.Get(0).([]model.AfterSale), args.Int(1), args.Get(2).(*model.AfterSaleStats), args.Error(3)
}

// TestListAfterSalesResolveRate 测试解决率保留一位小数
func TestListAfterSalesResolveRate(t *testing.T) {
	mockRepo := new(MockAfterSaleRepository)
	service := NewAfterSaleService(mockRepo)

	stats := &model.AfterSaleStats{TotalTickets: 3, Resolved: 2}
	mockRepo.On("List", mock.AnythingOfType("model.AfterSaleQuery")).
		Return([]model.AfterSale{}, 3, stats, nil)

	_, _, got, err := service.ListAfterSales(model.AfterSaleQuery{})
	assert.NoError(t, err)
	assert.Equal(t, 66.7, got.ResolveRate)
}

// TestListAfterSalesEmpty 测试没有工单时解决率保持为 0
func TestListAfterSalesEmpty(t *testing.T) {
	mockRepo := new(MockAfterSaleRepository)
	service := NewAfterSaleService(mockRepo)

	stats := &model.AfterSaleStats{}
	mockRepo.On("List", mock.AnythingOfType("model.AfterSaleQuery")).
		Return([]model.AfterSale{}, 0, stats, nil)

	_, _, got, err := service.ListAfterSales(model.AfterSaleQuery{})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, got.ResolveRate)
}
