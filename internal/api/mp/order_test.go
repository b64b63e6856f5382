package mp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"recycle-backend/config"
	"recycle-backend/internal/middleware"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository 是 OrderRepository 接口的模拟实现
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(q model.OrderQuery) ([]model.Order, int, *model.OrderStats, error) {
	args := m.Called(q)
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

// stubCategoryRepo 下单估算积分用，这里不会被调用
type stubCategoryRepo struct{}

func (stubCategoryRepo) List(q model.CategoryQuery) ([]model.Category, int, error) {
	return nil, 0, nil
}
func (stubCategoryRepo) FindByID(id int) (*model.Category, error) { return nil, nil }
func (stubCategoryRepo) Create(c *model.Category) error           { return nil }
func (stubCategoryRepo) Update(c *model.Category) error           { return nil }
func (stubCategoryRepo) Delete(id int) error                      { return nil }
func (stubCategoryRepo) PointsPerKg(id int) (*int, error)         { return nil, nil }

func orderRouter(repo *MockOrderRepository) *gin.Engine {
	handler := NewOrderHandler(service.NewOrderService(repo, stubCategoryRepo{}))
	r := gin.New()
	mpRoutes := r.Group("/api/mp")
	mpRoutes.Use(middleware.IdentityMiddleware())
	mpRoutes.POST("/orders/:id/cancel", handler.CancelOrder)
	return r
}

// TestCancelOrderNoIdentity 测试没有身份时拒绝取消
func TestCancelOrderNoIdentity(t *testing.T) {
	r := orderRouter(new(MockOrderRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/orders/5/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestCancelOrderWithUserIDParam 测试显式 user_id 参数的兼容路径
func TestCancelOrderWithUserIDParam(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Cancel", 5, 9).Return(nil)
	r := orderRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/orders/5/cancel?user_id=9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "订单已取消")
	repo.AssertExpectations(t)
}

// TestCancelOrderWithToken 测试令牌身份优先于 user_id 参数
func TestCancelOrderWithToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := util.GenerateToken(7)
	assert.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Cancel", 5, 7).Return(nil)
	r := orderRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/orders/5/cancel?user_id=9", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

// TestCancelOrderBadToken 测试无效令牌直接拒绝
func TestCancelOrderBadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := orderRouter(new(MockOrderRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/orders/5/cancel", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "无效或过期的令牌")
}
