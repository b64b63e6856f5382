package admin

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	util.InitLogger("error")
	os.Exit(m.Run())
}

// MockCategoryRepository 是 CategoryRepository 接口的模拟实现
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(q model.CategoryQuery) ([]model.Category, int, error) {
	args := m.Called(q)
	return args.Get(0).([]model.Category), args.Int(1), args.Error(2)
}

func (m *MockCategoryRepository) FindByID(id int) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(c *model.Category) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(c *model.Category) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) PointsPerKg(id int) (*int, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func categoryRouter(repo *MockCategoryRepository) *gin.Engine {
	handler := NewCategoryHandler(service.NewCategoryService(repo))
	r := gin.New()
	r.GET("/api/categories", handler.GetCategories)
	r.POST("/api/categories", handler.CreateCategory)
	return r
}

// TestGetCategoriesBadPagination 测试非整数分页参数返回 400
func TestGetCategoriesBadPagination(t *testing.T) {
	r := categoryRouter(new(MockCategoryRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/categories?page=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

// TestCreateCategoryNameRequired 测试品类名称必填
func TestCreateCategoryNameRequired(t *testing.T) {
	r := categoryRouter(new(MockCategoryRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
}

// TestCreateCategoryCreated 测试创建成功返回 201 和入库数据
func TestCreateCategoryCreated(t *testing.T) {
	repo := new(MockCategoryRepository)
	repo.On("Create", mock.AnythingOfType("*model.Category")).Run(func(args mock.Arguments) {
		args.Get(0).(*model.Category).ID = 1
	}).Return(nil)
	repo.On("FindByID", 1).Return(&model.Category{ID: 1, Name: "玻璃瓶"}, nil)

	r := categoryRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/categories", strings.NewReader(`{"name":"玻璃瓶"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"category_code":"CAT001"`)
	assert.Contains(t, w.Body.String(), `"points_per_kg":null`)
}
