package service

import (
	"testing"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

// TestCreateCategoryValidation 测试品类参数校验
func TestCreateCategoryValidation(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := NewCategoryService(mockRepo)

	// 名称必填
	_, err := service.CreateCategory(CategoryInput{Name: "  "})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	// points_per_kg 必须是整数
	_, err = service.CreateCategory(CategoryInput{Name: "废纸", PointsPerKg: "abc"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points_per_kg must be an integer")

	// JSON 小数也不行
	_, err = service.CreateCategory(CategoryInput{Name: "废纸", PointsPerKg: 12.5})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points_per_kg must be an integer")

	// sort_order 同样校验
	_, err = service.CreateCategory(CategoryInput{Name: "废纸", SortOrder: "x"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sort_order must be an integer")
}

// TestCreateCategory 测试创建成功后回读数据库默认值
func TestCreateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := NewCategoryService(mockRepo)

	points := 10
	mockRepo.On("Create", mock.AnythingOfType("*model.Category")).Run(func(args mock.Arguments) {
		args.Get(0).(*model.Category).ID = 5
	}).Return(nil)
	mockRepo.On("FindByID", 5).Return(&model.Category{ID: 5, Name: "玻璃瓶", PointsPerKg: &points}, nil)

	item, err := service.CreateCategory(CategoryInput{Name: "玻璃瓶", PointsPerKg: "10"})
	assert.NoError(t, err)
	assert.Equal(t, "CAT005", item.CategoryCode)
	assert.Equal(t, "玻璃瓶", item.Name)
	assert.Equal(t, 10, *item.PointsPerKg)
	mockRepo.AssertExpectations(t)
}

// TestDeleteCategory 测试删除不存在和被引用的品类
func TestDeleteCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := NewCategoryService(mockRepo)

	// 不存在
	mockRepo.On("FindByID", 404).Return(nil, nil)
	err := service.DeleteCategory(404)
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrResourceNotFound, appErr.Code)

	// 被订单明细引用
	mockRepo.On("FindByID", 1).Return(&model.Category{ID: 1, Name: "废纸"}, nil)
	mockRepo.On("Delete", 1).Return(errors.New(errors.ErrResourceInUse, "Category is in use and cannot be deleted"))
	err = service.DeleteCategory(1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Category is in use")
}
