package service

import (
	"testing"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(q model.UserQuery) ([]model.User, int, error) {
	args := m.Called(q)
	return args.Get(0).([]model.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) FindDetail(id int) (*model.UserDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserDetail), args.Error(1)
}

func (m *MockUserRepository) FindProfile(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(phone string) (*model.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetStatus(id int) (*int, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(id, status int) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockUserRepository) Ranking(byCarbon bool, limit int) ([]model.RankingEntry, error) {
	args := m.Called(byCarbon, limit)
	return args.Get(0).([]model.RankingEntry), args.Error(1)
}

func (m *MockUserRepository) ListLevels() ([]model.UserLevel, error) {
	args := m.Called()
	return args.Get(0).([]model.UserLevel), args.Error(1)
}

// TestToggleStatus 测试启用/禁用切换
func TestToggleStatus(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	// 正常用户被禁用
	active := 1
	mockRepo.On("GetStatus", 1).Return(&active, nil)
	mockRepo.On("UpdateStatus", 1, 0).Return(nil)

	label, err := service.ToggleStatus(1)
	assert.NoError(t, err)
	assert.Equal(t, "已禁用", label)

	// 禁用用户被恢复
	disabled := 0
	mockRepo.On("GetStatus", 2).Return(&disabled, nil)
	mockRepo.On("UpdateStatus", 2, 1).Return(nil)

	label, err = service.ToggleStatus(2)
	assert.NoError(t, err)
	assert.Equal(t, "正常", label)

	mockRepo.AssertExpectations(t)
}

// TestToggleStatusUserNotFound 测试切换不存在的用户
func TestToggleStatusUserNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("GetStatus", 999).Return(nil, nil)

	_, err := service.ToggleStatus(999)
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrUserNotFound, appErr.Code)
}

// TestRanking 测试排行榜名次从 1 开始递增
func TestRanking(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	entries := []model.RankingEntry{
		{UserID: 3, Score: 300},
		{UserID: 1, Score: 200},
		{UserID: 2, Score: 100},
	}
	mockRepo.On("Ranking", true, 20).Return(entries, nil)

	result, err := service.Ranking("carbon", 20)
	assert.NoError(t, err)
	assert.Len(t, result, 3)
	for i, entry := range result {
		assert.Equal(t, i+1, entry.Rank)
	}
}

// TestLogin 测试手机号登录
func TestLogin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	// 未注册的手机号
	mockRepo.On("FindByPhone", "13800000000").Return(nil, nil)
	_, _, err := service.Login("13800000000")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "用户不存在")

	// 被禁用的用户
	mockRepo.On("FindByPhone", "13800000001").Return(&model.User{ID: 2, Status: 0}, nil)
	_, _, err = service.Login("13800000001")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "用户已禁用")

	// 正常登录
	mockRepo.On("FindByPhone", "13800000002").Return(&model.User{ID: 3, Status: 1}, nil)
	token, profile, err := service.Login("13800000002")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, profile.ID)
}

// TestGetUserDetailNotFound 测试查询不存在的用户详情
func TestGetUserDetailNotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	mockRepo.On("FindDetail", 404).Return(nil, nil)

	_, err := service.GetUserDetail(404)
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrUserNotFound, appErr.Code)
}
