package service

import (
	"testing"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommunityRepository 是 CommunityRepository 接口的模拟实现
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) AdminListPosts(q model.PostQuery) ([]model.Post, int, error) {
	args := m.Called(q)
	return args.Get(0).([]model.Post), args.Int(1), args.Error(2)
}

func (m *MockCommunityRepository) ListVisiblePosts(q model.PostQuery) ([]model.Post, int, error) {
	args := m.Called(q)
	return args.Get(0).([]model.Post), args.Int(1), args.Error(2)
}

func (m *MockCommunityRepository) GetPostStatus(id int) (*int, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockCommunityRepository) SoftDeletePost(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommunityRepository) CreatePost(in *model.CreatePostInput) (int, error) {
	args := m.Called(in)
	return args.Int(0), args.Error(1)
}

func (m *MockCommunityRepository) ListTopics() ([]model.Topic, error) {
	args := m.Called()
	return args.Get(0).([]model.Topic), args.Error(1)
}

// TestDeletePost 测试帖子删除的幂等行为
func TestDeletePost(t *testing.T) {
	mockRepo := new(MockCommunityRepository)
	service := NewCommunityService(mockRepo)

	// 正常帖子走软删除
	normal := 1
	mockRepo.On("GetPostStatus", 1).Return(&normal, nil)
	mockRepo.On("SoftDeletePost", 1).Return(nil)
	assert.NoError(t, service.DeletePost(1))

	// 已删除的帖子直接成功，不再更新
	deleted := 0
	mockRepo.On("GetPostStatus", 2).Return(&deleted, nil)
	assert.NoError(t, service.DeletePost(2))
	mockRepo.AssertNotCalled(t, "SoftDeletePost", 2)

	// 不存在的帖子返回 404 语义错误
	mockRepo.On("GetPostStatus", 404).Return(nil, nil)
	err := service.DeletePost(404)
	assert.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrResourceNotFound, appErr.Code)
}

// TestCreatePost 测试发帖内容必填
func TestCreatePost(t *testing.T) {
	mockRepo := new(MockCommunityRepository)
	service := NewCommunityService(mockRepo)

	_, err := service.CreatePost(&model.CreatePostInput{UserID: 1, Content: "   "})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "内容不能为空")

	mockRepo.On("CreatePost", mock.AnythingOfType("*model.CreatePostInput")).Return(9, nil)
	id, err := service.CreatePost(&model.CreatePostInput{UserID: 1, Content: " 今天回收了三个纸箱 "})
	assert.NoError(t, err)
	assert.Equal(t, 9, id)
}
