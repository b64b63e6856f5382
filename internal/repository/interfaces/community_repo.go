package interfaces

import "recycle-backend/internal/model"

// CommunityRepository 定义了社区相关的数据库操作接口
type CommunityRepository interface {
	AdminListPosts(q model.PostQuery) ([]model.Post, int, error)
	ListVisiblePosts(q model.PostQuery) ([]model.Post, int, error)
	GetPostStatus(id int) (*int, error)
	SoftDeletePost(id int) error
	CreatePost(in *model.CreatePostInput) (int, error)
	ListTopics() ([]model.Topic, error)
}
