package service

import (
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"
)

// CommunityService 处理社区帖子与话题的业务逻辑
type CommunityService struct {
	repo interfaces.CommunityRepository
}

// NewCommunityService 创建一个新的 CommunityService 实例
func NewCommunityService(repo interfaces.CommunityRepository) *CommunityService {
	return &CommunityService{repo}
}

func postUser(p model.Post) model.PostUser {
	return model.PostUser{
		ID:        p.UserID,
		Nickname:  p.Nickname,
		AvatarURL: p.AvatarURL,
	}
}

func postTopic(p model.Post) *model.PostTopic {
	if p.TopicID == nil {
		return nil
	}
	return &model.PostTopic{ID: *p.TopicID, Name: p.TopicName}
}

// AdminListPosts 后台帖子列表
func (s *CommunityService) AdminListPosts(q model.PostQuery) ([]model.AdminPostItem, int, error) {
	posts, total, err := s.repo.AdminListPosts(q)
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.AdminPostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, model.AdminPostItem{
			ID:           p.ID,
			Content:      p.Content,
			Images:       model.DecodeImageList(p.ImageURLs),
			LikeCount:    p.LikeCount,
			CommentCount: p.CommentCount,
			Status:       p.Status,
			StatusLabel:  model.PostStatusLabel(p.Status),
			CreatedAt:    util.FormatDateTime(p.CreatedAt),
			User:         postUser(p),
			Topic:        postTopic(p),
		})
	}
	return items, total, nil
}

// ListVisiblePosts 小程序端帖子列表，时间只到分钟
func (s *CommunityService) ListVisiblePosts(q model.PostQuery) ([]model.MPPostItem, int, error) {
	posts, total, err := s.repo.ListVisiblePosts(q)
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.MPPostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, model.MPPostItem{
			ID:           p.ID,
			Content:      p.Content,
			Images:       model.DecodeImageList(p.ImageURLs),
			LikeCount:    p.LikeCount,
			CommentCount: p.CommentCount,
			CreatedAt:    util.FormatMinute(p.CreatedAt),
			User:         postUser(p),
			Topic:        postTopic(p),
		})
	}
	return items, total, nil
}

// DeletePost 逻辑删除帖子；已删除的帖子重复删除视为成功
func (s *CommunityService) DeletePost(id int) error {
	status, err := s.repo.GetPostStatus(id)
	if err != nil {
		return err
	}
	if status == nil {
		return errors.New(errors.ErrResourceNotFound, "Post not found")
	}
	if *status == 0 {
		return nil
	}
	return s.repo.SoftDeletePost(id)
}

// CreatePost 发帖，内容必填
func (s *CommunityService) CreatePost(in *model.CreatePostInput) (int, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return 0, errors.New(errors.ErrValidation, "内容不能为空")
	}
	return s.repo.CreatePost(in)
}

// ListTopics 话题列表
func (s *CommunityService) ListTopics() ([]model.Topic, error) {
	return s.repo.ListTopics()
}
