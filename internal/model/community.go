package model

import (
	"encoding/json"
	"time"
)

// Post 对应 community_post 表，联查用户与话题
type Post struct {
	ID           int
	UserID       int
	TopicID      *int
	Content      string
	ImageURLs    *string // JSON 数组原文
	LikeCount    *int
	CommentCount *int
	Status       int
	CreatedAt    *time.Time

	Nickname  *string
	AvatarURL *string
	TopicName *string
}

// Topic 对应 community_topic 表
type Topic struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsHot       bool    `json:"is_hot"`
	SortOrder   *int    `json:"sort_order"`
}

// PostQuery 帖子列表的筛选条件
type PostQuery struct {
	Search  string
	TopicID string
	Status  string
	Page    int
	PerPage int
}

// PostUser 帖子里嵌套的作者信息
type PostUser struct {
	ID        int     `json:"id"`
	Nickname  *string `json:"nickname"`
	AvatarURL *string `json:"avatar_url"`
}

// PostTopic 帖子里嵌套的话题信息
type PostTopic struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

// AdminPostItem 后台帖子列表行
type AdminPostItem struct {
	ID           int        `json:"id"`
	Content      string     `json:"content"`
	Images       []string   `json:"images"`
	LikeCount    *int       `json:"like_count"`
	CommentCount *int       `json:"comment_count"`
	Status       int        `json:"status"`
	StatusLabel  string     `json:"status_label"`
	CreatedAt    *string    `json:"created_at"`
	User         PostUser   `json:"user"`
	Topic        *PostTopic `json:"topic"`
}

// MPPostItem 小程序端帖子列表行
type MPPostItem struct {
	ID           int        `json:"id"`
	Content      string     `json:"content"`
	Images       []string   `json:"images"`
	LikeCount    *int       `json:"like_count"`
	CommentCount *int       `json:"comment_count"`
	CreatedAt    *string    `json:"created_at"`
	User         PostUser   `json:"user"`
	Topic        *PostTopic `json:"topic"`
}

// CreatePostInput 发帖参数
type CreatePostInput struct {
	UserID  int
	TopicID *int
	Content string
	Images  []string
}

// DecodeImageList 解析数据库里的 JSON 图片列表，解析失败或不是数组时返回 nil
func DecodeImageList(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var images []string
	if err := json.Unmarshal([]byte(*raw), &images); err != nil {
		return nil
	}
	return images
}
