package mysql

import (
	"database/sql"
	"encoding/json"
	"strings"

	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

type communityRepository struct {
	db *sql.DB
}

// NewCommunityRepository 创建一个新的 communityRepository 实例
func NewCommunityRepository(db *sql.DB) *communityRepository {
	return &communityRepository{db: db}
}

const postBaseFrom = ` FROM community_post p
	JOIN user u ON p.user_id = u.id
	LEFT JOIN community_topic t ON p.topic_id = t.id `

func (r *communityRepository) listPosts(where []string, args []interface{}, q model.PostQuery) ([]model.Post, int, error) {
	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	err := r.db.QueryRow("SELECT COUNT(*)"+postBaseFrom+whereSQL, args...).Scan(&total)
	if err != nil {
		util.Logger.Error("统计帖子总数失败", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT p.id, p.user_id, p.topic_id, p.content, p.image_urls,
		p.like_count, p.comment_count, p.status, p.created_at,
		u.nickname, u.avatar_url, t.name` +
		postBaseFrom + whereSQL + " ORDER BY p.created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询帖子列表失败", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	posts := make([]model.Post, 0, q.PerPage)
	for rows.Next() {
		var p model.Post
		err := rows.Scan(&p.ID, &p.UserID, &p.TopicID, &p.Content, &p.ImageURLs,
			&p.LikeCount, &p.CommentCount, &p.Status, &p.CreatedAt,
			&p.Nickname, &p.AvatarURL, &p.TopicName)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}

// AdminListPosts 后台帖子列表，支持状态/话题/关键字筛选
func (r *communityRepository) AdminListPosts(q model.PostQuery) ([]model.Post, int, error) {
	where := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if q.Status != "" {
		where = append(where, "p.status = ?")
		args = append(args, q.Status)
	}
	if q.TopicID != "" {
		where = append(where, "p.topic_id = ?")
		args = append(args, q.TopicID)
	}
	if q.Search != "" {
		where = append(where, "(p.content LIKE ? OR u.nickname LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like)
	}
	return r.listPosts(where, args, q)
}

// ListVisiblePosts 小程序端帖子列表，只返回 status=1 的帖子
func (r *communityRepository) ListVisiblePosts(q model.PostQuery) ([]model.Post, int, error) {
	where := []string{"p.status = 1"}
	args := make([]interface{}, 0, 2)

	if q.TopicID != "" {
		where = append(where, "p.topic_id = ?")
		args = append(args, q.TopicID)
	}
	if q.Search != "" {
		where = append(where, "p.content LIKE ?")
		args = append(args, "%"+q.Search+"%")
	}
	return r.listPosts(where, args, q)
}

// GetPostStatus 返回帖子状态，不存在时返回 nil
func (r *communityRepository) GetPostStatus(id int) (*int, error) {
	var status int
	err := r.db.QueryRow("SELECT status FROM community_post WHERE id = ?", id).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}

// SoftDeletePost 逻辑删除帖子，status 置为 0
func (r *communityRepository) SoftDeletePost(id int) error {
	_, err := r.db.Exec("UPDATE community_post SET status = 0 WHERE id = ?", id)
	if err != nil {
		util.Logger.Error("删除帖子失败", zap.Int("post_id", id), zap.Error(err))
	}
	return err
}

// CreatePost 创建帖子，图片列表序列化成 JSON 存储，返回新帖子ID
func (r *communityRepository) CreatePost(in *model.CreatePostInput) (int, error) {
	var imageURLs *string
	if len(in.Images) > 0 {
		if encoded, err := json.Marshal(in.Images); err == nil {
			s := string(encoded)
			imageURLs = &s
		}
	}

	result, err := r.db.Exec(
		"INSERT INTO community_post (user_id, topic_id, content, image_urls) VALUES (?, ?, ?, ?)",
		in.UserID, in.TopicID, in.Content, imageURLs,
	)
	if err != nil {
		util.Logger.Error("创建帖子失败", zap.Int("user_id", in.UserID), zap.Error(err))
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// ListTopics 返回全部话题，按 sort_order 排序，NULL 排在最后
func (r *communityRepository) ListTopics() ([]model.Topic, error) {
	rows, err := r.db.Query(
		"SELECT id, name, description, is_hot, sort_order FROM community_topic ORDER BY sort_order IS NULL, sort_order, id",
	)
	if err != nil {
		util.Logger.Error("查询话题列表失败", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	topics := make([]model.Topic, 0, 8)
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.IsHot, &t.SortOrder); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}
