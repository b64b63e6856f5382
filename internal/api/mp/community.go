package mp

import (
	"net/http"
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService}
}

// GetTopics 话题列表，按 sort_order 排序
func (h *CommunityHandler) GetTopics(c *gin.Context) {
	topics, err := h.communityService.ListTopics()
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": topics})
}

// GetPosts 帖子列表，只返回正常状态的帖子，每页最多 20 条
func (h *CommunityHandler) GetPosts(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 20)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.PostQuery{
		Search:  c.Query("search"),
		TopicID: c.Query("topic_id"),
		Page:    p.Page,
		PerPage: p.PerPage,
	}

	items, total, err := h.communityService.ListVisiblePosts(q)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
		"items":    items,
	})
}

// CreatePost 发帖，images 和 image_urls 两种字段名都接受
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var input struct {
		UserID    int      `json:"user_id"`
		TopicID   *int     `json:"topic_id"`
		Content   string   `json:"content"`
		Images    []string `json:"images"`
		ImageURLs []string `json:"image_urls"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}

	userID, ok := resolveUserID(c, input.UserID)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	if strings.TrimSpace(input.Content) == "" {
		errors.HandleError(c, errors.New(errors.ErrValidation, "内容不能为空"))
		return
	}

	images := input.Images
	if len(images) == 0 {
		images = input.ImageURLs
	}

	id, err := h.communityService.CreatePost(&model.CreatePostInput{
		UserID:  userID,
		TopicID: input.TopicID,
		Content: strings.TrimSpace(input.Content),
		Images:  images,
	})
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      id,
	})
}
