package admin

import (
	"net/http"
	"strconv"
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CommunityHandler 社区帖子管理
type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService}
}

// GetPosts 帖子列表，含已删除的帖子
func (h *CommunityHandler) GetPosts(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.PostQuery{
		Search:  c.Query("search"),
		TopicID: c.Query("topic_id"),
		Status:  c.Query("status"),
		Page:    p.Page,
		PerPage: p.PerPage,
	}

	items, total, err := h.communityService.AdminListPosts(q)
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

// CreatePost 后台代发帖子，必须指定发帖用户
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var input struct {
		UserID  int      `json:"user_id"`
		TopicID *int     `json:"topic_id"`
		Content string   `json:"content"`
		Images  []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}
	if input.UserID == 0 {
		errors.HandleError(c, errors.New(errors.ErrValidation, "缺少发帖用户"))
		return
	}
	if strings.TrimSpace(input.Content) == "" {
		errors.HandleError(c, errors.New(errors.ErrValidation, "内容不能为空"))
		return
	}

	id, err := h.communityService.CreatePost(&model.CreatePostInput{
		UserID:  input.UserID,
		TopicID: input.TopicID,
		Content: strings.TrimSpace(input.Content),
		Images:  input.Images,
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

// DeletePost 软删除帖子，已删除的帖子重复删除不报错
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的帖子ID"))
		return
	}

	if err := h.communityService.DeletePost(id); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
	})
}
