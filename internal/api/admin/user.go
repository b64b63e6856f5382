package admin

import (
	"net/http"
	"strconv"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler 后台用户管理
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService}
}

// GetUsers 用户列表，支持昵称/手机号/ID搜索和等级筛选
func (h *UserHandler) GetUsers(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.UserQuery{
		Search:  c.Query("search"),
		LevelID: c.Query("level_id"),
		Page:    p.Page,
		PerPage: p.PerPage,
	}

	users, total, err := h.userService.ListUsers(q)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
		"items":    users,
	})
}

func (h *UserHandler) GetUserDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的用户ID"))
		return
	}

	detail, err := h.userService.GetUserDetail(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ToggleUserStatus 启用/禁用用户，状态在 1 和 0 之间翻转
func (h *UserHandler) ToggleUserStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的用户ID"))
		return
	}

	label, err := h.userService.ToggleStatus(id)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user_id": id,
		"status":  label,
	})
}

// GetUserLevels 等级配置及各等级人数，不分页
func (h *UserHandler) GetUserLevels(c *gin.Context) {
	levels, err := h.userService.ListLevels()
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total": len(levels),
		"items": levels,
	})
}
