package mp

import (
	"net/http"
	"strconv"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService}
}

// GetProfile 当前用户的个人信息
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrUnauthorized, "未提供用户身份"))
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetRanking 积分/减碳排行榜，最多返回 50 条
func (h *UserHandler) GetRanking(c *gin.Context) {
	rankType := c.DefaultQuery("type", "points")

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errors.HandleError(c, errors.New(errors.ErrBadRequest, "limit 参数必须是整数"))
			return
		}
		limit = v
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	ranking, err := h.userService.Ranking(rankType, limit)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":    rankType,
		"ranking": ranking,
	})
}
