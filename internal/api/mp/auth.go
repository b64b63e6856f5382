package mp

import (
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService}
}

// Login 手机号登录，返回令牌和用户信息
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required,phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "手机号格式不正确", err))
		return
	}

	token, user, err := h.userService.Login(input.Phone)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
