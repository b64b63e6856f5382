// Package mp 是小程序端接口。身份来自登录令牌，
// 为兼容旧客户端也接受显式 user_id 参数。
package mp

import (
	"strconv"

	"recycle-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// currentUserID 取当前请求的用户ID：优先令牌，其次 user_id 参数
func currentUserID(c *gin.Context) (int, bool) {
	if v, ok := c.Get(middleware.IdentityKey); ok {
		if id, ok := v.(int); ok && id > 0 {
			return id, true
		}
	}

	raw := c.Query("user_id")
	if raw == "" {
		raw = c.PostForm("user_id")
	}
	if raw != "" {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}

// resolveUserID 同 currentUserID，但允许 JSON 请求体里带 user_id
func resolveUserID(c *gin.Context, bodyUserID int) (int, bool) {
	if id, ok := currentUserID(c); ok {
		return id, true
	}
	if bodyUserID > 0 {
		return bodyUserID, true
	}
	return 0, false
}
