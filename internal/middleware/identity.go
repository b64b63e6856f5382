package middleware

import (
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// IdentityKey 是登录用户ID在 gin 上下文里的键名
const IdentityKey = "user_id"

// IdentityMiddleware 解析小程序端的 Bearer 令牌。
// 令牌可选：没带令牌时放行，由各接口决定是否接受显式 user_id 参数；
// 带了但无效则直接拒绝。
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "无效的认证格式"))
			c.Abort()
			return
		}

		userID, err := util.ValidateToken(parts[1])
		if err != nil {
			errors.HandleError(c, errors.Wrap(errors.ErrInvalidToken, "无效或过期的令牌", err))
			c.Abort()
			return
		}

		c.Set(IdentityKey, userID)
		c.Next()
	}
}
