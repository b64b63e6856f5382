package middleware

import (
	"runtime/debug"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				// 记录堆栈信息
				stack := string(debug.Stack())
				util.Logger.Error("发生panic",
					zap.Any("error", r),
					zap.String("stack", stack))

				errors.HandleError(c, errors.New(errors.ErrInternal, "服务器内部错误"))
				c.Abort()
			}
		}()
		c.Next()
	}
}
