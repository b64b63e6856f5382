package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码与HTTP状态码映射
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal:        http.StatusInternalServerError,
	ErrDatabase:        http.StatusInternalServerError,
	ErrExternalService: http.StatusBadGateway,

	// 认证错误 (2000-2999)
	ErrUnauthorized: http.StatusUnauthorized,
	ErrInvalidToken: http.StatusUnauthorized,

	// 请求错误 (3000-3999)
	ErrBadRequest:       http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,
	// 被引用的资源不能删，按业务约定返回 400 而不是 409
	ErrResourceInUse: http.StatusBadRequest,

	// 业务错误 (4000-4999)
	ErrUserNotFound:       http.StatusNotFound,
	ErrOrderNotFound:      http.StatusNotFound,
	ErrOrderNotCancelable: http.StatusBadRequest,
}

// StatusOf 返回错误码对应的HTTP状态码
func StatusOf(code ErrorCode) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// HandleError 统一处理错误响应，响应体固定为 {"error": "..."}，
// 外部服务失败时额外带 detail。
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)
	if appErr, ok := err.(*AppError); ok {
		body := gin.H{"error": appErr.Message}
		if appErr.Detail != "" {
			body["detail"] = appErr.Detail
		}
		c.JSON(StatusOf(appErr.Code), body)
		return
	}

	// 处理非 AppError 类型的错误
	c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
}
