package mp

import (
	"bytes"
	"io"
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type IdentifyHandler struct {
	identifyService *service.IdentifyService
}

func NewIdentifyHandler(identifyService *service.IdentifyService) *IdentifyHandler {
	return &IdentifyHandler{identifyService}
}

// 识别接口的错误响应带 success 字段，和识别成功的响应保持同一形状
func identifyError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// Identify 拍照垃圾分类识别，转发图片到阿里云并映射积分与提示
func (h *IdentifyHandler) Identify(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		identifyError(c, http.StatusBadRequest, "缺少图片文件")
		return
	}
	if file.Filename == "" {
		identifyError(c, http.StatusBadRequest, "空文件名")
		return
	}

	src, err := file.Open()
	if err != nil {
		identifyError(c, http.StatusBadRequest, "图片内容为空")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil || len(data) == 0 {
		identifyError(c, http.StatusBadRequest, "图片内容为空")
		return
	}

	result, err := h.identifyService.Identify(bytes.NewReader(data))
	if err != nil {
		_ = c.Error(err)
		if appErr, ok := err.(*errors.AppError); ok {
			body := gin.H{"success": false, "error": appErr.Message}
			if appErr.Detail != "" {
				body["detail"] = appErr.Detail
			}
			c.JSON(errors.StatusOf(appErr.Code), body)
			return
		}
		identifyError(c, http.StatusInternalServerError, "服务器内部错误")
		return
	}

	c.JSON(http.StatusOK, result)
}
