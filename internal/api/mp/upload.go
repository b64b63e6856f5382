package mp

import (
	"net/http"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/storage"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	storage storage.FileStorage
}

func NewUploadHandler(storage storage.FileStorage) *UploadHandler {
	return &UploadHandler{storage}
}

// Upload 上传帖子图片，返回可访问的URL
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "缺少图片文件"))
		return
	}

	path := "images/" + util.GenerateUniqueFilename(file.Filename)
	url, err := h.storage.UploadFile(file, path)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "上传文件失败", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
