package storage

import (
	"fmt"
	"mime/multipart"

	"recycle-backend/config"
)

// FileStorage 上传后端接口，返回可直接访问的文件URL
type FileStorage interface {
	UploadFile(file *multipart.FileHeader, path string) (string, error)
}

// NewFromConfig 按 STORAGE_DRIVER 选择上传后端，默认本地磁盘
func NewFromConfig() (FileStorage, error) {
	cfg := config.AppConfig
	switch cfg.StorageDriver {
	case "s3":
		return NewS3Client(cfg.S3Region, cfg.S3Bucket)
	case "gcs":
		return NewGCSClient(cfg.GCSBucketName, cfg.GCSCredentialsFile)
	case "local", "":
		return NewLocalStorage(cfg.LocalStoragePath, cfg.BackendURL)
	default:
		return nil, fmt.Errorf("未知的存储驱动: %s", cfg.StorageDriver)
	}
}
