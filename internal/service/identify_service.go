package service

import (
	"io"

	"recycle-backend/config"
	"recycle-backend/internal/errors"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

// Classification 识别服务返回的原始结果，字段都可能缺失
type Classification struct {
	Category   *string
	Name       *string
	Confidence *float64
}

// RubbishClassifier 垃圾识别客户端接口，便于在测试里替换外部服务
type RubbishClassifier interface {
	Classify(image io.Reader) (*Classification, error)
}

// IdentifyResult 拍照识别的响应
type IdentifyResult struct {
	Success    bool     `json:"success"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Confidence *float64 `json:"confidence"`
	Points     int      `json:"points"`
	Tip        string   `json:"tip"`
}

// IdentifyService 处理拍照垃圾分类识别
type IdentifyService struct {
	classifier RubbishClassifier
}

// NewIdentifyService 创建一个新的 IdentifyService 实例
func NewIdentifyService(classifier RubbishClassifier) *IdentifyService {
	return &IdentifyService{classifier: classifier}
}

// categoryAdvice 按识别出的大类映射积分与投放提示
func categoryAdvice(category string) (int, string) {
	switch category {
	case "可回收物", "recyclable":
		return 10, "请清空残留物并压扁后投放至可回收物桶"
	case "厨余垃圾", "household_food_waste":
		return 8, "请沥干水分后投放至厨余垃圾桶"
	case "有害垃圾", "hazardous":
		return 0, "请密封包装后投放至有害垃圾桶，避免破损泄漏"
	case "其他垃圾", "residual_waste":
		return 5, "请尽量减少此类垃圾产生，按指引投放"
	default:
		return 5, "请根据提示正确投放"
	}
}

// Identify 调用识别服务并映射积分与提示。凭证未配置时直接失败，
// 外部服务出错时返回 502 语义的错误并附上 detail。
func (s *IdentifyService) Identify(image io.Reader) (*IdentifyResult, error) {
	if config.AppConfig.AliAccessKeyID == "" || config.AppConfig.AliAccessKeySecret == "" {
		return nil, errors.New(errors.ErrInternal,
			"阿里云访问密钥未配置，请在服务器环境变量中设置 ALIBABA_CLOUD_ACCESS_KEY_ID / ALIBABA_CLOUD_ACCESS_KEY_SECRET")
	}

	classification, err := s.classifier.Classify(image)
	if err != nil {
		util.Logger.Error("调用阿里云识别服务失败", zap.Error(err))
		return nil, errors.Wrap(errors.ErrExternalService, "调用阿里云识别服务失败", err).
			WithDetail(err.Error())
	}

	result := &IdentifyResult{
		Success:  true,
		Name:     "未知物品",
		Category: "未知分类",
	}
	if classification != nil {
		if classification.Name != nil && *classification.Name != "" {
			result.Name = *classification.Name
		}
		if classification.Category != nil && *classification.Category != "" {
			result.Category = *classification.Category
		}
		result.Confidence = classification.Confidence
	}

	category := ""
	if classification != nil && classification.Category != nil {
		category = *classification.Category
	}
	result.Points, result.Tip = categoryAdvice(category)
	return result, nil
}
