package service

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"recycle-backend/config"
	"recycle-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

// fakeClassifier 测试用识别客户端
type fakeClassifier struct {
	result *Classification
	err    error
}

func (f *fakeClassifier) Classify(image io.Reader) (*Classification, error) {
	return f.result, f.err
}

func withAliyunCreds(t *testing.T) {
	t.Helper()
	config.AppConfig.AliAccessKeyID = "test-key"
	config.AppConfig.AliAccessKeySecret = "test-secret"
	t.Cleanup(func() {
		config.AppConfig.AliAccessKeyID = ""
		config.AppConfig.AliAccessKeySecret = ""
	})
}

// TestIdentifyMissingCredentials 测试凭证未配置时直接失败
func TestIdentifyMissingCredentials(t *testing.T) {
	config.AppConfig.AliAccessKeyID = ""
	config.AppConfig.AliAccessKeySecret = ""

	service := NewIdentifyService(&fakeClassifier{})
	_, err := service.Identify(strings.NewReader("img"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "阿里云访问密钥未配置")
}

// TestIdentifyServiceFailure 测试外部服务失败时返回 502 语义错误并带 detail
func TestIdentifyServiceFailure(t *testing.T) {
	withAliyunCreds(t)

	service := NewIdentifyService(&fakeClassifier{err: stderrors.New("timeout")})
	_, err := service.Identify(strings.NewReader("img"))
	assert.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrExternalService, appErr.Code)
	assert.Equal(t, "调用阿里云识别服务失败", appErr.Message)
	assert.Equal(t, "timeout", appErr.Detail)
}

// TestIdentifyCategoryMapping 测试大类到积分和提示的映射
func TestIdentifyCategoryMapping(t *testing.T) {
	withAliyunCreds(t)

	cases := []struct {
		category string
		points   int
		tip      string
	}{
		{"可回收物", 10, "请清空残留物并压扁后投放至可回收物桶"},
		{"recyclable", 10, "请清空残留物并压扁后投放至可回收物桶"},
		{"厨余垃圾", 8, "请沥干水分后投放至厨余垃圾桶"},
		{"有害垃圾", 0, "请密封包装后投放至有害垃圾桶，避免破损泄漏"},
		{"其他垃圾", 5, "请尽量减少此类垃圾产生，按指引投放"},
		{"没见过的分类", 5, "请根据提示正确投放"},
	}

	for _, tc := range cases {
		category := tc.category
		name := "PET 塑料瓶"
		confidence := 0.93
		service := NewIdentifyService(&fakeClassifier{
			result: &Classification{Category: &category, Name: &name, Confidence: &confidence},
		})

		result, err := service.Identify(strings.NewReader("img"))
		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, tc.points, result.Points, "category %s", tc.category)
		assert.Equal(t, tc.tip, result.Tip, "category %s", tc.category)
	}
}

// TestIdentifyMissingFields 测试识别结果缺字段时的兜底文案
func TestIdentifyMissingFields(t *testing.T) {
	withAliyunCreds(t)

	service := NewIdentifyService(&fakeClassifier{result: &Classification{}})
	result, err := service.Identify(strings.NewReader("img"))
	assert.NoError(t, err)
	assert.Equal(t, "未知物品", result.Name)
	assert.Equal(t, "未知分类", result.Category)
	assert.Equal(t, 5, result.Points)
	assert.Nil(t, result.Confidence)
}
