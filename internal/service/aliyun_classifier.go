package service

import (
	"io"

	"recycle-backend/config"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	imagerecog "github.com/alibabacloud-go/imagerecog-20190930/v2/client"
	teautil "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
)

// aliyunClassifier 对接阿里云图像识别的垃圾分类接口
type aliyunClassifier struct{}

// NewAliyunClassifier 创建阿里云识别客户端。
// 凭证在每次调用时从配置读取，未配置时由上层直接拒绝请求。
func NewAliyunClassifier() *aliyunClassifier {
	return &aliyunClassifier{}
}

// Classify 上传图片二进制流并解析首个识别结果
func (c *aliyunClassifier) Classify(image io.Reader) (*Classification, error) {
	cfg := &openapi.Config{
		AccessKeyId:     tea.String(config.AppConfig.AliAccessKeyID),
		AccessKeySecret: tea.String(config.AppConfig.AliAccessKeySecret),
		Endpoint:        tea.String("imagerecog.cn-shanghai.aliyuncs.com"),
		RegionId:        tea.String("cn-shanghai"),
	}

	client, err := imagerecog.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	request := &imagerecog.ClassifyingRubbishAdvanceRequest{
		ImageURLObject: image,
	}
	response, err := client.ClassifyingRubbishAdvance(request, &teautil.RuntimeOptions{})
	if err != nil {
		return nil, err
	}

	result := &Classification{}
	if response == nil || response.Body == nil || response.Body.Data == nil {
		return result, nil
	}
	elements := response.Body.Data.Elements
	if len(elements) == 0 || elements[0] == nil {
		return result, nil
	}

	first := elements[0]
	result.Category = first.Category
	result.Name = first.Rubbish
	if first.RubbishScore != nil {
		confidence := float64(*first.RubbishScore)
		result.Confidence = &confidence
	} else if first.CategoryScore != nil {
		confidence := float64(*first.CategoryScore)
		result.Confidence = &confidence
	}
	return result, nil
}
