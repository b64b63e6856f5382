package mp

import (
	"bytes"
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"recycle-backend/config"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	util.InitLogger("error")
	os.Exit(m.Run())
}

// fakeClassifier 测试用识别客户端
type fakeClassifier struct {
	result *service.Classification
	err    error
}

func (f *fakeClassifier) Classify(image io.Reader) (*service.Classification, error) {
	return f.result, f.err
}

func identifyRouter(classifier service.RubbishClassifier) *gin.Engine {
	handler := NewIdentifyHandler(service.NewIdentifyService(classifier))
	r := gin.New()
	r.POST("/api/mp/identify", handler.Identify)
	return r
}

func multipartImage(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func setAliyunCreds(t *testing.T) {
	t.Helper()
	config.AppConfig.AliAccessKeyID = "test-key"
	config.AppConfig.AliAccessKeySecret = "test-secret"
	t.Cleanup(func() {
		config.AppConfig.AliAccessKeyID = ""
		config.AppConfig.AliAccessKeySecret = ""
	})
}

// TestIdentifyMissingFile 测试没有上传图片时返回 400
func TestIdentifyMissingFile(t *testing.T) {
	r := identifyRouter(&fakeClassifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/identify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "缺少图片文件")
}

// TestIdentifyEmptyFile 测试空图片内容返回 400
func TestIdentifyEmptyFile(t *testing.T) {
	r := identifyRouter(&fakeClassifier{})

	body, contentType := multipartImage(t, "file", "photo.jpg", nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/identify", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "图片内容为空")
}

// TestIdentifySuccess 测试识别成功的响应
func TestIdentifySuccess(t *testing.T) {
	setAliyunCreds(t)

	category := "可回收物"
	name := "PET 塑料瓶"
	confidence := 0.93
	r := identifyRouter(&fakeClassifier{
		result: &service.Classification{Category: &category, Name: &name, Confidence: &confidence},
	})

	body, contentType := multipartImage(t, "file", "photo.jpg", []byte("fake-image"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/identify", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "可回收物")
	assert.Contains(t, w.Body.String(), `"points":10`)
}

// TestIdentifyUpstreamFailure 测试外部服务失败时返回 502 和 detail
func TestIdentifyUpstreamFailure(t *testing.T) {
	setAliyunCreds(t)

	r := identifyRouter(&fakeClassifier{err: stderrors.New("connection refused")})

	body, contentType := multipartImage(t, "file", "photo.jpg", []byte("fake-image"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/mp/identify", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "调用阿里云识别服务失败")
	assert.Contains(t, w.Body.String(), "connection refused")
}
