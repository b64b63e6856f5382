package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

// TestParsePagination 测试分页参数的默认值和上限
func TestParsePagination(t *testing.T) {
	// 缺省值
	p, err := ParsePagination(paginationContext(""), 10, 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)

	// 正常取值
	p, err = ParsePagination(paginationContext("page=3&per_page=25"), 10, 100)
	assert.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PerPage)
	assert.Equal(t, 50, p.Offset())

	// 超过上限时截断
	p, err = ParsePagination(paginationContext("per_page=500"), 10, 100)
	assert.NoError(t, err)
	assert.Equal(t, 100, p.PerPage)

	// page 最小为 1
	p, err = ParsePagination(paginationContext("page=0"), 10, 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, p.Page)
}

// TestParsePaginationMalformed 测试非整数参数返回错误
func TestParsePaginationMalformed(t *testing.T) {
	_, err := ParsePagination(paginationContext("page=abc"), 10, 100)
	assert.Error(t, err)

	_, err = ParsePagination(paginationContext("per_page=1.5"), 10, 100)
	assert.Error(t, err)
}
