package util

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination 保存解析后的分页参数
type Pagination struct {
	Page    int
	PerPage int
}

// Offset 返回 LIMIT/OFFSET 中的偏移量
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ParsePagination 解析 page/per_page 查询参数。
// 缺省 page=1、per_page=defaultPerPage；page 最小为 1，per_page 上限 maxPerPage。
// 非整数直接返回错误，由调用方转成 400。
func ParsePagination(c *gin.Context, defaultPerPage, maxPerPage int) (Pagination, error) {
	p := Pagination{Page: 1, PerPage: defaultPerPage}

	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, fmt.Errorf("page 参数必须是整数: %q", raw)
		}
		p.Page = v
	}
	if raw := c.Query("per_page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, fmt.Errorf("per_page 参数必须是整数: %q", raw)
		}
		p.PerPage = v
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p, nil
}
