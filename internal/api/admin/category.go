package admin

import (
	"net/http"
	"strconv"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/service"
	"recycle-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 回收品类管理
type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	p, err := util.ParsePagination(c, 10, 100)
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, err.Error()))
		return
	}

	q := model.CategoryQuery{
		Search:  c.Query("search"),
		Page:    p.Page,
		PerPage: p.PerPage,
	}

	items, total, err := h.categoryService.ListCategories(q)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    total,
		"page":     p.Page,
		"per_page": p.PerPage,
		"items":    items,
	})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}

	item, err := h.categoryService.CreateCategory(input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的品类ID"))
		return
	}

	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrBadRequest, "无效的请求数据", err))
		return
	}

	item, err := h.categoryService.UpdateCategory(id, input)
	if err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrBadRequest, "无效的品类ID"))
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
	})
}
