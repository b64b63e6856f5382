package service

import (
	"fmt"
	"strconv"
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"
)

// CategoryService 处理回收品类的业务逻辑
type CategoryService struct {
	categoryRepo interfaces.CategoryRepository
}

// NewCategoryService 创建一个新的 CategoryService 实例
func NewCategoryService(categoryRepo interfaces.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput 创建/更新品类的参数。points_per_kg 和 sort_order
// 前端可能传数字也可能传字符串，这里统一收成 interface{} 再做整数校验。
type CategoryInput struct {
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	PointsPerKg interface{} `json:"points_per_kg"`
	SortOrder   interface{} `json:"sort_order"`
}

// parseOptionalInt 把 nil/空串当成未填，其余必须能转成整数
func parseOptionalInt(raw interface{}, field string) (*int, error) {
	if raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New(errors.ErrValidation, fmt.Sprintf("%s must be an integer", field))
		}
		return &n, nil
	case float64:
		// JSON 数字默认解析成 float64
		if v != float64(int(v)) {
			return nil, errors.New(errors.ErrValidation, fmt.Sprintf("%s must be an integer", field))
		}
		n := int(v)
		return &n, nil
	default:
		return nil, errors.New(errors.ErrValidation, fmt.Sprintf("%s must be an integer", field))
	}
}

func (s *CategoryService) buildCategory(in CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New(errors.ErrValidation, "name is required")
	}

	c := &model.Category{Name: name}
	if icon := strings.TrimSpace(in.Icon); icon != "" {
		c.Icon = &icon
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		c.Description = &desc
	}

	points, err := parseOptionalInt(in.PointsPerKg, "points_per_kg")
	if err != nil {
		return nil, err
	}
	c.PointsPerKg = points

	sortOrder, err := parseOptionalInt(in.SortOrder, "sort_order")
	if err != nil {
		return nil, err
	}
	c.SortOrder = sortOrder
	return c, nil
}

func toCategoryItem(c model.Category) model.CategoryItem {
	return model.CategoryItem{
		ID:           c.ID,
		CategoryCode: util.CategoryCode(c.ID),
		Name:         c.Name,
		Icon:         c.Icon,
		PointsPerKg:  c.PointsPerKg,
		Description:  c.Description,
		SortOrder:    c.SortOrder,
	}
}

// ListCategories 品类列表
func (s *CategoryService) ListCategories(q model.CategoryQuery) ([]model.CategoryItem, int, error) {
	categories, total, err := s.categoryRepo.List(q)
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.CategoryItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryItem(c))
	}
	return items, total, nil
}

// CreateCategory 创建品类，返回入库后的完整数据
func (s *CategoryService) CreateCategory(in CategoryInput) (*model.CategoryItem, error) {
	c, err := s.buildCategory(in)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(c); err != nil {
		return nil, err
	}

	// 重新读取，带回数据库默认值
	created, err := s.categoryRepo.FindByID(c.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = c
	}
	item := toCategoryItem(*created)
	return &item, nil
}

// UpdateCategory 更新品类配置
func (s *CategoryService) UpdateCategory(id int, in CategoryInput) (*model.CategoryItem, error) {
	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New(errors.ErrResourceNotFound, "Category not found")
	}

	c, err := s.buildCategory(in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	if err := s.categoryRepo.Update(c); err != nil {
		return nil, err
	}

	updated, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = c
	}
	item := toCategoryItem(*updated)
	return &item, nil
}

// DeleteCategory 删除品类，被订单明细引用时返回业务错误
func (s *CategoryService) DeleteCategory(id int) error {
	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New(errors.ErrResourceNotFound, "Category not found")
	}
	return s.categoryRepo.Delete(id)
}
