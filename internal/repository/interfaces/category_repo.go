package interfaces

import "recycle-backend/internal/model"

// CategoryRepository 回收品类的数据库操作接口
type CategoryRepository interface {
	List(q model.CategoryQuery) ([]model.Category, int, error)
	FindByID(id int) (*model.Category, error)
	Create(c *model.Category) error
	Update(c *model.Category) error
	Delete(id int) error
	PointsPerKg(id int) (*int, error)
}
