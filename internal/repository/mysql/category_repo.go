package mysql

import (
	"database/sql"
	stderrors "errors"
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQL 外键约束错误号：1451 = 行被子表引用，无法删除
const mysqlErrRowIsReferenced = 1451

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository 创建一个新的 categoryRepository 实例
func NewCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{db}
}

// List 返回分页的品类列表及总数，按 sort_order 排序，NULL 排在最后
func (r *categoryRepository) List(q model.CategoryQuery) ([]model.Category, int, error) {
	where := make([]string, 0, 1)
	args := make([]interface{}, 0, 1)

	if q.Search != "" {
		where = append(where, "name LIKE ?")
		args = append(args, "%"+q.Search+"%")
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	err := r.db.QueryRow("SELECT COUNT(*) FROM recycle_category"+whereSQL, args...).Scan(&total)
	if err != nil {
		util.Logger.Error("统计品类总数失败", zap.Error(err))
		return nil, 0, err
	}

	query := "SELECT id, name, icon, points_per_kg, description, sort_order FROM recycle_category" +
		whereSQL + " ORDER BY sort_order IS NULL, sort_order, id LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询品类列表失败", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	categories := make([]model.Category, 0, q.PerPage)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.PointsPerKg, &c.Description, &c.SortOrder); err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	return categories, total, rows.Err()
}

// FindByID 通过ID查找品类，不存在时返回 nil
func (r *categoryRepository) FindByID(id int) (*model.Category, error) {
	var c model.Category
	err := r.db.QueryRow(
		"SELECT id, name, icon, points_per_kg, description, sort_order FROM recycle_category WHERE id = ?",
		id,
	).Scan(&c.ID, &c.Name, &c.Icon, &c.PointsPerKg, &c.Description, &c.SortOrder)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create 创建品类并回填自增ID
func (r *categoryRepository) Create(c *model.Category) error {
	result, err := r.db.Exec(
		"INSERT INTO recycle_category (name, icon, points_per_kg, description, sort_order) VALUES (?, ?, ?, ?, ?)",
		c.Name, c.Icon, c.PointsPerKg, c.Description, c.SortOrder,
	)
	if err != nil {
		util.Logger.Error("创建品类失败", zap.String("name", c.Name), zap.Error(err))
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = int(id)
	return nil
}

// Update 更新品类配置
func (r *categoryRepository) Update(c *model.Category) error {
	_, err := r.db.Exec(
		"UPDATE recycle_category SET name = ?, icon = ?, points_per_kg = ?, description = ?, sort_order = ? WHERE id = ?",
		c.Name, c.Icon, c.PointsPerKg, c.Description, c.SortOrder, c.ID,
	)
	if err != nil {
		util.Logger.Error("更新品类失败", zap.Int("category_id", c.ID), zap.Error(err))
	}
	return err
}

// Delete 删除品类；被订单明细引用时返回业务错误而不是破坏外键
func (r *categoryRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM recycle_category WHERE id = ?", id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if stderrors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrRowIsReferenced {
			return errors.New(errors.ErrResourceInUse, "Category is in use and cannot be deleted")
		}
		util.Logger.Error("删除品类失败", zap.Int("category_id", id), zap.Error(err))
		return err
	}
	return nil
}

// PointsPerKg 返回品类的每公斤积分，不存在时返回 nil
func (r *categoryRepository) PointsPerKg(id int) (*int, error) {
	var points *int
	err := r.db.QueryRow("SELECT points_per_kg FROM recycle_category WHERE id = ?", id).Scan(&points)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return points, nil
}
