package mysql

import (
	"database/sql"
	"strings"

	"recycle-backend/internal/errors"
	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository 创建一个新的 orderRepository 实例
func NewOrderRepository(db *sql.DB) *orderRepository {
	return &orderRepository{db}
}

const orderBaseFrom = ` FROM recycle_order o
	JOIN user u ON o.user_id = u.id
	LEFT JOIN user_address a ON o.address_id = a.id
	LEFT JOIN collector c ON o.collector_id = c.id `

func buildOrderWhere(q model.OrderQuery) (string, []interface{}) {
	where := make([]string, 0, 4)
	args := make([]interface{}, 0, 6)

	if q.Search != "" {
		where = append(where, "(o.order_no LIKE ? OR u.nickname LIKE ? OR u.phone LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like, like)
	}
	if q.Status != "" {
		where = append(where, "o.status = ?")
		args = append(args, q.Status)
	}
	if q.DateStart != "" {
		where = append(where, "o.appointment_date >= ?")
		args = append(args, q.DateStart)
	}
	if q.DateEnd != "" {
		where = append(where, "o.appointment_date <= ?")
		args = append(args, q.DateEnd)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// List 返回分页订单、总数及各状态数量，统计与列表共用同一份筛选条件
func (r *orderRepository) List(q model.OrderQuery) ([]model.Order, int, *model.OrderStats, error) {
	whereSQL, args := buildOrderWhere(q)

	statQuery := `SELECT COUNT(*) AS total,
		IFNULL(SUM(CASE WHEN o.status = 1 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN o.status = 2 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN o.status = 3 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN o.status = 4 THEN 1 ELSE 0 END), 0)` +
		orderBaseFrom + whereSQL

	var stats model.OrderStats
	err := r.db.QueryRow(statQuery, args...).Scan(
		&stats.TotalOrders, &stats.Pending, &stats.Processing, &stats.Completed, &stats.Canceled)
	if err != nil {
		util.Logger.Error("统计订单状态失败", zap.Error(err))
		return nil, 0, nil, err
	}

	query := `SELECT o.id, o.order_no, o.status, o.appointment_date, o.time_slot,
		o.estimated_points, o.actual_points, o.carbon_saved_kg, o.created_at,
		u.nickname, u.phone,
		a.province, a.city, a.district, a.address_detail,
		c.name, c.phone` +
		orderBaseFrom + whereSQL + " ORDER BY o.created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询订单列表失败", zap.Error(err))
		return nil, 0, nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0, q.PerPage)
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.OrderNo, &o.Status, &o.AppointmentDate, &o.TimeSlot,
			&o.EstimatedPoints, &o.ActualPoints, &o.CarbonSavedKg, &o.CreatedAt,
			&o.UserName, &o.UserPhone,
			&o.Province, &o.City, &o.District, &o.AddressDetail,
			&o.CollectorName, &o.CollectorPhone)
		if err != nil {
			return nil, 0, nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, nil, err
	}
	return orders, stats.TotalOrders, &stats, nil
}

// ItemsByOrderIDs 一次取回多个订单的品类明细，按订单ID分组，避免逐单查询
func (r *orderRepository) ItemsByOrderIDs(orderIDs []int) (map[int][]model.OrderItem, error) {
	result := make(map[int][]model.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(orderIDs)), ",")
	args := make([]interface{}, len(orderIDs))
	for i, id := range orderIDs {
		args[i] = id
	}

	query := `SELECT i.order_id, i.category_id, rc.name, i.estimated_weight, i.actual_weight, i.points_earned
		FROM order_item i
		JOIN recycle_category rc ON i.category_id = rc.id
		WHERE i.order_id IN (` + placeholders + ")"
	rows, err := r.db.Query(query, args...)
	if err != nil {
		util.Logger.Error("查询订单明细失败", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.OrderItem
		err := rows.Scan(&it.OrderID, &it.CategoryID, &it.CategoryName,
			&it.EstimatedWeight, &it.ActualWeight, &it.PointsEarned)
		if err != nil {
			return nil, err
		}
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, rows.Err()
}

// FindDetail 查询订单详情，联查用户、地址、回收员，不存在时返回 nil
func (r *orderRepository) FindDetail(id int) (*model.Order, error) {
	query := `SELECT o.id, o.order_no, o.user_id, o.address_id, o.collector_id, o.status,
		o.appointment_date, o.time_slot, o.estimated_points, o.actual_points,
		o.carbon_saved_kg, o.remark, o.photo_urls, o.created_at, o.updated_at, o.completed_at,
		u.nickname, u.phone,
		a.province, a.city, a.district, a.address_detail,
		c.name, c.phone` +
		orderBaseFrom + "WHERE o.id = ?"

	var o model.Order
	err := r.db.QueryRow(query, id).Scan(
		&o.ID, &o.OrderNo, &o.UserID, &o.AddressID, &o.CollectorID, &o.Status,
		&o.AppointmentDate, &o.TimeSlot, &o.EstimatedPoints, &o.ActualPoints,
		&o.CarbonSavedKg, &o.Remark, &o.PhotoURLs, &o.CreatedAt, &o.UpdatedAt, &o.CompletedAt,
		&o.UserName, &o.UserPhone,
		&o.Province, &o.City, &o.District, &o.AddressDetail,
		&o.CollectorName, &o.CollectorPhone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		util.Logger.Error("查询订单详情失败", zap.Int("order_id", id), zap.Error(err))
		return nil, err
	}
	return &o, nil
}

// ItemsByOrderID 查询单个订单的品类明细，按明细ID排序
func (r *orderRepository) ItemsByOrderID(orderID int) ([]model.OrderItem, error) {
	query := `SELECT i.order_id, i.category_id, rc.name, i.estimated_weight, i.actual_weight, i.points_earned
		FROM order_item i
		JOIN recycle_category rc ON i.category_id = rc.id
		WHERE i.order_id = ?
		ORDER BY i.id`
	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderItem, 0, 4)
	for rows.Next() {
		var it model.OrderItem
		err := rows.Scan(&it.OrderID, &it.CategoryID, &it.CategoryName,
			&it.EstimatedWeight, &it.ActualWeight, &it.PointsEarned)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByUser 返回某用户的全部订单，可按状态筛选，不分页
func (r *orderRepository) ListByUser(userID int, status string) ([]model.Order, error) {
	where := []string{"o.user_id = ?"}
	args := []interface{}{userID}
	if status != "" {
		where = append(where, "o.status = ?")
		args = append(args, status)
	}

	query := `SELECT o.id, o.order_no, o.status, o.appointment_date, o.time_slot,
		o.estimated_points, o.actual_points, o.carbon_saved_kg, o.created_at, o.completed_at,
		c.name, c.phone
		FROM recycle_order o
		LEFT JOIN collector c ON o.collector_id = c.id
		WHERE ` + strings.Join(where, " AND ") + " ORDER BY o.created_at DESC"
	rows, err := r.db.Query(query, args...)
	if err != nil {
		util.Logger.Error("查询用户订单失败", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0, 8)
	for rows.Next() {
		var o model.Order
		err := rows.Scan(&o.ID, &o.OrderNo, &o.Status, &o.AppointmentDate, &o.TimeSlot,
			&o.EstimatedPoints, &o.ActualPoints, &o.CarbonSavedKg, &o.CreatedAt, &o.CompletedAt,
			&o.CollectorName, &o.CollectorPhone)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Create 在一个事务里写入订单及其明细，返回新订单ID
func (r *orderRepository) Create(in *model.CreateOrderInput, orderNo string, estimatedPoints int) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO recycle_order (order_no, user_id, address_id, status, appointment_date,
		 time_slot, estimated_points, remark) VALUES (?, ?, ?, 1, ?, ?, ?, ?)`,
		orderNo, in.UserID, in.AddressID, in.AppointmentDate, in.TimeSlot, estimatedPoints, in.Remark,
	)
	if err != nil {
		util.Logger.Error("创建订单失败", zap.String("order_no", orderNo), zap.Error(err))
		return 0, err
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"INSERT INTO order_item (order_id, category_id, estimated_weight) VALUES (?, ?, ?)",
		orderID, in.CategoryID, in.EstimatedWeight,
	)
	if err != nil {
		util.Logger.Error("创建订单明细失败", zap.Int64("order_id", orderID), zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(orderID), nil
}

// Cancel 把待上门订单置为已取消。状态检查与更新走一条带条件的 UPDATE，
// 不存在/不属于该用户返回 404 语义，状态不对返回 400 语义。
func (r *orderRepository) Cancel(orderID, userID int) error {
	result, err := r.db.Exec(
		"UPDATE recycle_order SET status = 4 WHERE id = ? AND user_id = ? AND status = 1",
		orderID, userID,
	)
	if err != nil {
		util.Logger.Error("取消订单失败", zap.Int("order_id", orderID), zap.Error(err))
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// 没有命中：区分订单不存在和状态不可取消
	var status int
	err = r.db.QueryRow(
		"SELECT status FROM recycle_order WHERE id = ? AND user_id = ?", orderID, userID,
	).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New(errors.ErrOrderNotFound, "订单不存在")
		}
		return err
	}
	return errors.New(errors.ErrOrderNotCancelable, "只能取消待上门的订单")
}
