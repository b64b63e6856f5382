package mysql

import (
	"database/sql"
	"strings"

	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

type afterSaleRepository struct {
	db *sql.DB
}

// NewAfterSaleRepository 创建一个新的 afterSaleRepository 实例
func NewAfterSaleRepository(db *sql.DB) *afterSaleRepository {
	return &afterSaleRepository{db}
}

const afterSaleBaseFrom = ` FROM after_sale a
	JOIN user u ON a.user_id = u.id
	JOIN recycle_order o ON a.order_id = o.id `

// List 返回分页的售后工单、总数及各状态数量，统计与列表共用筛选条件
func (r *afterSaleRepository) List(q model.AfterSaleQuery) ([]model.AfterSale, int, *model.AfterSaleStats, error) {
	where := make([]string, 0, 5)
	args := make([]interface{}, 0, 7)

	if q.Search != "" {
		where = append(where, "(CAST(a.id AS CHAR) LIKE ? OR o.order_no LIKE ? OR u.nickname LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like, like)
	}
	if q.Status != "" {
		where = append(where, "a.status = ?")
		args = append(args, q.Status)
	}
	if q.Type != "" {
		where = append(where, "a.type = ?")
		args = append(args, q.Type)
	}
	if q.DateStart != "" {
		where = append(where, "DATE(a.created_at) >= ?")
		args = append(args, q.DateStart)
	}
	if q.DateEnd != "" {
		where = append(where, "DATE(a.created_at) <= ?")
		args = append(args, q.DateEnd)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	statQuery := `SELECT COUNT(*),
		IFNULL(SUM(CASE WHEN a.status = 1 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN a.status = 2 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN a.status = 3 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN a.status = 4 THEN 1 ELSE 0 END), 0)` +
		afterSaleBaseFrom + whereSQL

	var stats model.AfterSaleStats
	err := r.db.QueryRow(statQuery, args...).Scan(
		&stats.TotalTickets, &stats.Pending, &stats.Processing, &stats.Resolved, &stats.Closed)
	if err != nil {
		util.Logger.Error("统计售后工单失败", zap.Error(err))
		return nil, 0, nil, err
	}

	query := `SELECT a.id, a.order_id, a.user_id, a.type, a.description, a.status,
		a.created_at, a.resolved_at,
		u.nickname, u.avatar_url,
		o.order_no` +
		afterSaleBaseFrom + whereSQL + " ORDER BY a.created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询售后工单列表失败", zap.Error(err))
		return nil, 0, nil, err
	}
	defer rows.Close()

	tickets := make([]model.AfterSale, 0, q.PerPage)
	for rows.Next() {
		var t model.AfterSale
		err := rows.Scan(&t.ID, &t.OrderID, &t.UserID, &t.Type, &t.Description, &t.Status,
			&t.CreatedAt, &t.ResolvedAt,
			&t.Nickname, &t.AvatarURL,
			&t.OrderNo)
		if err != nil {
			return nil, 0, nil, err
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, nil, err
	}
	return tickets, stats.TotalTickets, &stats, nil
}
