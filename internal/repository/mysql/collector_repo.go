package mysql

import (
	"database/sql"
	"strings"

	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

type collectorRepository struct {
	db *sql.DB
}

// NewCollectorRepository 创建一个新的 collectorRepository 实例
func NewCollectorRepository(db *sql.DB) *collectorRepository {
	return &collectorRepository{db}
}

// List 返回分页的回收员列表及总数，支持姓名/手机号搜索和状态筛选
func (r *collectorRepository) List(q model.CollectorQuery) ([]model.Collector, int, error) {
	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if q.Search != "" {
		where = append(where, "(c.name LIKE ? OR c.phone LIKE ?)")
		like := "%" + q.Search + "%"
		args = append(args, like, like)
	}
	if q.Status != "" {
		where = append(where, "c.status = ?")
		args = append(args, q.Status)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	err := r.db.QueryRow("SELECT COUNT(*) FROM collector c"+whereSQL, args...).Scan(&total)
	if err != nil {
		util.Logger.Error("统计回收员总数失败", zap.Error(err))
		return nil, 0, err
	}

	query := "SELECT c.id, c.name, c.phone, c.avatar_url, c.rating, c.status, c.created_at FROM collector c" +
		whereSQL + " ORDER BY c.created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.Query(query, append(args, q.PerPage, (q.Page-1)*q.PerPage)...)
	if err != nil {
		util.Logger.Error("查询回收员列表失败", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	collectors := make([]model.Collector, 0, q.PerPage)
	for rows.Next() {
		var c model.Collector
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.AvatarURL, &c.Rating, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		collectors = append(collectors, c)
	}
	return collectors, total, rows.Err()
}

// GlobalStats 顶部卡片的全局统计：状态分布、平均评分、今日完成单量与回收公斤数。
// 与列表筛选无关，始终统计全量。
func (r *collectorRepository) GlobalStats() (*model.CollectorStats, error) {
	var stats model.CollectorStats
	err := r.db.QueryRow(`SELECT COUNT(*),
		IFNULL(SUM(CASE WHEN status = 1 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN status = 0 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN status = 2 THEN 1 ELSE 0 END), 0),
		IFNULL(AVG(rating), 0)
		FROM collector`).Scan(
		&stats.TotalCollectors, &stats.Online, &stats.Offline, &stats.Disabled, &stats.AvgRating)
	if err != nil {
		util.Logger.Error("统计回收员状态失败", zap.Error(err))
		return nil, err
	}

	err = r.db.QueryRow(`SELECT
		COUNT(DISTINCT o.id),
		IFNULL(SUM(oi.actual_weight), 0)
		FROM recycle_order o
		LEFT JOIN order_item oi ON oi.order_id = o.id
		WHERE o.status = 3 AND DATE(o.completed_at) = CURRENT_DATE()`).Scan(
		&stats.TodayCompletedOrders, &stats.TodayRecycledKg)
	if err != nil {
		util.Logger.Error("统计今日回收量失败", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// OrderCounts 一次分组查询取回当前页所有回收员的今日/历史订单数
func (r *collectorRepository) OrderCounts(collectorIDs []int) (map[int]model.CollectorOrderCounts, error) {
	result := make(map[int]model.CollectorOrderCounts, len(collectorIDs))
	if len(collectorIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(collectorIDs)), ",")
	args := make([]interface{}, len(collectorIDs))
	for i, id := range collectorIDs {
		args[i] = id
	}

	query := `SELECT collector_id, COUNT(*),
		IFNULL(SUM(CASE WHEN status = 3 AND DATE(completed_at) = CURRENT_DATE() THEN 1 ELSE 0 END), 0)
		FROM recycle_order
		WHERE collector_id IN (` + placeholders + `)
		GROUP BY collector_id`
	rows, err := r.db.Query(query, args...)
	if err != nil {
		util.Logger.Error("统计回收员订单数失败", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var counts model.CollectorOrderCounts
		if err := rows.Scan(&id, &counts.TotalOrders, &counts.TodayOrders); err != nil {
			return nil, err
		}
		result[id] = counts
	}
	return result, rows.Err()
}
