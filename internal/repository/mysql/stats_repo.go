package mysql

import (
	"database/sql"

	"recycle-backend/internal/model"
	"recycle-backend/internal/util"

	"go.uber.org/zap"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository 创建一个新的 statsRepository 实例
func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{db}
}

// DashboardSummary 仪表盘汇总：用户、订单、减碳、积分发放
func (r *statsRepository) DashboardSummary() (*model.DashboardSummary, error) {
	var s model.DashboardSummary

	err := r.db.QueryRow(`SELECT COUNT(*),
		IFNULL(SUM(CASE WHEN DATE(created_at) = CURRENT_DATE() THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN recycle_count > 0 THEN 1 ELSE 0 END), 0),
		IFNULL(SUM(CASE WHEN status = 0 THEN 1 ELSE 0 END), 0)
		FROM user`).Scan(&s.TotalUsers, &s.TodayNewUsers, &s.ActiveUsers, &s.DisabledUsers)
	if err != nil {
		util.Logger.Error("统计用户数据失败", zap.Error(err))
		return nil, err
	}

	err = r.db.QueryRow(
		"SELECT COUNT(*) FROM recycle_order WHERE DATE(created_at) = CURRENT_DATE()",
	).Scan(&s.TodayOrders)
	if err != nil {
		util.Logger.Error("统计今日订单失败", zap.Error(err))
		return nil, err
	}

	err = r.db.QueryRow(
		"SELECT IFNULL(SUM(carbon_saved_kg), 0) FROM recycle_order WHERE DATE(completed_at) = CURRENT_DATE()",
	).Scan(&s.TodayCarbonKg)
	if err != nil {
		util.Logger.Error("统计今日减碳量失败", zap.Error(err))
		return nil, err
	}

	err = r.db.QueryRow(
		"SELECT IFNULL(SUM(points), 0) FROM points_record WHERE type = 1",
	).Scan(&s.TotalPointsEarned)
	if err != nil {
		util.Logger.Error("统计累计积分发放失败", zap.Error(err))
		return nil, err
	}

	err = r.db.QueryRow(
		"SELECT IFNULL(SUM(points), 0) FROM points_record WHERE type = 1 AND DATE(created_at) = CURRENT_DATE()",
	).Scan(&s.TodayPointsEarned)
	if err != nil {
		util.Logger.Error("统计今日积分发放失败", zap.Error(err))
		return nil, err
	}

	return &s, nil
}
