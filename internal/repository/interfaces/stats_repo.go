package interfaces

import "recycle-backend/internal/model"

// StatsRepository 仪表盘统计的数据库操作接口
type StatsRepository interface {
	DashboardSummary() (*model.DashboardSummary, error)
}
