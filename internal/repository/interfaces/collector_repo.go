package interfaces

import "recycle-backend/internal/model"

// CollectorRepository 回收员的数据库操作接口
type CollectorRepository interface {
	List(q model.CollectorQuery) ([]model.Collector, int, error)
	GlobalStats() (*model.CollectorStats, error)
	OrderCounts(collectorIDs []int) (map[int]model.CollectorOrderCounts, error)
}
