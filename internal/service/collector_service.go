package service

import (
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"
)

// CollectorService 处理回收员的业务逻辑
type CollectorService struct {
	collectorRepo interfaces.CollectorRepository
}

// NewCollectorService 创建一个新的 CollectorService 实例
func NewCollectorService(collectorRepo interfaces.CollectorRepository) *CollectorService {
	return &CollectorService{collectorRepo: collectorRepo}
}

// ListCollectors 回收员列表、全局统计和每人的订单数
func (s *CollectorService) ListCollectors(q model.CollectorQuery) ([]model.CollectorItem, int, *model.CollectorStats, error) {
	stats, err := s.collectorRepo.GlobalStats()
	if err != nil {
		return nil, 0, nil, err
	}

	collectors, total, err := s.collectorRepo.List(q)
	if err != nil {
		return nil, 0, nil, err
	}

	ids := make([]int, 0, len(collectors))
	for _, c := range collectors {
		ids = append(ids, c.ID)
	}
	orderCounts, err := s.collectorRepo.OrderCounts(ids)
	if err != nil {
		return nil, 0, nil, err
	}

	items := make([]model.CollectorItem, 0, len(collectors))
	for _, c := range collectors {
		rating := 0.0
		if c.Rating != nil {
			rating = *c.Rating
		}
		counts := orderCounts[c.ID]
		items = append(items, model.CollectorItem{
			ID:            c.ID,
			CollectorCode: util.CollectorCode(c.ID),
			Name:          c.Name,
			Phone:         c.Phone,
			AvatarURL:     c.AvatarURL,
			Status:        c.Status,
			StatusLabel:   model.CollectorStatusLabel(c.Status),
			// schema 暂未细分服务区域，返回空串由前端隐藏
			ServiceArea: "",
			Rating:      rating,
			TodayOrders: counts.TodayOrders,
			TotalOrders: counts.TotalOrders,
			CreatedAt:   util.FormatDateTime(c.CreatedAt),
		})
	}
	return items, total, stats, nil
}
