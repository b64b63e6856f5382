package service

import (
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
)

// StatsService 处理仪表盘统计
type StatsService struct {
	statsRepo interfaces.StatsRepository
}

// NewStatsService 创建一个新的 StatsService 实例
func NewStatsService(statsRepo interfaces.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// DashboardSummary 仪表盘汇总数据
func (s *StatsService) DashboardSummary() (*model.DashboardSummary, error) {
	return s.statsRepo.DashboardSummary()
}
