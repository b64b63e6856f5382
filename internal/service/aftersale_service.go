package service

import (
	"math"

	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"
)

// AfterSaleService 处理售后工单的业务逻辑
type AfterSaleService struct {
	afterSaleRepo interfaces.AfterSaleRepository
}

// NewAfterSaleService 创建一个新的 AfterSaleService 实例
func NewAfterSaleService(afterSaleRepo interfaces.AfterSaleRepository) *AfterSaleService {
	return &AfterSaleService{afterSaleRepo: afterSaleRepo}
}

// ListAfterSales 售后工单列表及统计，解决率保留一位小数
func (s *AfterSaleService) ListAfterSales(q model.AfterSaleQuery) ([]model.AfterSaleItem, int, *model.AfterSaleStats, error) {
	tickets, total, stats, err := s.afterSaleRepo.List(q)
	if err != nil {
		return nil, 0, nil, err
	}

	if stats.TotalTickets > 0 {
		rate := float64(stats.Resolved) / float64(stats.TotalTickets) * 100
		stats.ResolveRate = math.Round(rate*10) / 10
	}

	items := make([]model.AfterSaleItem, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, model.AfterSaleItem{
			ID:            t.ID,
			OrderID:       t.OrderID,
			OrderNo:       t.OrderNo,
			UserID:        t.UserID,
			UserNickname:  t.Nickname,
			UserAvatarURL: t.AvatarURL,
			Type:          t.Type,
			Description:   t.Description,
			Status:        t.Status,
			StatusLabel:   model.AfterSaleStatusLabel(t.Status),
			CreatedAt:     util.FormatDateTime(t.CreatedAt),
			ResolvedAt:    util.FormatDateTime(t.ResolvedAt),
		})
	}
	return items, total, stats, nil
}
