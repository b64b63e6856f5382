package interfaces

import "recycle-backend/internal/model"

// AfterSaleRepository 售后工单的数据库操作接口
type AfterSaleRepository interface {
	List(q model.AfterSaleQuery) ([]model.AfterSale, int, *model.AfterSaleStats, error)
}
