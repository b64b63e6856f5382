package interfaces

import "recycle-backend/internal/model"

// StationRepository 回收网点的数据库操作接口
type StationRepository interface {
	List(q model.StationQuery) ([]model.Station, int, *model.StationStats, error)
	FindByID(id int) (*model.Station, error)
	Create(s *model.Station) error
}
