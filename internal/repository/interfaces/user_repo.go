package interfaces

import "recycle-backend/internal/model"

// UserRepository 接口定义了用户仓库应该实现的方法
type UserRepository interface {
	List(q model.UserQuery) ([]model.User, int, error)
	FindDetail(id int) (*model.UserDetail, error)
	FindProfile(id int) (*model.User, error)
	FindByPhone(phone string) (*model.User, error)
	GetStatus(id int) (*int, error)
	UpdateStatus(id, status int) error
	Ranking(byCarbon bool, limit int) ([]model.RankingEntry, error)
	ListLevels() ([]model.UserLevel, error)
}
