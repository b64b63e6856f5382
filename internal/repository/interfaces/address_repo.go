package interfaces

import "recycle-backend/internal/model"

// AddressRepository 用户地址的数据库操作接口
type AddressRepository interface {
	AdminList(q model.AddressQuery) ([]model.UserAddress, int, *model.AddressStats, error)
	ListByUser(userID int) ([]model.UserAddress, error)
	Create(userID int, in *model.AddressInput) (int, error)
	Update(id, userID int, in *model.AddressInput) error
	Delete(id, userID int) error
}
