package service

import (
	"recycle-backend/internal/model"
	"recycle-backend/internal/repository/interfaces"
	"recycle-backend/internal/util"
)

// AddressService 处理用户地址的业务逻辑
type AddressService struct {
	addressRepo interfaces.AddressRepository
}

// NewAddressService 创建一个新的 AddressService 实例
func NewAddressService(addressRepo interfaces.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// AdminListAddresses 后台地址列表及标签分布统计
func (s *AddressService) AdminListAddresses(q model.AddressQuery) ([]model.AdminAddressItem, int, *model.AddressStats, error) {
	addresses, total, stats, err := s.addressRepo.AdminList(q)
	if err != nil {
		return nil, 0, nil, err
	}

	items := make([]model.AdminAddressItem, 0, len(addresses))
	for _, a := range addresses {
		items = append(items, model.AdminAddressItem{
			ID:            a.ID,
			AddressCode:   util.AddressCode(a.ID),
			UserID:        a.UserID,
			UserNickname:  a.Nickname,
			UserAvatarURL: a.UserAvatarURL,
			ContactName:   a.Name,
			Phone:         a.Phone,
			FullAddress:   util.JoinAddress(a.Province, a.City, a.District, a.AddressDetail),
			Tag:           a.Tag,
			IsDefault:     a.IsDefault == 1,
			CreatedAt:     util.FormatDateTime(a.CreatedAt),
		})
	}
	return items, total, stats, nil
}

// ListUserAddresses 小程序端地址列表
func (s *AddressService) ListUserAddresses(userID int) ([]model.MPAddressItem, error) {
	addresses, err := s.addressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]model.MPAddressItem, 0, len(addresses))
	for _, a := range addresses {
		items = append(items, model.MPAddressItem{
			ID:            a.ID,
			Name:          a.Name,
			Phone:         a.Phone,
			Province:      a.Province,
			City:          a.City,
			District:      a.District,
			AddressDetail: a.AddressDetail,
			FullAddress:   util.JoinAddress(a.Province, a.City, a.District, a.AddressDetail),
			Tag:           a.Tag,
			IsDefault:     a.IsDefault,
		})
	}
	return items, nil
}

// CreateAddress 新建地址，返回新地址ID
func (s *AddressService) CreateAddress(userID int, in *model.AddressInput) (int, error) {
	return s.addressRepo.Create(userID, in)
}

// UpdateAddress 更新地址
func (s *AddressService) UpdateAddress(id, userID int, in *model.AddressInput) error {
	return s.addressRepo.Update(id, userID, in)
}

// DeleteAddress 删除地址
func (s *AddressService) DeleteAddress(id, userID int) error {
	return s.addressRepo.Delete(id, userID)
}
