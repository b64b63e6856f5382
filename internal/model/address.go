package model

import "time"

// UserAddress 对应 user_address 表，Nickname/UserAvatarURL 为后台列表联查字段
type UserAddress struct {
	ID            int
	UserID        int
	Name          *string
	Phone         *string
	Province      *string
	City          *string
	District      *string
	AddressDetail *string
	Tag           *string
	IsDefault     int
	CreatedAt     *time.Time

	Nickname      *string
	UserAvatarURL *string
}

// AddressQuery 后台地址列表的筛选条件
type AddressQuery struct {
	Search    string
	Tag       string
	Province  string
	IsDefault string
	Page      int
	PerPage   int
}

// AddressStats 地址标签分布统计
type AddressStats struct {
	TotalAddresses int `json:"total_addresses"`
	Home           int `json:"home"`
	Company        int `json:"company"`
	Default        int `json:"default"`
}

// AdminAddressItem 后台地址列表行
type AdminAddressItem struct {
	ID            int     `json:"id"`
	AddressCode   string  `json:"address_code"`
	UserID        int     `json:"user_id"`
	UserNickname  *string `json:"user_nickname"`
	UserAvatarURL *string `json:"user_avatar_url"`
	ContactName   *string `json:"contact_name"`
	Phone         *string `json:"phone"`
	FullAddress   string  `json:"full_address"`
	Tag           *string `json:"tag"`
	IsDefault     bool    `json:"is_default"`
	CreatedAt     *string `json:"created_at"`
}

// MPAddressItem 小程序端地址列表行
type MPAddressItem struct {
	ID            int     `json:"id"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Province      *string `json:"province"`
	City          *string `json:"city"`
	District      *string `json:"district"`
	AddressDetail *string `json:"address_detail"`
	FullAddress   string  `json:"full_address"`
	Tag           *string `json:"tag"`
	IsDefault     int     `json:"is_default"`
}

// AddressInput 小程序端新建/更新地址参数
type AddressInput struct {
	Name          *string
	Phone         *string
	Province      *string
	City          *string
	District      *string
	AddressDetail *string
	Tag           *string
	IsDefault     int
}
