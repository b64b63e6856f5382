package model

import "time"

// Station 对应 recycle_station 表，StatusName 联查自 station_status
type Station struct {
	ID            int
	Name          string
	Type          *string
	StatusID      *int
	StatusName    *string
	Province      *string
	City          *string
	District      *string
	AddressDetail *string
	Latitude      *float64
	Longitude     *float64
	OpeningHours  *string
	ContactPhone  *string
	Remark        *string
	CreatedAt     *time.Time
}

// StationQuery 网点列表的筛选条件
type StationQuery struct {
	Search   string
	Type     string
	StatusID string
	Page     int
	PerPage  int
}

// StationStats 网点状态统计（随筛选条件变化）
type StationStats struct {
	TotalStations int `json:"total_stations"`
	Running       int `json:"running"`
	Maintenance   int `json:"maintenance"`
	Disabled      int `json:"disabled"`
}

// StationItem 网点响应行
type StationItem struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Type          *string  `json:"type"`
	StatusID      *int     `json:"status_id"`
	StatusName    *string  `json:"status_name"`
	Province      *string  `json:"province"`
	City          *string  `json:"city"`
	District      *string  `json:"district"`
	AddressDetail *string  `json:"address_detail"`
	FullAddress   *string  `json:"full_address"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	OpeningHours  *string  `json:"opening_hours"`
	ContactPhone  *string  `json:"contact_phone"`
	CreatedAt     *string  `json:"created_at"`
}
