package model

import "time"

// Collector 对应 collector 表
type Collector struct {
	ID        int
	Name      *string
	Phone     *string
	AvatarURL *string
	Rating    *float64
	Status    int
	CreatedAt *time.Time
}

// CollectorQuery 回收员列表的筛选条件
type CollectorQuery struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

// CollectorStats 顶部卡片的全局统计，不受筛选影响
type CollectorStats struct {
	TotalCollectors      int     `json:"total_collectors"`
	Online               int     `json:"online"`
	Offline              int     `json:"offline"`
	Disabled             int     `json:"disabled"`
	TodayCompletedOrders int     `json:"today_completed_orders"`
	TodayRecycledKg      float64 `json:"today_recycled_kg"`
	AvgRating            float64 `json:"avg_rating"`
}

// CollectorOrderCounts 单个回收员的订单数统计
type CollectorOrderCounts struct {
	TotalOrders int
	TodayOrders int
}

// CollectorItem 回收员列表行
type CollectorItem struct {
	ID            int     `json:"id"`
	CollectorCode string  `json:"collector_code"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	AvatarURL     *string `json:"avatar_url"`
	Status        int     `json:"status"`
	StatusLabel   string  `json:"status_label"`
	ServiceArea   string  `json:"service_area"`
	Rating        float64 `json:"rating"`
	TodayOrders   int     `json:"today_orders"`
	TotalOrders   int     `json:"total_orders"`
	CreatedAt     *string `json:"created_at"`
}
