package model

import "time"

// AfterSale 对应 after_sale 表，联查用户与订单号
type AfterSale struct {
	ID          int
	OrderID     int
	UserID      int
	Type        *string
	Description *string
	Status      int
	CreatedAt   *time.Time
	ResolvedAt  *time.Time

	Nickname  *string
	AvatarURL *string
	OrderNo   *string
}

// AfterSaleQuery 售后工单列表的筛选条件
type AfterSaleQuery struct {
	Search    string
	Status    string
	Type      string
	DateStart string
	DateEnd   string
	Page      int
	PerPage   int
}

// AfterSaleStats 工单状态统计（随筛选条件变化）
type AfterSaleStats struct {
	TotalTickets int     `json:"total_tickets"`
	Pending      int     `json:"pending"`
	Processing   int     `json:"processing"`
	Resolved     int     `json:"resolved"`
	Closed       int     `json:"closed"`
	ResolveRate  float64 `json:"resolve_rate"`
}

// AfterSaleItem 售后工单列表行
type AfterSaleItem struct {
	ID            int     `json:"id"`
	OrderID       int     `json:"order_id"`
	OrderNo       *string `json:"order_no"`
	UserID        int     `json:"user_id"`
	UserNickname  *string `json:"user_nickname"`
	UserAvatarURL *string `json:"user_avatar_url"`
	Type          *string `json:"type"`
	Description   *string `json:"description"`
	Status        int     `json:"status"`
	StatusLabel   string  `json:"status_label"`
	CreatedAt     *string `json:"created_at"`
	ResolvedAt    *string `json:"resolved_at"`
}
