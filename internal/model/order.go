package model

import "time"

// Order 对应 recycle_order 表，联查字段一并带出
type Order struct {
	ID              int
	OrderNo         string
	UserID          int
	AddressID       *int
	CollectorID     *int
	Status          int
	AppointmentDate *time.Time
	TimeSlot        *string
	EstimatedPoints *int
	ActualPoints    *int
	CarbonSavedKg   *float64
	Remark          *string
	PhotoURLs       *string
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
	CompletedAt     *time.Time

	// 联查字段
	UserName       *string
	UserPhone      *string
	Province       *string
	City           *string
	District       *string
	AddressDetail  *string
	CollectorName  *string
	CollectorPhone *string
}

// OrderItem 对应 order_item 表，CategoryName 联查自 recycle_category
type OrderItem struct {
	OrderID         int
	CategoryID      int
	CategoryName    string
	EstimatedWeight *string
	ActualWeight    *float64
	PointsEarned    *int
}

// OrderQuery 订单列表的筛选条件
type OrderQuery struct {
	Search    string
	Status    string
	DateStart string
	DateEnd   string
	Page      int
	PerPage   int
}

// OrderStats 订单状态统计（随筛选条件变化）
type OrderStats struct {
	TotalOrders int `json:"total_orders"`
	Pending     int `json:"pending"`
	Processing  int `json:"processing"`
	Completed   int `json:"completed"`
	Canceled    int `json:"canceled"`
}

// AdminOrderItem 后台订单列表行
type AdminOrderItem struct {
	ID              int      `json:"id"`
	OrderNo         string   `json:"order_no"`
	Status          int      `json:"status"`
	StatusLabel     string   `json:"status_label"`
	UserName        *string  `json:"user_name"`
	UserPhone       *string  `json:"user_phone"`
	Categories      []string `json:"categories"`
	EstimatedWeight *string  `json:"estimated_weight"`
	AppointmentDate *string  `json:"appointment_date"`
	TimeSlot        *string  `json:"time_slot"`
	Address         *string  `json:"address"`
	CollectorName   *string  `json:"collector_name"`
	CollectorPhone  *string  `json:"collector_phone"`
	EstimatedPoints *int     `json:"estimated_points"`
	ActualPoints    *int     `json:"actual_points"`
	CarbonSavedKg   float64  `json:"carbon_saved_kg"`
	CreatedAt       *string  `json:"created_at"`
}

// OrderUserInfo 订单详情里的用户信息
type OrderUserInfo struct {
	ID       int     `json:"id"`
	Nickname *string `json:"nickname"`
	Phone    *string `json:"phone"`
}

// OrderCollectorInfo 订单详情里的回收员信息
type OrderCollectorInfo struct {
	ID    int     `json:"id"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// OrderDetailItem 订单详情里的品类明细
type OrderDetailItem struct {
	CategoryID      int      `json:"category_id"`
	CategoryName    string   `json:"category_name"`
	EstimatedWeight *string  `json:"estimated_weight"`
	ActualWeight    *float64 `json:"actual_weight"`
	PointsEarned    *int     `json:"points_earned"`
}

// OrderDetailResponse 后台订单详情
type OrderDetailResponse struct {
	ID              int                 `json:"id"`
	OrderNo         string              `json:"order_no"`
	Status          int                 `json:"status"`
	StatusLabel     string              `json:"status_label"`
	User            OrderUserInfo       `json:"user"`
	AppointmentDate *string             `json:"appointment_date"`
	TimeSlot        *string             `json:"time_slot"`
	Address         *string             `json:"address"`
	Collector       *OrderCollectorInfo `json:"collector"`
	EstimatedPoints *int                `json:"estimated_points"`
	ActualPoints    *int                `json:"actual_points"`
	CarbonSavedKg   float64             `json:"carbon_saved_kg"`
	Remark          *string             `json:"remark"`
	PhotoURLs       []string            `json:"photo_urls"`
	CreatedAt       *string             `json:"created_at"`
	UpdatedAt       *string             `json:"updated_at"`
	CompletedAt     *string             `json:"completed_at"`
	Items           []OrderDetailItem   `json:"items"`
}

// MPOrderItem 小程序端订单列表行，品类拼成一个字符串
type MPOrderItem struct {
	ID              int     `json:"id"`
	OrderNo         string  `json:"order_no"`
	Status          int     `json:"status"`
	StatusLabel     string  `json:"status_label"`
	Categories      string  `json:"categories"`
	EstimatedWeight *string `json:"estimated_weight"`
	AppointmentDate *string `json:"appointment_date"`
	TimeSlot        *string `json:"time_slot"`
	CollectorName   *string `json:"collector_name"`
	CollectorPhone  *string `json:"collector_phone"`
	EstimatedPoints *int    `json:"estimated_points"`
	ActualPoints    *int    `json:"actual_points"`
	CarbonSavedKg   float64 `json:"carbon_saved_kg"`
	CreatedAt       *string `json:"created_at"`
	CompletedAt     *string `json:"completed_at"`
}

// CreateOrderInput 小程序端下单参数
type CreateOrderInput struct {
	UserID          int
	CategoryID      int
	EstimatedWeight string
	AppointmentDate string
	TimeSlot        string
	AddressID       *int
	Remark          string
}
