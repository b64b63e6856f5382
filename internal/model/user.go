package model

import "time"

// User 对应 user 表的一行，可空列用指针表示
type User struct {
	ID            int
	Nickname      *string
	AvatarURL     *string
	Phone         *string
	LevelID       *int
	TotalPoints   *int
	CurrentPoints *int
	TotalCarbonKg *float64
	RecycleCount  *int
	Status        int
	CreatedAt     *time.Time
	UpdatedAt     *time.Time

	// 联查出的等级名称
	LevelName *string
}

// UserQuery 用户列表的筛选条件
type UserQuery struct {
	Search  string
	LevelID string
	Page    int
	PerPage int
}

// UserListItem 后台用户列表行
type UserListItem struct {
	ID            int     `json:"id"`
	UserCode      string  `json:"user_code"`
	Nickname      *string `json:"nickname"`
	AvatarURL     *string `json:"avatar_url"`
	Phone         *string `json:"phone"`
	LevelName     *string `json:"level_name"`
	CurrentPoints *int    `json:"current_points"`
	TotalCarbonKg float64 `json:"total_carbon_kg"`
	RecycleCount  *int    `json:"recycle_count"`
	Status        string  `json:"status"`
	CreatedAt     *string `json:"created_at"`
}

// DefaultAddress 用户详情里的默认地址
type DefaultAddress struct {
	Province      *string `json:"province"`
	City          *string `json:"city"`
	District      *string `json:"district"`
	AddressDetail *string `json:"address_detail"`
}

// UserDetail 用户详情联查结果（user + 等级 + 默认地址）
type UserDetail struct {
	User
	DefaultAddr *DefaultAddress
}

// UserDetailResponse 用户详情响应
type UserDetailResponse struct {
	ID             int             `json:"id"`
	UserCode       string          `json:"user_code"`
	Nickname       *string         `json:"nickname"`
	AvatarURL      *string         `json:"avatar_url"`
	Phone          *string         `json:"phone"`
	LevelName      *string         `json:"level_name"`
	TotalPoints    *int            `json:"total_points"`
	CurrentPoints  *int            `json:"current_points"`
	TotalCarbonKg  float64         `json:"total_carbon_kg"`
	RecycleCount   *int            `json:"recycle_count"`
	CreatedAt      *string         `json:"created_at"`
	UpdatedAt      *string         `json:"updated_at"`
	DefaultAddress *DefaultAddress `json:"default_address"`
	Status         string          `json:"status"`
}

// UserLevel 对应 user_level 表，UserCount 为联查出的等级人数
type UserLevel struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	MinPoints   *int    `json:"min_points"`
	MaxPoints   *int    `json:"max_points"`
	BadgeIcon   *string `json:"badge_icon"`
	Description *string `json:"description"`
	UserCount   int     `json:"user_count"`
}

// RankingEntry 排行榜条目
type RankingEntry struct {
	Rank         int     `json:"rank"`
	UserID       int     `json:"user_id"`
	Nickname     *string `json:"nickname"`
	AvatarURL    *string `json:"avatar_url"`
	Score        float64 `json:"score"`
	RecycleCount *int    `json:"recycle_count"`
}

// MPUserProfile 小程序端个人信息
type MPUserProfile struct {
	ID            int     `json:"id"`
	Nickname      *string `json:"nickname"`
	AvatarURL     *string `json:"avatar_url"`
	Phone         *string `json:"phone"`
	LevelName     *string `json:"level_name"`
	TotalPoints   *int    `json:"total_points"`
	CurrentPoints *int    `json:"current_points"`
	TotalCarbonKg float64 `json:"total_carbon_kg"`
	RecycleCount  *int    `json:"recycle_count"`
}

// DashboardSummary 仪表盘汇总
type DashboardSummary struct {
	TotalUsers        int     `json:"total_users"`
	TodayNewUsers     int     `json:"today_new_users"`
	ActiveUsers       int     `json:"active_users"`
	DisabledUsers     int     `json:"disabled_users"`
	TodayOrders       int     `json:"today_orders"`
	TodayCarbonKg     float64 `json:"today_carbon_kg"`
	TotalPointsEarned int     `json:"total_points_earned"`
	TodayPointsEarned int     `json:"today_points_earned"`
}
