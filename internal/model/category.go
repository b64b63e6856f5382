package model

// Category 对应 recycle_category 表
type Category struct {
	ID          int
	Name        string
	Icon        *string
	PointsPerKg *int
	Description *string
	SortOrder   *int
}

// CategoryQuery 品类列表的筛选条件
type CategoryQuery struct {
	Search  string
	Page    int
	PerPage int
}

// CategoryItem 品类响应行
type CategoryItem struct {
	ID           int     `json:"id"`
	CategoryCode string  `json:"category_code"`
	Name         string  `json:"name"`
	Icon         *string `json:"icon"`
	PointsPerKg  *int    `json:"points_per_kg"`
	Description  *string `json:"description"`
	SortOrder    *int    `json:"sort_order"`
}
