package model

// 订单状态
const (
	OrderStatusPending    = 1 // 待上门
	OrderStatusProcessing = 2 // 进行中
	OrderStatusCompleted  = 3 // 已完成
	OrderStatusCanceled   = 4 // 已取消
	OrderStatusAfterSale  = 5 // 售后
)

var orderStatusLabels = map[int]string{
	OrderStatusPending:    "待上门",
	OrderStatusProcessing: "进行中",
	OrderStatusCompleted:  "已完成",
	OrderStatusCanceled:   "已取消",
	OrderStatusAfterSale:  "售后",
}

var afterSaleStatusLabels = map[int]string{
	1: "待处理",
	2: "处理中",
	3: "已解决",
	4: "已关闭",
}

var collectorStatusLabels = map[int]string{
	0: "离线",
	1: "在线",
	2: "已禁用",
}

// OrderStatusLabel 返回订单状态中文名，未知状态返回"未知"
func OrderStatusLabel(status int) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return "未知"
}

func AfterSaleStatusLabel(status int) string {
	if label, ok := afterSaleStatusLabels[status]; ok {
		return label
	}
	return "未知"
}

func CollectorStatusLabel(status int) string {
	if label, ok := collectorStatusLabels[status]; ok {
		return label
	}
	return "未知"
}

// UserStatusLabel 用户状态：1=正常，其余视为已禁用
func UserStatusLabel(status int) string {
	if status == 1 {
		return "正常"
	}
	return "已禁用"
}

// PostStatusLabel 帖子状态：1=正常，0=已删除
func PostStatusLabel(status int) string {
	if status == 1 {
		return "正常"
	}
	return "已删除"
}
