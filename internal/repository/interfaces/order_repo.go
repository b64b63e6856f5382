package interfaces

import "recycle-backend/internal/model"

// OrderRepository 回收订单的数据库操作接口
type OrderRepository interface {
	List(q model.OrderQuery) ([]model.Order, int, *model.OrderStats, error)
	ItemsByOrderIDs(orderIDs []int) (map[int][]model.OrderItem, error)
	FindDetail(id int) (*model.Order, error)
	ItemsByOrderID(orderID int) ([]model.OrderItem, error)
	ListByUser(userID int, status string) ([]model.Order, error)
	Create(in *model.CreateOrderInput, orderNo string, estimatedPoints int) (int, error)
	Cancel(orderID, userID int) error
}
