package constant

import "strings"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatusTransitions is the canonical state graph. Delivered and
// cancelled have no successors.
var OrderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved:   {OrderStatusDispatched, OrderStatusCancelled},
	OrderStatusDispatched: {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	_, ok := OrderStatusTransitions[status]
	return status, ok
}

func (s OrderStatus) IsTerminal() bool {
	return len(OrderStatusTransitions[s]) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range OrderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderPriority string

const (
	OrderPriorityLow    OrderPriority = "low"
	OrderPriorityMedium OrderPriority = "medium"
	OrderPriorityHigh   OrderPriority = "high"
	OrderPriorityUrgent OrderPriority = "urgent"
)

func ParseOrderPriority(s string) (OrderPriority, bool) {
	switch p := OrderPriority(strings.ToLower(strings.TrimSpace(s))); p {
	case OrderPriorityLow, OrderPriorityMedium, OrderPriorityHigh, OrderPriorityUrgent:
		return p, true
	default:
		return "", false
	}
}
