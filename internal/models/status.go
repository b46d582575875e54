package models

// OrderStatus values match the API's wire strings exactly, including the
// spaced "Out for Delivery".
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusAccepted       OrderStatus = "Accepted"
	StatusRejected       OrderStatus = "Rejected"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// transitions is the admin-side forward state machine. Backward moves are
// never allowed.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusAccepted, StatusRejected},
	StatusAccepted:       {StatusOutForDelivery},
	StatusOutForDelivery: {StatusDelivered},
}

// CanTransition reports whether an admin may move an order from one status
// to another.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether the order has left the live pipeline. Terminal
// orders belong in order history.
func (s OrderStatus) Terminal() bool {
	switch s {
	case StatusDelivered, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
