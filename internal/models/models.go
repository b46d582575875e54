package models

import "time"

// CartItem is a single menu item selection inside a restaurant's cart entry.
// Quantity below 1 must never be persisted; mutators prune such items.
type CartItem struct {
	ID       string  `json:"_id"      validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Section  string  `json:"section"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

// CartEntry groups the items picked from one restaurant. A user's cart holds
// at most one entry per restaurant id.
type CartEntry struct {
	UserID         string     `json:"userId"`
	RestaurantID   string     `json:"restaurantId"   validate:"required"`
	RestaurantName string     `json:"restaurantName"`
	Items          []CartItem `json:"items"          validate:"min=1,dive"`
}

func (e CartEntry) Subtotal() float64 {
	var sum float64
	for _, it := range e.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Cart is the full multi-restaurant selection pending checkout.
type Cart []CartEntry

func (c Cart) Total() float64 {
	var sum float64
	for _, e := range c {
		sum += e.Subtotal()
	}
	return sum
}

func (c Cart) Empty() bool { return len(c) == 0 }

type MenuItem struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuSection struct {
	ID         string     `json:"_id"`
	Section    string     `json:"section"`
	SectionImg string     `json:"sectionImg,omitempty"`
	Items      []MenuItem `json:"items"`
}

type Restaurant struct {
	ID             string        `json:"_id"`
	RestaurantID   string        `json:"restaurantId,omitempty"`
	RestaurantName string        `json:"restaurantName"`
	Menu           []MenuSection `json:"menu"`
}

// Key returns the identifier used for cart grouping. Older catalog payloads
// carry the id under restaurantId, newer ones under _id.
func (r Restaurant) Key() string {
	if r.RestaurantID != "" {
		return r.RestaurantID
	}
	return r.ID
}

type OrderRestaurant struct {
	ID             string `json:"_id"`
	RestaurantName string `json:"restaurantName"`
}

type OrderUser struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Order is the server-owned record created at placement. The client never
// mutates one except by patching status fields after a confirmed update.
type Order struct {
	ID           string          `json:"_id"`
	User         OrderUser       `json:"userId"`
	Restaurant   OrderRestaurant `json:"restaurantId"`
	Items        []CartItem      `json:"items"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	DeliveryBoy  string          `json:"deliveryBoy,omitempty"`
	DeliveryTime int             `json:"deliveryTime,omitempty"`
}

func (o Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// User is the authenticated profile kept under the "user" storage key.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Token      string `json:"token"`
	Mobile     string `json:"mobile,omitempty"`
	DOB        string `json:"dob,omitempty"`
	Department string `json:"department,omitempty"`
}
