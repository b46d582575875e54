// Package cart implements the multi-restaurant shopping cart: pure mutators
// over the cart value plus a Store that binds each mutation to one persist.
package cart

import (
	"errors"

	"github.com/foodhubapp/foodhub-client/internal/models"
)

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrNotFound    = errors.New("not found")
)

// QuantityPolicy selects what a decrement below 1 does. The catalog view
// removes the item, the checkout review clamps at 1. The two views really
// do disagree; both behaviors are kept on purpose.
type QuantityPolicy int

const (
	// PolicyBrowse drops an item whose quantity reaches 0 and prunes the
	// restaurant entry if it was the last item.
	PolicyBrowse QuantityPolicy = iota
	// PolicyReview clamps quantity at a minimum of 1.
	PolicyReview
)

// AddItem returns the cart with item added under the given restaurant:
// a new entry for an unseen restaurant, a new line for an unseen item, or a
// +1 on an existing line. The input cart is not modified.
func AddItem(c models.Cart, userID string, r models.Restaurant, item models.MenuItem, section string) models.Cart {
	out := make(models.Cart, len(c))
	copy(out, c)

	for i := range out {
		if out[i].RestaurantID != r.Key() {
			continue
		}
		items := make([]models.CartItem, len(out[i].Items))
		copy(items, out[i].Items)
		for j := range items {
			if items[j].ID == item.ID {
				items[j].Quantity++
				out[i].Items = items
				return out
			}
		}
		out[i].Items = append(items, models.CartItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Section:  section,
			Quantity: 1,
		})
		return out
	}

	return append(out, models.CartEntry{
		UserID:         userID,
		RestaurantID:   r.Key(),
		RestaurantName: r.RestaurantName,
		Items: []models.CartItem{{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Section:  section,
			Quantity: 1,
		}},
	})
}

// ChangeQuantity applies delta to one item under one restaurant according
// to the policy. Under PolicyBrowse a quantity that reaches 0 removes the
// item, and an entry left without items is removed entirely.
func ChangeQuantity(c models.Cart, restaurantID, itemID string, delta int, policy QuantityPolicy) models.Cart {
	out := make(models.Cart, 0, len(c))
	for _, entry := range c {
		if entry.RestaurantID != restaurantID {
			out = append(out, entry)
			continue
		}

		items := make([]models.CartItem, 0, len(entry.Items))
		for _, it := range entry.Items {
			if it.ID != itemID {
				items = append(items, it)
				continue
			}
			q := it.Quantity + delta
			switch policy {
			case PolicyReview:
				if q < 1 {
					q = 1
				}
			default:
				if q < 1 {
					continue // pruned
				}
			}
			it.Quantity = q
			items = append(items, it)
		}

		if len(items) == 0 {
			continue // empty restaurant entries are pruned too
		}
		entry.Items = items
		out = append(out, entry)
	}
	return out
}

// RemoveItem deletes the item outright and prunes the restaurant entry if
// it was the last one.
func RemoveItem(c models.Cart, restaurantID, itemID string) models.Cart {
	out := make(models.Cart, 0, len(c))
	for _, entry := range c {
		if entry.RestaurantID != restaurantID {
			out = append(out, entry)
			continue
		}
		items := make([]models.CartItem, 0, len(entry.Items))
		for _, it := range entry.Items {
			if it.ID != itemID {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		entry.Items = items
		out = append(out, entry)
	}
	return out
}

// Quantity reports the current count of an item within a restaurant entry,
// 0 when absent.
func Quantity(c models.Cart, restaurantID, itemID string) int {
	for _, entry := range c {
		if entry.RestaurantID != restaurantID {
			continue
		}
		for _, it := range entry.Items {
			if it.ID == itemID {
				return it.Quantity
			}
		}
	}
	return 0
}
