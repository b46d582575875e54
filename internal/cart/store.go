package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foodhubapp/foodhub-client/internal/logging"
	"github.com/foodhubapp/foodhub-client/internal/models"
	"github.com/foodhubapp/foodhub-client/internal/storage"
)

// EventSink receives cart mutation events. Publishing is best-effort; a
// failed publish never fails the mutation.
type EventSink interface {
	Publish(ctx context.Context, event any) error
}

// Event mirrors the shape the shop's event stream uses for cart activity.
type Event struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	UserID       string    `json:"userID"`
	RestaurantID string    `json:"restaurantId,omitempty"`
	ItemID       string    `json:"itemID,omitempty"`
	Quantity     int       `json:"quantity,omitempty"`
	At           time.Time `json:"at"`
}

// Store owns the persisted cart for each user. Every mutation is a single
// read-modify-write under the mutex followed by exactly one Set, so memory
// and storage can never be observed disagreeing. Two processes writing the
// same key are last-write-wins; that limitation is accepted for a
// single-session client.
type Store struct {
	mu     sync.Mutex
	kv     storage.Store
	events EventSink
}

func NewStore(kv storage.Store, events EventSink) *Store {
	return &Store{kv: kv, events: events}
}

func cartKey(userID string) string { return "cart_" + userID }

// Load reads the persisted cart, returning an empty cart for a user with no
// stored key.
func (s *Store) Load(userID string) (models.Cart, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	var c models.Cart
	ok, err := s.kv.Get(cartKey(userID), &c)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return models.Cart{}, nil
	}
	return c, nil
}

func (s *Store) AddItem(ctx context.Context, userID string, r models.Restaurant, item models.MenuItem, section string) (models.Cart, error) {
	next, err := s.mutate(userID, func(c models.Cart) models.Cart {
		return AddItem(c, userID, r, item, section)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, Event{
		Type:         "add_cart_items",
		UserID:       userID,
		RestaurantID: r.Key(),
		ItemID:       item.ID,
		Quantity:     Quantity(next, r.Key(), item.ID),
	})
	return next, nil
}

func (s *Store) ChangeQuantity(ctx context.Context, userID, restaurantID, itemID string, delta int, policy QuantityPolicy) (models.Cart, error) {
	next, err := s.mutate(userID, func(c models.Cart) models.Cart {
		return ChangeQuantity(c, restaurantID, itemID, delta, policy)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, Event{
		Type:         "change_cart_quantity",
		UserID:       userID,
		RestaurantID: restaurantID,
		ItemID:       itemID,
		Quantity:     Quantity(next, restaurantID, itemID),
	})
	return next, nil
}

func (s *Store) RemoveItem(ctx context.Context, userID, restaurantID, itemID string) (models.Cart, error) {
	next, err := s.mutate(userID, func(c models.Cart) models.Cart {
		return RemoveItem(c, restaurantID, itemID)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, Event{
		Type:         "remove_cart_items",
		UserID:       userID,
		RestaurantID: restaurantID,
		ItemID:       itemID,
	})
	return next, nil
}

// Clear drops the user's cart key entirely, as happens after a successful
// order placement.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}
	s.mu.Lock()
	err := s.kv.Delete(cartKey(userID))
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.publish(ctx, Event{Type: "clear_cart", UserID: userID})
	return nil
}

func (s *Store) mutate(userID string, fn func(models.Cart) models.Cart) (models.Cart, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var current models.Cart
	if _, err := s.kv.Get(cartKey(userID), &current); err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	next := fn(current)
	if err := s.kv.Set(cartKey(userID), next); err != nil {
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return next, nil
}

func (s *Store) publish(ctx context.Context, ev Event) {
	if s.events == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.At = time.Now().UTC()
	if err := s.events.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).Warn("cart_event_publish_failed", "type", ev.Type, "error", err)
	}
}
