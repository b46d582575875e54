package orders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/foodhubapp/foodhub-client/internal/logging"
	"github.com/foodhubapp/foodhub-client/internal/models"
	"github.com/foodhubapp/foodhub-client/pkg/apiclient"
)

var (
	ErrNotFound            = errors.New("order not found")
	ErrBadTransition       = errors.New("status transition not allowed")
	ErrDeliveryBoyRequired = errors.New("delivery boy must be assigned")
)

// AdminAPI is the slice of the API client the admin flow needs.
type AdminAPI interface {
	AdminOrders(ctx context.Context, adminID string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, upd apiclient.StatusUpdate) error
}

// AdminFlow polls the restaurant's orders and applies status transitions.
// A transition is validated locally, sent to the server, and only patched
// into the local record after the server confirms. Nothing is applied
// optimistically.
type AdminFlow struct {
	api      AdminAPI
	adminID  string
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	orders  []models.Order
	lastErr string
}

func NewAdminFlow(api AdminAPI, adminID string, interval time.Duration) *AdminFlow {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &AdminFlow{api: api, adminID: adminID, interval: interval, now: time.Now}
}

// Start launches the poll loop and returns its stop handle.
func (f *AdminFlow) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func (f *AdminFlow) Run(ctx context.Context) {
	runEvery(ctx, f.interval, f.poll)
}

func (f *AdminFlow) poll(ctx context.Context) {
	fetched, err := f.api.AdminOrders(ctx, f.adminID)
	if err != nil {
		logging.FromContext(ctx).Warn("admin_orders_poll_failed", "admin", f.adminID, "error", err)
		f.mu.Lock()
		f.lastErr = "Failed to fetch orders"
		f.mu.Unlock()
		return
	}

	sortNewestFirst(fetched)

	f.mu.Lock()
	f.orders = fetched
	f.lastErr = ""
	f.mu.Unlock()
}

func (f *AdminFlow) Orders() ([]models.Order, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order(nil), f.orders...), f.lastErr
}

// UpdateStatus proposes a transition for one order. Invalid transitions and
// a missing delivery assignment are rejected before any network call. On a
// confirmed update the local record is patched with the new status and
// delivery fields.
func (f *AdminFlow) UpdateStatus(ctx context.Context, orderID string, to models.OrderStatus, deliveryBoy string, deliveryTime int) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrBadTransition, to)
	}

	f.mu.Lock()
	var current *models.Order
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			current = &f.orders[i]
			break
		}
	}
	if current == nil {
		f.mu.Unlock()
		return ErrNotFound
	}
	from := current.Status
	restaurantID := current.Restaurant.ID
	f.mu.Unlock()

	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, from, to)
	}
	if to == models.StatusOutForDelivery && deliveryBoy == "" {
		return ErrDeliveryBoyRequired
	}

	err := f.api.UpdateOrderStatus(ctx, apiclient.StatusUpdate{
		OrderID:      orderID,
		RestaurantID: restaurantID,
		Status:       to,
		DeliveryBoy:  deliveryBoy,
		DeliveryTime: deliveryTime,
	})
	if err != nil {
		return err
	}

	// server confirmed; now the local record may change
	f.mu.Lock()
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = to
			if deliveryBoy != "" {
				f.orders[i].DeliveryBoy = deliveryBoy
			}
			if deliveryTime > 0 {
				f.orders[i].DeliveryTime = deliveryTime
			}
			break
		}
	}
	f.mu.Unlock()

	logging.FromContext(ctx).Info("order_status_updated", "order", orderID, "from", from, "to", to)
	return nil
}

// DateGroup is one calendar date's worth of orders for the admin view.
type DateGroup struct {
	Date   string // 2006-01-02
	Today  bool
	Orders []models.Order
}

// GroupByDate buckets the current orders by creation date, newest date
// first, with today's bucket flagged.
func (f *AdminFlow) GroupByDate() []DateGroup {
	current, _ := f.Orders()
	today := f.now().Format("2006-01-02")

	buckets := make(map[string][]models.Order)
	var dates []string
	for _, o := range current {
		d := o.CreatedAt.Format("2006-01-02")
		if _, seen := buckets[d]; !seen {
			dates = append(dates, d)
		}
		buckets[d] = append(buckets[d], o)
	}

	groups := make([]DateGroup, 0, len(dates))
	for _, d := range dates {
		groups = append(groups, DateGroup{Date: d, Today: d == today, Orders: buckets[d]})
	}
	return groups
}
