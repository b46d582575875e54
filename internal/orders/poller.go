// Package orders tracks order lifecycle on both sides of the counter: the
// user's polled order lists and the admin's status state machine.
package orders

import (
	"context"
	"sync"
	"time"

	"github.com/foodhubapp/foodhub-client/internal/logging"
	"github.com/foodhubapp/foodhub-client/internal/models"
	"github.com/foodhubapp/foodhub-client/pkg/apiclient"
)

// UserAPI is the slice of the API client the user-side poller needs.
type UserAPI interface {
	UserOrders(ctx context.Context, userID string) (*apiclient.OrdersSnapshot, error)
	CancelOrder(ctx context.Context, orderID string) error
}

// Poller periodically fetches a user's orders and keeps the last good
// classification. A failed fetch only sets a transient error message; the
// previous lists stay available rather than blanking the view.
type Poller struct {
	api      UserAPI
	userID   string
	interval time.Duration

	mu      sync.Mutex
	live    []models.Order
	past    []models.Order
	lastErr string
	fetched bool
}

func NewPoller(api UserAPI, userID string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Poller{api: api, userID: userID, interval: interval}
}

// Start launches the poll loop and returns its stop handle. Callers must
// stop the poller when the owning view goes away.
func (p *Poller) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

// Run polls until ctx is cancelled: once immediately, then on the interval.
func (p *Poller) Run(ctx context.Context) {
	runEvery(ctx, p.interval, p.poll)
}

func (p *Poller) poll(ctx context.Context) {
	snap, err := p.api.UserOrders(ctx, p.userID)
	if err != nil {
		logging.FromContext(ctx).Warn("user_orders_poll_failed", "user", p.userID, "error", err)
		p.mu.Lock()
		p.lastErr = "No orders"
		p.mu.Unlock()
		return
	}

	live, past := Classify(snap.LiveOrders, snap.PastOrders)

	p.mu.Lock()
	p.live = live
	p.past = past
	p.lastErr = ""
	p.fetched = true
	p.mu.Unlock()
}

// Snapshot returns the current display lists and the transient error
// message, empty when the last poll succeeded.
func (p *Poller) Snapshot() (live, past []models.Order, errMsg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	live = append([]models.Order(nil), p.live...)
	past = append([]models.Order(nil), p.past...)
	return live, past, p.lastErr
}

// Fetched reports whether at least one poll has succeeded.
func (p *Poller) Fetched() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fetched
}

// Cancel asks the server to cancel a pending order and, once it agrees,
// drops the order from the live list without waiting for the next poll.
func (p *Poller) Cancel(ctx context.Context, orderID string) error {
	if err := p.api.CancelOrder(ctx, orderID); err != nil {
		return err
	}
	p.mu.Lock()
	kept := p.live[:0]
	for _, o := range p.live {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	p.live = kept
	p.mu.Unlock()
	return nil
}
