// Package checkout drives the three-step checkout flow: cart review,
// address, payment, then order confirmation.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/foodhubapp/foodhub-client/internal/logging"
	"github.com/foodhubapp/foodhub-client/internal/models"
)

type Step int

const (
	StepReview Step = iota + 1
	StepAddress
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepReview:
		return "review"
	case StepAddress:
		return "address"
	case StepPayment:
		return "payment"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrPaymentPending = errors.New("payment not completed")
	ErrNotAtPayment   = errors.New("not at payment step")
)

// CartStore is the slice of the cart store the wizard needs.
type CartStore interface {
	Load(userID string) (models.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// OrderPlacer submits a cart to the order service.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, token string, cart models.Cart) (string, error)
}

// Wizard is a linear state machine over the three checkout steps. Forward
// progress out of review requires a non-empty cart; confirmation requires
// the payment callback to have fired.
type Wizard struct {
	mu          sync.Mutex
	step        Step
	paymentDone bool

	user   models.User
	carts  CartStore
	orders OrderPlacer
}

func NewWizard(user models.User, carts CartStore, orders OrderPlacer) *Wizard {
	return &Wizard{step: StepReview, user: user, carts: carts, orders: orders}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) PaymentDone() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.paymentDone
}

// Next advances one step. Leaving review with an empty cart is refused and
// the wizard stays where it is.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == StepReview {
		c, err := w.carts.Load(w.user.ID)
		if err != nil {
			return err
		}
		if c.Empty() {
			return ErrEmptyCart
		}
	}
	if w.step < StepPayment {
		w.step++
	}
	return nil
}

// Prev steps back, never below review.
func (w *Wizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepReview {
		w.step--
	}
}

// PaymentCompleted is the payment gateway's success callback. It unlocks
// Confirm.
func (w *Wizard) PaymentCompleted() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.paymentDone = true
}

// Confirm submits the full cart. On success the cart is cleared and the
// wizard resets to review. On failure nothing changes: the cart is kept and
// the wizard stays at payment, so the user can retry. Retries have no
// idempotency key and can double-place after a timeout.
func (w *Wizard) Confirm(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepPayment {
		return "", ErrNotAtPayment
	}
	if !w.paymentDone {
		return "", ErrPaymentPending
	}

	c, err := w.carts.Load(w.user.ID)
	if err != nil {
		return "", err
	}
	if c.Empty() {
		return "", ErrEmptyCart
	}

	msg, err := w.orders.PlaceOrder(ctx, w.user.Token, c)
	if err != nil {
		return "", err
	}

	if err := w.carts.Clear(ctx, w.user.ID); err != nil {
		logging.FromContext(ctx).Warn("cart_clear_failed_after_order", "user", w.user.ID, "error", err)
	}
	w.step = StepReview
	w.paymentDone = false
	return msg, nil
}
