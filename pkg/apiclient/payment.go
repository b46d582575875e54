package apiclient

import (
	"context"
	"net/http"
)

// PaymentOrder is the gateway order the opaque checkout widget is opened
// with. Everything past this handoff happens inside the gateway.
type PaymentOrder struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (c *Client) CreatePaymentOrder(ctx context.Context, amount float64, currency string) (*PaymentOrder, error) {
	body := map[string]any{"amount": amount, "currency": currency}
	var out PaymentOrder
	if err := c.do(ctx, http.MethodPost, "/create-order", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPayment forwards the gateway's success callback payload for
// server-side verification.
func (c *Client) VerifyPayment(ctx context.Context, payload map[string]string) (bool, error) {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/verify-payment", "", payload, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}
