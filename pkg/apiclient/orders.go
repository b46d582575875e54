package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/foodhubapp/foodhub-client/internal/models"
)

type placeOrderRequest struct {
	Cart models.Cart `json:"cart" validate:"min=1,dive"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
}

// PlaceOrder submits the whole cart to POST /place-order with the user's
// bearer token. The cart is validated locally first so an empty or
// malformed cart never reaches the network. There is no idempotency key; a
// retry after a timeout can double-place.
func (c *Client) PlaceOrder(ctx context.Context, token string, cart models.Cart) (string, error) {
	req := placeOrderRequest{Cart: cart}
	if err := c.validate.Struct(req); err != nil {
		return "", fmt.Errorf("place order: %w", err)
	}
	var resp placeOrderResponse
	if err := c.do(ctx, http.MethodPost, "/place-order", token, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// OrdersSnapshot is the server's split of a user's orders at one poll.
type OrdersSnapshot struct {
	LiveOrders []models.Order `json:"liveOrders"`
	PastOrders []models.Order `json:"pastOrders"`
}

func (c *Client) UserOrders(ctx context.Context, userID string) (*OrdersSnapshot, error) {
	var snap OrdersSnapshot
	path := fmt.Sprintf("/user/%s/orders", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, "", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	path := fmt.Sprintf("/orders/%s/cancel", url.PathEscape(orderID))
	return c.do(ctx, http.MethodPut, path, "", nil, nil)
}

func (c *Client) AdminOrders(ctx context.Context, adminID string) ([]models.Order, error) {
	var out []models.Order
	path := fmt.Sprintf("/admin/%s/orders", url.PathEscape(adminID))
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StatusUpdate is the admin's proposed transition for one order.
type StatusUpdate struct {
	OrderID      string             `json:"-"`
	RestaurantID string             `json:"restaurantId"`
	Status       models.OrderStatus `json:"status"`
	DeliveryBoy  string             `json:"deliveryBoy,omitempty"`
	DeliveryTime int                `json:"deliveryTime,omitempty"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, upd StatusUpdate) error {
	path := fmt.Sprintf("/admin/orders/%s/status", url.PathEscape(upd.OrderID))
	return c.do(ctx, http.MethodPut, path, "", upd, nil)
}
