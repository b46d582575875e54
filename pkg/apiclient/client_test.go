package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodhubapp/foodhub-client/internal/models"
)

type fakeAPI struct {
	e        *echo.Echo
	srv      *httptest.Server
	requests atomic.Int64
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{e: echo.New()}
	f.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			f.requests.Add(1)
			return next(c)
		}
	})
	f.srv = httptest.NewServer(f.e)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) client() *Client { return New(f.srv.URL) }

func testCart() models.Cart {
	return models.Cart{{
		UserID:         "u1",
		RestaurantID:   "r1",
		RestaurantName: "Pizza Palace",
		Items: []models.CartItem{
			{ID: "i1", Name: "Pizza", Price: 200, Section: "Pizzas", Quantity: 2},
		},
	}}
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.POST("/auth", func(c echo.Context) error {
		var req map[string]string
		require.NoError(t, c.Bind(&req))
		assert.Equal(t, "jo@example.com", req["email"])
		assert.Equal(t, "user", req["role"])
		return c.JSON(http.StatusOK, map[string]string{
			"token": "tok-1", "id": "u1", "name": "Jo", "email": "jo@example.com",
		})
	})

	user, err := f.client().Login(context.Background(), "jo@example.com", "secret", "user")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "tok-1", user.Token)
	assert.Equal(t, "user", user.Role)
}

func TestClient_LoginError(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.POST("/auth", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	})

	_, err := f.client().Login(context.Background(), "jo@example.com", "wrong", "user")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestClient_PlaceOrder(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.POST("/place-order", func(c echo.Context) error {
		assert.Equal(t, "Bearer tok-1", c.Request().Header.Get("Authorization"))
		var req struct {
			Cart models.Cart `json:"cart"`
		}
		require.NoError(t, c.Bind(&req))
		require.Len(t, req.Cart, 1)
		assert.Equal(t, 2, req.Cart[0].Items[0].Quantity)
		return c.JSON(http.StatusOK, map[string]string{"message": "Order placed"})
	})

	msg, err := f.client().PlaceOrder(context.Background(), "tok-1", testCart())
	require.NoError(t, err)
	assert.Equal(t, "Order placed", msg)
}

func TestClient_PlaceOrderRejectsEmptyCartLocally(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)

	_, err := f.client().PlaceOrder(context.Background(), "tok-1", models.Cart{})
	require.Error(t, err)
	assert.Zero(t, f.requests.Load(), "validation must run before the network")
}

func TestClient_PlaceOrderRejectsZeroQuantityLocally(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	bad := testCart()
	bad[0].Items[0].Quantity = 0

	_, err := f.client().PlaceOrder(context.Background(), "tok-1", bad)
	require.Error(t, err)
	assert.Zero(t, f.requests.Load())
}

func TestClient_UserOrders(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newFakeAPI(t)
	f.e.GET("/user/:id/orders", func(c echo.Context) error {
		assert.Equal(t, "u1", c.Param("id"))
		return c.JSON(http.StatusOK, map[string]any{
			"liveOrders": []models.Order{
				{ID: "o1", Status: models.StatusPending, CreatedAt: created},
			},
			"pastOrders": []models.Order{
				{ID: "o2", Status: models.StatusDelivered, CreatedAt: created.Add(-24 * time.Hour)},
			},
		})
	})

	snap, err := f.client().UserOrders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, snap.LiveOrders, 1)
	assert.Equal(t, "o1", snap.LiveOrders[0].ID)
	assert.True(t, snap.LiveOrders[0].CreatedAt.Equal(created))
	require.Len(t, snap.PastOrders, 1)
}

func TestClient_CancelOrder(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.PUT("/orders/:id/cancel", func(c echo.Context) error {
		assert.Equal(t, "o1", c.Param("id"))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, f.client().CancelOrder(context.Background(), "o1"))
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.PUT("/admin/orders/:id/status", func(c echo.Context) error {
		assert.Equal(t, "o1", c.Param("id"))
		var req map[string]any
		require.NoError(t, c.Bind(&req))
		assert.Equal(t, "Out for Delivery", req["status"])
		assert.Equal(t, "r1", req["restaurantId"])
		assert.Equal(t, "Ravi", req["deliveryBoy"])
		return c.NoContent(http.StatusOK)
	})

	err := f.client().UpdateOrderStatus(context.Background(), StatusUpdate{
		OrderID:      "o1",
		RestaurantID: "r1",
		Status:       models.StatusOutForDelivery,
		DeliveryBoy:  "Ravi",
		DeliveryTime: 30,
	})
	require.NoError(t, err)
}

func TestClient_RestaurantsMalformedPayload(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.GET("/home", func(c echo.Context) error {
		// an object where an array is documented
		return c.JSON(http.StatusOK, map[string]string{"oops": "not a list"})
	})

	_, err := f.client().Restaurants(context.Background())
	var badPayload *BadPayloadError
	require.ErrorAs(t, err, &badPayload)
}

func TestClient_Restaurants(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.GET("/home", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []models.Restaurant{
			{ID: "r1", RestaurantName: "Pizza Palace", Menu: []models.MenuSection{
				{ID: "s1", Section: "Pizzas", Items: []models.MenuItem{{ID: "i1", Name: "Pizza", Price: 200}}},
			}},
		})
	})

	rs, err := f.client().Restaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "r1", rs[0].Key())
	require.Len(t, rs[0].Menu, 1)
}

func TestClient_VerifyPayment(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)
	f.e.POST("/verify-payment", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	})

	ok, err := f.client().VerifyPayment(context.Background(), map[string]string{"razorpay_order_id": "ord-1"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_Signup_Validation(t *testing.T) {
	t.Parallel()

	f := newFakeAPI(t)

	tests := []struct {
		name string
		req  SignupRequest
	}{
		{name: "missing email", req: SignupRequest{Name: "Jo", Password: "secret1"}},
		{name: "bad email", req: SignupRequest{Name: "Jo", Email: "nope", Password: "secret1"}},
		{name: "short password", req: SignupRequest{Name: "Jo", Email: "jo@example.com", Password: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, f.client().Signup(context.Background(), tt.req))
		})
	}
	assert.Zero(t, f.requests.Load())
}
