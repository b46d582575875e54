package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/foodhubapp/foodhub-client/internal/models"
)

// Restaurants fetches the full catalog from GET /home.
func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	var out []models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/home", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RestaurantByName resolves a single restaurant, used when a menu is opened
// by direct URL instead of from the catalog listing.
func (c *Client) RestaurantByName(ctx context.Context, name string) (*models.Restaurant, error) {
	if name == "" {
		return nil, fmt.Errorf("restaurant name required")
	}
	var out models.Restaurant
	path := "/home/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetSectionImage writes a discovered section photo back to the catalog so
// later visitors skip the image search.
func (c *Client) SetSectionImage(ctx context.Context, section, imageURL string) error {
	body := map[string]string{"section": section, "imageUrl": imageURL}
	return c.do(ctx, http.MethodPost, "/admin/sections/image", "", body, nil)
}
