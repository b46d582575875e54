package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/foodhubapp/foodhub-client/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token      string `json:"token"`
	Name       string `json:"name"`
	ID         string `json:"id"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	DOB        string `json:"dob"`
	Department string `json:"department"`
}

// Login authenticates against POST /auth. The role is chosen by the caller
// ("user" or "admin") and echoed into the returned profile.
func (c *Client) Login(ctx context.Context, email, password, role string) (*models.User, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth", "", loginRequest{Email: email, Password: password, Role: role}, &resp); err != nil {
		return nil, err
	}
	return &models.User{
		ID:         resp.ID,
		Name:       resp.Name,
		Email:      resp.Email,
		Role:       role,
		Token:      resp.Token,
		Mobile:     resp.Mobile,
		DOB:        resp.DOB,
		Department: resp.Department,
	}, nil
}

type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Mobile   string `json:"mobile"`
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/user/signup", "", req, nil)
}

// UpdateProfile patches a single profile field, mirroring the API's
// field-at-a-time contract.
func (c *Client) UpdateProfile(ctx context.Context, userID string, field map[string]string) error {
	path := fmt.Sprintf("/user/%s/profile", url.PathEscape(userID))
	return c.do(ctx, http.MethodPatch, path, "", field, nil)
}

type Address struct {
	Line     string `json:"line"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

func (c *Client) GetAddress(ctx context.Context, userID string) (*Address, error) {
	var addr Address
	path := fmt.Sprintf("/user/%s/address", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, "", nil, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

func (c *Client) UpdateAddress(ctx context.Context, userID string, addr Address) error {
	path := fmt.Sprintf("/user/%s/address", url.PathEscape(userID))
	return c.do(ctx, http.MethodPatch, path, "", addr, nil)
}
