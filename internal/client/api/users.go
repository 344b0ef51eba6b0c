package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethiocareer/careercli/internal/client/models"
)

// Dashboard fetches the dashboard of role. Unknown roles get the admin
// dashboard.
func (c *Client) Dashboard(ctx context.Context, role models.Role) (models.Dashboard, error) {
	path := "/api/dashboard/admin"
	switch role {
	case models.RoleJobSeeker:
		path = "/api/dashboard/jobseeker"
	case models.RoleEmployer:
		path = "/api/dashboard/employer"
	}

	out := models.Dashboard{}
	err := c.do(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

// Profile returns the profile as an open map.
func (c *Client) Profile(ctx context.Context) (map[string]any, error) {
	out := map[string]any{}
	err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, updates map[string]any) (map[string]any, error) {
	out := map[string]any{}
	err := c.do(ctx, http.MethodPut, "/api/users/profile", nil, updates, &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.do(ctx, http.MethodPut, "/api/users/change-password", nil, body, nil)
}

func (c *Client) DeactivateAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/api/users/deactivate", nil, nil, nil)
}

func (c *Client) AdminUsers(ctx context.Context) ([]models.AdminUser, error) {
	var out []models.AdminUser
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &out)
	return out, err
}

func (c *Client) AdminApproveEmployer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/approve", id), nil, nil, nil)
}

func (c *Client) AdminDeactivateUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/deactivate", id), nil, nil, nil)
}

func (c *Client) AdminActivateUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/activate", id), nil, nil, nil)
}
