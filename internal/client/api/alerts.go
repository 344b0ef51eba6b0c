package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethiocareer/careercli/internal/client/models"
)

func (c *Client) JobAlerts(ctx context.Context) ([]models.JobAlert, error) {
	var out []models.JobAlert
	err := c.do(ctx, http.MethodGet, "/api/job-alerts", nil, nil, &out)
	return out, err
}

func (c *Client) CreateJobAlert(ctx context.Context, a models.JobAlert) (models.JobAlert, error) {
	var out models.JobAlert
	err := c.do(ctx, http.MethodPost, "/api/job-alerts", nil, a, &out)
	return out, err
}

func (c *Client) UpdateJobAlert(ctx context.Context, id int64, a models.JobAlert) (models.JobAlert, error) {
	var out models.JobAlert
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/job-alerts/%d", id), nil, a, &out)
	return out, err
}

func (c *Client) SetJobAlertActive(ctx context.Context, id int64, active bool) error {
	q := url.Values{"isActive": {strconv.FormatBool(active)}}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/job-alerts/%d/status", id), q, nil, nil)
}

func (c *Client) DeleteJobAlert(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/job-alerts/%d", id), nil, nil, nil)
}
