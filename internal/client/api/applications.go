package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ethiocareer/careercli/internal/client/models"
)

func (c *Client) Apply(ctx context.Context, req models.ApplyRequest) (models.Application, error) {
	var out models.Application
	err := c.do(ctx, http.MethodPost, "/api/applications", nil, req, &out)
	return out, err
}

func (c *Client) MyApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	err := c.do(ctx, http.MethodGet, "/api/applications/my-applications", nil, nil, &out)
	return out, err
}

func (c *Client) WithdrawApplication(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/applications/%d", id), nil, nil, nil)
}

func (c *Client) JobApplications(ctx context.Context, jobID int64) ([]models.Application, error) {
	var out []models.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/applications/job/%d", jobID), nil, nil, &out)
	return out, err
}

func (c *Client) EmployerApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	err := c.do(ctx, http.MethodGet, "/api/applications/employer", nil, nil, &out)
	return out, err
}

// UpdateApplicationStatus takes the API status value (e.g. SHORTLISTED).
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status string) error {
	q := url.Values{"status": {status}}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", id), q, nil, nil)
}

func (c *Client) DownloadApplicationCv(ctx context.Context, id int64) (models.Download, error) {
	return c.download(ctx, fmt.Sprintf("/api/applications/%d/cv/download", id))
}
