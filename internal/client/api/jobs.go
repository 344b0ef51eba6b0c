package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethiocareer/careercli/internal/client/models"
)

func (c *Client) Jobs(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	err := c.do(ctx, http.MethodGet, "/api/jobs", nil, nil, &out)
	return out, err
}

func (c *Client) Job(ctx context.Context, id int64) (models.Job, error) {
	var out models.Job
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) SearchJobs(ctx context.Context, keyword string) ([]models.Job, error) {
	var out []models.Job
	err := c.do(ctx, http.MethodGet, "/api/jobs/search", url.Values{"keyword": {keyword}}, nil, &out)
	return out, err
}

// FilterJobs sends only the filter fields that are set.
func (c *Client) FilterJobs(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	q := url.Values{}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.JobType != "" {
		q.Set("jobType", string(f.JobType))
	}
	if f.MinSalary != nil {
		q.Set("minSalary", strconv.FormatFloat(*f.MinSalary, 'f', -1, 64))
	}
	if f.MaxSalary != nil {
		q.Set("maxSalary", strconv.FormatFloat(*f.MaxSalary, 'f', -1, 64))
	}

	var out []models.Job
	err := c.do(ctx, http.MethodGet, "/api/jobs/filter", q, nil, &out)
	return out, err
}

func (c *Client) EmployerJobs(ctx context.Context, employerID int64) ([]models.Job, error) {
	var out []models.Job
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/employer/%d", employerID), nil, nil, &out)
	return out, err
}

func (c *Client) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	var out models.Job
	err := c.do(ctx, http.MethodPost, "/api/jobs", nil, job, &out)
	return out, err
}

func (c *Client) UpdateJob(ctx context.Context, id int64, job models.Job) (models.Job, error) {
	var out models.Job
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), nil, job, &out)
	return out, err
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil, nil)
}

func (c *Client) SetJobActive(ctx context.Context, id int64, active bool) error {
	q := url.Values{"isActive": {strconv.FormatBool(active)}}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/jobs/%d/status", id), q, nil, nil)
}
