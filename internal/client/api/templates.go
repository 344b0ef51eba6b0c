package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethiocareer/careercli/internal/client/models"
)

func (c *Client) CvTemplates(ctx context.Context) ([]models.CvTemplate, error) {
	var out []models.CvTemplate
	err := c.do(ctx, http.MethodGet, "/api/cv-templates", nil, nil, &out)
	return out, err
}

func (c *Client) ActiveCvTemplates(ctx context.Context) ([]models.CvTemplate, error) {
	var out []models.CvTemplate
	err := c.do(ctx, http.MethodGet, "/api/cv-templates/active", nil, nil, &out)
	return out, err
}

func (c *Client) CreateCvTemplate(ctx context.Context, t models.CvTemplate) (models.CvTemplate, error) {
	var out models.CvTemplate
	err := c.do(ctx, http.MethodPost, "/api/cv-templates", nil, t, &out)
	return out, err
}

func (c *Client) UpdateCvTemplate(ctx context.Context, id int64, t models.CvTemplate) (models.CvTemplate, error) {
	var out models.CvTemplate
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cv-templates/%d", id), nil, t, &out)
	return out, err
}

func (c *Client) DeleteCvTemplate(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cv-templates/%d", id), nil, nil, nil)
}

func (c *Client) SetCvTemplateActive(ctx context.Context, id int64, active bool) error {
	q := url.Values{"isActive": {strconv.FormatBool(active)}}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/cv-templates/%d/status", id), q, nil, nil)
}

func (c *Client) BuildCvFromTemplate(ctx context.Context, templateID int64, cv models.Cv) (models.Cv, error) {
	var out models.Cv
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/cv-templates/%d/build-cv", templateID), nil, cv, &out)
	return out, err
}
