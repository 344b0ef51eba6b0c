package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethiocareer/careercli/internal/client/models"
)

func (c *Client) Cvs(ctx context.Context) ([]models.Cv, error) {
	var out []models.Cv
	err := c.do(ctx, http.MethodGet, "/api/cvs", nil, nil, &out)
	return out, err
}

func (c *Client) Cv(ctx context.Context, id int64) (models.Cv, error) {
	var out models.Cv
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/cvs/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) DefaultCv(ctx context.Context) (models.Cv, error) {
	var out models.Cv
	err := c.do(ctx, http.MethodGet, "/api/cvs/default", nil, nil, &out)
	return out, err
}

func (c *Client) BuildCv(ctx context.Context, cv models.Cv) (models.Cv, error) {
	var out models.Cv
	err := c.do(ctx, http.MethodPost, "/api/cvs/build", nil, cv, &out)
	return out, err
}

func (c *Client) UpdateCv(ctx context.Context, id int64, cv models.Cv) (models.Cv, error) {
	var out models.Cv
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cvs/%d", id), nil, cv, &out)
	return out, err
}

func (c *Client) DeleteCv(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cvs/%d", id), nil, nil, nil)
}

func (c *Client) SetCvActive(ctx context.Context, id int64, active bool) error {
	q := url.Values{"isActive": {strconv.FormatBool(active)}}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/cvs/%d/status", id), q, nil, nil)
}

func (c *Client) SetDefaultCv(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/cvs/%d/default", id), nil, nil, nil)
}

// UploadCv posts the file as multipart form data. cvName and isDefault
// are only sent when set.
func (c *Client) UploadCv(ctx context.Context, up models.CvUpload) (models.Cv, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", up.FileName)
	if err != nil {
		return models.Cv{}, fmt.Errorf("build upload: %w", err)
	}
	if _, err := part.Write(up.Data); err != nil {
		return models.Cv{}, fmt.Errorf("build upload: %w", err)
	}
	if up.CvName != "" {
		if err := w.WriteField("cvName", up.CvName); err != nil {
			return models.Cv{}, fmt.Errorf("build upload: %w", err)
		}
	}
	if up.IsDefault != nil {
		if err := w.WriteField("isDefault", strconv.FormatBool(*up.IsDefault)); err != nil {
			return models.Cv{}, fmt.Errorf("build upload: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return models.Cv{}, fmt.Errorf("build upload: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/api/cvs/upload", nil, &buf, w.FormDataContentType())
	if err != nil {
		return models.Cv{}, err
	}
	defer resp.Body.Close()

	var out models.Cv
	if err := decodeJSON(resp, &out); err != nil {
		return models.Cv{}, fmt.Errorf("decode upload: %w", err)
	}
	return out, nil
}

func (c *Client) DownloadCv(ctx context.Context, id int64) (models.Download, error) {
	return c.download(ctx, fmt.Sprintf("/api/cvs/%d/download", id))
}
