package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/session"
	"github.com/ethiocareer/careercli/internal/common"
	"github.com/ethiocareer/careercli/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource yields the current bearer credential, or "".
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL        string
	http           *http.Client
	limiter        *rate.Limiter
	tokens         TokenSource
	onUnauthorized func(context.Context)
	log            logging.Logger
	now            func() time.Time
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRateLimit allows rps requests per second; rps <= 0 disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithUnauthorizedHandler registers fn for every rejected credential.
func WithUnauthorizedHandler(fn func(context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Inf, 0),
		log:     logging.Discard(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var (
		r           io.Reader
		contentType string
	)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		r, contentType = bytes.NewReader(raw), "application/json"
	}

	resp, err := c.send(ctx, method, path, query, r, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := decodeJSON(resp, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeJSON treats an empty body as success.
func decodeJSON(resp *http.Response, out any) error {
	err := json.NewDecoder(resp.Body).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// download fetches a binary body together with its announced filename.
func (c *Client) download(ctx context.Context, path string) (models.Download, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return models.Download{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Download{}, fmt.Errorf("read %s: %w", path, err)
	}
	return models.Download{
		Data:        data,
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// send performs the request. A non-nil response always has a 2xx status.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" && session.TokenExpired(token, c.now()) {
		c.log.Info(ctx, "bearer token expired, not sending", "path", path)
		c.unauthorized(ctx)
		return nil, &Error{Status: http.StatusUnauthorized, Method: method, Path: path, Message: common.ErrTokenExpired.Error()}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit %s %s: %w", method, path, err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "request_id", reqID, "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, common.ErrUnavailable, err)
	}
	c.log.Debug(ctx, "request", "request_id", reqID, "method", method, "path", path,
		"status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	apiErr := &Error{Status: resp.StatusCode, Method: method, Path: path, Message: errorMessage(resp.Body)}
	if resp.StatusCode == http.StatusUnauthorized {
		c.unauthorized(ctx)
	}
	return nil, apiErr
}

func (c *Client) unauthorized(ctx context.Context) {
	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
}

// errorMessage extracts "message" or "error" from a JSON error body, or
// uses a short plain-text body as is.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		return body.Error
	}
	text := strings.TrimSpace(string(raw))
	if len(text) > 200 || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}

var filenameRe = regexp.MustCompile(`filename="?([^";]+)"?`)

func filenameFrom(header string) string {
	if header == "" {
		return ""
	}
	if _, params, err := mime.ParseMediaType(header); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	if m := filenameRe.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	return ""
}
