package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

type staticToken string

func (s staticToken) Token() string { return string(s) }

type unauthorizedCounter struct{ n atomic.Int32 }

func (u *unauthorizedCounter) handle(context.Context) { u.n.Add(1) }

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, opts...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jwtWithExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

// ---- TESTS ----

func TestClient_SendsHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeJSON(w, http.StatusOK, []models.Job{{ID: 1, Title: "Go Developer"}})
	}, WithTokenSource(staticToken("opaque-token")))

	jobs, err := c.Jobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, "Bearer opaque-token", got.Get(common.AuthorizationHeaderName))
	assert.Len(t, got.Get(common.RequestIDHeaderName), 36)
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestClient_NoTokenNoAuthorization(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get(common.AuthorizationHeaderName)
		writeJSON(w, http.StatusOK, models.AuthResult{Token: "t", User: &models.User{ID: 1}})
	})

	res, err := c.Login(context.Background(), models.LoginRequest{Email: "a@b.et", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token)
	assert.Empty(t, auth)
}

func TestClient_UnauthorizedTriggersHandler(t *testing.T) {
	var u unauthorizedCounter
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token invalid"})
	}, WithTokenSource(staticToken("t")), WithUnauthorizedHandler(u.handle))

	_, err := c.MyApplications(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, "Token invalid", ServerMessage(err))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Equal(t, int32(1), u.n.Load())
}

func TestClient_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		body   any
		want   error
		msg    string
	}{
		{http.StatusForbidden, map[string]string{"error": "Forbidden"}, common.ErrorForbidden, "Forbidden"},
		{http.StatusNotFound, map[string]string{"message": "Job not found"}, common.ErrorNotFound, "Job not found"},
		{http.StatusBadRequest, map[string]string{"message": "Email taken"}, common.ErrorValidation, "Email taken"},
		{http.StatusBadGateway, nil, common.ErrUnavailable, ""},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var u unauthorizedCounter
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.body == nil {
					w.WriteHeader(tt.status)
					return
				}
				writeJSON(w, tt.status, tt.body)
			}, WithUnauthorizedHandler(u.handle))

			_, err := c.Job(context.Background(), 3)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.msg, ServerMessage(err))
			assert.Zero(t, u.n.Load(), "only 401 ends the session")
		})
	}
}

func TestClient_PlainTextErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance window", http.StatusServiceUnavailable)
	})
	_, err := c.Jobs(context.Background())
	assert.Equal(t, "maintenance window", ServerMessage(err))
}

func TestClient_ExpiredJWTNotSent(t *testing.T) {
	var hits atomic.Int32
	var u unauthorizedCounter
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusOK, []models.JobAlert{})
	},
		WithTokenSource(staticToken(jwtWithExp(t, time.Now().Add(-time.Minute)))),
		WithUnauthorizedHandler(u.handle),
	)

	_, err := c.JobAlerts(context.Background())

	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Zero(t, hits.Load())
	assert.Equal(t, int32(1), u.n.Load())
}

func TestClient_ValidJWTSent(t *testing.T) {
	token := jwtWithExp(t, time.Now().Add(time.Hour))
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get(common.AuthorizationHeaderName)
		writeJSON(w, http.StatusOK, []models.JobAlert{})
	}, WithTokenSource(staticToken(token)))

	_, err := c.JobAlerts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, auth)
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.Jobs(context.Background())
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestClient_RateLimitHonorsContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Job{})
	}, WithRateLimit(0.5))

	_, err := c.Jobs(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.Jobs(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}

func TestClient_EmptyBodyIsSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	out, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClient_TimeoutOption(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, http.StatusOK, []models.Job{})
	}, WithTimeout(20*time.Millisecond))

	_, err := c.Jobs(context.Background())
	assert.True(t, errors.Is(err, common.ErrUnavailable))
}

func TestFilenameFrom(t *testing.T) {
	assert.Equal(t, "cv.pdf", filenameFrom(`attachment; filename="cv.pdf"`))
	assert.Equal(t, "cv.pdf", filenameFrom(`attachment; filename=cv.pdf`))
	assert.Equal(t, "my cv.pdf", filenameFrom(`attachment; filename="my cv.pdf"; size=10`))
	assert.Equal(t, "", filenameFrom(""))
	assert.Equal(t, "", filenameFrom("inline"))
}

func TestErrorMessage_Truncation(t *testing.T) {
	assert.Equal(t, "", errorMessage(io.NopCloser(http.NoBody)))
	assert.Equal(t, "", errorMessage(stringsReader("<html>bad gateway</html>")))
}
