package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethiocareer/careercli/internal/client/chat"
	"github.com/ethiocareer/careercli/internal/client/config"
	"github.com/ethiocareer/careercli/internal/client/events"
	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/nav"
	"github.com/ethiocareer/careercli/internal/client/services"
	"github.com/ethiocareer/careercli/internal/client/storage"
	"github.com/ethiocareer/careercli/internal/client/theme"
	"github.com/ethiocareer/careercli/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is a scripted API server. Routes are keyed by "METHOD /path".
type backend struct {
	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []*http.Request
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.Clone(context.Background()))
	h, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
		return
	}
	h(w, r)
}

// find returns the first recorded request for "METHOD /path".
func (b *backend) find(key string) *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.requests {
		if r.Method+" "+r.URL.Path == key {
			return r
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func reply(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, status, v) }
}

type testApp struct {
	*App
	out     *bytes.Buffer
	kv      storage.Store
	backend *backend
}

func newTestApp(t *testing.T, input string, routes map[string]http.HandlerFunc) *testApp {
	t.Helper()
	ctx := context.Background()

	be := &backend{routes: routes}
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	kv, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	t.Setenv("COLORFGBG", "")
	t.Setenv("CAREER_COLOR_SCHEME", "")

	cfg := &config.Config{
		APIBaseURL:     srv.URL,
		AIChatURL:      srv.URL + "/ai",
		PollInterval:   time.Hour,
		RequestTimeout: 5 * time.Second,
		ChatTimeout:    5 * time.Second,
	}
	out := &bytes.Buffer{}
	a := newApp(cfg, kv, events.NewBus(), logging.Discard(), strings.NewReader(input), out)
	a.downloadDir = t.TempDir()
	return &testApp{App: a, out: out, kv: kv, backend: be}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := getPassword
	getPassword = func(string, io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = old })
}

func seeker() *models.User {
	return &models.User{ID: 7, FirstName: "Abebe", LastName: "Kebede", Email: "abebe@example.com", Role: models.RoleJobSeeker}
}

func (ta *testApp) signIn(t *testing.T, u *models.User) {
	t.Helper()
	require.NoError(t, ta.session.SignIn(context.Background(), models.AuthResult{Token: "test-token", User: u}))
}

// ---- auth ----

func TestApp_LoginOpensDashboardAndRefreshesNotifications(t *testing.T) {
	stubPassword(t, "secret1")
	ta := newTestApp(t, "abebe@example.com\n", map[string]http.HandlerFunc{
		"POST /api/auth/login": func(w http.ResponseWriter, r *http.Request) {
			var req models.LoginRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Email != "abebe@example.com" || req.Password != "secret1" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
				return
			}
			writeJSON(w, http.StatusOK, models.AuthResult{Token: "test-token", User: seeker()})
		},
		"GET /api/dashboard/jobseeker":          reply(http.StatusOK, map[string]any{"activeJobAlerts": 2, "applicationStats": map[string]any{"total": 3}}),
		"GET /api/job-alerts":                   reply(http.StatusOK, []any{}),
		"GET /api/applications/my-applications": reply(http.StatusOK, []any{}),
	})
	ctx := context.Background()

	require.NoError(t, ta.Login(ctx, nil))

	assert.True(t, ta.session.IsAuthenticated())
	assert.Equal(t, nav.PathDashboard, ta.nav.Location())
	assert.Contains(t, ta.out.String(), "Welcome, Abebe Kebede!")

	login := ta.backend.find("POST /api/auth/login")
	require.NotNil(t, login)
	assert.Empty(t, login.Header.Get("Authorization"))

	dash := ta.backend.find("GET /api/dashboard/jobseeker")
	require.NotNil(t, dash)
	assert.Equal(t, "Bearer test-token", dash.Header.Get("Authorization"))
	assert.NotNil(t, ta.backend.find("GET /api/job-alerts"))
	assert.NotNil(t, ta.backend.find("GET /api/applications/my-applications"))

	assert.Equal(t, 2, ta.notifs.UnseenCount())
	assert.Equal(t, "Abebe Kebede (JOB_SEEKER) [2 new] /dashboard", ta.status())

	raw, err := ta.kv.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "test-token", string(raw))
}

func TestApp_LoginFailureShowsServerMessage(t *testing.T) {
	stubPassword(t, "wrong-password")
	ta := newTestApp(t, "abebe@example.com\n", map[string]http.HandlerFunc{
		"POST /api/auth/login": reply(http.StatusBadRequest, map[string]string{"message": "Invalid credentials"}),
	})

	err := ta.Login(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "Error: Invalid credentials", describe(err))
	assert.False(t, ta.session.IsAuthenticated())
	assert.Equal(t, "guest /", ta.status())
}

func TestApp_UnauthorizedResponseSignsOut(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"GET /api/dashboard/jobseeker":          reply(http.StatusUnauthorized, map[string]string{"message": "Token expired"}),
		"GET /api/applications/my-applications": reply(http.StatusOK, []any{}),
	})
	ta.signIn(t, seeker())
	ta.nav.Go(nav.PathDashboard)
	ta.chat.Send(context.Background(), "hello")
	require.NotEmpty(t, ta.chat.Messages())

	require.NoError(t, ta.Dashboard(context.Background(), nil))

	assert.Contains(t, ta.out.String(), "Your session expired. Please login again.")
	assert.False(t, ta.session.IsAuthenticated())
	assert.Equal(t, nav.PathLogin, ta.nav.Location())
	assert.Empty(t, ta.chat.Messages(), "a hard reset drops the conversation")

	raw, err := ta.kv.Get(context.Background(), storage.KeyToken)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestApp_LogoutRequiresSession(t *testing.T) {
	ta := newTestApp(t, "", nil)
	assert.Equal(t, "Please login to continue.", describe(ta.Logout(context.Background(), nil)))

	ta.signIn(t, seeker())
	require.NoError(t, ta.Logout(context.Background(), nil))
	assert.False(t, ta.session.IsAuthenticated())
	assert.Equal(t, nav.PathLogin, ta.nav.Location())
}

// ---- dashboard ----

func TestApp_PendingEmployerSeesApprovalBanner(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"GET /api/dashboard/employer": reply(http.StatusForbidden, map[string]string{"message": "Account not approved"}),
	})
	approved := false
	ta.signIn(t, &models.User{ID: 9, FirstName: "Sara", Role: models.RoleEmployer, IsApproved: &approved})

	require.NoError(t, ta.Dashboard(context.Background(), nil))

	out := ta.out.String()
	assert.Contains(t, out, "Employer Dashboard")
	assert.Contains(t, out, "pending admin approval")
	assert.Contains(t, out, "Type 'dashboard' to retry.")
	assert.True(t, ta.session.IsAuthenticated(), "a 403 keeps the session")
}

func TestApp_DashboardPrintsData(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"GET /api/dashboard/jobseeker": reply(http.StatusOK, map[string]any{"activeJobAlerts": 1, "applicationStats": map[string]any{"total": 4}}),
		"GET /api/applications/my-applications": reply(http.StatusOK, []map[string]any{
			{"id": 3, "status": "SHORTLISTED", "appliedAt": "2024-05-01T10:00:00", "job": map[string]any{"id": 11, "title": "Go Developer", "companyName": "Acme"}},
		}),
	})
	ta.signIn(t, seeker())

	require.NoError(t, ta.Dashboard(context.Background(), nil))

	out := ta.out.String()
	assert.Contains(t, out, "Job Seeker Dashboard")
	assert.Contains(t, out, "applicationStats.total: 4")
	assert.Contains(t, out, "Recent activity")
	assert.Contains(t, out, "Go Developer")
	assert.Contains(t, out, "2024-05-01")
}

// ---- notifications ----

func TestApp_NotificationsMarksSeen(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"GET /api/dashboard/jobseeker":          reply(http.StatusOK, map[string]any{"activeJobAlerts": 1}),
		"GET /api/job-alerts":                   reply(http.StatusOK, []any{}),
		"GET /api/applications/my-applications": reply(http.StatusOK, []any{}),
	})
	ta.signIn(t, seeker())
	ctx := context.Background()
	ta.notifs.Refresh(ctx)
	require.Equal(t, 2, ta.notifs.UnseenCount())

	require.NoError(t, ta.Notifications(ctx, nil))

	assert.Contains(t, ta.out.String(), "1 active alerts. Click to manage alerts.")
	assert.Equal(t, 0, ta.notifs.UnseenCount())
}

// ---- applications ----

func TestApp_CandidateApprovedIsSentAsShortlisted(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"PATCH /api/applications/5/status": reply(http.StatusOK, map[string]any{}),
	})
	ta.signIn(t, &models.User{ID: 9, FirstName: "Sara", Role: models.RoleEmployer})

	require.NoError(t, ta.Candidates(context.Background(), []string{"status", "5", "approved"}))

	req := ta.backend.find("PATCH /api/applications/5/status")
	require.NotNil(t, req)
	assert.Equal(t, "SHORTLISTED", req.URL.Query().Get("status"))
	assert.Contains(t, ta.out.String(), "Application #5 marked APPROVED.")
}

func TestApp_CandidateRejectsUnknownStatus(t *testing.T) {
	ta := newTestApp(t, "", nil)
	ta.signIn(t, &models.User{ID: 9, FirstName: "Sara", Role: models.RoleEmployer})

	err := ta.Candidates(context.Background(), []string{"status", "5", "hired"})
	require.Error(t, err)
	assert.Contains(t, describe(err), "Please fix:")
	assert.Nil(t, ta.backend.find("PATCH /api/applications/5/status"))
}

// ---- subscription ----

func TestApp_SubscriptionIsEmployerOnly(t *testing.T) {
	ta := newTestApp(t, "", nil)
	ta.signIn(t, seeker())
	ta.nav.Go("/subscription")

	require.NoError(t, ta.Subscription(context.Background(), nil))

	assert.Contains(t, ta.out.String(), "Subscription is only available for employers")
	assert.Equal(t, nav.PathDashboard, ta.nav.Location())
	assert.Nil(t, ta.backend.find("GET /api/payment/subscription-plans"))
}

func TestApp_SubscriptionCheckout(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"POST /api/payment/initialize": func(w http.ResponseWriter, r *http.Request) {
			var req models.PaymentInitRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			writeJSON(w, http.StatusOK, map[string]any{"chapaCheckoutUrl": "https://pay.example/" + string(req.SubscriptionType)})
		},
	})
	ta.signIn(t, &models.User{ID: 9, FirstName: "Sara", Role: models.RoleEmployer})

	require.NoError(t, ta.Subscription(context.Background(), []string{"yearly"}))
	assert.Contains(t, ta.out.String(), "https://pay.example/YEARLY")
}

// ---- chat ----

func TestApp_ChatGreetingIsAnsweredLocally(t *testing.T) {
	ta := newTestApp(t, "", nil)

	require.NoError(t, ta.Chat(context.Background(), []string{"Hello"}))

	assert.Contains(t, ta.out.String(), chat.GreetingReply)
	assert.Nil(t, ta.backend.find("POST /ai"))
}

func TestApp_ChatEscalatesToAI(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"POST /ai": func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			writeJSON(w, http.StatusOK, map[string]string{"reply": "echo: " + body["message"]})
		},
	})

	require.NoError(t, ta.Chat(context.Background(), []string{"zqx", "wibble"}))

	out := ta.out.String()
	assert.Contains(t, out, "…", "a placeholder is shown while waiting")
	assert.Contains(t, out, "echo: zqx wibble")

	msgs := ta.chat.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, chat.SenderBot, msgs[1].Sender)
	assert.False(t, msgs[1].Loading)
}

func TestApp_ChatAIFailure(t *testing.T) {
	ta := newTestApp(t, "", map[string]http.HandlerFunc{
		"POST /ai": reply(http.StatusInternalServerError, map[string]string{"message": "down"}),
	})

	require.NoError(t, ta.Chat(context.Background(), []string{"zqx"}))
	assert.Contains(t, ta.out.String(), chat.UnavailableReply)
}

// ---- profile photo ----

func TestApp_ProfilePhoto(t *testing.T) {
	ta := newTestApp(t, "", nil)
	ta.signIn(t, seeker())
	ctx := context.Background()

	var remote []events.Event
	ta.bus.Subscribe(events.TopicProfilePhoto, func(e events.Event) { remote = append(remote, e) })

	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notImage, []byte("just some text"), 0o600))

	require.NoError(t, ta.profilePhoto(ctx, 7, []string{notImage}))
	assert.Contains(t, ta.out.String(), "Please upload an image file.")
	assert.Empty(t, remote)

	img := filepath.Join(dir, "me.png")
	require.NoError(t, os.WriteFile(img, pngBytes(), 0o600))
	require.NoError(t, ta.profilePhoto(ctx, 7, []string{img}))
	assert.Contains(t, ta.out.String(), "Profile photo updated.")
	assert.NotContains(t, ta.out.String(), "changed in another session")

	url, err := ta.photoService.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	require.Len(t, remote, 1)
	assert.Equal(t, int64(7), remote[0].UserID)

	require.NoError(t, ta.profilePhoto(ctx, 7, []string{"clear"}))
	url, err = ta.photoService.Get(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestPhotoMessage(t *testing.T) {
	tests := []struct {
		err      error
		want     string
		rejected bool
	}{
		{services.ErrPhotoTooLarge, "Photo is too large (max 2 MB).", true},
		{fmt.Errorf("set photo: %w", services.ErrPhotoNotImage), "Please upload an image file.", true},
		{services.ErrPhotoInvalid, "Invalid image file.", true},
		{errors.New("disk full"), "Failed to upload photo.", false},
	}
	for _, tt := range tests {
		msg, rejected := photoMessage(tt.err)
		assert.Equal(t, tt.want, msg, tt.err.Error())
		assert.Equal(t, tt.rejected, rejected, tt.err.Error())
	}

	// sentinels stay plain error text
	for _, err := range []error{services.ErrPhotoTooLarge, services.ErrPhotoNotImage, services.ErrPhotoInvalid} {
		s := err.Error()
		assert.Equal(t, strings.ToLower(s[:1]), s[:1], s)
		assert.False(t, strings.HasSuffix(s, "."), s)
	}
}

func TestApp_RemotePhotoChangeIsAnnounced(t *testing.T) {
	ta := newTestApp(t, "", nil)
	ta.signIn(t, seeker())

	ta.bus.Publish(events.Event{Topic: events.TopicProfilePhoto, UserID: 7, Remote: true})
	ta.bus.Publish(events.Event{Topic: events.TopicProfilePhoto, UserID: 99, Remote: true})

	assert.Equal(t, 1, strings.Count(ta.out.String(), "changed in another session"))
}

func pngBytes() []byte {
	b := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}
	return append(b, make([]byte, 17)...)
}

// ---- theme ----

func TestApp_ThemeTogglePersists(t *testing.T) {
	ta := newTestApp(t, "", nil)
	ctx := context.Background()
	ta.theme.Init(ctx)
	t.Cleanup(ta.theme.Close)

	require.NoError(t, ta.ToggleTheme(ctx, nil))
	assert.Contains(t, ta.out.String(), "Theme: dark")
	assert.Equal(t, theme.PaletteFor(theme.Dark), ta.terminal.Palette())

	raw, err := ta.kv.Get(ctx, storage.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(raw))
}

func TestApp_SystemSchemeFollowedUntilToggle(t *testing.T) {
	ta := newTestApp(t, "", nil)
	ctx := context.Background()
	ta.theme.Init(ctx)
	t.Cleanup(ta.theme.Close)
	require.Equal(t, theme.Light, ta.theme.Current())

	// terminal switched to a dark background
	t.Setenv("COLORFGBG", "15;0")
	require.NoError(t, ta.ToggleTheme(ctx, []string{"system"}))
	assert.Equal(t, theme.Dark, ta.theme.Current())
	assert.Equal(t, theme.PaletteFor(theme.Dark), ta.terminal.Palette())
	assert.Contains(t, ta.out.String(), "Theme: dark (system)")

	require.NoError(t, ta.ToggleTheme(ctx, nil)) // -> light, saved
	require.Equal(t, theme.Light, ta.theme.Current())

	t.Setenv("COLORFGBG", "0;15")
	require.NoError(t, ta.ToggleTheme(ctx, []string{"system", "dark"}))
	assert.Equal(t, theme.Light, ta.theme.Current())
	assert.Equal(t, theme.PaletteFor(theme.Light), ta.terminal.Palette())
	assert.Contains(t, ta.out.String(), "Theme: light (your saved preference)")

	require.Error(t, ta.ToggleTheme(ctx, []string{"system", "sepia"}))
}

// ---- repl ----

func TestApp_RunREPLGuardsPages(t *testing.T) {
	ta := newTestApp(t, "", nil)
	captureOutput(t)

	ta.reader.Reset(strings.NewReader("myjobs\npages\nexit\n"))
	runREPL(context.Background(), ta.App, ta.status, ta.reader)

	assert.Equal(t, nav.PathLogin, ta.nav.Location())
	assert.Contains(t, ta.out.String(), "Login to see your pages.")
}

func TestApp_LoginValidatesBeforeSending(t *testing.T) {
	stubPassword(t, "123")
	ta := newTestApp(t, "not-an-email\n", nil)

	err := ta.Login(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, describe(err), "Please fix:")
	assert.Nil(t, ta.backend.find("POST /api/auth/login"))
}
