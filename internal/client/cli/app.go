package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ethiocareer/careercli/internal/client/api"
	"github.com/ethiocareer/careercli/internal/client/chat"
	"github.com/ethiocareer/careercli/internal/client/config"
	"github.com/ethiocareer/careercli/internal/client/events"
	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/nav"
	"github.com/ethiocareer/careercli/internal/client/notify"
	"github.com/ethiocareer/careercli/internal/client/services"
	"github.com/ethiocareer/careercli/internal/client/session"
	"github.com/ethiocareer/careercli/internal/client/storage"
	"github.com/ethiocareer/careercli/internal/client/theme"
	"github.com/ethiocareer/careercli/internal/filex"
	"github.com/ethiocareer/careercli/internal/logging"
)

// Backend is the part of the API used directly by pages without
// client-side logic of their own.
type Backend interface {
	Jobs(ctx context.Context) ([]models.Job, error)
	Job(ctx context.Context, id int64) (models.Job, error)
	SearchJobs(ctx context.Context, keyword string) ([]models.Job, error)
	FilterJobs(ctx context.Context, f models.JobFilter) ([]models.Job, error)
	EmployerJobs(ctx context.Context, employerID int64) ([]models.Job, error)
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	DeleteJob(ctx context.Context, id int64) error
	SetJobActive(ctx context.Context, id int64, active bool) error

	Cvs(ctx context.Context) ([]models.Cv, error)
	UploadCv(ctx context.Context, up models.CvUpload) (models.Cv, error)
	DownloadCv(ctx context.Context, id int64) (models.Download, error)
	SetDefaultCv(ctx context.Context, id int64) error
	DeleteCv(ctx context.Context, id int64) error

	JobAlerts(ctx context.Context) ([]models.JobAlert, error)
	CreateJobAlert(ctx context.Context, a models.JobAlert) (models.JobAlert, error)
	SetJobAlertActive(ctx context.Context, id int64, active bool) error
	DeleteJobAlert(ctx context.Context, id int64) error

	AdminUsers(ctx context.Context) ([]models.AdminUser, error)
	AdminApproveEmployer(ctx context.Context, id int64) error
	AdminActivateUser(ctx context.Context, id int64) error
	AdminDeactivateUser(ctx context.Context, id int64) error
	CvTemplates(ctx context.Context) ([]models.CvTemplate, error)
	SetCvTemplateActive(ctx context.Context, id int64, active bool) error
	DeleteCvTemplate(ctx context.Context, id int64) error
	AdminPayments(ctx context.Context, all bool) ([]models.Payment, error)
	AdminPaymentStats(ctx context.Context) (models.PaymentStats, error)
	AdminApprovePayment(ctx context.Context, id int64) error
	AdminRejectPayment(ctx context.Context, id int64, reason string) error
}

type App struct {
	config *config.Config
	log    logging.Logger

	kv      storage.Store
	bus     *events.Bus
	nav     *nav.Navigator
	session *session.Store

	authService         services.AuthService
	dashboardService    services.DashboardService
	applicationsService services.ApplicationsService
	profileService      services.ProfileService
	photoService        services.PhotoService
	paymentService      services.PaymentService
	backend             Backend

	theme    *theme.Store
	scheme   *theme.EnvScheme
	terminal *theme.Terminal
	seen     *notify.Seen
	notifs   *notify.Aggregator
	chat     *chat.Conversation

	reader      *bufio.Reader
	out         io.Writer
	downloadDir string

	closers []func() error
}

// NewApp prepares the data directory, the log file and the durable store,
// then wires every component of the client.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(filepath.Join(dir, "careercli.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log := logging.New(logFile, c.LogLevel)

	bus := events.NewBus()
	kv, err := openStore(ctx, c, dir, bus, log)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	downloads, err := filex.EnsureDir(filepath.Join(dir, "downloads"))
	if err != nil {
		_ = kv.Close()
		_ = logFile.Close()
		return nil, err
	}

	a := newApp(c, kv, bus, log, os.Stdin, os.Stdout)
	a.downloadDir = downloads
	a.closers = append(a.closers, logFile.Close, kv.Close)

	log.Info(ctx, "careercli started", "api", c.APIBaseURL, "storage", c.StorageBackend)
	return a, nil
}

// openStore opens the configured backend. With Redis, profile photo
// events are relayed between every client sharing the server.
func openStore(ctx context.Context, c *config.Config, dir string, bus *events.Bus, log logging.Logger) (storage.Store, error) {
	switch c.StorageBackend {
	case config.StorageRedis:
		rs, err := storage.OpenRedis(ctx, c.RedisAddr)
		if err != nil {
			return nil, err
		}
		events.RelayRedis(ctx, bus, rs.Client(), log, events.TopicProfilePhoto)
		return rs, nil
	case config.StorageSQLite, "":
		ss, err := storage.OpenSQLite(ctx, filepath.Join(dir, "careercli.db"))
		if err != nil {
			return nil, err
		}
		return ss, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

// newApp wires the components over an opened store.
func newApp(c *config.Config, kv storage.Store, bus *events.Bus, log logging.Logger, in io.Reader, out io.Writer) *App {
	navigator := nav.New(bus)
	sess := session.NewStore(kv, navigator, log.With("component", "session"))

	client := api.New(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithRateLimit(c.RateLimit),
		api.WithTokenSource(sess),
		api.WithUnauthorizedHandler(sess.HandleUnauthorized),
		api.WithLogger(log.With("component", "api")),
	)

	terminal := theme.NewTerminal(out)
	scheme := theme.NewEnvScheme()
	seen := notify.NewSeen(kv, log)

	a := &App{
		config:  c,
		log:     log,
		kv:      kv,
		bus:     bus,
		nav:     navigator,
		session: sess,

		authService:         services.NewAuthService(client, sess),
		dashboardService:    services.NewDashboardService(client, sess),
		applicationsService: services.NewApplicationsService(client),
		profileService:      services.NewProfileService(client, sess),
		photoService:        services.NewPhotoService(kv, bus),
		paymentService:      services.NewPaymentService(client, sess),
		backend:             client,

		theme:    theme.NewStore(kv, scheme, terminal, log.With("component", "theme")),
		scheme:   scheme,
		terminal: terminal,
		seen:     seen,
		notifs:   notify.NewAggregator(client, sess, seen, c.PollInterval, log.With("component", "notify")),
		chat:     chat.NewConversation(api.NewAIChat(c.AIChatURL, c.ChatTimeout, log), c.ChatTimeout, log.With("component", "chat")),

		reader:      bufio.NewReader(in),
		out:         out,
		downloadDir: ".",
	}

	bus.Subscribe(events.TopicHardReset, func(events.Event) {
		a.chat.Reset()
		a.notifs.Reset()
	})
	bus.Subscribe(events.TopicProfilePhoto, a.onPhotoChanged)
	a.chat.OnMessage(a.onChatMessage)

	return a
}

// Run restores the session and the theme, starts polling notifications
// and blocks in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.session.Load(ctx); err != nil {
		a.log.Warn(ctx, "restore session", "err", err)
	}
	if err := a.seen.Load(ctx); err != nil {
		a.log.Warn(ctx, "restore seen notifications", "err", err)
	}
	a.theme.Init(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.notifs.Run(ctx)

	a.println("Welcome to EthioCareer CLI (type 'help' for commands)")
	if a.session.IsAuthenticated() {
		a.nav.Go(nav.PathDashboard)
		a.println("Signed in as " + a.session.User().DisplayName())
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the store and the log file.
func (a *App) Close() {
	a.theme.Close()
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

// status is shown in the prompt: who is signed in, unseen notifications
// and the current location.
func (a *App) status() string {
	s := a.session.Snapshot()
	if !s.Authenticated() {
		return "guest " + a.nav.Location()
	}
	label := fmt.Sprintf("%s (%s)", s.User.DisplayName(), s.User.Role)
	if n := a.notifs.UnseenCount(); n > 0 {
		label += fmt.Sprintf(" [%d new]", n)
	}
	return label + " " + a.nav.Location()
}

func (a *App) onPhotoChanged(e events.Event) {
	u := a.session.User()
	if !e.Remote || u == nil || u.ID != e.UserID {
		return
	}
	a.println(a.muted("Your profile photo was changed in another session."))
}

func (a *App) onChatMessage(m chat.Message) {
	if m.Sender != chat.SenderBot {
		return
	}
	if m.Loading {
		a.println(a.accent("bot: ") + a.muted("…"))
		return
	}
	a.println(a.accent("bot: ") + m.Text)
}
