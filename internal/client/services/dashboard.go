package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/api"
	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/session"
	"github.com/ethiocareer/careercli/internal/common"
)

const (
	msgPendingApproval = "Your employer account is pending admin approval. Login as Admin and approve this employer, then try again."
	msgSessionExpired  = "Your session expired. Please login again."
	msgNoPermission    = "You don’t have permission to access this dashboard."
	msgBackendOffline  = "Backend may be offline or blocked. The UI will still load with placeholders."
)

type DashboardAPI interface {
	Dashboard(ctx context.Context, role models.Role) (models.Dashboard, error)
	MyApplications(ctx context.Context) ([]models.Application, error)
}

type SessionReader interface {
	Snapshot() session.Session
}

// Activity is one row of the recent-activity list.
type Activity struct {
	ID     int64
	Title  string
	Meta   string
	Status string
	Date   string
}

type Dashboard struct {
	Title    string
	Role     models.Role
	Data     models.Dashboard
	Activity []Activity
}

// LoadError is a failed dashboard load, ready to be shown as a banner.
type LoadError struct {
	Status int
	// Message is the classified explanation.
	Message string
	// Detail is the backend message, if any.
	Detail string

	pending bool
	err     error
}

func (e *LoadError) Error() string {
	if e.Detail != "" {
		return e.Message + " (" + e.Detail + ")"
	}
	return e.Message
}

func (e *LoadError) Unwrap() error { return e.err }

// Is matches common.ErrPendingApproval for an unapproved employer.
func (e *LoadError) Is(target error) bool {
	return e.pending && target == common.ErrPendingApproval
}

// ClassifyDashboardError explains err for user.
func ClassifyDashboardError(user *models.User, err error) *LoadError {
	status := api.StatusCode(err)
	le := &LoadError{Status: status, err: err}

	switch {
	case status == http.StatusForbidden && user.PendingApproval():
		le.Message, le.pending = msgPendingApproval, true
	case status == http.StatusUnauthorized:
		le.Message = msgSessionExpired
	case status == http.StatusForbidden:
		le.Message = msgNoPermission
	default:
		le.Message = msgBackendOffline
	}

	le.Detail = api.ServerMessage(err)
	if le.Detail == "" && status == 0 {
		le.Detail = err.Error()
	}
	return le
}

type DashboardService interface {
	// Load fetches the dashboard of the signed-in user. A failed load
	// returns a *LoadError; calling Load again is the retry.
	Load(ctx context.Context) (Dashboard, error)
}

type dashboardService struct {
	api     DashboardAPI
	session SessionReader
}

func NewDashboardService(api DashboardAPI, session SessionReader) DashboardService {
	return &dashboardService{api: api, session: session}
}

func (d *dashboardService) Load(ctx context.Context) (Dashboard, error) {
	s := d.session.Snapshot()
	if !s.Authenticated() {
		return Dashboard{}, common.ErrNotAuthenticated
	}

	out := Dashboard{Title: DashboardTitle(s.User.Role), Role: s.User.Role}

	data, err := d.api.Dashboard(ctx, s.User.Role)
	if err != nil {
		return out, ClassifyDashboardError(s.User, err)
	}
	out.Data = data

	if s.User.Role == models.RoleJobSeeker {
		// the activity list is decoration; a failure leaves it empty
		if apps, err := d.api.MyApplications(ctx); err == nil {
			out.Activity = recentActivity(apps, 6)
		} else if errors.Is(err, common.ErrorUnauthorized) {
			return out, ClassifyDashboardError(s.User, err)
		}
	}
	return out, nil
}

func DashboardTitle(role models.Role) string {
	switch role {
	case models.RoleJobSeeker:
		return "Job Seeker Dashboard"
	case models.RoleEmployer:
		return "Employer Dashboard"
	default:
		return "Admin Dashboard"
	}
}

func recentActivity(apps []models.Application, limit int) []Activity {
	if len(apps) > limit {
		apps = apps[:limit]
	}
	out := make([]Activity, 0, len(apps))
	for _, a := range apps {
		title, company, location := "Job Application", "Company", ""
		if a.Job != nil {
			if a.Job.Title != "" {
				title = a.Job.Title
			}
			if a.Job.CompanyName != "" {
				company = a.Job.CompanyName
			}
			location = a.Job.Location
		}
		meta := company
		if location != "" {
			meta += " • " + location
		}
		date := "—"
		if a.AppliedAt != "" {
			date = strings.SplitN(a.AppliedAt, "T", 2)[0]
		}
		out = append(out, Activity{ID: a.ID, Title: title, Meta: meta, Status: Badge(a.Status), Date: date})
	}
	return out
}
