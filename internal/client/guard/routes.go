package guard

import (
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/session"
)

// Route is one entry of the route table. Public routes skip the guard.
type Route struct {
	Pattern string
	Public  bool
	// Roles is passed to Decide as is for protected routes.
	Roles []models.Role
}

var (
	anyRole   = []models.Role{models.RoleJobSeeker, models.RoleEmployer, models.RoleAdmin}
	jobSeeker = []models.Role{models.RoleJobSeeker}
	employer  = []models.Role{models.RoleEmployer}
	admin     = []models.Role{models.RoleAdmin}
)

// Routes is the route table of the client.
var Routes = []Route{
	{Pattern: "/", Public: true},
	{Pattern: "/jobs", Public: true},
	{Pattern: "/jobs/{id}", Public: true},
	{Pattern: "/login", Public: true},
	{Pattern: "/register", Public: true},
	{Pattern: "/forgot-password", Public: true},
	{Pattern: "/verify-otp", Public: true},
	{Pattern: "/reset-password", Public: true},
	{Pattern: "/payment/success", Public: true},

	{Pattern: "/dashboard", Roles: anyRole},
	{Pattern: "/profile", Roles: anyRole},
	{Pattern: "/subscription", Roles: anyRole},

	{Pattern: "/jobseeker/applications", Roles: jobSeeker},
	{Pattern: "/jobseeker/cvs", Roles: jobSeeker},
	{Pattern: "/jobseeker/alerts", Roles: jobSeeker},

	{Pattern: "/employer/jobs", Roles: employer},
	{Pattern: "/employer/applications", Roles: employer},

	{Pattern: "/admin/users", Roles: admin},
	{Pattern: "/admin/cv-templates", Roles: admin},
	{Pattern: "/admin/payments", Roles: admin},
}

// Match finds the route for path. Query strings are ignored; "{name}"
// segments match any single non-empty segment.
func Match(path string) (Route, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range Routes {
		if matchPattern(r.Pattern, path) {
			return r, true
		}
	}
	return Route{}, false
}

// Check resolves path against the route table and the session. ok is
// false for an unknown path.
func Check(s session.Session, path string) (d Decision, ok bool) {
	r, ok := Match(path)
	if !ok {
		return Decision{}, false
	}
	if r.Public {
		return Decision{Outcome: Render}, true
	}
	return Decide(s, r.Roles), true
}

// Visible lists the protected routes the session would be allowed to
// render, in table order.
func Visible(s session.Session) []Route {
	var out []Route
	for _, r := range Routes {
		if r.Public || strings.Contains(r.Pattern, "{") {
			continue
		}
		if Decide(s, r.Roles).Outcome == Render {
			out = append(out, r)
		}
	}
	return out
}

func matchPattern(pattern, path string) bool {
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], "{") && strings.HasSuffix(ps[i], "}") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
