// Package guard decides whether a protected view may be rendered for the
// current session, and holds the route table of the client.
package guard

import (
	"slices"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/nav"
	"github.com/ethiocareer/careercli/internal/client/session"
)

// Outcome is the result kind of a guard decision.
type Outcome int

const (
	Render Outcome = iota
	RedirectLogin
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decision is what the caller must do with the requested view.
type Decision struct {
	Outcome Outcome
	// Target is the redirect path; empty for Render.
	Target string
}

// Decide is a pure function of the session and the required roles.
//
// roles == nil means any authenticated user qualifies. A non-nil empty
// slice means no role qualifies, so every authenticated user is sent home.
func Decide(s session.Session, roles []models.Role) Decision {
	if !s.Authenticated() {
		return Decision{Outcome: RedirectLogin, Target: nav.PathLogin}
	}
	if roles != nil && !slices.Contains(roles, s.User.Role) {
		return Decision{Outcome: RedirectHome, Target: nav.PathHome}
	}
	return Decision{Outcome: Render}
}
