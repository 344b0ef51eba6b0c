package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/api"
	"github.com/ethiocareer/careercli/internal/client/services"
	"github.com/ethiocareer/careercli/internal/client/session"
	"github.com/ethiocareer/careercli/internal/common"
)

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) accent(s string) string { return a.terminal.Paint(a.terminal.Palette().Accent, s) }
func (a *App) muted(s string) string  { return a.terminal.Paint(a.terminal.Palette().Muted, s) }
func (a *App) danger(s string) string { return a.terminal.Paint(a.terminal.Palette().Error, s) }

func (a *App) snapshot() session.Session { return a.session.Snapshot() }

func (a *App) goTo(path string) { a.nav.Go(path) }

// report shows a failed command as a one-line notice.
func (a *App) report(err error) {
	a.println(a.danger(describe(err)))
}

// describe turns an error into the message shown to the user. The server
// message is preferred when there is one.
func describe(err error) string {
	if errors.Is(err, errUsage) {
		return "Usage:" + strings.TrimPrefix(err.Error(), errUsage.Error()+":")
	}
	var fe services.FieldErrors
	if errors.As(err, &fe) {
		return "Please fix: " + fe.Error()
	}
	var le *services.LoadError
	if errors.As(err, &le) {
		return le.Error()
	}
	if errors.Is(err, common.ErrNotAuthenticated) {
		return "Please login to continue."
	}
	if errors.Is(err, common.ErrorUnauthorized) {
		return "Your session expired. Please login again."
	}
	if msg := api.ServerMessage(err); msg != "" {
		return "Error: " + msg
	}
	if errors.Is(err, common.ErrUnavailable) {
		return "Server unavailable, please try again."
	}
	return "Error: " + err.Error()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "active"
	}
	return "inactive"
}
