package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/chat"
	"github.com/ethiocareer/careercli/internal/client/guard"
	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/nav"
	"github.com/ethiocareer/careercli/internal/client/services"
	"github.com/ethiocareer/careercli/internal/client/theme"
	"github.com/ethiocareer/careercli/internal/common"
)

// Dashboard prints the role's dashboard. A failed load is shown as a
// banner; running the command again retries.
func (a *App) Dashboard(ctx context.Context, _ []string) error {
	d, err := a.dashboardService.Load(ctx)
	if err != nil {
		var le *services.LoadError
		if errors.As(err, &le) {
			a.println(a.accent(d.Title))
			a.println(a.danger("⚠ " + le.Error()))
			a.println(a.muted("Type 'dashboard' to retry."))
			return nil
		}
		return err
	}

	a.println(a.accent(d.Title))
	for _, line := range flatten("", map[string]any(d.Data)) {
		a.println("  " + line)
	}
	if len(d.Activity) > 0 {
		a.println("")
		a.println("Recent activity")
		for _, act := range d.Activity {
			a.printf("  %-30s %-28s %-8s %s\n", act.Title, act.Meta, act.Status, act.Date)
		}
	}
	return nil
}

// flatten renders scalar dashboard values as sorted "path: value" lines.
func flatten(prefix string, m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []string
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		switch v := m[k].(type) {
		case map[string]any:
			out = append(out, flatten(name, v)...)
		case []any:
			out = append(out, fmt.Sprintf("%s: %d items", name, len(v)))
		case nil:
		default:
			out = append(out, fmt.Sprintf("%s: %v", name, v))
		}
	}
	return out
}

// Notifications opens the notification list, which marks every listed
// item as seen.
func (a *App) Notifications(ctx context.Context, _ []string) error {
	items, err := a.notifs.Open(ctx)
	if len(items) == 0 {
		a.println(a.muted("No notifications."))
	}
	for _, it := range items {
		a.printf("%s  %s\n", a.accent(it.Title), it.Body)
		if it.Action != "" {
			a.println(a.muted("    → " + it.Action))
		}
	}
	return err
}

func (a *App) Profile(ctx context.Context, args []string) error {
	user := a.session.User()
	if user == nil {
		return common.ErrNotAuthenticated
	}

	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "set":
			if len(args) < 2 {
				return usage("profile set <field> <value>")
			}
			p, err := a.profileService.Load(ctx)
			if err != nil {
				return err
			}
			if err := p.Set(args[1], strings.Join(args[2:], " ")); err != nil {
				return err
			}
			if _, err := a.profileService.Save(ctx, p); err != nil {
				return err
			}
			a.println("Profile updated")
			return nil
		case "password":
			oldPw, err := a.readSecret("Current password")
			if err != nil {
				return err
			}
			newPw, err := a.readSecret("New password")
			if err != nil {
				return err
			}
			if err := a.profileService.ChangePassword(ctx, oldPw, newPw); err != nil {
				return err
			}
			a.println("Password changed.")
			return nil
		case "photo":
			return a.profilePhoto(ctx, user.ID, args[1:])
		case "deactivate":
			if !Confirm(a.reader, "Deactivate your account? You will be signed out.", a.out) {
				return nil
			}
			if err := a.profileService.Deactivate(ctx); err != nil {
				return err
			}
			return a.authService.Logout(ctx)
		default:
			return usage("profile [set <field> <value>|password|photo <file>|photo clear|deactivate]")
		}
	}

	p, err := a.profileService.Load(ctx)
	if err != nil {
		return err
	}
	a.println(a.accent(user.DisplayName()))
	photo, err := a.photoService.Get(ctx, user.ID)
	if err != nil {
		a.log.Warn(ctx, "read profile photo", "err", err)
	}
	if photo != "" {
		a.println(a.muted(fmt.Sprintf("  photo: %s (%d bytes, stored locally)", photoKind(photo), len(photo))))
	}
	for _, f := range services.ProfileFields {
		if !f.Applies(user.Role) {
			continue
		}
		label := f.Label
		if f.ReadOnly {
			label += " (read-only)"
		}
		a.printf("  %-16s %-24s %s\n", f.Name, label, orDash(p.Get(f.Name)))
	}
	for _, k := range p.Extra() {
		a.printf("  %-16s %-24s %s\n", k, "", a.muted(orDash(p.Get(k))))
	}
	return nil
}

func (a *App) profilePhoto(ctx context.Context, userID int64, args []string) error {
	if len(args) == 0 {
		return usage("profile photo <file>|clear")
	}
	if strings.ToLower(args[0]) == "clear" {
		if err := a.photoService.Clear(ctx, userID); err != nil {
			return err
		}
		a.println("Profile photo removed.")
		return nil
	}
	if _, err := a.photoService.SetFromFile(ctx, userID, strings.Join(args, " ")); err != nil {
		msg, rejected := photoMessage(err)
		if !rejected {
			a.log.Warn(ctx, "set profile photo", "err", err)
		}
		a.println(a.danger(msg))
		return nil
	}
	a.println("Profile photo updated.")
	return nil
}

// photoMessage maps a photo upload error to the line shown to the user.
// rejected is false for failures other than a refused file.
func photoMessage(err error) (msg string, rejected bool) {
	switch {
	case errors.Is(err, services.ErrPhotoTooLarge):
		return "Photo is too large (max 2 MB).", true
	case errors.Is(err, services.ErrPhotoNotImage):
		return "Please upload an image file.", true
	case errors.Is(err, services.ErrPhotoInvalid):
		return "Invalid image file.", true
	}
	return "Failed to upload photo.", false
}

// photoKind extracts the media type of a data URL.
func photoKind(url string) string {
	kind, _, _ := strings.Cut(strings.TrimPrefix(url, "data:"), ";")
	return kind
}

// Subscription lists the plans, or starts the checkout of one. It is an
// employer page; other roles are sent to the dashboard.
func (a *App) Subscription(ctx context.Context, args []string) error {
	if len(args) > 0 {
		url, err := a.paymentService.Subscribe(ctx, models.SubscriptionType(args[0]))
		if err != nil {
			return a.subscriptionError(err)
		}
		a.println("Open this page to complete the payment:")
		a.println("  " + a.accent(url))
		a.println("Then run 'payment <tx_ref>'.")
		return nil
	}

	plans, err := a.paymentService.Plans(ctx)
	if err != nil {
		return a.subscriptionError(err)
	}
	for _, p := range plans {
		a.printf("%-10s %-12s %10.2f ETB  %d days\n", p.Type, p.Name, p.Price, p.Duration)
		a.println(a.muted(fmt.Sprintf("    jobs: %s • featured: %s • search: %s • support: %s",
			orDash(p.Features.JobPostings), orDash(p.Features.FeaturedJobs), orDash(p.Features.CandidateSearch), orDash(p.Features.Support))))
	}
	a.println("Subscribe with 'subscription <plan>'.")
	return nil
}

func (a *App) subscriptionError(err error) error {
	if errors.Is(err, services.ErrEmployersOnly) {
		a.println(a.danger(err.Error()))
		a.nav.Go(nav.PathDashboard)
		return nil
	}
	return err
}

func (a *App) VerifyPayment(ctx context.Context, args []string) error {
	tx := ""
	if len(args) > 0 {
		tx = args[0]
	}
	v, err := a.paymentService.Verify(ctx, tx)
	if err != nil {
		if tx == "" {
			a.nav.Go("/subscription")
		}
		return err
	}
	switch {
	case v.OK:
		a.println(a.accent(v.Message))
	case v.Done:
		a.println(a.danger(v.Message))
	default:
		a.println(v.Message)
	}
	return nil
}

// Pages lists the protected pages the current session can open.
func (a *App) Pages(_ context.Context, _ []string) error {
	routes := guard.Visible(a.session.Snapshot())
	if len(routes) == 0 {
		a.println(a.muted("Login to see your pages."))
		return nil
	}
	for _, r := range routes {
		a.println("  " + r.Pattern)
	}
	return nil
}

// Chat opens the assistant; with text it sends one message. Replies are
// printed by the conversation listener.
func (a *App) Chat(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		a.println(a.accent(chat.Welcome))
		for _, m := range a.chat.Messages() {
			who := "you"
			if m.Sender == chat.SenderBot {
				who = "bot"
			}
			a.printf("%s: %s\n", who, m.Text)
		}
		return nil
	}
	a.chat.Send(ctx, text)
	return nil
}

// ToggleTheme flips the stored preference. "theme system [light|dark]"
// instead re-reads the terminal scheme, or records the given one, which
// takes effect only while no preference is stored.
func (a *App) ToggleTheme(ctx context.Context, args []string) error {
	if len(args) > 0 && strings.EqualFold(args[0], "system") {
		return a.syncSystemTheme(args[1:])
	}
	t, err := a.theme.Toggle(ctx)
	a.println(fmt.Sprintf("Theme: %s", t))
	if err != nil {
		a.log.Warn(ctx, "persist theme", "err", err)
	}
	return nil
}

func (a *App) syncSystemTheme(args []string) error {
	if len(args) > 0 {
		t, err := theme.ParseTheme(args[0])
		if err != nil {
			return err
		}
		a.scheme.Report(t)
	} else {
		a.scheme.Notify()
	}

	if a.theme.Explicit() {
		a.println(fmt.Sprintf("Theme: %s (your saved preference)", a.theme.Current()))
		return nil
	}
	a.println(fmt.Sprintf("Theme: %s (system)", a.theme.Current()))
	return nil
}
