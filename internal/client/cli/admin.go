package cli

import (
	"context"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
)

func (a *App) AdminUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		users, err := a.backend.AdminUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			state := onOff(u.IsActive == nil || *u.IsActive)
			if u.PendingApproval() {
				state = "pending approval"
			}
			a.printf("%6d  %-26s %-30s %-10s %s\n", u.ID, u.DisplayName(), u.Email, u.Role, state)
		}
		return nil
	}

	id, err := parseID(args, 1, "user id")
	if err != nil {
		return err
	}
	switch strings.ToLower(args[0]) {
	case "approve":
		err = a.backend.AdminApproveEmployer(ctx, id)
	case "activate":
		err = a.backend.AdminActivateUser(ctx, id)
	case "deactivate":
		err = a.backend.AdminDeactivateUser(ctx, id)
	default:
		return usage("users [approve|activate|deactivate <id>]")
	}
	if err != nil {
		return err
	}
	a.printf("User #%d updated.\n", id)
	return nil
}

func (a *App) AdminTemplates(ctx context.Context, args []string) error {
	if len(args) == 0 {
		templates, err := a.backend.CvTemplates(ctx)
		if err != nil {
			return err
		}
		for _, t := range templates {
			premium := ""
			if deref(t.IsPremium) {
				premium = " premium"
			}
			a.printf("%6d  %-28s %-16s %s%s\n", t.ID, t.Name, orDash(deref(t.Category)), onOff(deref(t.IsActive)), premium)
		}
		return nil
	}

	id, err := parseID(args, 1, "template id")
	if err != nil {
		return err
	}
	switch sub := strings.ToLower(args[0]); sub {
	case "on", "off":
		err = a.backend.SetCvTemplateActive(ctx, id, sub == "on")
	case "delete":
		err = a.backend.DeleteCvTemplate(ctx, id)
	default:
		return usage("templates [on|off|delete <id>]")
	}
	if err != nil {
		return err
	}
	a.printf("Template #%d updated.\n", id)
	return nil
}

// AdminPayments lists pending payments (or all with "all") after the
// status totals, and approves or rejects one.
func (a *App) AdminPayments(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.ToLower(args[0]) == "all" {
		stats, err := a.backend.AdminPaymentStats(ctx)
		if err != nil {
			return err
		}
		a.printf("Pending %d • Successful %d • Failed %d • Expired %d • Total %d\n",
			stats.Pending, stats.Successful, stats.Failed, stats.Expired, stats.Total)

		payments, err := a.backend.AdminPayments(ctx, len(args) > 0)
		if err != nil {
			return err
		}
		for _, p := range payments {
			a.printf("%6d  %-28s %-10s %10.2f %s  %s\n", p.ID, payer(p.User), p.SubscriptionType, p.Amount, orDefault(p.Currency, "ETB"), p.Status)
		}
		return nil
	}

	id, err := parseID(args, 1, "payment id")
	if err != nil {
		return err
	}
	switch strings.ToLower(args[0]) {
	case "approve":
		err = a.backend.AdminApprovePayment(ctx, id)
	case "reject":
		reason := strings.Join(args[2:], " ")
		if reason == "" {
			if reason, err = getSimpleText(a.reader, "Reason", a.out); err != nil {
				return err
			}
		}
		err = a.backend.AdminRejectPayment(ctx, id, reason)
	default:
		return usage("payments [all|approve <id>|reject <id> <reason>]")
	}
	if err != nil {
		return err
	}
	a.printf("Payment #%d updated.\n", id)
	return nil
}

func payer(u *models.PaymentUser) string {
	if u == nil {
		return "—"
	}
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return u.Email
}
