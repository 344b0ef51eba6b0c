package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/client/nav"
	"github.com/ethiocareer/careercli/internal/client/services"
	"github.com/ethiocareer/careercli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readSecret reads a password and returns it as a string, wiping the
// terminal buffer.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Login prompts for credentials, signs in and opens the dashboard.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.log.Info(ctx, "login failed", "err", err)
		return err
	}

	a.log.Info(ctx, "login succeeded", "user", user.ID, "role", user.Role)
	a.println("Welcome, " + user.DisplayName() + "!")
	a.nav.Go(nav.PathDashboard)
	a.notifs.Refresh(ctx)
	return nil
}

// Register collects the registration form. Employers finish by paying
// for a subscription and sign in afterwards.
func (a *App) Register(ctx context.Context, _ []string) error {
	var req models.RegisterRequest
	var err error

	ask := func(dst *string, prompt string) {
		if err == nil {
			*dst, err = getSimpleText(a.reader, prompt, a.out)
		}
	}
	ask(&req.FirstName, "First name")
	ask(&req.LastName, "Last name")
	ask(&req.Email, "Email")
	if err != nil {
		return err
	}
	if req.Password, err = a.readSecret("Password (min 6 characters)"); err != nil {
		return err
	}

	var role string
	ask(&role, "Role: JOB_SEEKER or EMPLOYER (default JOB_SEEKER)")
	ask(&req.Phone, "Phone (optional)")
	if err != nil {
		return err
	}
	req.Role = models.RoleJobSeeker
	if role != "" {
		if req.Role, err = models.ParseRole(role); err != nil {
			return services.FieldErrors{"role": "must be JOB_SEEKER or EMPLOYER"}
		}
	}

	var plan string
	if req.Role == models.RoleEmployer {
		ask(&req.CompanyName, "Company name")
		ask(&req.CompanyIndustry, "Company industry")
		ask(&plan, "Subscription plan: MONTHLY, QUARTERLY or YEARLY (default MONTHLY)")
		if err != nil {
			return err
		}
	}

	res, err := a.authService.Register(ctx, req, models.SubscriptionType(strings.ToUpper(plan)))
	if err != nil {
		return err
	}
	if res.CheckoutURL != "" {
		a.println("Account created. Complete your subscription payment at:")
		a.println("  " + a.accent(res.CheckoutURL))
		a.println("Then run 'payment <tx_ref>' and login.")
		a.nav.Go(nav.PathLogin)
		return nil
	}

	a.println("Account created. Welcome, " + res.User.DisplayName() + "!")
	a.nav.Go(nav.PathDashboard)
	a.notifs.Refresh(ctx)
	return nil
}

// ForgotPassword walks through request code, verify code and set a new
// password.
func (a *App) ForgotPassword(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		return err
	}
	msg, err := a.authService.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	a.println(orDefault(msg, "A verification code has been sent to your email."))

	a.nav.Go("/verify-otp")
	code, err := getSimpleText(a.reader, "Enter the 6-digit code", a.out)
	if err != nil {
		return err
	}
	if _, err := a.authService.VerifyOtp(ctx, email, code); err != nil {
		return err
	}

	a.nav.Go("/reset-password")
	form := services.ResetForm{Email: email, OtpCode: code}
	if form.NewPassword, err = a.readSecret("New password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = a.readSecret("Confirm new password"); err != nil {
		return err
	}
	msg, err = a.authService.ResetPassword(ctx, form)
	if err != nil {
		return err
	}
	a.println(orDefault(msg, "Password reset. You can now login."))
	a.nav.Go(nav.PathLogin)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.session.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	if err := a.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.println("Signed out.")
	return nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var errUsage = errors.New("usage")

func usage(u string) error {
	return fmt.Errorf("%w: %s", errUsage, u)
}
