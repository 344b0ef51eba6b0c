package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/common"
)

// AuthAPI is the subset of the API client used by AuthService.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error)
	VerifyOtp(ctx context.Context, req models.VerifyOtpRequest) (models.MessageResponse, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error)
	InitializeEmployerPayment(ctx context.Context, req models.PaymentInitRequest) (models.Payment, error)
}

// SessionWriter is the subset of the session store AuthService mutates.
type SessionWriter interface {
	SignIn(ctx context.Context, auth models.AuthResult) error
	SignOut(ctx context.Context) error
}

// RegisterResult tells the caller what happens after registration.
// Employers are not signed in; they continue at CheckoutURL.
type RegisterResult struct {
	User        *models.User
	SignedIn    bool
	CheckoutURL string
}

// ResetForm is the reset-password form including the confirmation field.
type ResetForm struct {
	Email           string `json:"email" validate:"required,email"`
	OtpCode         string `json:"otpCode" validate:"len=6,numeric"`
	NewPassword     string `json:"newPassword" validate:"min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"min=6,eqfield=NewPassword"`
}

// AuthService defines the authentication flows of the client.
//
// Every method validates its input first and returns FieldErrors without
// contacting the server when validation fails.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest, plan models.SubscriptionType) (RegisterResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyOtp(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, form ResetForm) (string, error)
	Logout(ctx context.Context) error
}

type authService struct {
	api     AuthAPI
	session SessionWriter
}

func NewAuthService(api AuthAPI, session SessionWriter) AuthService {
	return &authService{api: api, session: session}
}

// Login authenticates and replaces the session with the result.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	res, err := a.api.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := a.signIn(ctx, res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// Register creates the account. Job seekers and admins are signed in
// right away; employers are sent to pay for plan first (MONTHLY when
// plan is empty).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest, plan models.SubscriptionType) (RegisterResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := checkStruct(req); err != nil {
		return RegisterResult{}, err
	}

	res, err := a.api.Register(ctx, req)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("register: %w", err)
	}

	if req.Role == models.RoleEmployer {
		if plan == "" {
			plan = models.SubscriptionMonthly
		}
		pay, err := a.api.InitializeEmployerPayment(ctx, models.PaymentInitRequest{Email: req.Email, SubscriptionType: plan})
		if err != nil {
			return RegisterResult{User: res.User}, fmt.Errorf("initialize payment: %w", err)
		}
		if pay.CheckoutURL == "" {
			return RegisterResult{User: res.User}, fmt.Errorf("initialize payment: %w: no checkout url", common.ErrUnavailable)
		}
		return RegisterResult{User: res.User, CheckoutURL: pay.CheckoutURL}, nil
	}

	if err := a.signIn(ctx, res); err != nil {
		return RegisterResult{User: res.User}, err
	}
	return RegisterResult{User: res.User, SignedIn: true}, nil
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	req := models.ForgotPasswordRequest{Email: strings.TrimSpace(email)}
	if err := checkStruct(req); err != nil {
		return "", err
	}
	res, err := a.api.ForgotPassword(ctx, req)
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	return res.Message, nil
}

func (a *authService) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	req := models.VerifyOtpRequest{Email: strings.TrimSpace(email), OtpCode: strings.TrimSpace(code)}
	if err := checkStruct(req); err != nil {
		return "", err
	}
	res, err := a.api.VerifyOtp(ctx, req)
	if err != nil {
		return "", fmt.Errorf("verify otp: %w", err)
	}
	return res.Message, nil
}

func (a *authService) ResetPassword(ctx context.Context, form ResetForm) (string, error) {
	form.Email = strings.TrimSpace(form.Email)
	form.OtpCode = strings.TrimSpace(form.OtpCode)
	if err := checkStruct(form); err != nil {
		return "", err
	}
	res, err := a.api.ResetPassword(ctx, models.ResetPasswordRequest{
		Email:       form.Email,
		OtpCode:     form.OtpCode,
		NewPassword: form.NewPassword,
	})
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return res.Message, nil
}

// Logout clears the session; the session store handles navigation.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.SignOut(ctx)
}

// signIn requires both parts of the result to be present.
func (a *authService) signIn(ctx context.Context, res models.AuthResult) error {
	if res.Token == "" || res.User == nil {
		return fmt.Errorf("%w: incomplete auth response", common.ErrUnavailable)
	}
	if err := a.session.SignIn(ctx, res); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
