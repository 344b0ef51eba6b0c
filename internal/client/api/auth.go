package api

import (
	"context"
	"net/http"

	"github.com/ethiocareer/careercli/internal/client/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	var out models.AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	var out models.AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out)
	return out, err
}

func (c *Client) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", nil, req, &out)
	return out, err
}

func (c *Client) VerifyOtp(ctx context.Context, req models.VerifyOtpRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp", nil, req, &out)
	return out, err
}

func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", nil, req, &out)
	return out, err
}
