package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ethiocareer/careercli/internal/client/models"
)

// SubscriptionPlans is keyed by subscription type.
func (c *Client) SubscriptionPlans(ctx context.Context) (map[string]models.SubscriptionPlan, error) {
	out := map[string]models.SubscriptionPlan{}
	err := c.do(ctx, http.MethodGet, "/api/payment/subscription-plans", nil, nil, &out)
	return out, err
}

func (c *Client) InitializePayment(ctx context.Context, req models.PaymentInitRequest) (models.Payment, error) {
	var out models.Payment
	err := c.do(ctx, http.MethodPost, "/api/payment/initialize", nil, req, &out)
	return out, err
}

func (c *Client) InitializeEmployerPayment(ctx context.Context, req models.PaymentInitRequest) (models.Payment, error) {
	var out models.Payment
	err := c.do(ctx, http.MethodPost, "/api/payment/initialize-employer", nil, req, &out)
	return out, err
}

func (c *Client) VerifyPayment(ctx context.Context, transactionID string) (models.Payment, error) {
	var out models.Payment
	err := c.do(ctx, http.MethodGet, "/api/payment/verify/"+url.PathEscape(transactionID), nil, nil, &out)
	return out, err
}

// AdminPayments lists pending payments, or all payments when all is set.
func (c *Client) AdminPayments(ctx context.Context, all bool) ([]models.Payment, error) {
	path := "/api/admin/payments/pending"
	if all {
		path = "/api/admin/payments/all"
	}
	var out []models.Payment
	err := c.do(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

func (c *Client) AdminPaymentStats(ctx context.Context) (models.PaymentStats, error) {
	var out models.PaymentStats
	err := c.do(ctx, http.MethodGet, "/api/admin/payments/stats", nil, nil, &out)
	return out, err
}

func (c *Client) AdminApprovePayment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/admin/payments/%d/approve", id), nil, nil, nil)
}

func (c *Client) AdminRejectPayment(ctx context.Context, id int64, reason string) error {
	body := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/admin/payments/%d/reject", id), nil, body, nil)
}
