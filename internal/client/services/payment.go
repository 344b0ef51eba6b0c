package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/api"
	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/common"
)

const (
	msgEmployersOnly   = "Subscription is only available for employers"
	msgSelectPlan      = "Please select a subscription plan"
	msgInitFailed      = "Payment initialization failed"
	msgPaymentSuccess  = "Payment successful! Your subscription is now active."
	msgPaymentFailed   = "Payment failed. Please try again."
	msgPaymentPending  = "Payment is being processed..."
	msgInvalidPayRef   = "Invalid payment reference"
	msgInitFailedOther = "Failed to initialize payment"
)

// ErrEmployersOnly is returned when a non-employer opens the subscription page.
var ErrEmployersOnly = errors.New(msgEmployersOnly)

type PaymentAPI interface {
	SubscriptionPlans(ctx context.Context) (map[string]models.SubscriptionPlan, error)
	InitializePayment(ctx context.Context, req models.PaymentInitRequest) (models.Payment, error)
	VerifyPayment(ctx context.Context, transactionID string) (models.Payment, error)
}

// Plan is a subscription plan with its type key.
type Plan struct {
	Type models.SubscriptionType
	models.SubscriptionPlan
}

// Verification is the outcome of checking a returned payment.
type Verification struct {
	Payment models.Payment
	Message string
	// Done is true for a final status.
	Done bool
	OK   bool
}

type PaymentService interface {
	// Plans lists the plans, cheapest first. Only employers may subscribe.
	Plans(ctx context.Context) ([]Plan, error)
	// Subscribe starts a checkout and returns the URL to open.
	Subscribe(ctx context.Context, plan models.SubscriptionType) (string, error)
	Verify(ctx context.Context, transactionID string) (Verification, error)
}

type paymentService struct {
	api     PaymentAPI
	session SessionReader
}

func NewPaymentService(api PaymentAPI, session SessionReader) PaymentService {
	return &paymentService{api: api, session: session}
}

func (p *paymentService) requireEmployer() error {
	s := p.session.Snapshot()
	if !s.Authenticated() {
		return common.ErrNotAuthenticated
	}
	if s.User.Role != models.RoleEmployer {
		return ErrEmployersOnly
	}
	return nil
}

func (p *paymentService) Plans(ctx context.Context) ([]Plan, error) {
	if err := p.requireEmployer(); err != nil {
		return nil, err
	}
	raw, err := p.api.SubscriptionPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("load subscription plans: %w", err)
	}
	out := make([]Plan, 0, len(raw))
	for k, v := range raw {
		out = append(out, Plan{Type: models.SubscriptionType(strings.ToUpper(k)), SubscriptionPlan: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (p *paymentService) Subscribe(ctx context.Context, plan models.SubscriptionType) (string, error) {
	if err := p.requireEmployer(); err != nil {
		return "", err
	}
	plan = models.SubscriptionType(strings.ToUpper(strings.TrimSpace(string(plan))))
	if plan == "" {
		return "", errors.New(msgSelectPlan)
	}
	if err := checkVar("subscriptionType", string(plan), "oneof=MONTHLY QUARTERLY YEARLY"); err != nil {
		return "", err
	}

	pay, err := p.api.InitializePayment(ctx, models.PaymentInitRequest{SubscriptionType: plan})
	if err != nil {
		msg := api.ServerMessage(err)
		if msg == "" {
			msg = msgInitFailedOther
		}
		return "", fmt.Errorf("%s: %w", msg, err)
	}
	if pay.CheckoutURL == "" {
		return "", errors.New(msgInitFailed)
	}
	return pay.CheckoutURL, nil
}

func (p *paymentService) Verify(ctx context.Context, transactionID string) (Verification, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return Verification{}, errors.New(msgInvalidPayRef)
	}
	pay, err := p.api.VerifyPayment(ctx, transactionID)
	if err != nil {
		return Verification{}, fmt.Errorf("verify payment: %w", err)
	}
	return VerificationFor(pay), nil
}

// VerificationFor explains the status of pay.
func VerificationFor(pay models.Payment) Verification {
	v := Verification{Payment: pay}
	switch pay.Status {
	case models.PaymentSuccessful:
		v.Message, v.Done, v.OK = msgPaymentSuccess, true, true
	case models.PaymentFailed:
		v.Message, v.Done = msgPaymentFailed, true
	default:
		v.Message = msgPaymentPending
	}
	return v
}
