package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/ethiocareer/careercli/internal/client/api"
	"github.com/ethiocareer/careercli/internal/client/models"
	"github.com/ethiocareer/careercli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentAPI struct {
	plans   map[string]models.SubscriptionPlan
	pay     models.Payment
	payErr  error
	lastReq models.PaymentInitRequest
	lastTx  string
	calls   int
}

func (f *fakePaymentAPI) SubscriptionPlans(context.Context) (map[string]models.SubscriptionPlan, error) {
	f.calls++
	return f.plans, nil
}

func (f *fakePaymentAPI) InitializePayment(_ context.Context, req models.PaymentInitRequest) (models.Payment, error) {
	f.calls++
	f.lastReq = req
	return f.pay, f.payErr
}

func (f *fakePaymentAPI) VerifyPayment(_ context.Context, tx string) (models.Payment, error) {
	f.calls++
	f.lastTx = tx
	return f.pay, f.payErr
}

func TestPayment_EmployersOnly(t *testing.T) {
	fapi := &fakePaymentAPI{}
	ctx := context.Background()

	_, err := NewPaymentService(fapi, signedIn(user(1, models.RoleJobSeeker))).Plans(ctx)
	require.ErrorIs(t, err, ErrEmployersOnly)
	assert.Equal(t, "Subscription is only available for employers", err.Error())

	_, err = NewPaymentService(fapi, signedIn(user(1, models.RoleAdmin))).Subscribe(ctx, models.SubscriptionMonthly)
	require.ErrorIs(t, err, ErrEmployersOnly)

	_, err = NewPaymentService(fapi, &fakeSession{}).Plans(ctx)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Zero(t, fapi.calls)
}

func TestPayment_PlansSortedByPrice(t *testing.T) {
	fapi := &fakePaymentAPI{plans: map[string]models.SubscriptionPlan{
		"YEARLY":    {Name: "Yearly", Price: 9000},
		"MONTHLY":   {Name: "Monthly", Price: 1000},
		"quarterly": {Name: "Quarterly", Price: 2700},
	}}
	plans, err := NewPaymentService(fapi, signedIn(user(2, models.RoleEmployer))).Plans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, models.SubscriptionMonthly, plans[0].Type)
	assert.Equal(t, models.SubscriptionQuarterly, plans[1].Type)
	assert.Equal(t, "Yearly", plans[2].Name)
}

func TestPayment_Subscribe(t *testing.T) {
	fapi := &fakePaymentAPI{pay: models.Payment{CheckoutURL: "https://checkout.example/x"}}
	svc := NewPaymentService(fapi, signedIn(user(2, models.RoleEmployer)))
	ctx := context.Background()

	url, err := svc.Subscribe(ctx, "quarterly")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/x", url)
	assert.Equal(t, models.SubscriptionQuarterly, fapi.lastReq.SubscriptionType)

	_, err = svc.Subscribe(ctx, "")
	assert.EqualError(t, err, "Please select a subscription plan")

	_, err = svc.Subscribe(ctx, "WEEKLY")
	assert.ErrorIs(t, err, common.ErrorValidation)

	fapi.pay = models.Payment{}
	_, err = svc.Subscribe(ctx, models.SubscriptionMonthly)
	assert.EqualError(t, err, "Payment initialization failed")

	fapi.payErr = &api.Error{Status: http.StatusBadRequest, Message: "Active subscription exists"}
	_, err = svc.Subscribe(ctx, models.SubscriptionMonthly)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Active subscription exists")
}

func TestPayment_Verify(t *testing.T) {
	tests := []struct {
		status models.PaymentStatus
		msg    string
		done   bool
		ok     bool
	}{
		{models.PaymentSuccessful, "Payment successful! Your subscription is now active.", true, true},
		{models.PaymentFailed, "Payment failed. Please try again.", true, false},
		{models.PaymentPending, "Payment is being processed...", false, false},
		{models.PaymentExpired, "Payment is being processed...", false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			fapi := &fakePaymentAPI{pay: models.Payment{Status: tt.status}}
			v, err := NewPaymentService(fapi, &fakeSession{}).Verify(context.Background(), " tx-1 ")
			require.NoError(t, err)
			assert.Equal(t, tt.msg, v.Message)
			assert.Equal(t, tt.done, v.Done)
			assert.Equal(t, tt.ok, v.OK)
			assert.Equal(t, "tx-1", fapi.lastTx)
		})
	}

	_, err := NewPaymentService(&fakePaymentAPI{}, &fakeSession{}).Verify(context.Background(), "  ")
	assert.EqualError(t, err, "Invalid payment reference")
}
