package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"marketsim/internal/config/configs"
	"marketsim/internal/core/domain"
	"marketsim/internal/core/port"
)

const testWebhookSecret = "whsec_test"

func newTestGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewGatewayWithBackends(configs.Stripe{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		PriceID:       "price_premium",
		SuccessURL:    "http://localhost/success",
		CancelURL:     "http://localhost/cancel",
	}, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func sign(payload []byte, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	_, _ = fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestCreateCustomer(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/customers", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "demo@marketsim.local", r.PostForm.Get("email"))
		assert.Equal(t, "1", r.PostForm.Get("metadata[user_id]"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cus_123","object":"customer"}`))
	})

	id, err := g.CreateCustomer(context.Background(), domain.User{ID: 1, Email: "demo@marketsim.local", Username: "demo"})
	require.NoError(t, err)
	assert.Equal(t, "cus_123", id)
}

func TestCreateCheckoutSession(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "idem-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "subscription", r.PostForm.Get("mode"))
		assert.Equal(t, "cus_123", r.PostForm.Get("customer"))
		assert.Equal(t, "price_premium", r.PostForm.Get("line_items[0][price]"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cs_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_1"}`))
	})

	s, err := g.CreateCheckoutSession(context.Background(), port.CheckoutReq{UserID: 1, CustomerID: "cus_123", IdempotencyKey: "idem-1"})
	require.NoError(t, err)
	assert.Equal(t, "cs_1", s.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_1", s.URL)
}

func TestCreateCheckoutSession_APIError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such price"}}`))
	})

	_, err := g.CreateCheckoutSession(context.Background(), port.CheckoutReq{CustomerID: "cus_123"})
	assert.Error(t, err)
}

func TestParseWebhook_Subscription(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := []byte(`{"id":"evt_1","object":"event","api_version":"2023-10-16","type":"customer.subscription.updated",
"data":{"object":{"id":"sub_1","object":"subscription","customer":"cus_123","status":"active","current_period_end":1717200000,"cancel_at_period_end":true}}}`)

	ev, err := g.ParseWebhook(payload, sign(payload, time.Now()))
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "customer.subscription.updated", ev.Type)
	assert.Equal(t, "cus_123", ev.CustomerID)
	assert.Equal(t, "sub_1", ev.SubscriptionID)
	assert.Equal(t, domain.SubscriptionActive, ev.Status)
	assert.True(t, ev.CancelAtPeriodEnd)
	assert.Equal(t, time.Unix(1717200000, 0).UTC(), ev.CurrentPeriodEnd)
}

func TestParseWebhook_CheckoutCompleted(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := []byte(`{"id":"evt_2","object":"event","type":"checkout.session.completed",
"data":{"object":{"id":"cs_1","object":"checkout.session","mode":"subscription","customer":"cus_123","subscription":"sub_1"}}}`)

	ev, err := g.ParseWebhook(payload, sign(payload, time.Now()))
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "cus_123", ev.CustomerID)
	assert.Equal(t, "sub_1", ev.SubscriptionID)
	assert.Empty(t, ev.Status)
}

func TestParseWebhook_IgnoredType(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := []byte(`{"id":"evt_3","object":"event","type":"invoice.paid","data":{"object":{"id":"in_1","object":"invoice"}}}`)

	ev, err := g.ParseWebhook(payload, sign(payload, time.Now()))
	require.NoError(t, err)
	assert.Nil(t, ev)
}

func TestParseWebhook_BadSignature(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := []byte(`{"id":"evt_1","object":"event","type":"customer.subscription.updated","data":{"object":{}}}`)

	_, err := g.ParseWebhook(payload, "t=1,v1=deadbeef")
	assert.Error(t, err)
}
