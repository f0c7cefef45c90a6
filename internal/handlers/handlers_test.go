package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azadarx/lifeCoaching-backend/internal/gateway"
	"github.com/Azadarx/lifeCoaching-backend/internal/mailer"
	"github.com/Azadarx/lifeCoaching-backend/internal/signature"
)

const testSecret = "test_key_secret"

// --- fakes ---

type fakeGateway struct {
	lastReq gateway.OrderRequest
	resp    map[string]interface{}
	err     error
	calls   int
}

func (f *fakeGateway) CreateOrder(req gateway.OrderRequest) (map[string]interface{}, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeGateway) KeyID() string { return "rzp_test_key" }

// fakeMailer records deliveries; failures can be injected per recipient or
// for every send.
type fakeMailer struct {
	sent    []mailer.Message
	fail    map[string]error
	failAll error
}

func (f *fakeMailer) Send(m mailer.Message) error {
	if f.failAll != nil {
		return f.failAll
	}
	if err := f.fail[m.To]; err != nil {
		return err
	}
	f.sent = append(f.sent, m)
	return nil
}

func newTestRouter(cfg HandlerConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, cfg)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func baseConfig(gw *fakeGateway, m *fakeMailer) HandlerConfig {
	return HandlerConfig{
		Gateway:    gw,
		Mailer:     m,
		Secret:     testSecret,
		AdminEmail: "admin@example.com",
	}
}

// --- key endpoint ---

func TestRazorpayKey(t *testing.T) {
	r := newTestRouter(baseConfig(&fakeGateway{}, &fakeMailer{}))

	w := doJSON(r, http.MethodGet, "/api/razorpay-key", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key_id":"rzp_test_key"}`, w.Body.String())
}

// --- create-order ---

func TestCreateOrder_ForwardsAndRelays(t *testing.T) {
	gw := &fakeGateway{resp: map[string]interface{}{
		"id":       "order_xyz",
		"amount":   50000,
		"currency": "INR",
		"status":   "created",
	}}
	r := newTestRouter(baseConfig(gw, &fakeMailer{}))

	w := doJSON(r, http.MethodPost, "/api/create-order", gin.H{
		"amount":   50000,
		"currency": "INR",
		"receipt":  "rcpt_1",
		"customerDetails": gin.H{
			"fullName": "Asha",
			"email":    "asha@example.com",
			"phone":    "9999999999",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, int64(50000), gw.lastReq.Amount)
	assert.Equal(t, "INR", gw.lastReq.Currency)
	assert.Equal(t, "rcpt_1", gw.lastReq.Receipt)
	assert.Equal(t, "Asha", gw.lastReq.Notes["name"])
	assert.Equal(t, "asha@example.com", gw.lastReq.Notes["email"])
	assert.Equal(t, "9999999999", gw.lastReq.Notes["phone"])

	// the body is the gateway's order object, unmodified
	want, _ := json.Marshal(gw.resp)
	assert.JSONEq(t, string(want), w.Body.String())
}

func TestCreateOrder_GatewayError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("BAD_REQUEST_ERROR: currency not supported")}
	r := newTestRouter(baseConfig(gw, &fakeMailer{}))

	w := doJSON(r, http.MethodPost, "/api/create-order", gin.H{
		"amount":   100,
		"currency": "XXX",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to create order", body["error"])
	assert.Contains(t, body["details"], "currency not supported")
	assert.Equal(t, 1, gw.calls, "gateway errors are not retried")
}

func TestCreateOrder_ValidationFailure(t *testing.T) {
	gw := &fakeGateway{}
	r := newTestRouter(baseConfig(gw, &fakeMailer{}))

	// missing currency
	w := doJSON(r, http.MethodPost, "/api/create-order", gin.H{"amount": 100})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_failed")
	assert.Equal(t, 0, gw.calls)

	// malformed body
	req := httptest.NewRequest(http.MethodPost, "/api/create-order", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusBadRequest, w2.Code)
	assert.Contains(t, w2.Body.String(), "invalid_request_body")
}

// --- payment-success ---

func successPayload(orderID, payID string, cart []gin.H) gin.H {
	return gin.H{
		"razorpayOrderId":   orderID,
		"razorpayPaymentId": payID,
		"razorpaySignature": signature.Sign(testSecret, orderID, payID),
		"amount":            150000,
		"customerDetails": gin.H{
			"fullName": "Asha",
			"email":    "asha@example.com",
			"phone":    "9999999999",
		},
		"cartItems": cart,
	}
}

func TestPaymentSuccess_ValidSignature(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/payment-success",
		successPayload("order_1", "pay_1", []gin.H{{"title": "Career Coaching", "price": 1500, "quantity": 1}}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	require.Len(t, m.sent, 2)
	assert.Equal(t, "asha@example.com", m.sent[0].To)
	assert.Equal(t, "Your Booking Confirmation", m.sent[0].Subject)
	assert.Contains(t, m.sent[0].HTML, "pay_1")
	assert.Contains(t, m.sent[0].HTML, "1500.00")
	assert.Contains(t, m.sent[0].HTML, "Career Coaching")

	assert.Equal(t, "admin@example.com", m.sent[1].To)
	assert.Equal(t, "New Payment Received", m.sent[1].Subject)
	assert.Contains(t, m.sent[1].HTML, "order_1")
}

func TestPaymentSuccess_EmptyCartOmitsItemizedBlock(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/payment-success", successPayload("order_2", "pay_2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, m.sent, 2)
	assert.NotContains(t, m.sent[0].HTML, "<table")
	assert.NotContains(t, m.sent[1].HTML, "<table")
}

func TestPaymentSuccess_InvalidSignature(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	payload := successPayload("order_1", "pay_1", nil)
	payload["razorpaySignature"] = "0000000000000000000000000000000000000000000000000000000000000000"

	w := doJSON(r, http.MethodPost, "/api/payment-success", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid signature"}`, w.Body.String())
	assert.Empty(t, m.sent, "no email may be sent on a failed signature check")
}

func TestPaymentSuccess_MissingIdentifiers(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/payment-success", gin.H{"razorpayOrderId": "order_1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_failed")
	assert.Empty(t, m.sent)
}

func TestPaymentSuccess_MailFailuresDoNotBlockResponse(t *testing.T) {
	m := &fakeMailer{failAll: errors.New("smtp down")}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/payment-success", successPayload("order_3", "pay_3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestPaymentSuccess_OneSendFailingDoesNotBlockTheOther(t *testing.T) {
	m := &fakeMailer{fail: map[string]error{"asha@example.com": errors.New("mailbox full")}}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/payment-success", successPayload("order_4", "pay_4", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "admin@example.com", m.sent[0].To)
}

// --- contact ---

func contactPayload() gin.H {
	return gin.H{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"subject": "Availability",
		"message": "Do you have slots next week?",
	}
}

func TestContact_BothSendsSucceed(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/contact", contactPayload())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Message sent successfully")

	require.Len(t, m.sent, 2)
	assert.Equal(t, "admin@example.com", m.sent[0].To)
	assert.Contains(t, m.sent[0].HTML, "Do you have slots next week?")
	assert.Equal(t, "ravi@example.com", m.sent[1].To)
}

func TestContact_OneFailureStillSucceeds(t *testing.T) {
	m := &fakeMailer{fail: map[string]error{"admin@example.com": errors.New("mailbox full")}}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/contact", contactPayload())

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "ravi@example.com", m.sent[0].To, "the acknowledgement still goes out")
}

func TestContact_TotalFailure(t *testing.T) {
	m := &fakeMailer{failAll: errors.New("smtp down")}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/contact", contactPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to send message", body["message"])
	assert.Contains(t, body["details"], "smtp down")
}

func TestContact_DisabledMailer(t *testing.T) {
	cfg := baseConfig(&fakeGateway{}, nil)
	cfg.Mailer = mailer.Disabled{}
	r := newTestRouter(cfg)

	w := doJSON(r, http.MethodPost, "/api/contact", contactPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send message")
}

func TestContact_ValidationFailure(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(baseConfig(&fakeGateway{}, m))

	w := doJSON(r, http.MethodPost, "/api/contact", gin.H{"name": "Ravi"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, m.sent)
}
