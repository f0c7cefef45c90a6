// Package gateway wraps the Razorpay SDK behind the small surface the
// relay actually uses, so handlers depend on a capability rather than the
// concrete client.
package gateway

import (
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// OrderAPI is the slice of the Razorpay SDK used for order creation.
// razorpay-go's client.Order satisfies it; tests substitute a fake.
type OrderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Client binds the gateway order API to the account's public key id.
type Client struct {
	orders OrderAPI
	keyID  string
}

// New returns a Client backed by the real Razorpay SDK.
func New(keyID, keySecret string) *Client {
	rzp := razorpay.NewClient(keyID, keySecret)
	return &Client{orders: rzp.Order, keyID: keyID}
}

// NewWithOrderAPI wires a caller-supplied order API. Used by tests.
func NewWithOrderAPI(orders OrderAPI, keyID string) *Client {
	return &Client{orders: orders, keyID: keyID}
}

// KeyID returns the public key identifier consumed by the checkout widget.
func (c *Client) KeyID() string { return c.keyID }

// OrderRequest carries the fields forwarded to the gateway's
// order-creation operation. Amount is in the smallest currency unit.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]interface{}
}

// CreateOrder creates a gateway order and returns the gateway's order
// object unmodified, including the gateway-assigned order id. A blank
// receipt gets a generated rcpt_ id. Failed calls are not retried.
func (c *Client) CreateOrder(req OrderRequest) (map[string]interface{}, error) {
	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + uuid.NewString()
	}

	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  receipt,
	}
	if len(req.Notes) > 0 {
		data["notes"] = req.Notes
	}

	order, err := c.orders.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}
