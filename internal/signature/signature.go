// Package signature implements the gateway's payment signature scheme:
// a hex-encoded HMAC-SHA256 over "orderID|paymentID" under the key secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the digest the gateway produces for an order/payment pair.
// The message is orderID first, pipe-delimited; the gateway computes the
// signature over exactly this layout, so any change breaks verification.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether got is the signature for the pair under secret.
// The comparison is constant-time.
func Verify(secret, orderID, paymentID, got string) bool {
	expected := Sign(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(got))
}
