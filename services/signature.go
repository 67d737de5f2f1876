package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyPaymentSignature checks that a claimed payment confirmation really
// came from Razorpay: the signature must equal the hex-encoded HMAC-SHA256
// of "orderID|paymentID" keyed with the shared secret. Comparison is
// constant-time. A mismatch is a security failure, not a retryable error.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
