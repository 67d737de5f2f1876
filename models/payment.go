package models

// CreateOrderRequest is the checkout payload posted by the cart pages.
type CreateOrderRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
}

// VerifyPaymentRequest is posted by the payment UI after Razorpay reports
// a completed transaction. Only order id + payment id are covered by the
// signature; the remaining fields drive the enrollment that follows.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	CourseID          string `json:"course_id" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"required"`
}

// Prefill carries the customer identity back to the payment UI.
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// OrderConfirmation is the create-order response handed to the Razorpay
// checkout widget.
type OrderConfirmation struct {
	Success    bool    `json:"success"`
	OrderID    string  `json:"order_id"`
	Amount     int64   `json:"amount"`
	Currency   string  `json:"currency"`
	KeyID      string  `json:"key_id"`
	CourseName string  `json:"course_name"`
	Prefill    Prefill `json:"prefill"`
}
