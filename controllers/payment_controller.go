package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sagnik22dey/RoasGuy/metrics"
	"github.com/sagnik22dey/RoasGuy/models"
	"github.com/sagnik22dey/RoasGuy/services"
)

// PaymentController owns the checkout API: order creation against the
// gateway, payment verification, and scheduling of the enrollment that
// follows a verified payment.
type PaymentController struct {
	Orders    *services.OrderService
	Queue     *services.EnrollmentQueue
	KeyID     string
	KeySecret string
	Logger    *zap.Logger
}

// CreateOrder handles POST /api/create-order.
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pc.Logger.Info("Creating order",
		zap.String("course_id", req.CourseID),
		zap.String("email", req.Email),
	)

	conf, err := pc.Orders.CreateOrder(&req)
	if err != nil {
		var svcErr *services.ServiceError
		if errors.As(err, &svcErr) {
			c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.OrdersCreated.Inc()
	c.JSON(http.StatusOK, conf)
}

// VerifyPayment handles POST /api/verify-payment. A valid signature gets
// an immediate acknowledgment and an enrollment job on the queue; the
// enrollment outcome is never surfaced back to this caller. An invalid
// signature is rejected outright and schedules nothing.
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Never feed an empty secret to the verifier.
	if pc.KeySecret == "" {
		pc.Logger.Error("Razorpay key secret not configured, cannot verify payment",
			zap.String("order_id", req.RazorpayOrderID),
			zap.String("payment_id", req.RazorpayPaymentID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment verification is not configured"})
		return
	}

	if !services.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, pc.KeySecret) {
		metrics.SignatureFailures.Inc()
		pc.Logger.Warn("Invalid payment signature",
			zap.String("order_id", req.RazorpayOrderID),
			zap.String("payment_id", req.RazorpayPaymentID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment signature"})
		return
	}

	metrics.PaymentsVerified.Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Payment verified successfully",
		"payment_id": req.RazorpayPaymentID,
		"order_id":   req.RazorpayOrderID,
	})

	pc.Queue.Enqueue(models.EnrollmentJob{
		Email:     req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		CourseID:  req.CourseID,
		PaymentID: req.RazorpayPaymentID,
	})
}

// RazorpayKey handles GET /api/razorpay-key; the key id is public.
func (pc *PaymentController) RazorpayKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key_id": pc.KeyID})
}
