package services

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sagnik22dey/RoasGuy/config"
	"github.com/sagnik22dey/RoasGuy/models"
)

// OrderAPI is the slice of the Razorpay SDK the order service needs.
// Satisfied by razorpay.Client.Order.
type OrderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// OrderService creates gateway orders for catalog items. It is stateless:
// the order itself is owned by Razorpay, nothing is persisted here.
type OrderService struct {
	gateway OrderAPI
	keyID   string
	catalog map[string]config.Course
	logger  *zap.Logger
}

func NewOrderService(gateway OrderAPI, keyID string, catalog map[string]config.Course, logger *zap.Logger) *OrderService {
	return &OrderService{
		gateway: gateway,
		keyID:   keyID,
		catalog: catalog,
		logger:  logger,
	}
}

// CreateOrder looks up the course, creates a Razorpay order carrying the
// customer identity in its notes block, and returns the checkout prefill.
// There is no retry: a retried create risks a duplicate order.
func (s *OrderService) CreateOrder(req *models.CreateOrderRequest) (*models.OrderConfirmation, error) {
	course, ok := s.catalog[req.CourseID]
	if !ok {
		s.logger.Warn("Invalid course ID", zap.String("course_id", req.CourseID))
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid course ID"}
	}

	receiptID := "rcpt_" + uuid.NewString()

	data := map[string]interface{}{
		"amount":   course.Amount,
		"currency": course.Currency,
		"receipt":  receiptID,
		"notes": map[string]interface{}{
			"course_id":      course.ID,
			"course_name":    course.Name,
			"customer_name":  req.Name,
			"customer_email": req.Email,
			"customer_phone": req.Phone,
		},
	}

	order, err := s.gateway.Create(data, nil)
	if err != nil {
		s.logger.Error("Razorpay order creation failed",
			zap.String("course_id", course.ID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order: " + err.Error()}
	}

	orderID, _ := order["id"].(string)
	s.logger.Info("Order created",
		zap.String("order_id", orderID),
		zap.String("course_id", course.ID),
		zap.String("receipt", receiptID),
	)

	return &models.OrderConfirmation{
		Success:    true,
		OrderID:    orderID,
		Amount:     course.Amount,
		Currency:   course.Currency,
		KeyID:      s.keyID,
		CourseName: course.Name,
		Prefill: models.Prefill{
			Name:    req.Name,
			Email:   req.Email,
			Contact: req.Phone,
		},
	}, nil
}
