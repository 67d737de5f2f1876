package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sagnik22dey/RoasGuy/config"
	"github.com/sagnik22dey/RoasGuy/models"
	"github.com/sagnik22dey/RoasGuy/services"
)

// ---- mock gateway ----

type mockGateway struct {
	calls    int
	lastData map[string]interface{}
	resp     map[string]interface{}
	err      error
}

func (m *mockGateway) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	m.calls++
	m.lastData = data
	return m.resp, m.err
}

// ---- helpers ----

func testCatalog() map[string]config.Course {
	return map[string]config.Course{
		"fundamentals-of-facebook-ads": {
			ID:              "fundamentals-of-facebook-ads",
			Name:            "Fundamentals of Facebook Ads",
			Amount:          99900,
			Currency:        "INR",
			GraphyProductID: "prod_fundamentals",
		},
		"value-plan": {
			ID:       "value-plan",
			Name:     "Value Plan",
			Amount:   1499100,
			Currency: "INR",
			// no Graphy product mapped
		},
	}
}

func newOrderService(gw *mockGateway) *services.OrderService {
	logger, _ := zap.NewDevelopment()
	return services.NewOrderService(gw, "rzp_test_key", testCatalog(), logger)
}

// ---- tests ----

func TestCreateOrder_UnknownCourse(t *testing.T) {
	gw := &mockGateway{}
	svc := newOrderService(gw)

	_, err := svc.CreateOrder(&models.CreateOrderRequest{
		CourseID: "no-such-course",
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+919064292887",
	})

	var svcErr *services.ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, 400, svcErr.StatusCode)
	}
	assert.Equal(t, 0, gw.calls, "unknown course must not reach the gateway")
}

func TestCreateOrder_Success(t *testing.T) {
	gw := &mockGateway{
		resp: map[string]interface{}{"id": "order_test_001", "status": "created"},
	}
	svc := newOrderService(gw)

	conf, err := svc.CreateOrder(&models.CreateOrderRequest{
		CourseID: "fundamentals-of-facebook-ads",
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+919064292887",
	})

	assert.NoError(t, err)
	assert.True(t, conf.Success)
	assert.Equal(t, "order_test_001", conf.OrderID)
	assert.Equal(t, int64(99900), conf.Amount)
	assert.Equal(t, "INR", conf.Currency)
	assert.Equal(t, "rzp_test_key", conf.KeyID)
	assert.Equal(t, "Fundamentals of Facebook Ads", conf.CourseName)
	assert.Equal(t, "asha@example.com", conf.Prefill.Email)

	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, int64(99900), gw.lastData["amount"])
	notes, ok := gw.lastData["notes"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "fundamentals-of-facebook-ads", notes["course_id"])
	assert.Equal(t, "asha@example.com", notes["customer_email"])
	receipt, _ := gw.lastData["receipt"].(string)
	assert.Contains(t, receipt, "rcpt_")
}

func TestCreateOrder_UniqueReceipts(t *testing.T) {
	gw := &mockGateway{resp: map[string]interface{}{"id": "order_a"}}
	svc := newOrderService(gw)
	req := &models.CreateOrderRequest{
		CourseID: "fundamentals-of-facebook-ads",
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+919064292887",
	}

	_, err := svc.CreateOrder(req)
	assert.NoError(t, err)
	first, _ := gw.lastData["receipt"].(string)

	_, err = svc.CreateOrder(req)
	assert.NoError(t, err)
	second, _ := gw.lastData["receipt"].(string)

	assert.NotEqual(t, first, second)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	gw := &mockGateway{err: errors.New("BAD_REQUEST_ERROR: authentication failed")}
	svc := newOrderService(gw)

	_, err := svc.CreateOrder(&models.CreateOrderRequest{
		CourseID: "fundamentals-of-facebook-ads",
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+919064292887",
	})

	var svcErr *services.ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, 500, svcErr.StatusCode)
		assert.Contains(t, svcErr.Message, "authentication failed")
	}
	assert.Equal(t, 1, gw.calls, "gateway failures are not retried")
}
