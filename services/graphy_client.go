package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sagnik22dey/RoasGuy/config"
	"github.com/sagnik22dey/RoasGuy/models"
)

const graphyBaseURL = "https://api.ongraphy.com/public/v1"

// Enroller runs the post-payment enrollment flow.
type Enroller interface {
	CreateAndEnroll(ctx context.Context, job models.EnrollmentJob) models.EnrollmentResult
}

// GraphyClient talks to the Graphy learning platform. Two endpoints are
// used: POST /learners (create account) and POST /assign (grant course
// access, recording the external payment reference).
type GraphyClient struct {
	// BaseURL is overridable for tests; defaults to the public Graphy API.
	BaseURL string

	mid        string
	apiKey     string
	productIDs map[string]string // course ID -> Graphy product ID
	httpClient *http.Client
	logger     *zap.Logger
}

func NewGraphyClient(mid, apiKey string, catalog map[string]config.Course, logger *zap.Logger) *GraphyClient {
	productIDs := make(map[string]string, len(catalog))
	for id, course := range catalog {
		productIDs[id] = course.GraphyProductID
	}
	return &GraphyClient{
		BaseURL:    graphyBaseURL,
		mid:        mid,
		apiKey:     apiKey,
		productIDs: productIDs,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NormalizePhone cleans a phone number to a single +<countrycode><digits>
// form. A duplicated "91" prefix on an overlong number keeps only the
// trailing 10 digits ("+91+919064292887" becomes "+919064292887"); a bare
// 10-digit number gets the "+91" prefix; other "+"-prefixed international
// numbers keep their digits as-is.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if strings.HasPrefix(digits, "91") && len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	if len(digits) == 10 {
		return "+91" + digits
	}
	if strings.HasPrefix(phone, "+") && len(digits) > 10 {
		return "+" + digits
	}
	if digits == "" {
		return ""
	}
	return "+" + digits
}

// CreateLearner creates a learner account. Success is an HTTP 200 response
// with no "error" field in the body. Phone is optional; when present it is
// normalized first.
func (g *GraphyClient) CreateLearner(ctx context.Context, email, name, phone string) models.StepResult {
	if g.mid == "" || g.apiKey == "" {
		g.logger.Error("Graphy credentials not configured (GRAPHY_MID / GRAPHY_API_KEY)")
		return models.StepResult{Success: false, Error: "Graphy credentials not configured"}
	}

	form := url.Values{}
	form.Set("mid", g.mid)
	form.Set("key", g.apiKey)
	form.Set("email", email)
	form.Set("name", name)
	form.Set("sendEmail", "true")
	if clean := NormalizePhone(phone); clean != "" {
		form.Set("mobile", clean)
	}

	return g.postForm(ctx, "/learners", "Create Learner", form)
}

// AssignCourse enrolls a learner in the Graphy product mapped to courseID,
// recording the Razorpay payment id so the platform can reconcile payment
// to access. An unmapped course is fatal to enrollment.
func (g *GraphyClient) AssignCourse(ctx context.Context, email, courseID, paymentID, phone string) models.StepResult {
	if g.mid == "" || g.apiKey == "" {
		g.logger.Error("Graphy credentials not configured (GRAPHY_MID / GRAPHY_API_KEY)")
		return models.StepResult{Success: false, Error: "Graphy credentials not configured"}
	}

	productID := g.productIDs[courseID]
	if productID == "" {
		g.logger.Error("No Graphy product ID mapped for course", zap.String("course_id", courseID))
		return models.StepResult{Success: false, Error: "No Graphy product ID for course: " + courseID}
	}

	form := url.Values{}
	form.Set("mid", g.mid)
	form.Set("key", g.apiKey)
	form.Set("email", email)
	form.Set("productId", productID)
	form.Set("extPG", "razorpay")
	form.Set("extPaymentId", paymentID)
	if clean := NormalizePhone(phone); clean != "" {
		form.Set("phone", clean)
	}

	return g.postForm(ctx, "/assign", "Assign Course", form)
}

// CreateAndEnroll is the full post-payment flow: create the learner, retry
// once without phone on a phone-number conflict, then assign the course
// regardless of the learner step's outcome (the account may already exist).
// Overall success is CourseAssigned alone. Failures are recorded in the
// result and logged; nothing propagates past this boundary.
func (g *GraphyClient) CreateAndEnroll(ctx context.Context, job models.EnrollmentJob) models.EnrollmentResult {
	var result models.EnrollmentResult

	learner := g.CreateLearner(ctx, job.Email, job.Name, job.Phone)
	result.LearnerResponse = learner
	result.LearnerCreated = learner.Success

	if !learner.Success {
		if isPhoneConflict(learner.Error) {
			g.logger.Warn("Phone conflict, retrying learner creation without phone number",
				zap.String("email", job.Email),
			)
			learner = g.CreateLearner(ctx, job.Email, job.Name, "")
			result.LearnerResponse = learner
			result.LearnerCreated = learner.Success
		}
		if !learner.Success {
			g.logger.Warn("Graphy learner creation returned non-success, attempting enrollment anyway (learner may already exist)",
				zap.String("email", job.Email),
				zap.String("error", learner.Error),
			)
		}
	}

	assign := g.AssignCourse(ctx, job.Email, job.CourseID, job.PaymentID, job.Phone)
	result.AssignResponse = assign
	result.CourseAssigned = assign.Success

	if result.CourseAssigned {
		g.logger.Info("Graphy enrollment complete",
			zap.String("email", job.Email),
			zap.String("course_id", job.CourseID),
			zap.String("payment_id", job.PaymentID),
			zap.Bool("learner_created", result.LearnerCreated),
		)
	} else {
		g.logger.Error("Graphy enrollment failed",
			zap.String("email", job.Email),
			zap.String("course_id", job.CourseID),
			zap.String("payment_id", job.PaymentID),
			zap.String("error", assign.Error),
		)
	}

	return result
}

// isPhoneConflict matches Graphy's "mobile number is already registered"
// error family.
func isPhoneConflict(errMsg string) bool {
	msg := strings.ToLower(errMsg)
	return strings.Contains(msg, "mobile number is already registered") ||
		strings.Contains(msg, "phone")
}

// postForm sends one form-encoded request and interprets the response:
// HTTP 200 with no "error" field is success, anything else is a recorded
// failure with the best error message we can extract.
func (g *GraphyClient) postForm(ctx context.Context, path, operation string, form url.Values) models.StepResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return models.StepResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("Graphy request failed",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return models.StepResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.StepResult{Success: false, Error: err.Error()}
	}

	var body map[string]interface{}
	if err := json.Unmarshal(respBytes, &body); err != nil {
		body = nil
	}

	g.logger.Info("Graphy response",
		zap.String("operation", operation),
		zap.Int("status", resp.StatusCode),
		zap.Any("body", body),
	)

	if resp.StatusCode == http.StatusOK && body != nil {
		if _, hasError := body["error"]; !hasError {
			return models.StepResult{Success: true, Data: body}
		}
	}

	return models.StepResult{
		Success: false,
		Data:    body,
		Error:   fmt.Sprintf("Graphy %s error: %s", operation, extractErrorMessage(body, respBytes)),
	}
}

// extractErrorMessage digs error.message out of a Graphy error payload,
// falling back to the raw body.
func extractErrorMessage(body map[string]interface{}, raw []byte) string {
	if body != nil {
		if errObj, ok := body["error"].(map[string]interface{}); ok {
			if msg, ok := errObj["message"].(string); ok {
				return msg
			}
		}
	}
	return string(raw)
}
