package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sagnik22dey/RoasGuy/models"
	"github.com/sagnik22dey/RoasGuy/services"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+91+919064292887", "+919064292887"},
		{"9064292887", "+919064292887"},
		{"+1234567890123", "+1234567890123"},
		{"+91 90642 92887", "+919064292887"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, services.NormalizePhone(tc.in), "input %q", tc.in)
	}
}

// ---- recording Graphy fake ----

type graphyCall struct {
	Path string
	Form url.Values
}

type fakeGraphy struct {
	mu    sync.Mutex
	calls []graphyCall

	// responses keyed by path, consumed in order; defaults to 200 {}
	learnerResponses []string
	assignResponse   string
}

func (f *fakeGraphy) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		f.mu.Lock()
		f.calls = append(f.calls, graphyCall{Path: r.URL.Path, Form: r.PostForm})
		var body string
		switch r.URL.Path {
		case "/learners":
			if len(f.learnerResponses) > 0 {
				body = f.learnerResponses[0]
				f.learnerResponses = f.learnerResponses[1:]
			}
		case "/assign":
			body = f.assignResponse
		}
		f.mu.Unlock()

		if body == "" {
			body = `{"status":"ok"}`
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}

func (f *fakeGraphy) recorded() []graphyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]graphyCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func newTestGraphyClient(t *testing.T, fake *fakeGraphy) *services.GraphyClient {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	logger, _ := zap.NewDevelopment()
	client := services.NewGraphyClient("mid_test", "key_test", testCatalog(), logger)
	client.BaseURL = srv.URL
	return client
}

func job() models.EnrollmentJob {
	return models.EnrollmentJob{
		Email:     "asha@example.com",
		Name:      "Asha",
		Phone:     "9064292887",
		CourseID:  "fundamentals-of-facebook-ads",
		PaymentID: "pay_xyz789",
	}
}

// ---- tests ----

func TestCreateAndEnroll_HappyPath(t *testing.T) {
	fake := &fakeGraphy{}
	client := newTestGraphyClient(t, fake)

	result := client.CreateAndEnroll(context.Background(), job())

	assert.True(t, result.LearnerCreated)
	assert.True(t, result.CourseAssigned)

	calls := fake.recorded()
	if assert.Len(t, calls, 2) {
		assert.Equal(t, "/learners", calls[0].Path)
		assert.Equal(t, "asha@example.com", calls[0].Form.Get("email"))
		assert.Equal(t, "+919064292887", calls[0].Form.Get("mobile"))
		assert.Equal(t, "true", calls[0].Form.Get("sendEmail"))

		assert.Equal(t, "/assign", calls[1].Path)
		assert.Equal(t, "prod_fundamentals", calls[1].Form.Get("productId"))
		assert.Equal(t, "razorpay", calls[1].Form.Get("extPG"))
		assert.Equal(t, "pay_xyz789", calls[1].Form.Get("extPaymentId"))
	}
}

func TestCreateAndEnroll_PhoneConflictRetriesOnceWithoutPhone(t *testing.T) {
	fake := &fakeGraphy{
		learnerResponses: []string{
			`{"error":{"message":"This mobile number is already registered"}}`,
		},
	}
	client := newTestGraphyClient(t, fake)

	result := client.CreateAndEnroll(context.Background(), job())

	calls := fake.recorded()
	if assert.Len(t, calls, 3, "one learner call, one retry, one assign") {
		assert.Equal(t, "/learners", calls[0].Path)
		assert.NotEmpty(t, calls[0].Form.Get("mobile"))

		assert.Equal(t, "/learners", calls[1].Path)
		assert.Empty(t, calls[1].Form.Get("mobile"), "retry must omit the phone")

		assert.Equal(t, "/assign", calls[2].Path)
	}
	assert.True(t, result.LearnerCreated, "retry without phone succeeded")
	assert.True(t, result.CourseAssigned)
}

func TestCreateAndEnroll_LearnerFailureStillAssigns(t *testing.T) {
	// Non-conflict failure: no retry, assignment proceeds (the learner may
	// already exist), and assigned-without-created is a valid success.
	fake := &fakeGraphy{
		learnerResponses: []string{
			`{"error":{"message":"duplicate email"}}`,
		},
	}
	client := newTestGraphyClient(t, fake)

	result := client.CreateAndEnroll(context.Background(), job())

	calls := fake.recorded()
	if assert.Len(t, calls, 2) {
		assert.Equal(t, "/learners", calls[0].Path)
		assert.Equal(t, "/assign", calls[1].Path)
	}
	assert.False(t, result.LearnerCreated)
	assert.True(t, result.CourseAssigned)
	assert.Contains(t, result.LearnerResponse.Error, "duplicate email")
}

func TestCreateAndEnroll_UnmappedProduct(t *testing.T) {
	fake := &fakeGraphy{}
	client := newTestGraphyClient(t, fake)

	j := job()
	j.CourseID = "value-plan" // in catalog, but no Graphy product mapped
	result := client.CreateAndEnroll(context.Background(), j)

	assert.True(t, result.LearnerCreated, "learner step is independent")
	assert.False(t, result.CourseAssigned)
	assert.Contains(t, result.AssignResponse.Error, "No Graphy product ID")

	calls := fake.recorded()
	if assert.Len(t, calls, 1, "no assign request may be sent") {
		assert.Equal(t, "/learners", calls[0].Path)
	}
}

func TestCreateLearner_MissingCredentials(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	client := services.NewGraphyClient("", "", testCatalog(), logger)

	result := client.CreateLearner(context.Background(), "asha@example.com", "Asha", "")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not configured")
}
