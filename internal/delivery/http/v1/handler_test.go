package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) ValidateField(ctx context.Context, field, value string) (string, error) {
	args := m.Called(ctx, field, value)
	return args.String(0), args.Error(1)
}

func (m *MockContactUC) Submit(ctx context.Context, msg domain.ContactMessage) (*domain.ContactRecord, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactRecord), args.Error(1)
}

func (m *MockContactUC) ListMessages(ctx context.Context, limit, offset int) ([]domain.ContactRecord, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ContactRecord), args.Int(1), args.Error(2)
}

type stubHealth struct {
	ok bool
}

func (s stubHealth) Check(context.Context) (map[string]string, bool) {
	if s.ok {
		return map[string]string{"status": "ok"}, true
	}
	return map[string]string{"status": "degraded"}, false
}

var validMsg = domain.ContactMessage{
	Name:    "Ada",
	Email:   "ada@example.com",
	Subject: "Hello there",
	Message: "This is a sufficiently long message.",
}

func contactRouter(uc domain.ContactUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewContactHandler(r.Group("/v1"), uc, func(c *gin.Context) { c.Next() })
	return r
}

func postJSON(r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should store a valid message", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("Submit", mock.Anything, validMsg).Return(&domain.ContactRecord{ID: "abc", ContactMessage: validMsg}, nil).Once()

		w := postJSON(contactRouter(uc), "/v1/contact", validMsg)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, msgSubmitted, body["message"])
		assert.Equal(t, "abc", body["data"].(map[string]interface{})["id"])
		uc.AssertExpectations(t)
	})

	t.Run("Should return field errors", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("Submit", mock.Anything, mock.Anything).Return(nil, &domain.ValidationError{Fields: domain.FieldErrors{
			domain.FieldEmail: "Please enter a valid email address",
		}}).Once()

		w := postJSON(contactRouter(uc), "/v1/contact", domain.ContactMessage{Email: "x"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decode(t, w)
		assert.Equal(t, msgValidationFailed, body["message"])
		assert.Equal(t, map[string]interface{}{"email": "Please enter a valid email address"}, body["error"])
	})

	t.Run("Should hide persistence failure details", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("Submit", mock.Anything, validMsg).
			Return(nil, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, errors.New("dial tcp 10.0.0.5:5432"))).Once()

		w := postJSON(contactRouter(uc), "/v1/contact", validMsg)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, msgSubmitFailed, decode(t, w)["message"])
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		uc := new(MockContactUC)
		w := postJSON(contactRouter(uc), "/v1/contact", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}

func TestValidateField(t *testing.T) {
	t.Run("Should report invalid value", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("ValidateField", mock.Anything, "email", "not-an-email").Return("Please enter a valid email address", nil).Once()

		w := postJSON(contactRouter(uc), "/v1/contact/validate", ValidateFieldRequest{Field: "email", Value: "not-an-email"})

		assert.Equal(t, http.StatusOK, w.Code)
		data := decode(t, w)["data"].(map[string]interface{})
		assert.Equal(t, false, data["valid"])
		assert.Equal(t, "Please enter a valid email address", data["error"])
	})

	t.Run("Should reject unknown field", func(t *testing.T) {
		uc := new(MockContactUC)
		uc.On("ValidateField", mock.Anything, "phone", "1").Return("", domain.ErrUnknownField).Once()

		w := postJSON(contactRouter(uc), "/v1/contact/validate", ValidateFieldRequest{Field: "phone", Value: "1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should require field", func(t *testing.T) {
		w := postJSON(contactRouter(new(MockContactUC)), "/v1/contact/validate", map[string]string{"value": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func testConfig() *config.Config {
	return &config.Config{
		RateLimitGlobalThreshold:  1000,
		RateLimitContactThreshold: 1000,
		RateLimitWindowSeconds:    60,
	}
}

func TestRouterHealth(t *testing.T) {
	r := NewRouter(RouterDeps{ContactUC: new(MockContactUC), HealthUC: stubHealth{ok: true}, Config: testConfig()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	r = NewRouter(RouterDeps{ContactUC: new(MockContactUC), HealthUC: stubHealth{}, Config: testConfig()})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouterAdminMessages(t *testing.T) {
	uc := new(MockContactUC)
	uc.On("ListMessages", mock.Anything, 5, 10).
		Return([]domain.ContactRecord{{ID: "1", ContactMessage: validMsg, CreatedAt: time.Now()}}, 11, nil).Once()

	r := NewRouter(RouterDeps{
		ContactUC: uc,
		HealthUC:  stubHealth{ok: true},
		Verifier:  auth.NewVerifier("secret", nil),
		Config:    testConfig(),
	})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          "owner",
		"app_metadata": map[string]interface{}{"role": "admin"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/contact-messages?limit=5&offset=10", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(11), data["total"])
	assert.Len(t, data["messages"], 1)

	req = httptest.NewRequest(http.MethodGet, "/v1/admin/contact-messages?limit=abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/contact-messages", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterWithoutVerifierHasNoAdminRoutes(t *testing.T) {
	r := NewRouter(RouterDeps{ContactUC: new(MockContactUC), HealthUC: stubHealth{ok: true}, Config: testConfig()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/contact-messages", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
