package http

import (
	"mealky-way/common/auth"
	"mealky-way/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type MiddlewareTestSuite struct {
	suite.Suite

	Cache     *redis.Client
	CacheMock redismock.ClientMock

	Authenticator *auth.Authenticator
}

func (s *MiddlewareTestSuite) SetupTest() {
	rdb, mock := redismock.NewClientMock()
	s.Cache = rdb
	s.CacheMock = mock

	s.Authenticator = newTestAuthenticator(rdb)
}

func (s *MiddlewareTestSuite) TearDownTest() {
	if err := s.Cache.Close(); err != nil {
		s.T().Fatalf("failed to close redis mock: %v", err)
	}
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) TestCorsMiddleware() {
	tests := []struct {
		name            string
		method          string
		origin          string
		expectedStatus  int
		expectedHeaders map[string]string
		handlerCalled   bool
	}{
		{
			name:           "OPTIONS request",
			method:         http.MethodOptions,
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type, Authorization",
			},
			handlerCalled: false,
		},
		{
			name:           "GET request",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":  "*",
				"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
				"Access-Control-Allow-Headers": "Content-Type, Authorization",
			},
			handlerCalled: true,
		},
		{
			name:           "credentialed request from panel origin",
			method:         http.MethodGet,
			origin:         "https://mealkyway.example",
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Access-Control-Allow-Origin":      "https://mealkyway.example",
				"Access-Control-Allow-Credentials": "true",
				"Vary":                             "Origin",
			},
			handlerCalled: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			handlerCalled := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			middleware := CorsMiddleware(handler)

			req := httptest.NewRequest(tc.method, "/test", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := httptest.NewRecorder()

			middleware.ServeHTTP(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			for key, value := range tc.expectedHeaders {
				s.Equal(value, w.Header().Get(key))
			}
			s.Equal(tc.handlerCalled, handlerCalled)
		})
	}
}

func (s *MiddlewareTestSuite) TestTimeoutMiddleware() {
	tests := []struct {
		name           string
		handlerDelay   time.Duration
		timeout        time.Duration
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "request completes in time",
			handlerDelay:   1 * time.Millisecond,
			timeout:        100 * time.Millisecond,
			expectedStatus: http.StatusOK,
			expectedBody:   "success",
		},
		{
			name:           "request times out",
			handlerDelay:   200 * time.Millisecond,
			timeout:        50 * time.Millisecond,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "request timeout",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(tc.handlerDelay)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("success"))
			})

			middleware := TimeoutMiddleware(tc.timeout)(handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			middleware.ServeHTTP(w, req)

			s.Equal(tc.expectedStatus, w.Code, "Expected status code %d but got %d", tc.expectedStatus, w.Code)
			s.Contains(w.Body.String(), tc.expectedBody)
		})
	}
}

func (s *MiddlewareTestSuite) TestAuthMiddleware() {
	tests := []struct {
		name             string
		setupRequest     func(r *http.Request)
		expectedStatus   int
		expectedBody     string
		expectedIdentity model.AdminIdentity
	}{
		{
			name:           "no credentials",
			setupRequest:   func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "valid session",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: testCookieName, Value: "sid"})
				s.CacheMock.ExpectGet("admin:session:sid").SetVal(`{"id":1,"username":"admin"}`)
			},
			expectedStatus:   http.StatusOK,
			expectedIdentity: model.AdminIdentity{Id: 1, Username: "admin"},
		},
		{
			name: "valid token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+issueTestToken(s.T(), s.Authenticator, s.CacheMock, model.AdminIdentity{Id: 2, Username: "ops"}, false))
			},
			expectedStatus:   http.StatusOK,
			expectedIdentity: model.AdminIdentity{Id: 2, Username: "ops"},
		},
		{
			name: "session store down",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: testCookieName, Value: "sid"})
				s.CacheMock.ExpectGet("admin:session:sid").SetErr(redis.ErrClosed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Database error"}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			var gotIdentity model.AdminIdentity
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotIdentity, _ = auth.AdminFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
			tc.setupRequest(req)
			w := httptest.NewRecorder()

			AuthMiddleware(s.Authenticator)(handler).ServeHTTP(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			if tc.expectedBody != "" {
				s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))
			}
			s.Equal(tc.expectedIdentity, gotIdentity)

			s.NoError(s.CacheMock.ExpectationsWereMet())
		})
	}
}
