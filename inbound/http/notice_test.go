package http

import (
	"fmt"
	"mealky-way/common/constant"
	"mealky-way/common/vars"
	"mealky-way/model"
	"mealky-way/outbound/notice"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type NoticeHttpTestSuite struct {
	suite.Suite

	Cache     *redis.Client
	CacheMock redismock.ClientMock

	Mux *http.ServeMux
}

func (s *NoticeHttpTestSuite) SetupTest() {
	rdb, mock := redismock.NewClientMock()
	s.Cache = rdb
	s.CacheMock = mock

	store := notice.NewStore(rdb)
	store.TimeNow = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }

	s.Mux = http.NewServeMux()
	RegisterNoticeHttp(s.Mux, store, validator.New(), AuthMiddleware(newTestAuthenticator(rdb)))

	vars.SetNotice(nil)
}

func (s *NoticeHttpTestSuite) TearDownTest() {
	vars.SetNotice(nil)

	if err := s.Cache.Close(); err != nil {
		s.T().Fatalf("failed to close redis mock: %v", err)
	}
}

func TestNoticeHttpTestSuite(t *testing.T) {
	suite.Run(t, new(NoticeHttpTestSuite))
}

func (s *NoticeHttpTestSuite) TestGet() {
	tests := []struct {
		name         string
		setup        func()
		expectedBody string
	}{
		{
			name: "served from cache",
			setup: func() {
				vars.SetNotice(&model.Notice{Content: "cached"})
			},
			expectedBody: `{"notice":"cached"}`,
		},
		{
			name: "cold cache reads store",
			setup: func() {
				s.CacheMock.ExpectHGetAll(constant.NoticeKey).SetVal(map[string]string{constant.NoticeFieldContent: "stored"})
			},
			expectedBody: `{"notice":"stored"}`,
		},
		{
			name: "store error yields empty notice",
			setup: func() {
				s.CacheMock.ExpectHGetAll(constant.NoticeKey).SetErr(redis.ErrClosed)
			},
			expectedBody: `{"notice":""}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			vars.SetNotice(nil)
			tc.setup()

			req := httptest.NewRequest(http.MethodGet, "/api/notice", nil)
			w := httptest.NewRecorder()

			s.Mux.ServeHTTP(w, req)

			s.Equal(http.StatusOK, w.Code)
			s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))

			s.NoError(s.CacheMock.ExpectationsWereMet())
		})
	}
}

func (s *NoticeHttpTestSuite) TestUpdate() {
	tests := []struct {
		name           string
		reqBody        string
		authenticated  bool
		setupMock      func()
		expectedStatus int
		expectedBody   string
		expectedCache  string
	}{
		{
			name:           "unauthenticated",
			reqBody:        `{"content": "hello"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:           "too long",
			reqBody:        fmt.Sprintf(`{"content": %q}`, strings.Repeat("a", 1001)),
			authenticated:  true,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Content":"max"}}`,
		},
		{
			name:          "store error",
			reqBody:       `{"content": "hello"}`,
			authenticated: true,
			setupMock: func() {
				s.CacheMock.ExpectHSet(constant.NoticeKey,
					constant.NoticeFieldContent, "hello",
					constant.NoticeFieldUpdatedAt, "2024-05-01T09:30:00Z",
				).SetErr(redis.ErrClosed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Database error"}`,
		},
		{
			name:          "success",
			reqBody:       `{"content": "  Closed on Friday  "}`,
			authenticated: true,
			setupMock: func() {
				s.CacheMock.ExpectHSet(constant.NoticeKey,
					constant.NoticeFieldContent, "Closed on Friday",
					constant.NoticeFieldUpdatedAt, "2024-05-01T09:30:00Z",
				).SetVal(2)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Notice updated"}`,
			expectedCache:  "Closed on Friday",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			vars.SetNotice(nil)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/notice", strings.NewReader(tc.reqBody))
			if tc.authenticated {
				req.AddCookie(&http.Cookie{Name: testCookieName, Value: "sid"})
				s.CacheMock.ExpectGet(fmt.Sprintf(constant.AdminSessionKey, "sid")).SetVal(`{"id":1,"username":"admin"}`)
			}
			tc.setupMock()
			w := httptest.NewRecorder()

			s.Mux.ServeHTTP(w, req)

			s.Equal(tc.expectedStatus, w.Code)
			s.Equal(tc.expectedBody, strings.TrimSpace(w.Body.String()))

			if tc.expectedCache != "" {
				s.Require().NotNil(vars.GetNotice())
				s.Equal(tc.expectedCache, vars.GetNotice().Content)
			}

			s.NoError(s.CacheMock.ExpectationsWereMet())
		})
	}
}
