package http

import (
	"fmt"
	"log/slog"
	"mealky-way/common/constant"
	jetsteamMock "mealky-way/common/jetstream/mocks"
	"mealky-way/outbound/sqlgen"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHttpTestSuite struct {
	suite.Suite

	Querier *sqlgen.Queries
	PgxMock pgxmock.PgxPoolIface

	Validate  *validator.Validate
	Publisher *jetsteamMock.MockPublisher
}

func (s *OrderHttpTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	pool, err := pgxmock.NewPool()
	if err != nil {
		s.T().Fatalf("failed to create pgxmock pool: %v", err)
	}

	s.PgxMock = pool
	s.Querier = sqlgen.New(pool)

	s.Validate = validator.New()
	s.Publisher = jetsteamMock.NewMockPublisher(ctrl)

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *OrderHttpTestSuite) TearDownTest() {
	s.PgxMock.Close()
}

func TestOrderHttpTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHttpTestSuite))
}

func (s *OrderHttpTestSuite) TestPlace() {
	createdAt := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	customerCols := []string{"id", "contact_number", "name", "hall", "room", "created_at", "inserted"}
	orderCols := []string{"id", "customer_id", "quantity", "date", "created_at"}

	expectUpsert := func() {
		s.PgxMock.ExpectQuery("INSERT INTO customers").
			WithArgs("01711111111", "Rahim", "RU - Shahid Hall", "204").
			WillReturnRows(pgxmock.NewRows(customerCols).
				AddRow(int32(7), "01711111111", "Rahim", "RU - Shahid Hall", "204", createdAt, true))
	}

	tests := []struct {
		name           string
		reqBody        string
		setupMock      func()
		expectedStatus int
		expectedBody   string
		timeNow        func() time.Time
	}{
		{
			name:           "invalid json",
			reqBody:        `{invalid json`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request"}`,
		},
		{
			name:           "missing fields",
			reqBody:        `{"name": "  ", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 1}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Name":"required"}}`,
		},
		{
			name:           "quantity below one",
			reqBody:        `{"name": "Rahim", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": -2}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Quantity":"min"}}`,
		},
		{
			name:           "malformed date",
			reqBody:        `{"name": "Rahim", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 1, "date": "01/05/2024"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","data":{"Date":"datetime"}}`,
		},
		{
			name:    "begin error",
			reqBody: `{"name": "Rahim", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 2, "date": "2024-05-02"}`,
			setupMock: func() {
				s.PgxMock.ExpectBegin().WillReturnError(fmt.Errorf("begin error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Database error"}`,
		},
		{
			name:    "upsert customer error",
			reqBody: `{"name": "Rahim", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 2, "date": "2024-05-02"}`,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				s.PgxMock.ExpectQuery("INSERT INTO customers").
					WithArgs("01711111111", "Rahim", "RU - Shahid Hall", "204").
					WillReturnError(fmt.Errorf("database error"))
				s.PgxMock.ExpectRollback().WillReturnError(nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Database error"}`,
		},
		{
			name:    "insert order error",
			reqBody: `{"name": "Rahim", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 2, "date": "2024-05-02"}`,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				expectUpsert()
				s.PgxMock.ExpectQuery("INSERT INTO orders").
					WithArgs(int32(7), int32(2), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)).
					WillReturnError(fmt.Errorf("database error"))
				s.PgxMock.ExpectRollback().WillReturnError(nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Database error"}`,
		},
		{
			name:    "commit error",
			reqBody: `{"name": "Rahim", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 2, "date": "2024-05-02"}`,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				expectUpsert()
				s.PgxMock.ExpectQuery("INSERT INTO orders").
					WithArgs(int32(7), int32(2), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(pgxmock.NewRows(orderCols).
						AddRow(int32(11), int32(7), int32(2), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), createdAt))
				s.PgxMock.ExpectCommit().WillReturnError(fmt.Errorf("commit error"))
				s.PgxMock.ExpectRollback().WillReturnError(nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Database error"}`,
		},
		{
			name:    "publish error still succeeds",
			reqBody: `{"name": " Rahim ", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 2, "date": "2024-05-02"}`,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				expectUpsert()
				s.PgxMock.ExpectQuery("INSERT INTO orders").
					WithArgs(int32(7), int32(2), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(pgxmock.NewRows(orderCols).
						AddRow(int32(11), int32(7), int32(2), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), createdAt))
				s.PgxMock.ExpectCommit().WillReturnError(nil)

				s.Publisher.EXPECT().Publish(
					gomock.Any(),
					constant.SubjectOrderPlaced,
					gomock.Any(),
					gomock.Any(),
				).Return(nil, fmt.Errorf("publish error"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"orderId":11`,
		},
		{
			name:    "success with default date",
			reqBody: `{"name": "Rahim", "contactNumber": "01711111111", "hall": "RU - Shahid Hall", "room": "204", "quantity": 3}`,
			setupMock: func() {
				s.PgxMock.ExpectBegin()
				expectUpsert()
				s.PgxMock.ExpectQuery("INSERT INTO orders").
					WithArgs(int32(7), int32(3), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(pgxmock.NewRows(orderCols).
						AddRow(int32(12), int32(7), int32(3), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), createdAt))
				s.PgxMock.ExpectCommit().WillReturnError(nil)

				s.Publisher.EXPECT().Publish(
					gomock.Any(),
					constant.SubjectOrderPlaced,
					[]byte(`{"id":12,"customer_id":7,"name":"Rahim","contact_number":"01711111111","hall":"RU - Shahid Hall","room":"204","quantity":3,"date":"2024-05-01"}`),
					gomock.Any(),
				).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"order":{"id":12,"customer_id":7,"quantity":3,"date":"2024-05-01","created_at":"2024-05-01T09:30:00Z","customer_name":"Rahim"}`,
			timeNow: func() time.Time {
				return time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			orderHttp := RegisterOrderHttp(
				http.NewServeMux(),
				s.PgxMock,
				s.Querier,
				s.Publisher,
				s.Validate,
			)

			if tc.timeNow != nil {
				orderHttp.TimeNow = tc.timeNow
			}

			tc.setupMock()

			req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(tc.reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			orderHttp.place(w, req)

			s.Equal(tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				s.Contains(w.Body.String(), tc.expectedBody, "Response should contain expected text")
				s.Contains(w.Body.String(), `"success":true`)
			} else {
				actual := strings.TrimSpace(w.Body.String())
				s.Equal(tc.expectedBody, actual)
			}

			s.NoError(s.PgxMock.ExpectationsWereMet())
		})
	}
}
