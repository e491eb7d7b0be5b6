package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"repair_intake/internal/adapter/http/handlers/mocks"
	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const paymentPath = "/v1/requests/rq-1/payment"

type brokenBody struct{}

func (brokenBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (brokenBody) Close() error             { return nil }

func newPaymentRouter(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIRepairPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIRepairPaymentUseCase(gomock.NewController(t))
	h := NewRepairPaymentHandler(uc, mockMode, nil)

	r := gin.New()
	r.POST("/v1/requests/:id/payment", h.Settle)
	r.GET("/v1/requests/:id/payment", h.Latest)
	return r, uc
}

func TestRepairPaymentHandler_Settle(t *testing.T) {
	settled := entities.RepairPayment{
		ID:        "pay-1",
		RequestID: "rq-1",
		Amount:    decimal.RequireFromString("140.30"),
		Date:      time.Date(2026, 3, 6, 15, 0, 0, 0, time.UTC),
		Status:    entities.PaymentStatusApproved,
	}

	tests := []struct {
		name     string
		mockMode bool
		body     string
		setup    func(uc *mocks.MockIRepairPaymentUseCase)
		wantCode int
		check    func(t *testing.T, body map[string]any)
	}{
		{
			name:     "malformed body is rejected",
			body:     "{",
			setup:    func(uc *mocks.MockIRepairPaymentUseCase) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body settles with defaults in mock mode",
			mockMode: true,
			body:     "{",
			setup: func(uc *mocks.MockIRepairPaymentUseCase) {
				uc.EXPECT().Settle(gomock.Any(), "rq-1", json.RawMessage("{}")).Return(settled, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "repair not completed yet",
			body: `{"payment_method_id":"pix","payer":{"email":"ada@example.com"}}`,
			setup: func(uc *mocks.MockIRepairPaymentUseCase) {
				uc.EXPECT().Settle(gomock.Any(), "rq-1", gomock.Any()).Return(entities.RepairPayment{}, usecase.ErrRequestNotCompleted)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "wrapped payload is unwrapped",
			body: `{"mp_payload":{"payment_method_id":"pix"}}`,
			setup: func(uc *mocks.MockIRepairPaymentUseCase) {
				uc.EXPECT().Settle(gomock.Any(), "rq-1", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(settled, nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				if body["payment_id"] != "pay-1" || body["amount"] != "140.3" || body["status"] != "approved" {
					t.Fatalf("unexpected body: %v", body)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t, tt.mockMode)
			tt.setup(uc)

			w := doJSON(r, http.MethodPost, paymentPath, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d (%s)", tt.wantCode, w.Code, w.Body.String())
			}
			if tt.check != nil {
				var body map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				tt.check(t, body)
			}
		})
	}
}

func TestRepairPaymentHandler_Latest(t *testing.T) {
	day := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	rejected := entities.RepairPayment{ID: "first", RequestID: "rq-1", Date: day.Add(9 * time.Hour), Status: entities.PaymentStatusRejected}
	approved := entities.RepairPayment{ID: "retry", RequestID: "rq-1", Date: day.Add(10 * time.Hour), Status: entities.PaymentStatusApproved}

	tests := []struct {
		name     string
		payments []entities.RepairPayment
		err      error
		wantCode int
		wantID   string
	}{
		{name: "store error", err: usecase.ErrInvalidPaymentRequestID, wantCode: http.StatusBadRequest},
		{name: "no payments yet", payments: []entities.RepairPayment{}, wantCode: http.StatusNotFound},
		{name: "newest wins regardless of order", payments: []entities.RepairPayment{approved, rejected}, wantCode: http.StatusOK, wantID: "retry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t, false)
			uc.EXPECT().ListByRequestID(gomock.Any(), "rq-1").Return(tt.payments, tt.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, paymentPath, nil))
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantID != "" && !strings.Contains(w.Body.String(), `"payment_id":"`+tt.wantID+`"`) {
				t.Fatalf("expected payment %s, got %s", tt.wantID, w.Body.String())
			}
		})
	}
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	read := func(raw string) (string, error) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
		p, err := readMPPayload(c)
		return string(p), err
	}

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "   ", want: "{}"},
		{raw: "{invalid", wantErr: true},
		{raw: `{"mp_payload":null}`, wantErr: true},
		{raw: `{"mp_payload":{"a":1}}`, want: `{"a":1}`},
		{raw: `{"payment_method_id":"pix"}`, want: `{"payment_method_id":"pix"}`},
	}
	for _, tt := range tests {
		got, err := read(tt.raw)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("readMPPayload(%q) = %q, %v", tt.raw, got, err)
		}
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Request.Body = brokenBody{}
	if _, err := readMPPayload(c); err == nil {
		t.Fatalf("expected body read error")
	}
}

func TestMapRepairPaymentError(t *testing.T) {
	cases := map[error]int{
		usecase.ErrInvalidPaymentRequestID:        http.StatusBadRequest,
		usecase.ErrInvalidMPPayload:               http.StatusBadRequest,
		usecase.ErrPaymentGatewayBadRequest:       http.StatusBadRequest,
		usecase.ErrPaymentGatewayCustomerNotFound: http.StatusBadRequest,
		usecase.ErrPaymentGatewayInvalidUsers:     http.StatusBadRequest,
		usecase.ErrPaymentGatewayUnauthorized:     http.StatusUnauthorized,
		usecase.ErrRepairRequestNotFound:          http.StatusNotFound,
		usecase.ErrRepairPaymentNotFound:          http.StatusNotFound,
		usecase.ErrRequestNotCompleted:            http.StatusConflict,
		entities.ErrPaymentAlreadyExists:          http.StatusConflict,
		errors.New("dynamodb throttled"):          http.StatusInternalServerError,
	}
	for err, code := range cases {
		if got := mapRepairPaymentError(err).HTTPStatus; got != code {
			t.Fatalf("%v: expected %d, got %d", err, code, got)
		}
	}
}
