package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"repair_intake/internal/adapter/http/handlers/mocks"
	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockIRepairRequestUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRepairRequestUseCase(ctrl)
	h := NewRepairRequestHandler(uc)

	r := gin.New()
	r.POST("/v1/requests", h.Submit)
	r.GET("/v1/requests", h.List)
	r.GET("/v1/requests/:id", h.Get)
	r.PATCH("/v1/requests/:id/status", h.AdvanceStatus)
	r.POST("/v1/requests/:id/appointment", h.BookAppointment)
	r.POST("/v1/requests/:id/cancel", h.Cancel)
	r.POST("/v1/requests/:id/complete", h.Complete)
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const submitBody = `{
	"customer": {"first_name": "Ana", "last_name": "Silva", "email": "ana@example.com", "phone_number": "912345678",
		"address": {"street_name": "Rua Augusta", "house_number": "12", "postal_code": "1100-053", "city": "Lisboa"}},
	"device": {"brand": "Apple", "model": "iPhone 13"},
	"service_type": "walk-in",
	"selected_services": ["Screen Replacement", "Battery Replacement"],
	"appointment": {"date": "2026-03-02", "time": "10:00"}
}`

func TestRepairRequestHandler_Submit(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		r, _ := newRequestRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/requests", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with reservation", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), "key-1").DoAndReturn(
			func(_ any, p usecase.SubmitPayload, _ string) (usecase.SubmitResult, error) {
				if p.Appointment == nil || p.Appointment.Time != "10:00" || len(p.SelectedServices) != 2 {
					t.Fatalf("unexpected payload: %+v", p)
				}
				return usecase.SubmitResult{
					Request: entities.RepairRequest{
						ID:               "rq-1",
						Status:           entities.RepairStatusConfirmed,
						TotalQuotedPrice: decimal.RequireFromString("139.98"),
					},
					Appointment: usecase.AppointmentReserved,
				}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/requests", submitBody, HeaderIdempotencyKey, "key-1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "rq-1" || body["appointment"] != "reserved" || body["total_quoted_price"] != "139.98" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("replay returns 200", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), "key-1").Return(usecase.SubmitResult{
			Request:     entities.RepairRequest{ID: "rq-1", Status: entities.RepairStatusConfirmed},
			Appointment: usecase.AppointmentReserved,
			Replayed:    true,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/requests", submitBody, HeaderIdempotencyKey, "key-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown service is 422", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), "").Return(usecase.SubmitResult{}, &entities.UnknownServiceError{Names: []string{"Teleport"}})

		w := doJSON(r, http.MethodPost, "/v1/requests", submitBody)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("validation problems are reported", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), "").Return(usecase.SubmitResult{}, fmt.Errorf("%w: customer.email is required", usecase.ErrInvalidPayload))

		w := doJSON(r, http.MethodPost, "/v1/requests", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "invalid payload: customer.email is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRepairRequestHandler_List(t *testing.T) {
	t.Run("no filter lists ids", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().ListIDs(gomock.Any()).Return([]string{"a", "b"}, nil)

		w := doJSON(r, http.MethodGet, "/v1/requests", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			IDs []string `json:"ids"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.IDs) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("filter is passed through", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().Search(gomock.Any(), usecase.RequestFilter{Brand: "Apple", Model: "iPhone 13"}).Return([]entities.RepairRequest{{ID: "a"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/requests?brand=Apple&model=iPhone%2013", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad recent", func(t *testing.T) {
		r, _ := newRequestRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/requests?recent=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRepairRequestHandler_Lifecycle(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		expect func(uc *mocks.MockIRepairRequestUseCase)
		code   int
	}{
		{
			name: "get not found", method: http.MethodGet, path: "/v1/requests/rq-9",
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().GetByID(gomock.Any(), "rq-9").Return(entities.RepairRequest{}, usecase.ErrRepairRequestNotFound)
			},
			code: http.StatusNotFound,
		},
		{
			name: "advance status", method: http.MethodPatch, path: "/v1/requests/rq-1/status", body: `{"status":"quoted"}`,
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().AdvanceStatus(gomock.Any(), "rq-1", entities.RepairStatusQuoted).Return(entities.RepairRequest{ID: "rq-1", Status: entities.RepairStatusQuoted}, nil)
			},
			code: http.StatusOK,
		},
		{
			name: "advance status without body", method: http.MethodPatch, path: "/v1/requests/rq-1/status", body: `{}`,
			expect: func(uc *mocks.MockIRepairRequestUseCase) {},
			code:   http.StatusBadRequest,
		},
		{
			name: "backwards transition", method: http.MethodPatch, path: "/v1/requests/rq-1/status", body: `{"status":"quoted"}`,
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().AdvanceStatus(gomock.Any(), "rq-1", entities.RepairStatusQuoted).Return(entities.RepairRequest{}, fmt.Errorf("%w: %w", usecase.ErrInvalidState, entities.ErrInvalidTransition))
			},
			code: http.StatusConflict,
		},
		{
			name: "book full slot", method: http.MethodPost, path: "/v1/requests/rq-1/appointment", body: `{"date":"2026-03-02","time":"10:00"}`,
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().BookAppointment(gomock.Any(), "rq-1", "2026-03-02", "10:00").Return(entities.RepairRequest{}, fmt.Errorf("%w: %w", usecase.ErrAppointmentUnavailable, entities.ErrSlotFull))
			},
			code: http.StatusConflict,
		},
		{
			name: "cancel", method: http.MethodPost, path: "/v1/requests/rq-1/cancel",
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().Cancel(gomock.Any(), "rq-1").Return(entities.RepairRequest{ID: "rq-1", Status: entities.RepairStatusCancelled}, nil)
			},
			code: http.StatusOK,
		},
		{
			name: "cancel conflict", method: http.MethodPost, path: "/v1/requests/rq-1/cancel",
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().Cancel(gomock.Any(), "rq-1").Return(entities.RepairRequest{}, usecase.ErrConcurrentUpdate)
			},
			code: http.StatusConflict,
		},
		{
			name: "complete", method: http.MethodPost, path: "/v1/requests/rq-1/complete", body: `{"actual_prices":{"Screen Replacement":"95.10"}}`,
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().Complete(gomock.Any(), "rq-1", gomock.Any()).DoAndReturn(
					func(_ any, _ string, prices map[string]decimal.Decimal) (entities.RepairRequest, error) {
						if !prices["Screen Replacement"].Equal(decimal.RequireFromString("95.10")) {
							t.Fatalf("unexpected prices: %v", prices)
						}
						return entities.RepairRequest{ID: "rq-1", Status: entities.RepairStatusCompleted}, nil
					})
			},
			code: http.StatusOK,
		},
		{
			name: "storage failure", method: http.MethodPost, path: "/v1/requests/rq-1/cancel",
			expect: func(uc *mocks.MockIRepairRequestUseCase) {
				uc.EXPECT().Cancel(gomock.Any(), "rq-1").Return(entities.RepairRequest{}, errors.New("dynamodb down"))
			},
			code: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newRequestRouter(t)
			tc.expect(uc)

			w := doJSON(r, tc.method, tc.path, tc.body)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestMapRepairRequestError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPayload, http.StatusBadRequest},
		{&entities.UnknownServiceError{Names: []string{"x"}}, http.StatusUnprocessableEntity},
		{usecase.ErrRepairRequestNotFound, http.StatusNotFound},
		{usecase.ErrInvalidState, http.StatusConflict},
		{usecase.ErrConcurrentUpdate, http.StatusConflict},
		{fmt.Errorf("%w: %w", usecase.ErrAppointmentUnavailable, entities.ErrSlotNotFound), http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapRepairRequestError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
