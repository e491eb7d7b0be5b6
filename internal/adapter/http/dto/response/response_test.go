package response

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromSubmitResult(t *testing.T) {
	res := usecase.SubmitResult{
		Request: entities.RepairRequest{
			ID:               "rq-1",
			Status:           entities.RepairStatusPendingQuote,
			TotalQuotedPrice: decimal.RequireFromString("139.98"),
		},
		Appointment: usecase.AppointmentUnavailable,
		Reason:      errors.New("appointment unavailable: slot full"),
	}

	got := FromSubmitResult(res)
	if got.ID != "rq-1" || got.Appointment != "unavailable" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.AppointmentReason != "appointment unavailable: slot full" {
		t.Fatalf("unexpected reason: %q", got.AppointmentReason)
	}

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(b), `"total_quoted_price":"139.98"`) {
		t.Fatalf("expected exact decimal in body, got %s", b)
	}
}

func TestFromRepairRequest_EmptyRepairsIsArray(t *testing.T) {
	got := FromRepairRequest(entities.RepairRequest{ID: "rq-2"})
	b, _ := json.Marshal(got)
	if !strings.Contains(string(b), `"repairs":[]`) {
		t.Fatalf("expected empty array, got %s", b)
	}
}

func TestFromSlot_HidesBookings(t *testing.T) {
	slot := entities.AppointmentSlot{
		Date:            "2026-03-02",
		Time:            "10:00",
		MaxCapacity:     2,
		CurrentBookings: 1,
		IsAvailable:     true,
		BookedBy:        []entities.SlotBooking{{RequestID: "rq-1", CustomerEmail: "ana@example.com", BookedAt: time.Now()}},
	}

	got := FromSlots(usecase.DayRange{From: "2026-03-02", To: "2026-03-02"}, []entities.AppointmentSlot{slot})
	if len(got.Slots) != 1 || got.Slots[0].AvailableSpots != 1 {
		t.Fatalf("unexpected slots: %+v", got.Slots)
	}
	b, _ := json.Marshal(got)
	if strings.Contains(string(b), "ana@example.com") {
		t.Fatalf("slot response leaked customer email: %s", b)
	}
}

func TestFromRepairPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.RepairPayment{
		ID:           "pay-1",
		RequestID:    "rq-1",
		Amount:       decimal.RequireFromString("140.30"),
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: json.RawMessage(`{"id":1}`),
	}

	got := FromRepairPayment(p)
	if got.PaymentID != "pay-1" || got.RequestID != "rq-1" || got.Status != "approved" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.MPPayloadRaw != `{"id":1}` || !got.Date.Equal(now) {
		t.Fatalf("unexpected payload/date: %+v", got)
	}
}

func TestFromCalendar_NilEventsIsArray(t *testing.T) {
	got := FromCalendar(usecase.Calendar{Range: usecase.DayRange{From: "2026-03-02", To: "2026-03-08"}, SlotDurationMinutes: 60})
	if got.Events == nil || got.From != "2026-03-02" || got.SlotDurationMinutes != 60 {
		t.Fatalf("unexpected calendar: %+v", got)
	}
}
