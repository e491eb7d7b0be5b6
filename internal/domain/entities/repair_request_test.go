package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRepairStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RepairStatus
		to   RepairStatus
		want bool
	}{
		{RepairStatusPendingQuote, RepairStatusQuoted, true},
		{RepairStatusPendingQuote, RepairStatusConfirmed, true},
		{RepairStatusQuoted, RepairStatusInProgress, true},
		{RepairStatusConfirmed, RepairStatusCompleted, true},
		{RepairStatusInProgress, RepairStatusCancelled, true},
		{RepairStatusQuoted, RepairStatusPendingQuote, false},
		{RepairStatusInProgress, RepairStatusConfirmed, false},
		{RepairStatusConfirmed, RepairStatusConfirmed, false},
		{RepairStatusCompleted, RepairStatusCancelled, false},
		{RepairStatusCancelled, RepairStatusQuoted, false},
		{RepairStatusCancelled, RepairStatusCancelled, false},
		{RepairStatus("archived"), RepairStatusQuoted, false},
		{RepairStatusQuoted, RepairStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRepairRequest_Transition(t *testing.T) {
	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	r := RepairRequest{Status: RepairStatusPendingQuote, UpdatedAt: base}

	if err := r.Transition(RepairStatusQuoted, base.Add(time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != RepairStatusQuoted || !r.UpdatedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected request state: %+v", r)
	}

	err := r.Transition(RepairStatusPendingQuote, base.Add(2*time.Minute))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if r.Status != RepairStatusQuoted {
		t.Fatalf("status must not change on rejected transition")
	}
}

func TestRepairRequest_TouchNeverMovesBackwards(t *testing.T) {
	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	r := RepairRequest{UpdatedAt: base}

	r.Touch(base.Add(-time.Hour))
	if !r.UpdatedAt.Equal(base) {
		t.Fatalf("expected updatedAt to stay at %v, got %v", base, r.UpdatedAt)
	}
	r.Touch(base.Add(time.Second))
	if !r.UpdatedAt.Equal(base.Add(time.Second)) {
		t.Fatalf("expected updatedAt to advance")
	}
}

func TestSumQuoted_IsExact(t *testing.T) {
	items := []RepairLineItem{
		{ServiceName: "Screen Replacement", QuotedPrice: decimal.RequireFromString("89.99")},
		{ServiceName: "Battery Replacement", QuotedPrice: decimal.RequireFromString("49.99")},
	}
	got := SumQuoted(items)
	if !got.Equal(decimal.RequireFromString("139.98")) {
		t.Fatalf("expected 139.98, got %s", got)
	}
	if got.StringFixed(2) != "139.98" {
		t.Fatalf("expected exact string 139.98, got %s", got.StringFixed(2))
	}

	many := make([]RepairLineItem, 10)
	for i := range many {
		many[i].QuotedPrice = decimal.RequireFromString("0.10")
	}
	if !SumQuoted(many).Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected ten times 0.10 to equal 1")
	}
}

func TestRepairRequest_AllPricedAndSumActual(t *testing.T) {
	p1 := decimal.RequireFromString("80.00")
	p2 := decimal.RequireFromString("55.50")
	r := RepairRequest{Repairs: []RepairLineItem{{ServiceName: "a", ActualPrice: &p1}, {ServiceName: "b"}}}
	if r.AllPriced() {
		t.Fatalf("expected not all priced")
	}
	r.Repairs[1].ActualPrice = &p2
	if !r.AllPriced() {
		t.Fatalf("expected all priced")
	}
	if !r.SumActual().Equal(decimal.RequireFromString("135.50")) {
		t.Fatalf("unexpected sum %s", r.SumActual())
	}
	if (RepairRequest{}).AllPriced() {
		t.Fatalf("empty repair list is never fully priced")
	}
}

func TestRepairRequest_CloneIsDeep(t *testing.T) {
	price := decimal.RequireFromString("10")
	confirmed := time.Now().UTC()
	r := RepairRequest{
		Repairs:     []RepairLineItem{{ServiceName: "x", ActualPrice: &price}},
		Appointment: &Appointment{Date: "2026-05-04", Time: "10:00", ConfirmedAt: &confirmed},
	}
	cp := r.Clone()
	cp.Repairs[0].ServiceName = "y"
	*cp.Repairs[0].ActualPrice = decimal.NewFromInt(99)
	cp.Appointment.Time = "11:00"

	if r.Repairs[0].ServiceName != "x" || !r.Repairs[0].ActualPrice.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("clone shares repairs with original")
	}
	if r.Appointment.Time != "10:00" {
		t.Fatalf("clone shares appointment with original")
	}
}

func TestUnknownServiceError(t *testing.T) {
	err := error(&UnknownServiceError{Names: []string{"Foo", "Bar"}})
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected errors.Is to match ErrUnknownService")
	}
	var use *UnknownServiceError
	if !errors.As(err, &use) || len(use.Names) != 2 {
		t.Fatalf("expected names to be carried, got %v", err)
	}
	if err.Error() != "unknown or inactive service: Foo, Bar" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
