package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNewSlotKey(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		wantErr bool
	}{
		{name: "valid", date: "2026-05-04", clock: "10:00"},
		{name: "bad date", date: "04.05.2026", clock: "10:00", wantErr: true},
		{name: "bad time", date: "2026-05-04", clock: "10am", wantErr: true},
		{name: "hour out of range", date: "2026-05-04", clock: "25:00", wantErr: true},
		{name: "empty", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlotKey(tt.date, tt.clock)
			if tt.wantErr && !errors.Is(err, ErrInvalidSlot) {
				t.Fatalf("expected ErrInvalidSlot, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSlotKey_Less(t *testing.T) {
	a := SlotKey{Date: "2026-05-04", Time: "09:00"}
	b := SlotKey{Date: "2026-05-04", Time: "10:00"}
	c := SlotKey{Date: "2026-05-05", Time: "08:00"}
	if !a.Less(b) || !b.Less(c) || c.Less(a) {
		t.Fatalf("unexpected ordering")
	}
}

func TestSlotKey_StartsAt(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	at, err := SlotKey{Date: "2026-05-04", Time: "10:30"}.StartsAt(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if at.Hour() != 10 || at.Minute() != 30 || at.Location() != loc {
		t.Fatalf("unexpected instant %v", at)
	}
}

func TestAppointmentSlot_Validate(t *testing.T) {
	now := time.Now().UTC()
	valid := AppointmentSlot{
		Date: "2026-05-04", Time: "10:00", MaxCapacity: 2, CurrentBookings: 1, IsAvailable: true,
		BookedBy: []SlotBooking{{RequestID: "r1", CustomerEmail: "a@b.c", BookedAt: now}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(s *AppointmentSlot)
	}{
		{"zero capacity", func(s *AppointmentSlot) { s.MaxCapacity = 0 }},
		{"over capacity", func(s *AppointmentSlot) { s.CurrentBookings = 3 }},
		{"negative bookings", func(s *AppointmentSlot) { s.CurrentBookings = -1 }},
		{"list mismatch", func(s *AppointmentSlot) { s.CurrentBookings = 2 }},
		{"duplicate request", func(s *AppointmentSlot) {
			s.CurrentBookings = 2
			s.BookedBy = append(s.BookedBy, SlotBooking{RequestID: "r1"})
		}},
		{"bad key", func(s *AppointmentSlot) { s.Time = "noon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid.Clone()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, ErrInvalidSlot) {
				t.Fatalf("expected ErrInvalidSlot, got %v", err)
			}
		})
	}
}

func TestAppointmentSlot_Capacity(t *testing.T) {
	s := AppointmentSlot{MaxCapacity: 2, CurrentBookings: 1, IsAvailable: true}
	if !s.HasCapacity() || s.AvailableSpots() != 1 {
		t.Fatalf("expected one spot left")
	}
	s.CurrentBookings = 2
	if s.HasCapacity() || s.AvailableSpots() != 0 {
		t.Fatalf("expected slot to be full")
	}
	s.CurrentBookings = 0
	s.IsAvailable = false
	if s.HasCapacity() || s.AvailableSpots() != 0 {
		t.Fatalf("blacked-out slot must have no capacity")
	}
}
