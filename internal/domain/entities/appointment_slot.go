package entities

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SlotKey identifies an appointment slot: a calendar date and an HH:MM label.
type SlotKey struct {
	Date string
	Time string
}

// NewSlotKey validates the date and time labels.
func NewSlotKey(date, clock string) (SlotKey, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return SlotKey{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidSlot, date)
	}
	if _, err := time.Parse(TimeLayout, clock); err != nil {
		return SlotKey{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidSlot, clock)
	}
	return SlotKey{Date: date, Time: clock}, nil
}

func (k SlotKey) String() string {
	return k.Date + " " + k.Time
}

// Less orders keys by date, then time. Both labels sort lexicographically.
func (k SlotKey) Less(other SlotKey) bool {
	if k.Date != other.Date {
		return k.Date < other.Date
	}
	return k.Time < other.Time
}

// StartsAt resolves the key to an instant in loc.
func (k SlotKey) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout, k.String(), loc)
}

// SlotBooking is one entry of a slot's booking list.
type SlotBooking struct {
	RequestID     string    `json:"request_id"`
	CustomerEmail string    `json:"customer_email"`
	BookedAt      time.Time `json:"booked_at"`
}

// AppointmentSlot is a bookable (date, time) with a fixed capacity.
//
// Invariants:
//   - 0 <= CurrentBookings <= MaxCapacity
//   - len(BookedBy) == CurrentBookings
//   - a request id appears at most once in BookedBy

type AppointmentSlot struct {
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	MaxCapacity     int           `json:"max_capacity"`
	CurrentBookings int           `json:"current_bookings"`
	IsAvailable     bool          `json:"is_available"`
	BookedBy        []SlotBooking `json:"booked_by"`
}

func (s AppointmentSlot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time}
}

// HasCapacity reports whether the slot can accept another booking.
func (s AppointmentSlot) HasCapacity() bool {
	return s.IsAvailable && s.CurrentBookings < s.MaxCapacity
}

func (s AppointmentSlot) AvailableSpots() int {
	if !s.IsAvailable || s.CurrentBookings >= s.MaxCapacity {
		return 0
	}
	return s.MaxCapacity - s.CurrentBookings
}

func (s AppointmentSlot) BookingIndex(requestID string) int {
	for i, b := range s.BookedBy {
		if b.RequestID == requestID {
			return i
		}
	}
	return -1
}

func (s AppointmentSlot) HasBooking(requestID string) bool {
	return s.BookingIndex(requestID) >= 0
}

// Clone returns a copy that does not share the booking list.
func (s AppointmentSlot) Clone() AppointmentSlot {
	cp := s
	if s.BookedBy != nil {
		cp.BookedBy = append([]SlotBooking(nil), s.BookedBy...)
	}
	return cp
}

func (s AppointmentSlot) Validate() error {
	if _, err := NewSlotKey(s.Date, s.Time); err != nil {
		return err
	}
	if s.MaxCapacity <= 0 {
		return fmt.Errorf("%w: max_capacity must be positive", ErrInvalidSlot)
	}
	if s.CurrentBookings < 0 || s.CurrentBookings > s.MaxCapacity {
		return fmt.Errorf("%w: current_bookings %d outside [0, %d]", ErrInvalidSlot, s.CurrentBookings, s.MaxCapacity)
	}
	if len(s.BookedBy) != s.CurrentBookings {
		return fmt.Errorf("%w: %d bookings recorded for current_bookings %d", ErrInvalidSlot, len(s.BookedBy), s.CurrentBookings)
	}
	seen := make(map[string]struct{}, len(s.BookedBy))
	for _, b := range s.BookedBy {
		if _, dup := seen[b.RequestID]; dup {
			return fmt.Errorf("%w: request %s booked twice", ErrInvalidSlot, b.RequestID)
		}
		seen[b.RequestID] = struct{}{}
	}
	return nil
}

// ReservationToken is returned by a successful reservation. Fresh is false
// when the request already held a booking on the slot.
type ReservationToken struct {
	Date      string
	Time      string
	RequestID string
	BookedAt  time.Time
	Fresh     bool
}

func (t ReservationToken) Key() SlotKey {
	return SlotKey{Date: t.Date, Time: t.Time}
}
