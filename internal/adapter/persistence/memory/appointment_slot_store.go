// Package memory implements the repository interfaces in process memory.
// It backs tests and STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"
)

type slotEntry struct {
	mu   sync.Mutex
	slot entities.AppointmentSlot
}

// AppointmentSlotStore keeps one entry per (date, time). Reserve and Release
// lock only the entry they touch; the index lock is held just long enough to
// find or insert an entry.
type AppointmentSlotStore struct {
	mu      sync.RWMutex
	entries map[entities.SlotKey]*slotEntry
	now     func() time.Time
}

var _ interfaces.IAppointmentSlotRepository = (*AppointmentSlotStore)(nil)

func NewAppointmentSlotStore() *AppointmentSlotStore {
	return &AppointmentSlotStore{
		entries: make(map[entities.SlotKey]*slotEntry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *AppointmentSlotStore) entry(key entities.SlotKey) *slotEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[key]
}

// sortedKeys snapshots the keys in [from, to] in date/time order.
func (s *AppointmentSlotStore) sortedKeys(from, to string) []entities.SlotKey {
	s.mu.RLock()
	keys := make([]entities.SlotKey, 0, len(s.entries))
	for k := range s.entries {
		if k.Date >= from && k.Date <= to {
			keys = append(keys, k)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(keys, func(a, b entities.SlotKey) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return keys
}

func (s *AppointmentSlotStore) FindAvailable(ctx context.Context, from, to string) iter.Seq2[entities.AppointmentSlot, error] {
	return func(yield func(entities.AppointmentSlot, error) bool) {
		for _, key := range s.sortedKeys(from, to) {
			if err := ctx.Err(); err != nil {
				yield(entities.AppointmentSlot{}, err)
				return
			}
			e := s.entry(key)
			if e == nil {
				continue
			}
			e.mu.Lock()
			slot := e.slot.Clone()
			e.mu.Unlock()

			if !slot.HasCapacity() {
				continue
			}
			if !yield(slot, nil) {
				return
			}
		}
	}
}

func (s *AppointmentSlotStore) ListRange(ctx context.Context, from, to string) ([]entities.AppointmentSlot, error) {
	keys := s.sortedKeys(from, to)
	out := make([]entities.AppointmentSlot, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e := s.entry(key); e != nil {
			e.mu.Lock()
			out = append(out, e.slot.Clone())
			e.mu.Unlock()
		}
	}
	return out, nil
}

func (s *AppointmentSlotStore) Get(_ context.Context, key entities.SlotKey) (entities.AppointmentSlot, error) {
	e := s.entry(key)
	if e == nil {
		return entities.AppointmentSlot{}, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.slot.Clone(), nil
}

// CreateSlots inserts the slots whose key does not exist yet and returns how
// many were inserted. Existing slots are never overwritten.
func (s *AppointmentSlotStore) CreateSlots(_ context.Context, slots []entities.AppointmentSlot) (int, error) {
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return 0, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	created := 0
	for _, slot := range slots {
		if _, exists := s.entries[slot.Key()]; exists {
			continue
		}
		cp := slot.Clone()
		if cp.BookedBy == nil {
			cp.BookedBy = []entities.SlotBooking{}
		}
		s.entries[slot.Key()] = &slotEntry{slot: cp}
		created++
	}
	return created, nil
}

func (s *AppointmentSlotStore) Reserve(_ context.Context, key entities.SlotKey, requestID, customerEmail string) (entities.ReservationToken, error) {
	e := s.entry(key)
	if e == nil {
		return entities.ReservationToken{}, fmt.Errorf("%w: %s", entities.ErrSlotNotFound, key)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.slot.BookingIndex(requestID); i >= 0 {
		b := e.slot.BookedBy[i]
		return entities.ReservationToken{Date: key.Date, Time: key.Time, RequestID: requestID, BookedAt: b.BookedAt}, nil
	}
	if !e.slot.HasCapacity() {
		return entities.ReservationToken{}, fmt.Errorf("%w: %s", entities.ErrSlotFull, key)
	}

	bookedAt := s.now()
	e.slot.BookedBy = append(e.slot.BookedBy, entities.SlotBooking{
		RequestID:     requestID,
		CustomerEmail: customerEmail,
		BookedAt:      bookedAt,
	})
	e.slot.CurrentBookings++
	return entities.ReservationToken{Date: key.Date, Time: key.Time, RequestID: requestID, BookedAt: bookedAt, Fresh: true}, nil
}

func (s *AppointmentSlotStore) Release(_ context.Context, key entities.SlotKey, requestID string) error {
	e := s.entry(key)
	if e == nil {
		return fmt.Errorf("%w: %s on %s", entities.ErrBookingNotFound, requestID, key)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.slot.BookingIndex(requestID)
	if i < 0 {
		return fmt.Errorf("%w: %s on %s", entities.ErrBookingNotFound, requestID, key)
	}
	e.slot.BookedBy = slices.Delete(e.slot.BookedBy, i, i+1)
	e.slot.CurrentBookings--
	return nil
}

func (s *AppointmentSlotStore) SetAvailability(_ context.Context, key entities.SlotKey, available bool) (entities.AppointmentSlot, error) {
	e := s.entry(key)
	if e == nil {
		return entities.AppointmentSlot{}, fmt.Errorf("%w: %s", entities.ErrSlotNotFound, key)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.slot.IsAvailable = available
	return e.slot.Clone(), nil
}
