package interfaces

import (
	"context"
	"iter"

	"repair_intake/internal/domain/entities"
)

// IAppointmentSlotRepository owns slot capacity.
//
// Reserve and Release are each a single atomic step per (date, time) key:
//   - Reserve appends a booking only if the slot exists, is available, has a
//     free spot and does not already hold requestID. A repeated Reserve for a
//     request already on the slot returns its existing token.
//   - Release removes the booking of requestID and decrements the count, or
//     fails with entities.ErrBookingNotFound.
//
// FindAvailable yields slots with free capacity for dates in [from, to]
// (YYYY-MM-DD, inclusive) ordered by date then time. Get returns a zero slot
// when the key does not exist.

type IAppointmentSlotRepository interface {
	FindAvailable(ctx context.Context, from, to string) iter.Seq2[entities.AppointmentSlot, error]
	ListRange(ctx context.Context, from, to string) ([]entities.AppointmentSlot, error)
	Get(ctx context.Context, key entities.SlotKey) (entities.AppointmentSlot, error)
	CreateSlots(ctx context.Context, slots []entities.AppointmentSlot) (int, error)
	Reserve(ctx context.Context, key entities.SlotKey, requestID, customerEmail string) (entities.ReservationToken, error)
	Release(ctx context.Context, key entities.SlotKey, requestID string) error
	SetAvailability(ctx context.Context, key entities.SlotKey, available bool) (entities.AppointmentSlot, error)
}
