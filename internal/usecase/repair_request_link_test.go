package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase/interfaces"
	mock_interfaces "repair_intake/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// rendezvousSlots holds every Reserve caller until all expected callers have
// reserved, so concurrent links race on the request version.
type rendezvousSlots struct {
	interfaces.IAppointmentSlotRepository
	reserved sync.WaitGroup
}

func newRendezvousSlots(inner interfaces.IAppointmentSlotRepository, callers int) *rendezvousSlots {
	s := &rendezvousSlots{IAppointmentSlotRepository: inner}
	s.reserved.Add(callers)
	return s
}

func (s *rendezvousSlots) Reserve(ctx context.Context, key entities.SlotKey, requestID, customerEmail string) (entities.ReservationToken, error) {
	token, err := s.IAppointmentSlotRepository.Reserve(ctx, key, requestID, customerEmail)
	s.reserved.Done()
	s.reserved.Wait()
	return token, err
}

func (f fixture) assertLinked(t *testing.T, id string) {
	t.Helper()
	stored, err := f.requests.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	if stored.Appointment == nil || stored.Appointment.Key() != f.slotKey {
		t.Fatalf("expected request linked to %s, got %+v", f.slotKey, stored.Appointment)
	}
	slot := f.slot(t)
	if !slot.HasBooking(id) || slot.CurrentBookings != 1 {
		t.Fatalf("expected exactly one booking for %s, got %+v", id, slot.BookedBy)
	}
}

func TestRepairRequestUseCase_BookAppointment_ConcurrentSameSlotKeepsBooking(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	created, err := f.uc.Submit(ctx, validPayload("ada@example.com"), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	id := created.Request.ID

	uc := NewRepairRequestUseCase(f.catalog, newRendezvousSlots(f.slots, 2), f.requests, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.BookAppointment(ctx, id, f.slotKey.Date, f.slotKey.Time)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("call %d: expected both calls to see the appointment, got %v", i, err)
		}
	}
	f.assertLinked(t, id)
}

func TestRepairRequestUseCase_Submit_ConcurrentRetriesShareOneBooking(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	uc := NewRepairRequestUseCase(f.catalog, newRendezvousSlots(f.slots, 2), f.requests, nil)
	payload := f.withSlot(validPayload("ada@example.com"))

	var wg sync.WaitGroup
	results := make([]SubmitResult, 2)
	errs := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = uc.Submit(ctx, payload, "retry-key-1")
		}(i)
	}
	wg.Wait()

	for i := range results {
		if errs[i] != nil {
			t.Fatalf("submit %d: %v", i, errs[i])
		}
		if results[i].Appointment != AppointmentReserved {
			t.Fatalf("submit %d: expected reserved, got %s (%v)", i, results[i].Appointment, results[i].Reason)
		}
	}
	if results[0].Request.ID != results[1].Request.ID {
		t.Fatalf("retries must resolve to one request, got %s and %s", results[0].Request.ID, results[1].Request.ID)
	}
	f.assertLinked(t, results[0].Request.ID)
}

func TestRepairRequestUseCase_BookAppointment_ExistingBookingIsNotReleased(t *testing.T) {
	key := entities.SlotKey{Date: "2026-03-03", Time: "10:00"}
	shared := entities.ReservationToken{Date: key.Date, Time: key.Time, RequestID: "req-1", BookedAt: time.Now()}
	confirmedAt := shared.BookedAt

	linked := storedWalkIn("req-1")
	linked.Status = entities.RepairStatusConfirmed
	linked.Appointment = &entities.Appointment{Date: key.Date, Time: key.Time, ConfirmedAt: &confirmedAt}
	linked.Version = 2

	tests := []struct {
		name     string
		reloaded entities.RepairRequest
		wantErr  bool
	}{
		{name: "linked by a concurrent call", reloaded: linked},
		{name: "not linked yet", reloaded: storedWalkIn("req-1"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			slots := mock_interfaces.NewMockIAppointmentSlotRepository(ctrl)
			requests := mock_interfaces.NewMockIRepairRequestRepository(ctrl)
			uc := NewRepairRequestUseCase(nil, slots, requests, nil)

			gomock.InOrder(
				requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedWalkIn("req-1"), nil),
				slots.EXPECT().Reserve(gomock.Any(), key, "req-1", gomock.Any()).Return(shared, nil),
				requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.RepairRequest{}, entities.ErrVersionConflict),
				requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(tt.reloaded, nil),
			)
			slots.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			got, err := uc.BookAppointment(context.Background(), "req-1", key.Date, key.Time)
			if tt.wantErr {
				if !errors.Is(err, ErrAppointmentUnavailable) {
					t.Fatalf("expected ErrAppointmentUnavailable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Appointment == nil || got.Version != 2 {
				t.Fatalf("expected the stored linked request, got %+v", got)
			}
		})
	}
}
