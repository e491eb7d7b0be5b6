package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"repair_intake/internal/domain/entities"
	mock_interfaces "repair_intake/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func storedWalkIn(id string) entities.RepairRequest {
	at := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	return entities.RepairRequest{
		ID:       id,
		Customer: entities.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		Device:   entities.Device{Brand: "Apple", Model: "iPhone 13"},
		Repairs: []entities.RepairLineItem{
			{ServiceName: "Camera Repair", QuotedPrice: decimal.RequireFromString("79.99"), EstimatedDurationMinutes: 60},
		},
		ServiceType:      entities.ServiceTypeWalkIn,
		Status:           entities.RepairStatusPendingQuote,
		TotalQuotedPrice: decimal.RequireFromString("79.99"),
		SubmittedAt:      at,
		UpdatedAt:        at,
		Version:          1,
	}
}

func TestRepairRequestUseCase_BookAppointment_ReleasesWhenLinkFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	slots := mock_interfaces.NewMockIAppointmentSlotRepository(ctrl)
	requests := mock_interfaces.NewMockIRepairRequestRepository(ctrl)
	uc := NewRepairRequestUseCase(nil, slots, requests, nil)

	key := entities.SlotKey{Date: "2026-03-03", Time: "10:00"}
	req := storedWalkIn("req-1")

	requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil).Times(2)
	gomock.InOrder(
		slots.EXPECT().Reserve(gomock.Any(), key, "req-1", "ada@example.com").
			Return(entities.ReservationToken{Date: key.Date, Time: key.Time, RequestID: "req-1", BookedAt: time.Now(), Fresh: true}, nil),
		requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.RepairRequest{}, errors.New("throttled")),
		slots.EXPECT().Release(gomock.Any(), key, "req-1").Return(nil),
	)

	_, err := uc.BookAppointment(context.Background(), "req-1", key.Date, key.Time)
	if !errors.Is(err, ErrAppointmentUnavailable) {
		t.Fatalf("expected ErrAppointmentUnavailable, got %v", err)
	}
}

func TestRepairRequestUseCase_BookAppointment_UnknownReserveErrorIsCompensated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	slots := mock_interfaces.NewMockIAppointmentSlotRepository(ctrl)
	requests := mock_interfaces.NewMockIRepairRequestRepository(ctrl)
	uc := NewRepairRequestUseCase(nil, slots, requests, nil)

	key := entities.SlotKey{Date: "2026-03-03", Time: "10:00"}
	requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedWalkIn("req-1"), nil).Times(2)
	slots.EXPECT().Reserve(gomock.Any(), key, "req-1", gomock.Any()).Return(entities.ReservationToken{}, errors.New("timeout"))
	slots.EXPECT().Release(gomock.Any(), key, "req-1").Return(entities.ErrBookingNotFound)

	_, err := uc.BookAppointment(context.Background(), "req-1", key.Date, key.Time)
	if !errors.Is(err, ErrAppointmentUnavailable) {
		t.Fatalf("expected ErrAppointmentUnavailable, got %v", err)
	}
	if errors.Is(err, entities.ErrBookingNotFound) {
		t.Fatalf("a missing booking during compensation is not a failure: %v", err)
	}
}

func TestRepairRequestUseCase_Cancel_ReleaseFailureLeavesPendingRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	slots := mock_interfaces.NewMockIAppointmentSlotRepository(ctrl)
	requests := mock_interfaces.NewMockIRepairRequestRepository(ctrl)
	uc := NewRepairRequestUseCase(nil, slots, requests, nil)

	key := entities.SlotKey{Date: "2026-03-03", Time: "10:00"}
	confirmedAt := time.Date(2026, 3, 2, 8, 1, 0, 0, time.UTC)
	req := storedWalkIn("req-1")
	req.Status = entities.RepairStatusConfirmed
	req.Appointment = &entities.Appointment{Date: key.Date, Time: key.Time, ConfirmedAt: &confirmedAt}

	var saved entities.RepairRequest
	requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)
	requests.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.RepairRequest) (entities.RepairRequest, error) {
			saved = r.Clone()
			saved.Version++
			return saved, nil
		})
	slots.EXPECT().Release(gomock.Any(), key, "req-1").Return(errors.New("unavailable"))

	got, err := uc.Cancel(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("a failed release must not fail the cancellation: %v", err)
	}
	if got.Status != entities.RepairStatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
	if got.Appointment == nil || !got.Appointment.ReleasePending || got.Appointment.ConfirmedAt != nil {
		t.Fatalf("expected unconfirmed appointment pending release, got %+v", got.Appointment)
	}

	// The reconciler picks the request up and finishes the release.
	requests.EXPECT().ListByStatus(gomock.Any(), entities.RepairStatusCancelled).Return([]entities.RepairRequest{saved}, nil)
	slots.EXPECT().Release(gomock.Any(), key, "req-1").Return(nil)
	requests.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.RepairRequest) (entities.RepairRequest, error) {
			if r.Appointment != nil {
				t.Fatalf("reconciler must clear the appointment, got %+v", r.Appointment)
			}
			r.Version++
			return r, nil
		})

	n, err := uc.ReconcileReleases(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected one reconciled release, got %d (%v)", n, err)
	}
}

func TestRepairRequestUseCase_ReconcileReleases_SkipsSettledRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	slots := mock_interfaces.NewMockIAppointmentSlotRepository(ctrl)
	requests := mock_interfaces.NewMockIRepairRequestRepository(ctrl)
	uc := NewRepairRequestUseCase(nil, slots, requests, nil)

	settled := storedWalkIn("req-2")
	settled.Status = entities.RepairStatusCancelled
	requests.EXPECT().ListByStatus(gomock.Any(), entities.RepairStatusCancelled).Return([]entities.RepairRequest{settled}, nil)

	n, err := uc.ReconcileReleases(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected nothing to reconcile, got %d (%v)", n, err)
	}
}

func TestRepairRequestUseCase_VersionConflictIsConcurrentUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	requests := mock_interfaces.NewMockIRepairRequestRepository(ctrl)
	uc := NewRepairRequestUseCase(nil, nil, requests, nil)

	requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedWalkIn("req-1"), nil)
	requests.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.RepairRequest{}, entities.ErrVersionConflict)

	_, err := uc.AdvanceStatus(context.Background(), "req-1", entities.RepairStatusQuoted)
	if !errors.Is(err, ErrConcurrentUpdate) {
		t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
	}
}

func TestRepairRequestUseCase_Submit_CatalogFailureCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	requests := mock_interfaces.NewMockIRepairRequestRepository(ctrl)
	uc := NewRepairRequestUseCase(catalog, nil, requests, nil)

	catalog.EXPECT().LookupActivePrices(gomock.Any(), []string{"Screen Replacement", "Battery Replacement"}).
		Return(nil, errors.New("catalog down"))

	_, err := uc.Submit(context.Background(), validPayload("ada@example.com"), "")
	if err == nil || err.Error() != "catalog down" {
		t.Fatalf("expected catalog error, got %v", err)
	}
}
