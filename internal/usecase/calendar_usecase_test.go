package usecase

import (
	"context"
	"testing"
	"time"

	"repair_intake/internal/adapter/persistence/memory"
	"repair_intake/internal/domain/entities"
	"repair_intake/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarUseCase_Build(t *testing.T) {
	ctx := context.Background()
	slotUC, slots := newSlotUseCase(t)
	requests := memory.NewRepairRequestStore()

	full := entities.SlotKey{Date: "2026-03-02", Time: "10:00"}
	for _, id := range []string{"req-1", "req-2"} {
		_, err := slots.Reserve(ctx, full, id, id+"@example.com")
		require.NoError(t, err)
	}
	_, err := slotUC.SetAvailability(ctx, "2026-03-02", "14:00", false)
	require.NoError(t, err)

	booked := storedWalkIn("req-1")
	booked.Status = entities.RepairStatusConfirmed
	booked.Customer.PhoneNumber = "+49 30 1"
	booked.Appointment = &entities.Appointment{Date: full.Date, Time: full.Time}
	_, err = requests.Create(ctx, booked)
	require.NoError(t, err)

	cancelled := storedWalkIn("req-3")
	cancelled.Status = entities.RepairStatusCancelled
	cancelled.Appointment = &entities.Appointment{Date: full.Date, Time: "11:00", ReleasePending: true}
	_, err = requests.Create(ctx, cancelled)
	require.NoError(t, err)

	uc := NewCalendarUseCase(slots, requests, schedule.Default())
	uc.now = func() time.Time { return monday }

	t.Run("public view hides customers", func(t *testing.T) {
		cal, err := uc.Build(ctx, SlotQuery{Range: "today"}, CalendarPublic)
		require.NoError(t, err)
		assert.Equal(t, 60, cal.SlotDurationMinutes)

		kinds := map[entities.CalendarEventKind]int{}
		for _, e := range cal.Events {
			kinds[e.Kind]++
			assert.Empty(t, e.RequestID)
			assert.NotContains(t, e.Description, "@")
		}
		assert.Equal(t, 2, kinds[entities.CalendarEventClosed])
		assert.Equal(t, 2, kinds[entities.CalendarEventBusy])
		assert.Zero(t, kinds[entities.CalendarEventAppointment])

		for i := 1; i < len(cal.Events); i++ {
			assert.False(t, cal.Events[i].Start.Before(cal.Events[i-1].Start), "events must be ordered")
		}
	})

	t.Run("full view lists live appointments", func(t *testing.T) {
		cal, err := uc.Build(ctx, SlotQuery{Range: "today"}, CalendarFull)
		require.NoError(t, err)

		var appts []entities.CalendarEvent
		for _, e := range cal.Events {
			if e.Kind == entities.CalendarEventAppointment {
				appts = append(appts, e)
			}
		}
		require.Len(t, appts, 1)
		assert.Equal(t, "req-1", appts[0].RequestID)
		assert.Equal(t, "walk-in: Ada Lovelace", appts[0].Summary)
		assert.Contains(t, appts[0].Description, "+49 30 1")
		assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), appts[0].Start)
		assert.Equal(t, time.Hour, appts[0].End.Sub(appts[0].Start))
	})

	t.Run("sunday is one closed block", func(t *testing.T) {
		cal, err := uc.Build(ctx, SlotQuery{From: "2026-03-08"}, CalendarPublic)
		require.NoError(t, err)
		require.Len(t, cal.Events, 1)
		assert.Equal(t, entities.CalendarEventClosed, cal.Events[0].Kind)
	})
}
