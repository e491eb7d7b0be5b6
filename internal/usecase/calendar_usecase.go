package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/domain/schedule"
	"repair_intake/internal/usecase/interfaces"
)

// CalendarView picks what a calendar discloses.
type CalendarView int

const (
	// CalendarPublic shows closed hours and fully booked or blocked slots.
	CalendarPublic CalendarView = iota
	// CalendarFull adds every appointment with customer and device details.
	CalendarFull
)

// Calendar is a set of events over an inclusive day range.
type Calendar struct {
	Range               DayRange
	SlotDurationMinutes int
	Events              []entities.CalendarEvent
}

type ICalendarUseCase interface {
	Build(ctx context.Context, q SlotQuery, view CalendarView) (Calendar, error)
}

type CalendarUseCase struct {
	slots    interfaces.IAppointmentSlotRepository
	requests interfaces.IRepairRequestRepository
	schedule schedule.Schedule
	now      func() time.Time
}

var _ ICalendarUseCase = (*CalendarUseCase)(nil)

func NewCalendarUseCase(slots interfaces.IAppointmentSlotRepository, requests interfaces.IRepairRequestRepository, sched schedule.Schedule) *CalendarUseCase {
	return &CalendarUseCase{slots: slots, requests: requests, schedule: sched, now: time.Now}
}

func (u *CalendarUseCase) Build(ctx context.Context, q SlotQuery, view CalendarView) (Calendar, error) {
	r, err := resolveDayRange(u.schedule, q.Range, q.From, q.To, u.now())
	if err != nil {
		return Calendar{}, err
	}
	loc := u.schedule.Location
	if loc == nil {
		loc = time.UTC
	}
	first, _ := time.ParseInLocation(entities.DateLayout, r.From, loc)
	last, _ := time.ParseInLocation(entities.DateLayout, r.To, loc)

	events := u.schedule.ClosedBlocks(first, last.AddDate(0, 0, 1))
	var more []entities.CalendarEvent
	if view == CalendarFull {
		more, err = u.appointments(ctx, r, loc)
	} else {
		more, err = u.busy(ctx, r, loc)
	}
	if err != nil {
		return Calendar{}, err
	}
	events = append(events, more...)
	slices.SortStableFunc(events, func(a, b entities.CalendarEvent) int {
		return a.Start.Compare(b.Start)
	})

	return Calendar{
		Range:               r,
		SlotDurationMinutes: int(u.schedule.SlotInterval / time.Minute),
		Events:              events,
	}, nil
}

func (u *CalendarUseCase) appointments(ctx context.Context, r DayRange, loc *time.Location) ([]entities.CalendarEvent, error) {
	reqs, err := u.requests.ListByAppointmentDate(ctx, r.From, r.To)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CalendarEvent, 0, len(reqs))
	for _, req := range reqs {
		if req.Appointment == nil || req.Status == entities.RepairStatusCancelled {
			continue
		}
		start, err := req.Appointment.Key().StartsAt(loc)
		if err != nil {
			continue
		}
		c := req.Customer
		out = append(out, entities.CalendarEvent{
			UID:     "appointment-" + req.ID,
			Kind:    entities.CalendarEventAppointment,
			Summary: fmt.Sprintf("%s: %s", req.ServiceType, c.FullName()),
			Description: fmt.Sprintf("Device: %s %s\nPhone: %s\nEmail: %s\nStatus: %s",
				req.Device.Brand, req.Device.Model, c.PhoneNumber, c.Email, req.Status),
			Start:     start,
			End:       start.Add(u.schedule.SlotInterval),
			RequestID: req.ID,
		})
	}
	return out, nil
}

// busy reports slots a customer can no longer pick, without naming anyone.
func (u *CalendarUseCase) busy(ctx context.Context, r DayRange, loc *time.Location) ([]entities.CalendarEvent, error) {
	slots, err := u.slots.ListRange(ctx, r.From, r.To)
	if err != nil {
		return nil, err
	}
	var out []entities.CalendarEvent
	for _, s := range slots {
		if s.HasCapacity() {
			continue
		}
		start, err := s.Key().StartsAt(loc)
		if err != nil {
			continue
		}
		summary := "Booked"
		if !s.IsAvailable {
			summary = "Unavailable"
		}
		out = append(out, entities.CalendarEvent{
			UID:     "busy-" + s.Date + "-" + s.Time,
			Kind:    entities.CalendarEventBusy,
			Summary: summary,
			Start:   start,
			End:     start.Add(u.schedule.SlotInterval),
		})
	}
	return out, nil
}
