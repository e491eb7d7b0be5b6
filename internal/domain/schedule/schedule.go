// Package schedule holds the shop's opening hours and derives slots and
// closed calendar blocks from them.
package schedule

import (
	"fmt"
	"time"

	"repair_intake/internal/domain/entities"
)

// DayHours is an opening window on a single day, as HH:MM labels.
type DayHours struct {
	Open  string
	Close string
}

// MonthDay is a holiday that repeats every year.
type MonthDay struct {
	Month time.Month
	Day   int
}

type Schedule struct {
	Location     *time.Location
	WorkingHours map[time.Weekday]DayHours
	Holidays     []MonthDay
	SlotInterval time.Duration
	SlotCapacity int
	HorizonDays  int
}

// Default returns the shop's standard week: Mon-Fri 09-16, Sat 10-15, Sunday
// and fixed holidays closed, hourly slots for two customers each.
func Default() Schedule {
	weekday := DayHours{Open: "09:00", Close: "16:00"}
	return Schedule{
		Location: time.UTC,
		WorkingHours: map[time.Weekday]DayHours{
			time.Monday:    weekday,
			time.Tuesday:   weekday,
			time.Wednesday: weekday,
			time.Thursday:  weekday,
			time.Friday:    weekday,
			time.Saturday:  {Open: "10:00", Close: "15:00"},
		},
		Holidays: []MonthDay{
			{Month: time.May, Day: 1},
			{Month: time.October, Day: 3},
			{Month: time.December, Day: 25},
			{Month: time.December, Day: 26},
		},
		SlotInterval: time.Hour,
		SlotCapacity: 2,
		HorizonDays:  7,
	}
}

func (s Schedule) Validate() error {
	if s.SlotInterval <= 0 {
		return fmt.Errorf("slot interval must be positive")
	}
	if s.SlotCapacity <= 0 {
		return fmt.Errorf("slot capacity must be positive")
	}
	if s.HorizonDays <= 0 {
		return fmt.Errorf("horizon days must be positive")
	}
	for day, h := range s.WorkingHours {
		open, err := time.Parse(entities.TimeLayout, h.Open)
		if err != nil {
			return fmt.Errorf("%s: invalid open time %q", day, h.Open)
		}
		closing, err := time.Parse(entities.TimeLayout, h.Close)
		if err != nil {
			return fmt.Errorf("%s: invalid close time %q", day, h.Close)
		}
		if !open.Before(closing) {
			return fmt.Errorf("%s: open %s must be before close %s", day, h.Open, h.Close)
		}
	}
	for _, h := range s.Holidays {
		if h.Month < time.January || h.Month > time.December || h.Day < 1 || h.Day > 31 {
			return fmt.Errorf("invalid holiday %d-%d", h.Month, h.Day)
		}
	}
	return nil
}

func (s Schedule) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// Today returns midnight of now's date in the shop's timezone.
func (s Schedule) Today(now time.Time) time.Time {
	return startOfDay(now.In(s.location()))
}

func (s Schedule) IsHoliday(day time.Time) bool {
	day = day.In(s.location())
	for _, h := range s.Holidays {
		if day.Month() == h.Month && day.Day() == h.Day {
			return true
		}
	}
	return false
}

func (s Schedule) IsWorkingDay(day time.Time) bool {
	day = day.In(s.location())
	_, open := s.WorkingHours[day.Weekday()]
	return open && !s.IsHoliday(day)
}

// window returns the opening and closing instants of day.
func (s Schedule) window(day time.Time) (time.Time, time.Time, bool) {
	day = startOfDay(day.In(s.location()))
	if !s.IsWorkingDay(day) {
		return time.Time{}, time.Time{}, false
	}
	h := s.WorkingHours[day.Weekday()]
	open, err := clockOn(day, h.Open)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	closing, err := clockOn(day, h.Close)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return open, closing, true
}

// SlotTimes lists the HH:MM labels of every slot that fits entirely inside
// the opening window of day.
func (s Schedule) SlotTimes(day time.Time) []string {
	open, closing, ok := s.window(day)
	if !ok || s.SlotInterval <= 0 {
		return nil
	}
	var out []string
	for t := open; !t.Add(s.SlotInterval).After(closing); t = t.Add(s.SlotInterval) {
		out = append(out, t.Format(entities.TimeLayout))
	}
	return out
}

// SlotsFor builds empty slots for days working days starting at from.
func (s Schedule) SlotsFor(from time.Time, days int) []entities.AppointmentSlot {
	start := startOfDay(from.In(s.location()))
	var out []entities.AppointmentSlot
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format(entities.DateLayout)
		for _, clock := range s.SlotTimes(day) {
			out = append(out, entities.AppointmentSlot{
				Date:        date,
				Time:        clock,
				MaxCapacity: s.SlotCapacity,
				IsAvailable: true,
				BookedBy:    []entities.SlotBooking{},
			})
		}
	}
	return out
}

// ClosedBlocks returns the periods in [from, to) during which the shop is
// closed: whole days for weekends and holidays, and the hours before opening
// and after closing on working days.
func (s Schedule) ClosedBlocks(from, to time.Time) []entities.CalendarEvent {
	loc := s.location()
	var out []entities.CalendarEvent
	for day := startOfDay(from.In(loc)); day.Before(to); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		date := day.Format(entities.DateLayout)
		open, closing, ok := s.window(day)
		if !ok {
			reason := "Closed"
			if s.IsHoliday(day) {
				reason = "Closed (holiday)"
			}
			out = append(out, entities.CalendarEvent{
				UID:     "closed-" + date,
				Kind:    entities.CalendarEventClosed,
				Summary: reason,
				Start:   day,
				End:     next,
			})
			continue
		}
		if open.After(day) {
			out = append(out, entities.CalendarEvent{
				UID:     "closed-" + date + "-morning",
				Kind:    entities.CalendarEventClosed,
				Summary: "Closed",
				Start:   day,
				End:     open,
			})
		}
		if closing.Before(next) {
			out = append(out, entities.CalendarEvent{
				UID:     "closed-" + date + "-evening",
				Kind:    entities.CalendarEventClosed,
				Summary: "Closed",
				Start:   closing,
				End:     next,
			})
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func clockOn(day time.Time, clock string) (time.Time, error) {
	c, err := time.Parse(entities.TimeLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}
