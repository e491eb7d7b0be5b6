package icalendar

import (
	"time"

	"repair_intake/internal/domain/entities"

	ics "github.com/arran4/golang-ical"
)

const productID = "-//repair-intake//calendar//EN"

// Render serializes events as a PUBLISH calendar. stamp becomes every
// event's DTSTAMP so a feed rendered twice from the same data is identical.
func Render(name string, events []entities.CalendarEvent, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)

	for _, e := range events {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Summary)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		ev.SetProperty(ics.ComponentPropertyCategories, string(e.Kind))
	}
	return cal.Serialize()
}
