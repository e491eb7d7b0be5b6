package icalendar

import (
	"strings"
	"testing"
	"time"

	"repair_intake/internal/domain/entities"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	events := []entities.CalendarEvent{
		{
			UID:     "closed-2026-03-01@repair-intake",
			Kind:    entities.CalendarEventClosed,
			Summary: "Closed",
			Start:   start.Add(-34 * time.Hour),
			End:     start.Add(-time.Hour),
		},
		{
			UID:         "rq-1@repair-intake",
			Kind:        entities.CalendarEventAppointment,
			Summary:     "walk_in: Ana Silva",
			Description: "Device: Apple iPhone 13",
			Start:       start,
			End:         start.Add(time.Hour),
			RequestID:   "rq-1",
		},
	}

	out := Render("Repair appointments", events, start)

	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "DTSTART:20260302T100000Z")
	assert.Contains(t, out, "SUMMARY:walk_in: Ana Silva")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 2)
	assert.Equal(t, "rq-1@repair-intake", cal.Events()[1].Id())
}

func TestRender_Empty(t *testing.T) {
	out := Render("Shop availability", nil, time.Now())

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
