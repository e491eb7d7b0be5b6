package entities

import "time"

type CalendarEventKind string

const (
	CalendarEventClosed      CalendarEventKind = "closed"
	CalendarEventAppointment CalendarEventKind = "appointment"
	CalendarEventBusy        CalendarEventKind = "busy"
)

// CalendarEvent is a block on the shop calendar. Public feeds carry only
// closed and busy blocks, never customer details.
type CalendarEvent struct {
	UID         string            `json:"uid"`
	Kind        CalendarEventKind `json:"kind"`
	Summary     string            `json:"summary"`
	Description string            `json:"description,omitempty"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	RequestID   string            `json:"request_id,omitempty"`
}
