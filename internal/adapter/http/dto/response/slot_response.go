package response

import (
	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"

	"github.com/shopspring/decimal"
)

// SlotResponse never carries booking details; it is served publicly.
type SlotResponse struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	MaxCapacity    int    `json:"max_capacity"`
	AvailableSpots int    `json:"available_spots"`
	IsAvailable    bool   `json:"is_available"`
}

type SlotsResponse struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlot(s entities.AppointmentSlot) SlotResponse {
	return SlotResponse{
		Date:           s.Date,
		Time:           s.Time,
		MaxCapacity:    s.MaxCapacity,
		AvailableSpots: s.AvailableSpots(),
		IsAvailable:    s.IsAvailable,
	}
}

func FromSlots(r usecase.DayRange, slots []entities.AppointmentSlot) SlotsResponse {
	out := SlotsResponse{From: r.From, To: r.To, Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		out.Slots = append(out.Slots, FromSlot(s))
	}
	return out
}

type CalendarResponse struct {
	From                string                   `json:"from"`
	To                  string                   `json:"to"`
	SlotDurationMinutes int                      `json:"slot_duration_minutes"`
	Events              []entities.CalendarEvent `json:"events"`
}

func FromCalendar(c usecase.Calendar) CalendarResponse {
	events := c.Events
	if events == nil {
		events = []entities.CalendarEvent{}
	}
	return CalendarResponse{
		From:                c.Range.From,
		To:                  c.Range.To,
		SlotDurationMinutes: c.SlotDurationMinutes,
		Events:              events,
	}
}

type ServiceResponse struct {
	ServiceName              string          `json:"service_name"`
	BasePrice                decimal.Decimal `json:"base_price"`
	EstimatedDurationMinutes int             `json:"estimated_duration_minutes"`
	Category                 string          `json:"category,omitempty"`
}

func FromServices(entries []entities.ServiceCatalogEntry) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ServiceResponse{
			ServiceName:              e.ServiceName,
			BasePrice:                e.BasePrice,
			EstimatedDurationMinutes: e.EstimatedDurationMinutes,
			Category:                 e.Category,
		})
	}
	return out
}
