package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"repair_intake/internal/domain/entities"
)

// AppointmentSelection is the slot a customer asked for.
type AppointmentSelection struct {
	Date string
	Time string
}

// SubmitPayload is the customer's repair request form.
type SubmitPayload struct {
	Customer         entities.Customer
	Device           entities.Device
	ServiceType      entities.ServiceType
	SelectedServices []string
	Appointment      *AppointmentSelection
	AdditionalNotes  string
}

// AppointmentOutcome reports what happened to the requested appointment.
type AppointmentOutcome string

const (
	AppointmentNotRequested AppointmentOutcome = "not_requested"
	AppointmentReserved     AppointmentOutcome = "reserved"
	AppointmentUnavailable  AppointmentOutcome = "unavailable"
)

// SubmitResult carries the persisted request. When Appointment is
// AppointmentUnavailable, Reason wraps ErrAppointmentUnavailable and the
// cause. Replayed is set when an idempotency key matched an existing request.
type SubmitResult struct {
	Request     entities.RepairRequest
	Appointment AppointmentOutcome
	Reason      error
	Replayed    bool
}

// RequestFilter selects requests for listing. The first non-empty criterion
// wins, in field order.
type RequestFilter struct {
	Email  string
	Phone  string
	Status entities.RepairStatus
	Brand  string
	Model  string
	Recent int
}

func (f RequestFilter) IsEmpty() bool {
	return f.Email == "" && f.Phone == "" && f.Status == "" && f.Brand == "" && f.Model == "" && f.Recent <= 0
}

// normalizeSubmitPayload trims the form and reports every problem at once.
func normalizeSubmitPayload(p SubmitPayload) (SubmitPayload, error) {
	var problems []string
	require := func(field, value string) string {
		value = strings.TrimSpace(value)
		if value == "" {
			problems = append(problems, field+" is required")
		}
		return value
	}

	c := p.Customer
	c.FirstName = require("customer.first_name", c.FirstName)
	c.LastName = require("customer.last_name", c.LastName)
	c.Email = strings.ToLower(require("customer.email", c.Email))
	if c.Email != "" {
		if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != c.Email {
			problems = append(problems, "customer.email is not a valid address")
		}
	}
	c.PhoneNumber = require("customer.phone_number", c.PhoneNumber)
	c.Address.StreetName = require("customer.address.street_name", c.Address.StreetName)
	c.Address.HouseNumber = require("customer.address.house_number", c.Address.HouseNumber)
	c.Address.PostalCode = require("customer.address.postal_code", c.Address.PostalCode)
	c.Address.City = require("customer.address.city", c.Address.City)
	p.Customer = c

	d := p.Device
	d.Brand = require("device.brand", d.Brand)
	d.Model = require("device.model", d.Model)
	if d.IMEINumber != nil {
		imei := strings.TrimSpace(*d.IMEINumber)
		if imei == "" {
			d.IMEINumber = nil
		} else {
			d.IMEINumber = &imei
		}
	}
	p.Device = d

	p.ServiceType = entities.ServiceType(strings.ToLower(strings.TrimSpace(string(p.ServiceType))))
	if !p.ServiceType.Valid() {
		problems = append(problems, fmt.Sprintf("service_type must be %q or %q", entities.ServiceTypeWalkIn, entities.ServiceTypeSendIn))
	}

	if len(p.SelectedServices) == 0 {
		problems = append(problems, "selected_services must contain at least one service")
	}
	seen := make(map[string]struct{}, len(p.SelectedServices))
	services := make([]string, 0, len(p.SelectedServices))
	for _, name := range p.SelectedServices {
		name = strings.TrimSpace(name)
		if name == "" {
			problems = append(problems, "selected_services contains an empty name")
			continue
		}
		if _, dup := seen[name]; dup {
			problems = append(problems, fmt.Sprintf("selected_services lists %q twice", name))
			continue
		}
		seen[name] = struct{}{}
		services = append(services, name)
	}
	p.SelectedServices = services

	if p.Appointment != nil {
		a := AppointmentSelection{Date: strings.TrimSpace(p.Appointment.Date), Time: strings.TrimSpace(p.Appointment.Time)}
		if _, err := entities.NewSlotKey(a.Date, a.Time); err != nil {
			problems = append(problems, "appointment must have date YYYY-MM-DD and time HH:MM")
		}
		p.Appointment = &a
	}

	p.AdditionalNotes = strings.TrimSpace(p.AdditionalNotes)

	if len(problems) > 0 {
		return SubmitPayload{}, fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(problems, "; "))
	}
	return p, nil
}
