package request

import (
	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"

	"github.com/shopspring/decimal"
)

type AddressRequest struct {
	StreetName  string `json:"street_name"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
}

type CustomerRequest struct {
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	Address     AddressRequest `json:"address"`
}

type DeviceRequest struct {
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	IMEINumber *string `json:"imei_number"`
}

type AppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// SubmitRepairRequest is the public intake form. Field-level validation
// happens in the use case so every problem is reported at once.
type SubmitRepairRequest struct {
	Customer         CustomerRequest     `json:"customer"`
	Device           DeviceRequest       `json:"device"`
	ServiceType      string              `json:"service_type"`
	SelectedServices []string            `json:"selected_services"`
	Appointment      *AppointmentRequest `json:"appointment"`
	AdditionalNotes  string              `json:"additional_notes"`
}

func (r SubmitRepairRequest) ToPayload() usecase.SubmitPayload {
	p := usecase.SubmitPayload{
		Customer: entities.Customer{
			FirstName:   r.Customer.FirstName,
			LastName:    r.Customer.LastName,
			Email:       r.Customer.Email,
			PhoneNumber: r.Customer.PhoneNumber,
			Address: entities.Address{
				StreetName:  r.Customer.Address.StreetName,
				HouseNumber: r.Customer.Address.HouseNumber,
				PostalCode:  r.Customer.Address.PostalCode,
				City:        r.Customer.Address.City,
			},
		},
		Device: entities.Device{
			Brand:      r.Device.Brand,
			Model:      r.Device.Model,
			IMEINumber: r.Device.IMEINumber,
		},
		ServiceType:      entities.ServiceType(r.ServiceType),
		SelectedServices: r.SelectedServices,
		AdditionalNotes:  r.AdditionalNotes,
	}
	if r.Appointment != nil {
		p.Appointment = &usecase.AppointmentSelection{Date: r.Appointment.Date, Time: r.Appointment.Time}
	}
	return p
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// CompleteRequest carries the final price per service name. Prices may be
// sent as JSON numbers or strings.
type CompleteRequest struct {
	ActualPrices map[string]decimal.Decimal `json:"actual_prices" binding:"required"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
