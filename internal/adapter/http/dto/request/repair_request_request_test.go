package request

import (
	"encoding/json"
	"testing"

	"repair_intake/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestSubmitRepairRequest_ToPayload(t *testing.T) {
	imei := "356938035643809"
	r := SubmitRepairRequest{
		Customer: CustomerRequest{
			FirstName:   "Ana",
			LastName:    "Silva",
			Email:       "ana@example.com",
			PhoneNumber: "+351 912 345 678",
			Address:     AddressRequest{StreetName: "Rua Augusta", HouseNumber: "12", PostalCode: "1100-053", City: "Lisboa"},
		},
		Device:           DeviceRequest{Brand: "Apple", Model: "iPhone 13", IMEINumber: &imei},
		ServiceType:      "walk-in",
		SelectedServices: []string{"Screen Replacement"},
		Appointment:      &AppointmentRequest{Date: "2026-03-02", Time: "10:00"},
		AdditionalNotes:  "cracked corner",
	}

	p := r.ToPayload()
	if p.Customer.Address.City != "Lisboa" || p.Customer.Email != "ana@example.com" {
		t.Fatalf("unexpected customer: %+v", p.Customer)
	}
	if p.Device.IMEINumber == nil || *p.Device.IMEINumber != imei {
		t.Fatalf("expected imei to be carried over")
	}
	if p.ServiceType != entities.ServiceTypeWalkIn {
		t.Fatalf("expected walk-in, got %q", p.ServiceType)
	}
	if p.Appointment == nil || p.Appointment.Date != "2026-03-02" || p.Appointment.Time != "10:00" {
		t.Fatalf("unexpected appointment: %+v", p.Appointment)
	}

	r.Appointment = nil
	if got := r.ToPayload(); got.Appointment != nil {
		t.Fatalf("expected no appointment, got %+v", got.Appointment)
	}
}

func TestCompleteRequest_AcceptsNumbersAndStrings(t *testing.T) {
	var r CompleteRequest
	body := `{"actual_prices":{"Screen Replacement":95.10,"Battery Replacement":"45.20"}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !r.ActualPrices["Screen Replacement"].Equal(decimal.RequireFromString("95.1")) {
		t.Fatalf("unexpected price: %s", r.ActualPrices["Screen Replacement"])
	}
	if !r.ActualPrices["Battery Replacement"].Equal(decimal.RequireFromString("45.20")) {
		t.Fatalf("unexpected price: %s", r.ActualPrices["Battery Replacement"])
	}
}
