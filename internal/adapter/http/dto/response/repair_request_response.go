package response

import (
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"

	"github.com/shopspring/decimal"
)

type RepairRequestResponse struct {
	ID               string                    `json:"id"`
	Customer         entities.Customer         `json:"customer"`
	Device           entities.Device           `json:"device"`
	Repairs          []entities.RepairLineItem `json:"repairs"`
	ServiceType      string                    `json:"service_type"`
	Appointment      *entities.Appointment     `json:"appointment"`
	Status           string                    `json:"status"`
	TotalQuotedPrice decimal.Decimal           `json:"total_quoted_price"`
	TotalActualPrice *decimal.Decimal          `json:"total_actual_price"`
	AdditionalNotes  *string                   `json:"additional_notes"`
	SubmittedAt      time.Time                 `json:"submitted_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func FromRepairRequest(r entities.RepairRequest) RepairRequestResponse {
	repairs := r.Repairs
	if repairs == nil {
		repairs = []entities.RepairLineItem{}
	}
	return RepairRequestResponse{
		ID:               r.ID,
		Customer:         r.Customer,
		Device:           r.Device,
		Repairs:          repairs,
		ServiceType:      string(r.ServiceType),
		Appointment:      r.Appointment,
		Status:           string(r.Status),
		TotalQuotedPrice: r.TotalQuotedPrice,
		TotalActualPrice: r.TotalActualPrice,
		AdditionalNotes:  r.AdditionalNotes,
		SubmittedAt:      r.SubmittedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromRepairRequests(rs []entities.RepairRequest) []RepairRequestResponse {
	out := make([]RepairRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRepairRequest(r))
	}
	return out
}

// SubmitResponse acknowledges an intake. AppointmentReason is only set when
// the requested slot could not be reserved.
type SubmitResponse struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	TotalQuotedPrice  decimal.Decimal `json:"total_quoted_price"`
	Appointment       string          `json:"appointment"`
	AppointmentReason string          `json:"appointment_reason,omitempty"`
	Replayed          bool            `json:"replayed,omitempty"`
}

func FromSubmitResult(res usecase.SubmitResult) SubmitResponse {
	out := SubmitResponse{
		ID:               res.Request.ID,
		Status:           string(res.Request.Status),
		TotalQuotedPrice: res.Request.TotalQuotedPrice,
		Appointment:      string(res.Appointment),
		Replayed:         res.Replayed,
	}
	if res.Reason != nil {
		out.AppointmentReason = res.Reason.Error()
	}
	return out
}
