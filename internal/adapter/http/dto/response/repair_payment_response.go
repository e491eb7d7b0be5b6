package response

import (
	"time"

	"repair_intake/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RepairPaymentResponse struct {
	PaymentID string          `json:"payment_id"`
	RequestID string          `json:"request_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromRepairPayment(p entities.RepairPayment) RepairPaymentResponse {
	return RepairPaymentResponse{
		PaymentID:    p.ID,
		RequestID:    p.RequestID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
