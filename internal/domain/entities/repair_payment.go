package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider maps a Mercado Pago status to ours.
func PaymentStatusFromProvider(status string) PaymentStatus {
	switch status {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// RepairPayment settles a completed repair request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (request_id-index): request_id
//
// MPPayloadRaw keeps the provider response for audit.

type RepairPayment struct {
	ID        string          `json:"id"`
	RequestID string          `json:"request_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Status    PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
