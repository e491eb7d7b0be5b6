package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RepairStatus represents the lifecycle of a repair request.
//
// The forward chain is pending_quote -> quoted -> confirmed -> in_progress -> completed.
// Skips along the chain are allowed; cancelled is reachable from any
// non-terminal status; completed and cancelled are terminal.

type RepairStatus string

const (
	RepairStatusPendingQuote RepairStatus = "pending_quote"
	RepairStatusQuoted       RepairStatus = "quoted"
	RepairStatusConfirmed    RepairStatus = "confirmed"
	RepairStatusInProgress   RepairStatus = "in_progress"
	RepairStatusCompleted    RepairStatus = "completed"
	RepairStatusCancelled    RepairStatus = "cancelled"
)

var repairStatusRank = map[RepairStatus]int{
	RepairStatusPendingQuote: 0,
	RepairStatusQuoted:       1,
	RepairStatusConfirmed:    2,
	RepairStatusInProgress:   3,
	RepairStatusCompleted:    4,
}

func (s RepairStatus) Valid() bool {
	if s == RepairStatusCancelled {
		return true
	}
	_, ok := repairStatusRank[s]
	return ok
}

func (s RepairStatus) IsTerminal() bool {
	return s == RepairStatusCompleted || s == RepairStatusCancelled
}

func (s RepairStatus) CanTransitionTo(next RepairStatus) bool {
	if s.IsTerminal() || !s.Valid() || !next.Valid() {
		return false
	}
	if next == RepairStatusCancelled {
		return true
	}
	return repairStatusRank[next] > repairStatusRank[s]
}

// ServiceType tells whether the customer brings the device or ships it.
type ServiceType string

const (
	ServiceTypeWalkIn ServiceType = "walk-in"
	ServiceTypeSendIn ServiceType = "send-in"
)

func (t ServiceType) Valid() bool {
	return t == ServiceTypeWalkIn || t == ServiceTypeSendIn
}

type Address struct {
	StreetName  string `json:"street_name"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
}

type Customer struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Address     Address `json:"address"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Device struct {
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	IMEINumber *string `json:"imei_number,omitempty"`
}

// RepairLineItem freezes the catalog price at quote time.
type RepairLineItem struct {
	ServiceName              string           `json:"service_name"`
	QuotedPrice              decimal.Decimal  `json:"quoted_price"`
	ActualPrice              *decimal.Decimal `json:"actual_price"`
	EstimatedDurationMinutes int              `json:"estimated_duration_minutes"`
}

// Appointment links a request to a slot. ReleasePending marks a cancelled
// request whose slot booking could not be released yet.
type Appointment struct {
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	ConfirmedAt    *time.Time `json:"confirmed_at"`
	ReleasePending bool       `json:"release_pending,omitempty"`
}

func (a Appointment) Key() SlotKey {
	return SlotKey{Date: a.Date, Time: a.Time}
}

// RepairRequest is one customer submission.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSIs: customer email, status + submitted_at, appointment date + time,
//     device brand#model, customer phone, submitted_at
//
// Version is the optimistic-concurrency counter; every successful update
// increments it.

type RepairRequest struct {
	ID               string           `json:"id"`
	Customer         Customer         `json:"customer"`
	Device           Device           `json:"device"`
	Repairs          []RepairLineItem `json:"repairs"`
	ServiceType      ServiceType      `json:"service_type"`
	Appointment      *Appointment     `json:"appointment,omitempty"`
	Status           RepairStatus     `json:"status"`
	TotalQuotedPrice decimal.Decimal  `json:"total_quoted_price"`
	TotalActualPrice *decimal.Decimal `json:"total_actual_price"`
	AdditionalNotes  *string          `json:"additional_notes,omitempty"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Version          int64            `json:"version"`
}

// SumQuoted adds the quoted prices exactly.
func SumQuoted(items []RepairLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.QuotedPrice)
	}
	return total
}

// Transition moves the request to next, enforcing the status machine.
func (r *RepairRequest) Transition(next RepairStatus, now time.Time) error {
	if !r.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, next)
	}
	r.Status = next
	r.Touch(now)
	return nil
}

// Touch bumps UpdatedAt without ever moving it backwards.
func (r *RepairRequest) Touch(now time.Time) {
	if now.After(r.UpdatedAt) {
		r.UpdatedAt = now
	}
}

// AllPriced reports whether every line item carries an actual price.
func (r RepairRequest) AllPriced() bool {
	for _, it := range r.Repairs {
		if it.ActualPrice == nil {
			return false
		}
	}
	return len(r.Repairs) > 0
}

// SumActual adds the actual prices. Only meaningful when AllPriced is true.
func (r RepairRequest) SumActual() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Repairs {
		if it.ActualPrice != nil {
			total = total.Add(*it.ActualPrice)
		}
	}
	return total
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (r RepairRequest) Clone() RepairRequest {
	cp := r
	if r.Repairs != nil {
		cp.Repairs = make([]RepairLineItem, len(r.Repairs))
		for i, it := range r.Repairs {
			cp.Repairs[i] = it
			if it.ActualPrice != nil {
				v := *it.ActualPrice
				cp.Repairs[i].ActualPrice = &v
			}
		}
	}
	if r.Appointment != nil {
		a := *r.Appointment
		if a.ConfirmedAt != nil {
			t := *a.ConfirmedAt
			a.ConfirmedAt = &t
		}
		cp.Appointment = &a
	}
	if r.TotalActualPrice != nil {
		v := *r.TotalActualPrice
		cp.TotalActualPrice = &v
	}
	if r.AdditionalNotes != nil {
		n := *r.AdditionalNotes
		cp.AdditionalNotes = &n
	}
	if r.Device.IMEINumber != nil {
		imei := *r.Device.IMEINumber
		cp.Device.IMEINumber = &imei
	}
	return cp
}
