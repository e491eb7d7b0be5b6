package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrRepairPaymentNotFound          = errors.New("repair payment not found")
	ErrInvalidPaymentRequestID        = errors.New("invalid request_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrRequestNotCompleted            = errors.New("repair request not completed")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings controls the Mercado Pago integration.
type PaymentSettings struct {
	// Mock skips the gateway and approves every payment.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// IRepairPaymentUseCase settles completed repair requests.
//
// The charged amount is always the request's total actual price; the
// caller's payload only contributes payment method and payer details.
type IRepairPaymentUseCase interface {
	Settle(ctx context.Context, requestID string, mpPayload json.RawMessage) (entities.RepairPayment, error)
	GetByID(ctx context.Context, id string) (entities.RepairPayment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.RepairPayment, error)
}

type RepairPaymentUseCase struct {
	repo     interfaces.IRepairPaymentRepository
	requests interfaces.IRepairRequestRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	logger   *zerolog.Logger
	now      func() time.Time
}

var _ IRepairPaymentUseCase = (*RepairPaymentUseCase)(nil)

func NewRepairPaymentUseCase(
	repo interfaces.IRepairPaymentRepository,
	requests interfaces.IRepairRequestRepository,
	gateway interfaces.IPaymentGateway,
	settings PaymentSettings,
	logger *zerolog.Logger,
) *RepairPaymentUseCase {
	l := logging.OrNop(logger).With().Str("component", "payments").Logger()
	return &RepairPaymentUseCase{
		repo:     repo,
		requests: requests,
		gateway:  gateway,
		settings: settings,
		logger:   &l,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *RepairPaymentUseCase) Settle(ctx context.Context, requestID string, mpPayload json.RawMessage) (entities.RepairPayment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.RepairPayment{}, ErrInvalidPaymentRequestID
	}
	log := u.logger.With().Str("request_id", requestID).Logger()
	mock := u.settings.Mock

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mock {
			log.Warn().Int("payload_len", len(mpPayload)).Msg("invalid payment payload")
			return entities.RepairPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mock {
		return entities.RepairPayment{}, errors.New("payment gateway not configured")
	}
	if u.requests == nil {
		return entities.RepairPayment{}, errors.New("repair request repository not configured")
	}

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		log.Error().Err(err).Msg("loading repair request failed")
		return entities.RepairPayment{}, err
	}
	if req.ID == "" {
		return entities.RepairPayment{}, ErrRepairRequestNotFound
	}
	if req.Status != entities.RepairStatusCompleted || req.TotalActualPrice == nil {
		return entities.RepairPayment{}, fmt.Errorf("%w: request is %s", ErrRequestNotCompleted, req.Status)
	}

	existing, err := u.repo.ListByRequestID(ctx, requestID)
	if err != nil {
		return entities.RepairPayment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusApproved {
			return entities.RepairPayment{}, fmt.Errorf("%w: %s", entities.ErrPaymentAlreadyExists, p.ID)
		}
	}

	amount := *req.TotalActualPrice
	body := map[string]any{}
	if err := json.Unmarshal(mpPayload, &body); err != nil {
		if !mock {
			return entities.RepairPayment{}, ErrInvalidMPPayload
		}
		body = map[string]any{}
	}
	if !mock {
		if !hasNonEmptyString(body, "payment_method_id") {
			log.Warn().Msg("missing payment_method_id")
			return entities.RepairPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(body)
		u.ensurePayerDefaults(body, req.Customer.Email)
		if !hasPayer(body) {
			log.Warn().Msg("missing payer")
			return entities.RepairPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := body["external_reference"]; !ok {
		body["external_reference"] = requestID
	}
	if _, ok := body["description"]; !ok {
		body["description"] = fmt.Sprintf("Repair %s %s", req.Device.Brand, req.Device.Model)
	}
	body["transaction_amount"] = json.Number(amount.StringFixed(2))
	payload, err := json.Marshal(body)
	if err != nil {
		return entities.RepairPayment{}, err
	}

	var providerID, providerStatus string
	var providerResp json.RawMessage
	if mock {
		providerID, providerStatus, providerResp, err = u.mockPayment(body)
		if err != nil {
			return entities.RepairPayment{}, err
		}
		log.Info().Msg("payment gateway mocked")
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error().Err(err).Msg("payment gateway failed")
			return entities.RepairPayment{}, mapGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Msg("provider response is not json")
	}

	created, err := u.repo.Create(ctx, entities.RepairPayment{
		ID:           providerID,
		RequestID:    requestID,
		Amount:       amount,
		Date:         u.now(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	})
	if err != nil {
		log.Error().Err(err).Str("payment_id", providerID).Msg("storing payment failed")
		return entities.RepairPayment{}, err
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).
		Str("amount", created.Amount.StringFixed(2)).Msg("payment settled")
	return created, nil
}

func (u *RepairPaymentUseCase) mockPayment(body map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(u.now().UnixNano(), 10)
	at := u.now().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(body)+5)
	for k, v := range body {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = at
	resp["date_approved"] = at
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

// ensurePayerDefaults fills payer.type and, when neither id nor email is
// given, the customer's email (or the sandbox test payer).
func (u *RepairPaymentUseCase) ensurePayerDefaults(m map[string]any, customerEmail string) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.settings.sandbox() && u.settings.TestPayerEmail != "":
		payer["email"] = u.settings.TestPayerEmail
	case customerEmail != "":
		payer["email"] = customerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email.
func (u *RepairPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	s := u.settings
	if !s.sandbox() || s.TestPayerUserID == "" || s.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != s.TestPayerUserID {
		return
	}
	payer["email"] = s.TestPayerEmail
	delete(payer, "id")
	u.logger.Debug().Msg("mapped sandbox payer user id to email")
}

func (u *RepairPaymentUseCase) GetByID(ctx context.Context, id string) (entities.RepairPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RepairPayment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RepairPayment{}, err
	}
	if p.ID == "" {
		return entities.RepairPayment{}, ErrRepairPaymentNotFound
	}
	return p, nil
}

func (u *RepairPaymentUseCase) ListByRequestID(ctx context.Context, requestID string) ([]entities.RepairPayment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidPaymentRequestID
	}
	return u.repo.ListByRequestID(ctx, requestID)
}
