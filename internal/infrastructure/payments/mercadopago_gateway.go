package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client payment.Client
	logger *zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger *zerolog.Logger) (*MercadoPagoGateway, error) {
	l := logging.OrNop(logger).With().Str("component", "mercadopago").Logger()
	if accessToken == "" {
		l.Warn().Msg("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		l.Error().Err(err).Msg("failed creating sdk config")
		return nil, err
	}
	l.Info().Msg("client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: &l}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log := g.logger.With().Int("payload_len", len(requestPayload)).Logger()

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Warn().Err(err).Msg("payload unmarshal failed")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	log.Info().Str("provider_payment_id", id).Str("provider_status", resp.Status).Msg("payment created")

	return id, resp.Status, b, nil
}
