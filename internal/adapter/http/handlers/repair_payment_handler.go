package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "repair_intake/internal/adapter/http/dto/response"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/usecase"
	"repair_intake/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RepairPaymentHandler settles completed repair requests.

type RepairPaymentHandler struct {
	usecase  usecase.IRepairPaymentUseCase
	mockMode bool
	logger   *zerolog.Logger
}

func NewRepairPaymentHandler(uc usecase.IRepairPaymentUseCase, mockMode bool, logger *zerolog.Logger) *RepairPaymentHandler {
	l := logging.OrNop(logger).With().Str("component", "payment_handler").Logger()
	return &RepairPaymentHandler{usecase: uc, mockMode: mockMode, logger: &l}
}

// Settle godoc
// @Summary      Pay for a completed repair
// @Description  Body is a Mercado Pago payment payload, optionally wrapped in {"mp_payload": ...}. Amount and reference are filled in from the request.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "request id"
// @Success      200  {object}  response.RepairPaymentResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /requests/{id}/payment [post]
func (h *RepairPaymentHandler) Settle(c *gin.Context) {
	requestID := c.Param("id")
	log := h.logger.With().Str("request_id", requestID).Logger()

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn().Err(err).Msg("invalid payload")
			abort(c, errInvalidBody)
			return
		}
		log.Debug().Err(err).Msg("invalid payload in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Settle(c.Request.Context(), requestID, mpPayload)
	if err != nil {
		abort(c, mapRepairPaymentError(err))
		return
	}
	log.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("payment settled")

	c.JSON(http.StatusOK, response.FromRepairPayment(created))
}

// Latest godoc
// @Summary  Latest payment of a request
// @Tags     payments
// @Produce  json
// @Param    id  path  string  true  "request id"
// @Success  200  {object}  response.RepairPaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /requests/{id}/payment [get]
func (h *RepairPaymentHandler) Latest(c *gin.Context) {
	payments, err := h.usecase.ListByRequestID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapRepairPaymentError(err))
		return
	}
	if len(payments) == 0 {
		abort(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromRepairPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
