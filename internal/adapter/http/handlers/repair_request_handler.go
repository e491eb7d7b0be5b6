package handlers

import (
	"net/http"
	"strconv"

	request "repair_intake/internal/adapter/http/dto/request"
	response "repair_intake/internal/adapter/http/dto/response"
	"repair_intake/internal/domain/entities"
	"repair_intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// RepairRequestHandler handles the repair request lifecycle.

type RepairRequestHandler struct {
	usecase usecase.IRepairRequestUseCase
}

func NewRepairRequestHandler(uc usecase.IRepairRequestUseCase) *RepairRequestHandler {
	return &RepairRequestHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a repair request
// @Description  Quotes the selected services and, for walk-ins, reserves the requested slot. A full slot still creates the request.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string                        false  "replays the original request on retry"
// @Param        body             body    request.SubmitRepairRequest   true   "intake form"
// @Success      201  {object}  response.SubmitResponse
// @Success      200  {object}  response.SubmitResponse  "replayed"
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /requests [post]
func (h *RepairRequestHandler) Submit(c *gin.Context) {
	var payload request.SubmitRepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidBody)
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToPayload(), c.GetHeader(HeaderIdempotencyKey))
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, response.FromSubmitResult(res))
}

// List godoc
// @Summary      List repair requests
// @Description  Without filters returns every id. Otherwise the first of email, phone, status, brand+model, recent wins.
// @Tags         requests
// @Produce      json
// @Param        email   query  string  false  "customer email"
// @Param        phone   query  string  false  "customer phone"
// @Param        status  query  string  false  "status"
// @Param        brand   query  string  false  "device brand"
// @Param        model   query  string  false  "device model"
// @Param        recent  query  int     false  "most recent N"
// @Success      200  {array}  response.RepairRequestResponse
// @Router       /requests [get]
func (h *RepairRequestHandler) List(c *gin.Context) {
	filter := usecase.RequestFilter{
		Email:  c.Query("email"),
		Phone:  c.Query("phone"),
		Status: entities.RepairStatus(c.Query("status")),
		Brand:  c.Query("brand"),
		Model:  c.Query("model"),
	}
	if v := c.Query("recent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			abort(c, errInvalidBody.WithMessage("recent must be a positive integer"))
			return
		}
		filter.Recent = n
	}

	if filter.IsEmpty() {
		ids, err := h.usecase.ListIDs(c.Request.Context())
		if err != nil {
			abort(c, mapRepairRequestError(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"ids": ids})
		return
	}

	reqs, err := h.usecase.Search(c.Request.Context(), filter)
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequests(reqs))
}

// Get godoc
// @Summary  Get a repair request
// @Tags     requests
// @Produce  json
// @Param    id   path  string  true  "request id"
// @Success  200  {object}  response.RepairRequestResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /requests/{id} [get]
func (h *RepairRequestHandler) Get(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequest(req))
}

// AdvanceStatus godoc
// @Summary  Move a request forward (quoted, confirmed, in_progress)
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    id    path  string                        true  "request id"
// @Param    body  body  request.StatusUpdateRequest   true  "target status"
// @Success  200  {object}  response.RepairRequestResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /requests/{id}/status [patch]
func (h *RepairRequestHandler) AdvanceStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidBody)
		return
	}
	req, err := h.usecase.AdvanceStatus(c.Request.Context(), c.Param("id"), entities.RepairStatus(payload.Status))
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequest(req))
}

// BookAppointment godoc
// @Summary  Reserve a slot for an existing request
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    id    path  string                       true  "request id"
// @Param    body  body  request.AppointmentRequest   true  "slot"
// @Success  200  {object}  response.RepairRequestResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /requests/{id}/appointment [post]
func (h *RepairRequestHandler) BookAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidBody)
		return
	}
	req, err := h.usecase.BookAppointment(c.Request.Context(), c.Param("id"), payload.Date, payload.Time)
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequest(req))
}

// Cancel godoc
// @Summary  Cancel a request and release its slot
// @Tags     requests
// @Produce  json
// @Param    id  path  string  true  "request id"
// @Success  200  {object}  response.RepairRequestResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /requests/{id}/cancel [post]
func (h *RepairRequestHandler) Cancel(c *gin.Context) {
	req, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequest(req))
}

// Complete godoc
// @Summary      Record actual prices
// @Description  The request completes once every line item has an actual price.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "request id"
// @Param        body  body  request.CompleteRequest   true  "actual prices by service name"
// @Success      200  {object}  response.RepairRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /requests/{id}/complete [post]
func (h *RepairRequestHandler) Complete(c *gin.Context) {
	var payload request.CompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidBody)
		return
	}
	req, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.ActualPrices)
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequest(req))
}
