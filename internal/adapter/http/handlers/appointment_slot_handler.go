package handlers

import (
	"net/http"
	"strconv"

	request "repair_intake/internal/adapter/http/dto/request"
	response "repair_intake/internal/adapter/http/dto/response"
	"repair_intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AppointmentSlotHandler struct {
	usecase usecase.IAppointmentSlotUseCase
}

func NewAppointmentSlotHandler(uc usecase.IAppointmentSlotUseCase) *AppointmentSlotHandler {
	return &AppointmentSlotHandler{usecase: uc}
}

// FindAvailable godoc
// @Summary      List bookable slots
// @Description  Explicit from/to win over a named range. Without either, today is used.
// @Tags         slots
// @Produce      json
// @Param        range  query  string  false  "today, this_week, next_week, this_month, next_month, this_year; anything else means today"
// @Param        from   query  string  false  "YYYY-MM-DD"
// @Param        to     query  string  false  "YYYY-MM-DD"
// @Param        limit  query  int     false  "max slots"
// @Success      200  {object}  response.SlotsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /slots [get]
func (h *AppointmentSlotHandler) FindAvailable(c *gin.Context) {
	q, ok := slotQuery(c)
	if !ok {
		return
	}
	r, slots, err := h.usecase.FindAvailable(c.Request.Context(), q)
	if err != nil {
		abort(c, mapSlotError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSlots(r, slots))
}

// SetAvailability godoc
// @Summary  Block or reopen a slot
// @Tags     slots
// @Accept   json
// @Produce  json
// @Param    date  path  string                        true  "YYYY-MM-DD"
// @Param    time  path  string                        true  "HH:MM"
// @Param    body  body  request.AvailabilityRequest   true  "availability"
// @Success  200  {object}  response.SlotResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security BasicAuth
// @Router   /slots/{date}/{time}/availability [patch]
func (h *AppointmentSlotHandler) SetAvailability(c *gin.Context) {
	var payload request.AvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidBody)
		return
	}
	slot, err := h.usecase.SetAvailability(c.Request.Context(), c.Param("date"), c.Param("time"), *payload.Available)
	if err != nil {
		abort(c, mapSlotError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSlot(slot))
}

func slotQuery(c *gin.Context) (usecase.SlotQuery, bool) {
	q := usecase.SlotQuery{
		Range: c.Query("range"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			abort(c, errInvalidBody.WithMessage("limit must be a non-negative integer"))
			return usecase.SlotQuery{}, false
		}
		q.Limit = n
	}
	return q, true
}
