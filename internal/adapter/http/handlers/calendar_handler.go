package handlers

import (
	"net/http"
	"time"

	response "repair_intake/internal/adapter/http/dto/response"
	"repair_intake/internal/infrastructure/icalendar"
	"repair_intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

const contentTypeCalendar = "text/calendar; charset=utf-8"

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
	now     func() time.Time
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc, now: time.Now}
}

// PublicFeed godoc
// @Summary      Shop availability as iCalendar
// @Description  Closed hours and fully booked or blocked slots. No customer data.
// @Tags         calendar
// @Produce      plain
// @Param        range  query  string  false  "named range"
// @Param        from   query  string  false  "YYYY-MM-DD"
// @Param        to     query  string  false  "YYYY-MM-DD"
// @Success      200  {string}  string  "text/calendar"
// @Router       /slots.ics [get]
func (h *CalendarHandler) PublicFeed(c *gin.Context) {
	h.feed(c, usecase.CalendarPublic, "Repair shop availability")
}

// Calendar godoc
// @Summary  Appointment calendar
// @Tags     calendar
// @Produce  json
// @Param    range  query  string  false  "named range"
// @Param    from   query  string  false  "YYYY-MM-DD"
// @Param    to     query  string  false  "YYYY-MM-DD"
// @Success  200  {object}  response.CalendarResponse
// @Security BasicAuth
// @Router   /calendar [get]
func (h *CalendarHandler) Calendar(c *gin.Context) {
	q, ok := slotQuery(c)
	if !ok {
		return
	}
	cal, err := h.usecase.Build(c.Request.Context(), q, usecase.CalendarFull)
	if err != nil {
		abort(c, mapSlotError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendar(cal))
}

// CalendarFeed godoc
// @Summary  Appointment calendar as iCalendar
// @Tags     calendar
// @Produce  plain
// @Success  200  {string}  string  "text/calendar"
// @Security BasicAuth
// @Router   /calendar.ics [get]
func (h *CalendarHandler) CalendarFeed(c *gin.Context) {
	h.feed(c, usecase.CalendarFull, "Repair appointments")
}

func (h *CalendarHandler) feed(c *gin.Context, view usecase.CalendarView, name string) {
	q, ok := slotQuery(c)
	if !ok {
		return
	}
	cal, err := h.usecase.Build(c.Request.Context(), q, view)
	if err != nil {
		abort(c, mapSlotError(err))
		return
	}
	body := icalendar.Render(name, cal.Events, h.now())
	c.Data(http.StatusOK, contentTypeCalendar, []byte(body))
}
