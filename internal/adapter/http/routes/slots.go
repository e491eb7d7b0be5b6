package routes

import "github.com/gin-gonic/gin"

func addSlotRoutes(rg *gin.RouterGroup, h routeHandlers, staff gin.HandlerFunc) {
	rg.GET(PathSlots, h.slots.FindAvailable)
	rg.GET(PathSlots+".ics", h.calendar.PublicFeed)
	rg.PATCH(PathSlots+"/:date/:time/availability", staff, h.slots.SetAvailability)

	rg.GET(PathCalendar, staff, h.calendar.Calendar)
	rg.GET(PathCalendar+".ics", staff, h.calendar.CalendarFeed)
}
