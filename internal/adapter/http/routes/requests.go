package routes

import "github.com/gin-gonic/gin"

func addRequestRoutes(rg *gin.RouterGroup, h routeHandlers, submit []gin.HandlerFunc) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", append(submit, h.requests.Submit)...)
		requests.GET("", h.requests.List)
		requests.GET("/:id", h.requests.Get)
		requests.PATCH("/:id/status", h.requests.AdvanceStatus)
		requests.POST("/:id/appointment", h.requests.BookAppointment)
		requests.POST("/:id/cancel", h.requests.Cancel)
		requests.POST("/:id/complete", h.requests.Complete)

		requests.POST("/:id/payment", h.payments.Settle)
		requests.GET("/:id/payment", h.payments.Latest)
	}
}
