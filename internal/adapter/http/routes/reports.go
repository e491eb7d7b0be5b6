package routes

import "github.com/gin-gonic/gin"

func addReportRoutes(rg *gin.RouterGroup, h routeHandlers, staff gin.HandlerFunc) {
	reports := rg.Group(PathReports, staff)
	{
		reports.GET("/brands", h.reports.Brands)
		reports.GET("/services", h.reports.Services)
		reports.GET("/pending", h.reports.Pending)
		reports.GET("/today", h.reports.Today)
		reports.GET("/export.xlsx", h.reports.Export)
	}
}
