package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	response "repair_intake/internal/adapter/http/dto/response"
	"repair_intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	usecase usecase.IReportUseCase
	now     func() time.Time
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc, now: time.Now}
}

// Brands godoc
// @Summary  Requests and revenue per device brand
// @Tags     reports
// @Produce  json
// @Success  200  {array}  usecase.BrandReport
// @Security BasicAuth
// @Router   /reports/brands [get]
func (h *ReportHandler) Brands(c *gin.Context) {
	rows, err := h.usecase.ByBrand(c.Request.Context())
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Services godoc
// @Summary  Popularity of each service
// @Tags     reports
// @Produce  json
// @Success  200  {array}  usecase.ServiceReport
// @Security BasicAuth
// @Router   /reports/services [get]
func (h *ReportHandler) Services(c *gin.Context) {
	rows, err := h.usecase.ByService(c.Request.Context())
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Pending godoc
// @Summary  Requests still waiting on the shop
// @Tags     reports
// @Produce  json
// @Success  200  {array}  response.RepairRequestResponse
// @Security BasicAuth
// @Router   /reports/pending [get]
func (h *ReportHandler) Pending(c *gin.Context) {
	reqs, err := h.usecase.Pending(c.Request.Context())
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequests(reqs))
}

// Today godoc
// @Summary  Today's appointments
// @Tags     reports
// @Produce  json
// @Success  200  {array}  response.RepairRequestResponse
// @Security BasicAuth
// @Router   /reports/today [get]
func (h *ReportHandler) Today(c *gin.Context) {
	reqs, err := h.usecase.TodayAppointments(c.Request.Context())
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRepairRequests(reqs))
}

// Export godoc
// @Summary  All reports as a spreadsheet
// @Tags     reports
// @Produce  octet-stream
// @Success  200  {file}  file
// @Security BasicAuth
// @Router   /reports/export.xlsx [get]
func (h *ReportHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.usecase.Export(c.Request.Context(), &buf); err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	name := fmt.Sprintf("repair-report-%s.xlsx", h.now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}
