package handlers

import (
	"net/http"

	response "repair_intake/internal/adapter/http/dto/response"
	"repair_intake/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ServiceCatalogHandler struct {
	usecase usecase.IServiceCatalogUseCase
}

func NewServiceCatalogHandler(uc usecase.IServiceCatalogUseCase) *ServiceCatalogHandler {
	return &ServiceCatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary  Active repair services and base prices
// @Tags     services
// @Produce  json
// @Success  200  {array}  response.ServiceResponse
// @Router   /services [get]
func (h *ServiceCatalogHandler) ListServices(c *gin.Context) {
	entries, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		abort(c, mapRepairRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(entries))
}
