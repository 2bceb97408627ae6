package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/insurance-backend/internal/http/response"
	"github.com/yungbote/insurance-backend/internal/platform/apierr"
	"github.com/yungbote/insurance-backend/internal/services"
)

type VehicleHandler struct {
	vehicles services.VehicleService
}

func NewVehicleHandler(vehicles services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// GET /api/vehicles/:registrationNumber
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	reg := strings.TrimSpace(c.Param("registrationNumber"))
	if reg == "" {
		response.RespondError(c, apierr.BadRequest("Registration number is required"))
		return
	}
	v, ok := h.vehicles.GetVehicle(c.Request.Context(), reg)
	if !ok {
		response.RespondError(c, apierr.NotFound(fmt.Sprintf("Vehicle with registration %s not found", reg)))
		return
	}
	response.RespondOK(c, v)
}
