package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/insurance-backend/internal/http/response"
	"github.com/yungbote/insurance-backend/internal/platform/apierr"
	"github.com/yungbote/insurance-backend/internal/services"
)

type InsuranceHandler struct {
	insurances services.InsuranceService
}

func NewInsuranceHandler(insurances services.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{insurances: insurances}
}

// GET /api/insurances/:personId
func (h *InsuranceHandler) GetPersonInsurances(c *gin.Context) {
	personID := strings.TrimSpace(c.Param("personId"))
	if personID == "" {
		response.RespondError(c, apierr.BadRequest("Person ID is required"))
		return
	}
	resp, ok := h.insurances.GetPersonInsurances(c.Request.Context(), personID)
	if !ok {
		response.RespondError(c, apierr.NotFound(fmt.Sprintf("No insurances found for person ID %s", personID)))
		return
	}
	response.RespondOK(c, resp)
}
