package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/insurance-backend/internal/platform/apierr"
)

// UnexpectedErrorMessage is the only text a client ever sees for a 5xx.
const UnexpectedErrorMessage = "An unexpected error occurred"

// Envelope wraps every JSON body. Data and ErrorMessage are always present, null when unused.
type Envelope struct {
	Success      bool    `json:"success"`
	Data         any     `json:"data"`
	ErrorMessage *string `json:"errorMessage"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: payload})
}

// RespondError writes the failure envelope and records err on the gin context for the
// request logger. An *apierr.Error picks the status; its message reaches the client only
// below 500.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := UnexpectedErrorMessage

	var ae *apierr.Error
	if errors.As(err, &ae) && ae.Status >= 400 {
		status = ae.Status
		if status < 500 {
			msg = strings.TrimSpace(ae.Code)
			if msg == "" {
				msg = http.StatusText(status)
			}
		}
	}
	if status >= 500 && err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, Envelope{Success: false, ErrorMessage: &msg})
}
