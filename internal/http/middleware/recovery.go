package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/insurance-backend/internal/http/response"
	"github.com/yungbote/insurance-backend/internal/platform/ctxutil"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
)

// Recovery turns a handler panic into the fixed 500 envelope. The panic value and stack are
// logged, never returned.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			if log != nil {
				log.Error("panic recovered",
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
					"request_id", ctxutil.RequestID(c.Request.Context()),
				)
			}
			response.RespondError(c, errors.New("panic recovered"))
		}()
		c.Next()
	}
}
