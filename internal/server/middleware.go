package server

import (
	"errors"
	"net/http"
	"time"

	"rental-ledger/internal/rentalerrors"
	"rental-ledger/services/rental/handler"
	"rental-ledger/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a request id
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.GenerateID()
	c.Set("request_id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// CallerIdentityMiddleware rejects mutating requests that carry no caller
// identity. The identity itself is an opaque token; the environment is
// trusted to hand out unique ones.
func CallerIdentityMiddleware(c *gin.Context) {
	if c.GetHeader(handler.CallerHeader) == "" {
		err := errors.New("missing " + handler.CallerHeader + " header")
		utils.JSONError(c, http.StatusUnauthorized, err, rentalerrors.ErrMissingCaller.Error())
		utils.Warn("CallerIdentityMiddleware: rejected request", map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		c.Abort()
		return
	}
	c.Next()
}
