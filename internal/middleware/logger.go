package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorLogger recovers from panics and logs errors attached with c.Error.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				GetLogger(c).Error().
					Err(err).
					Str("stack", string(debug.Stack())).
					Dur("latency", time.Since(start)).
					Msg("panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": http.StatusText(http.StatusInternalServerError),
				})
				return
			}

			for _, err := range c.Errors {
				GetLogger(c).Error().
					Stack().
					Err(err.Err).
					Int("status", c.Writer.Status()).
					Dur("latency", time.Since(start)).
					Msg("request_error")
			}
		}()

		c.Next()
	}
}

// RequestLogger writes one line per request, at warn for 4xx and error for 5xx.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := GetLogger(c)

		var e *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			e = l.Error()
		case status >= http.StatusBadRequest:
			e = l.Warn()
		default:
			e = l.Info()
		}

		e.Int("status", status).
			Dur("latency", time.Since(start)).
			Str("route", c.FullPath()).
			Str("query", c.Request.URL.RawQuery).
			Str("ip", c.ClientIP()).
			Int("size", c.Writer.Size()).
			Msg("API")
	}
}
