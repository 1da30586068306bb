package server

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/problem"
	"github.com/kbukum/problem/status"
)

// Recovery returns a middleware that recovers from panics, logs the stack,
// and responds with a 500 problem. Every occurrence gets a unique instance
// URI (urn:uuid:...) that also appears in the log entry, so a client report
// can be matched to the stack trace that caused it.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				p := problem.FromStatusWithType(status.InternalServerError).
					SetInstance("urn:uuid:" + uuid.NewString())
				log.Error().
					Str("error", fmt.Sprintf("%v", r)).
					Str("stack", string(debug.Stack())).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Object("problem", p).
					Msg("panic recovered")
				Abort(c, p)
			}
		}()
		c.Next()
	}
}

// NoRoute returns a fallback handler for gin.Engine.NoRoute that emits a
// 404 problem with the request path as the occurrence instance.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		Respond(c, problem.FromStatus(status.NotFound).
			SetInstance(c.Request.URL.Path))
	}
}

// NoMethod returns a fallback handler for gin.Engine.NoMethod that emits a
// 405 problem with the request path as the occurrence instance.
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		Respond(c, problem.FromStatus(status.MethodNotAllowed).
			SetInstance(c.Request.URL.Path))
	}
}
