package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/problem"
)

// Respond writes p as the response body with the application/problem+json
// media type. The status line comes from p.StatusOrDefault().
func Respond(c *gin.Context, p problem.Problem) {
	// Gin only sets Content-Type when none is present yet.
	c.Header("Content-Type", problem.MediaTypeJSON)
	c.JSON(p.StatusOrDefault().Int(), p)
}

// Abort writes p like Respond and stops the remaining handler chain.
func Abort(c *gin.Context, p problem.Problem) {
	Respond(c, p)
	c.Abort()
}

// RespondError inspects err: a problem.Problem anywhere in its chain is
// rendered as-is; any other error is reported as a generic 500 problem so
// internal messages never leak to clients.
func RespondError(c *gin.Context, err error) {
	var p problem.Problem
	if errors.As(err, &p) {
		Respond(c, p)
		return
	}
	Respond(c, problem.FromStatus(500))
}
