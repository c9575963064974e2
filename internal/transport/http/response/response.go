package response

import (
	"github.com/gin-gonic/gin"

	"github.com/CorralesK/TubeKidsBackend/internal/core/apperr"
)

// ErrorBody is the error envelope every failed request gets: a message, no
// internals.
type ErrorBody struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

// AppError maps a service error to its HTTP status via the apperr taxonomy.
func AppError(c *gin.Context, err error) {
	Error(c, apperr.Status(err), apperr.Message(err))
}
