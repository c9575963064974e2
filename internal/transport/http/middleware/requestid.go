package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/CorralesK/TubeKidsBackend/pkg/utils"
)

// HeaderRequestID is echoed on every response so clients can quote the id
// when reporting a failure.
const HeaderRequestID = "X-Request-ID"

// CtxRequestID is the gin context key the access log reads.
const CtxRequestID = "requestId"

// RequestID honors an inbound id when the caller supplies one, otherwise
// mints a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = utils.NewID()
		}
		c.Header(HeaderRequestID, rid)
		c.Set(CtxRequestID, rid)
		c.Next()
	}
}
