package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/jsonns"
	"github.com/reoring/jsonns/middleware"
)

// Process decodes the incoming JSON, rewrites it with p (opt, or
// DefaultParseOpt when zero value), stores the Document in the context, and
// aborts with an Issues payload when the body cannot be decoded.
func Process(p *jsonns.Processor, opt jsonns.ParseOpt) gin.HandlerFunc {
	opt = middleware.Defaults(opt)
	return func(c *gin.Context) {
		d, err := middleware.Decode(c.Request, p, opt)
		if err != nil {
			if iss, ok := jsonns.AsIssues(err); ok {
				c.AbortWithStatusJSON(middleware.StatusFor(iss), middleware.ErrorPayload(iss))
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithDocument(c.Request.Context(), d))
		c.Next()
	}
}

// GetDocument fetches the Document from gin.Context.
func GetDocument(c *gin.Context) (middleware.Document, bool) {
	return middleware.DocumentFromContext(c.Request.Context())
}
