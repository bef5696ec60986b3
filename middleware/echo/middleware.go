package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/jsonns"
	"github.com/reoring/jsonns/middleware"
)

// Process decodes the request body, rewrites it with p, stores the Document
// in the request context, or answers with Issues when the body cannot be
// decoded. A zero opt means middleware.DefaultParseOpt.
func Process(p *jsonns.Processor, opt jsonns.ParseOpt) echo.MiddlewareFunc {
	opt = middleware.Defaults(opt)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := middleware.Decode(c.Request(), p, opt)
			if err != nil {
				if iss, ok := jsonns.AsIssues(err); ok {
					return c.JSON(middleware.StatusFor(iss), middleware.ErrorPayload(iss))
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			ctx := middleware.ContextWithDocument(c.Request().Context(), d)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetDocument fetches the Document from echo.Context.
func GetDocument(c echo.Context) (middleware.Document, bool) {
	return middleware.DocumentFromContext(c.Request().Context())
}
