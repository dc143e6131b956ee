package pkg

import (
	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// List query parameter names shared by every collection endpoint.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSort   = "sort"
	ParamOrder  = "order"
	ParamSearch = "search"
)

// ParseListParams extracts the raw list parameters from the query string.
// Values are passed through untouched; query.Params.Normalize corrects them,
// so malformed input never fails a request. Search fields are left for the
// resource to set.
func ParseListParams(c *gin.Context) query.Params {
	return query.Params{
		Page:   c.Query(ParamPage),
		Limit:  c.Query(ParamLimit),
		Sort:   c.Query(ParamSort),
		Order:  c.Query(ParamOrder),
		Search: c.Query(ParamSearch),
	}
}
