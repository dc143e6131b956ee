package query

// Meta describes the pagination window and the size of the full matching set.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Page is one window of a listing.
type Page struct {
	Meta Meta     `json:"meta"`
	Data []Record `json:"data"`
}

// TotalPages returns ceil(total/limit), or 0 when total or limit is not positive.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}

func newPage(data []Record, total int64, n Normalized) *Page {
	if data == nil {
		data = []Record{}
	}
	return &Page{
		Meta: Meta{
			Page:       n.Page,
			Limit:      n.Limit,
			Total:      total,
			TotalPages: TotalPages(total, n.Limit),
		},
		Data: data,
	}
}
