package dto

// Pagination is the envelope returned next to every paginated collection.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count as ceil(total/limit). A non-positive
// limit is floored to 1 so the constructor never divides by zero.
func NewPagination(total int64, page, limit int) Pagination {
	if limit < 1 {
		limit = 1
	}

	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}

	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
