package paginator

// Adjust normalizes the pagination parameters to valid values.
// Sets defaults if values are invalid and enforces maximum limit.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	} else if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset returns (page-1)*limit.
func (p PaginateQuery) Offset() int {
	return Offset(p.Page, p.Limit)
}

// Offset returns the skip value for a 1-indexed page.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit), never less than 1 so an empty list still renders one page.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// Window returns the clickable page numbers around current.
// The window is centered on current; when the right edge is clamped it extends left,
// so it always holds exactly size entries once totalPages >= size.
func Window(current, totalPages, size int) []int {
	if size < 1 {
		size = DefaultWindowSize
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if totalPages <= size {
		return pageRange(1, totalPages)
	}

	start := max(1, current-size/2)
	end := min(totalPages, start+size-1)
	if end-start < size-1 {
		start = max(1, end-size+1)
	}
	return pageRange(start, end)
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		pages = append(pages, i)
	}
	return pages
}

// TotalPages calculates the total number of pages based on total items and items per page.
func (p Paginator) TotalPages() int {
	return TotalPages(p.Total, p.PerPage)
}

// Contains reports whether page is a valid page number for this result.
func (p Paginator) Contains(page int) bool {
	return page >= 1 && page <= p.TotalPages()
}

// HasNextPage checks if there is a next page available.
func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

// HasPreviousPage checks if there is a previous page available.
func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// Range returns the 1-based positions of the first and last item on the current page.
func (p Paginator) Range() (from, to int) {
	if p.Count == 0 {
		return 0, 0
	}
	from = Offset(p.CurrentPage, p.PerPage) + 1
	return from, from + p.Count - 1
}

// ToResponse converts the paginator to a response format with additional calculated fields.
func (p Paginator) ToResponse(windowSize int) PaginatorResponse {
	from, to := p.Range()
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
		From:        from,
		To:          to,
		Pages:       Window(p.CurrentPage, p.TotalPages(), windowSize),
	}
}
