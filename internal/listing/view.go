package listing

import "agenda-bff/pkg/paginator"

// NewView derives the display values of s.
func NewView[T any](entity string, s State[T], windowSize int) View {
	items := s.Items
	if items == nil {
		items = []T{}
	}
	currentPage := max(s.CurrentPage, 1)

	p := paginator.Paginator{
		Total:       s.Total,
		Count:       len(items),
		PerPage:     s.Limit,
		CurrentPage: currentPage,
	}.ToResponse(windowSize)

	return View{
		Entity:      entity,
		Items:       items,
		Count:       p.Count,
		Total:       s.Total,
		Limit:       s.Limit,
		CurrentPage: currentPage,
		TotalPages:  p.TotalPages,
		Pages:       p.Pages,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
		From:        p.From,
		To:          p.To,
		Filter:      s.Filter,
		Loading:     s.Loading,
		PageLoading: s.PageLoading,
		Err:         s.Err,
		Phase:       s.Phase,
		Version:     s.Version,
	}
}
