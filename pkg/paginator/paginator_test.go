package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{13, 6, 3},
		{100, 10, 10},
		{5, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestTotalPagesIsCeil(t *testing.T) {
	for limit := 1; limit <= 12; limit++ {
		for total := 1; total <= 60; total++ {
			want := total / limit
			if total%limit != 0 {
				want++
			}
			assert.Equal(t, want, TotalPages(total, limit))
		}
	}
}

func TestOffset(t *testing.T) {
	for page := 1; page <= 20; page++ {
		q := PaginateQuery{Page: page, Limit: 6}
		assert.Equal(t, (page-1)*6, q.Offset())
	}
	assert.Equal(t, 0, Offset(0, 6))
}

func TestAdjust(t *testing.T) {
	q := PaginateQuery{Page: -1, Limit: 0}
	q.Adjust()
	assert.Equal(t, PaginateQuery{Page: DefaultPage, Limit: DefaultLimit}, q)

	q = PaginateQuery{Page: 3, Limit: 1000}
	q.Adjust()
	assert.Equal(t, PaginateQuery{Page: 3, Limit: MaxLimit}, q)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                    string
		current, totalPages, sz int
		want                    []int
	}{
		{name: "first page", current: 1, totalPages: 10, sz: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "last page extends left", current: 10, totalPages: 10, sz: 5, want: []int{6, 7, 8, 9, 10}},
		{name: "centered", current: 5, totalPages: 10, sz: 5, want: []int{3, 4, 5, 6, 7}},
		{name: "near end", current: 9, totalPages: 10, sz: 5, want: []int{6, 7, 8, 9, 10}},
		{name: "second page", current: 2, totalPages: 10, sz: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "fewer pages than window", current: 2, totalPages: 3, sz: 5, want: []int{1, 2, 3}},
		{name: "exactly window", current: 5, totalPages: 5, sz: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "no pages", current: 1, totalPages: 0, sz: 5, want: []int{1}},
		{name: "default size", current: 7, totalPages: 20, sz: 0, want: []int{5, 6, 7, 8, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.current, tt.totalPages, tt.sz))
		})
	}
}

func TestWindowAlwaysFull(t *testing.T) {
	for total := 5; total <= 30; total++ {
		for cur := 1; cur <= total; cur++ {
			w := Window(cur, total, 5)
			assert.Len(t, w, 5)
			assert.Contains(t, w, cur)
			assert.GreaterOrEqual(t, w[0], 1)
			assert.LessOrEqual(t, w[4], total)
		}
	}
}

func TestToResponse(t *testing.T) {
	p := Paginator{Total: 13, Count: 1, PerPage: 6, CurrentPage: 3}
	resp := p.ToResponse(5)

	assert.Equal(t, 3, resp.TotalPages)
	assert.False(t, resp.HasNext)
	assert.True(t, resp.HasPrev)
	assert.Equal(t, 13, resp.From)
	assert.Equal(t, 13, resp.To)
	assert.Equal(t, []int{1, 2, 3}, resp.Pages)
	assert.False(t, p.Contains(4))
	assert.True(t, p.Contains(1))

	empty := Paginator{PerPage: 6, CurrentPage: 1}.ToResponse(5)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Equal(t, 0, empty.From)
	assert.Equal(t, []int{1}, empty.Pages)
}
