package listing

// Phase is where a controller is in its fetch lifecycle.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseLoading        Phase = "loading"
	PhaseLoaded         Phase = "loaded"
	PhaseLoadingPartial Phase = "loading_partial"
	PhaseErrored        Phase = "errored"
)

// FilterOption is a selectable filter token with its display label.
type FilterOption struct {
	Value string
	Label string
}

// Descriptor parameterizes a controller for one entity collection.
type Descriptor struct {
	Entity        string // url segment, e.g. "cadastros"
	Path          string // backend collection path
	ResponseKey   string // envelope key holding the items
	DefaultFilter string // "" for free text, a token otherwise
	Limit         int
	// Filters is the closed set of accepted tokens. Empty means free text.
	Filters []FilterOption
}

// FreeText reports whether any filter string is accepted.
func (d Descriptor) FreeText() bool {
	return len(d.Filters) == 0
}

// AllowsFilter reports whether filter can be sent for this entity.
func (d Descriptor) AllowsFilter(filter string) bool {
	if d.FreeText() || filter == "" {
		return true
	}
	for _, f := range d.Filters {
		if f.Value == filter {
			return true
		}
	}
	return false
}

// PageRequest is the query for one fetch. Skip is always (Page-1)*Limit.
type PageRequest struct {
	Page   int
	Limit  int
	Skip   int
	Filter string // the filter as the controller holds it
	// Query is the filter actually sent. Empty when the filter is empty or the default token.
	Query string
}

// NewPageRequest builds the request for page under d. page < 1 is treated as 1.
func (d Descriptor) NewPageRequest(page int, filter string) PageRequest {
	if page < 1 {
		page = 1
	}
	req := PageRequest{
		Page:   page,
		Limit:  d.Limit,
		Skip:   (page - 1) * d.Limit,
		Filter: filter,
	}
	if filter != d.DefaultFilter {
		req.Query = filter
	}
	return req
}

// PageResult is one normalized page.
type PageResult[T any] struct {
	Items []T
	Total int
}

// State is a controller snapshot.
type State[T any] struct {
	CurrentPage int
	Filter      string
	Items       []T
	Total       int
	Limit       int
	Loading     bool // first fetch in flight, nothing rendered yet
	PageLoading bool // page or filter change in flight, previous items still shown
	Err         string
	Phase       Phase
	// Version increases on every state change.
	Version uint64
}

// View is a State with its display values derived. It is not generic so
// controllers for different entities can be handled together.
type View struct {
	Entity      string
	Items       any
	Count       int
	Total       int
	Limit       int
	CurrentPage int
	TotalPages  int
	Pages       []int
	HasNext     bool
	HasPrev     bool
	From        int
	To          int
	Filter      string
	Loading     bool
	PageLoading bool
	Err         string
	Phase       Phase
	Version     uint64
}

// Session is an open controller addressed by id.
type Session struct {
	ID   string
	View View
}
