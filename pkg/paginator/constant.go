package paginator

const (
	// DefaultPage is the default page number when invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page when invalid limit is provided.
	DefaultLimit = 6
	// MaxLimit is the maximum number of items per page to prevent excessive queries.
	MaxLimit = 100
	// DefaultWindowSize is how many page numbers a page window shows.
	DefaultWindowSize = 5
)
