package listing

import "context"

// Viewer is the entity independent side of a controller.
// Implementations are safe for concurrent use.
type Viewer interface {
	Descriptor() Descriptor
	// Load is the initial fetch: page 1 with the default filter.
	Load(ctx context.Context) View
	// FetchPage fetches page with filter and returns the view after it is committed
	// or superseded. Errors end up in View.Err, never returned.
	FetchPage(ctx context.Context, page int, filter string) View
	// ChangePage is a no-op returning false when page is outside [1, TotalPages].
	ChangePage(ctx context.Context, page int) (View, bool)
	// ChangeFilter fetches page 1 with filter once the debounce window passes
	// without another call.
	ChangeFilter(ctx context.Context, filter string)
	Retry(ctx context.Context) View
	View() View
	// Watch calls fn after every state change until the returned func is called.
	// fn must not block or call back into the controller.
	Watch(fn func(View)) (unwatch func())
	// Close cancels the in-flight fetch and any pending filter change.
	Close()
}

// Controller is a Viewer with typed access to its items.
type Controller[T any] interface {
	Viewer
	State() State[T]
	Subscribe(fn func(State[T])) (unsubscribe func())
}

// Factory creates controllers for one entity.
type Factory interface {
	Descriptor() Descriptor
	NewViewer() Viewer
}

//go:generate mockgen -source=interface.go -destination=mocks/listing.go -package=mocks
type UseCase interface {
	Entities() []Descriptor
	Filters(ctx context.Context, entity string) ([]FilterOption, error)
	Browse(ctx context.Context, entity string, page int, filter string) (View, error)

	Open(ctx context.Context, entity string) (Session, error)
	Get(ctx context.Context, id string) (View, error)
	ChangePage(ctx context.Context, id string, page int) (View, bool, error)
	ChangeFilter(ctx context.Context, id string, filter string) (View, error)
	Retry(ctx context.Context, id string) (View, error)
	Watch(ctx context.Context, id string, fn func(View)) (unwatch func(), err error)
	Close(ctx context.Context, id string) error
}
