package usecase

import (
	"context"

	"agenda-bff/internal/listing"
	"agenda-bff/pkg/paginator"
)

func (c *controller[T]) Descriptor() listing.Descriptor {
	return c.desc
}

func (c *controller[T]) Load(ctx context.Context) listing.View {
	return c.toView(c.fetch(ctx, paginator.DefaultPage, c.desc.DefaultFilter))
}

func (c *controller[T]) FetchPage(ctx context.Context, page int, filter string) listing.View {
	return c.toView(c.fetch(ctx, page, filter))
}

func (c *controller[T]) ChangePage(ctx context.Context, page int) (listing.View, bool) {
	c.mu.Lock()
	totalPages := paginator.TotalPages(c.state.Total, c.state.Limit)
	filter := c.state.Filter
	closed := c.closed
	snap := c.state
	c.mu.Unlock()

	if closed || page < 1 || page > totalPages {
		return c.toView(snap), false
	}
	return c.toView(c.fetch(ctx, page, filter)), true
}

func (c *controller[T]) ChangeFilter(ctx context.Context, filter string) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	// the request id survives but the caller's cancellation does not
	fctx := context.WithoutCancel(ctx)
	c.debounced(func() {
		c.fetch(fctx, paginator.DefaultPage, filter)
	})
}

func (c *controller[T]) Retry(ctx context.Context) listing.View {
	c.mu.Lock()
	page, filter := c.state.CurrentPage, c.state.Filter
	c.mu.Unlock()
	return c.toView(c.fetch(ctx, page, filter))
}

func (c *controller[T]) View() listing.View {
	return c.toView(c.State())
}

func (c *controller[T]) State() listing.State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controller[T]) Subscribe(fn func(listing.State[T])) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}

	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *controller[T]) Watch(fn func(listing.View)) func() {
	return c.Subscribe(func(s listing.State[T]) {
		fn(c.toView(s))
	})
}

func (c *controller[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
	c.subs = nil
	c.mu.Unlock()

	c.stop()
	// replace any pending filter change with a no-op
	c.debounced(func() {})
}

func (c *controller[T]) toView(s listing.State[T]) listing.View {
	return listing.NewView(c.desc.Entity, s, c.cfg.WindowSize)
}
