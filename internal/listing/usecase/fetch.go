package usecase

import (
	"context"
	"fmt"

	"agenda-bff/internal/listing"
	"agenda-bff/pkg/agendasrv"
	pkghttp "agenda-bff/pkg/http"
	"agenda-bff/pkg/metrics"
)

// fetch issues one page request and commits its result unless a newer fetch
// started meanwhile. It returns the state after commit, or the current state
// when superseded.
func (c *controller[T]) fetch(ctx context.Context, page int, filter string) listing.State[T] {
	req := c.desc.NewPageRequest(page, filter)

	c.mu.Lock()
	if c.closed {
		defer c.mu.Unlock()
		return c.state
	}
	if c.cancelFetch != nil {
		c.cancelFetch()
	}
	c.seq++
	seq := c.seq
	fctx, cancel := c.fetchContext(ctx)
	c.cancelFetch = cancel

	if c.state.Phase == listing.PhaseIdle || c.state.Phase == listing.PhaseLoading {
		c.state.Loading = true
		c.state.Phase = listing.PhaseLoading
	} else {
		c.state.PageLoading = true
		c.state.Phase = listing.PhaseLoadingPartial
	}
	c.state.Err = ""
	c.unlockAndNotify()

	body, err := c.agenda.List(fctx, c.desc.Path, agendasrv.ListQuery{
		Limit:  req.Limit,
		Skip:   req.Skip,
		Filter: req.Query,
	})

	var (
		res   listing.PageResult[T]
		shape listing.Shape
	)
	if err == nil {
		res, shape = listing.Normalize[T](body, c.desc.ResponseKey, req)
	}

	c.mu.Lock()
	if seq != c.seq || c.closed {
		s := c.state
		c.mu.Unlock()
		cancel()
		c.metrics.IncListFetch(c.desc.Entity, metrics.OutcomeStale)
		c.l.Debugf(ctx, "listing.usecase.fetch: dropped stale result for %s page %d", c.desc.Entity, req.Page)
		return s
	}
	cancel()
	c.cancelFetch = nil

	c.state.Loading = false
	c.state.PageLoading = false
	c.state.CurrentPage = req.Page
	c.state.Filter = filter

	switch {
	case err != nil:
		c.state.Items = []T{}
		c.state.Total = 0
		c.state.Err = errorMessage(err)
		c.state.Phase = listing.PhaseErrored
		c.metrics.IncListFetch(c.desc.Entity, metrics.OutcomeError)
		c.l.Warnf(ctx, "listing.usecase.fetch: %s page %d failed: %v", c.desc.Entity, req.Page, err)
	case shape == listing.ShapeUnmatched:
		c.state.Items = []T{}
		c.state.Total = 0
		c.state.Err = listing.MsgUnexpectedFormat
		c.state.Phase = listing.PhaseErrored
		c.metrics.IncListFetch(c.desc.Entity, metrics.OutcomeUnexpectedFormat)
		c.l.Warnf(ctx, "listing.usecase.fetch: %s page %d: %v", c.desc.Entity, req.Page, listing.ErrUnexpectedFormat)
	default:
		c.state.Items = res.Items
		c.state.Total = res.Total
		c.state.Phase = listing.PhaseLoaded
		c.metrics.IncListFetch(c.desc.Entity, metrics.OutcomeOK)
		c.l.Debugf(ctx, "listing.usecase.fetch: %s page %d: %d of %d (%s)", c.desc.Entity, req.Page, len(res.Items), res.Total, shape)
	}
	return c.unlockAndNotify()
}

// fetchContext keeps ctx values but ties cancellation to the controller
// lifetime and to the returned cancel func.
func (c *controller[T]) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stopAfter := context.AfterFunc(c.life, cancel)
	return fctx, func() {
		stopAfter()
		cancel()
	}
}

// unlockAndNotify bumps the version, releases mu and delivers the snapshot.
// Must be called with mu held.
func (c *controller[T]) unlockAndNotify() listing.State[T] {
	c.state.Version++
	snap := c.state
	subs := make([]func(listing.State[T]), len(c.subs))
	for i, s := range c.subs {
		subs[i] = s.fn
	}

	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

func errorMessage(err error) string {
	reqErr, ok := pkghttp.AsRequestError(err)
	switch {
	case !ok:
		return listing.MsgUnknown
	case reqErr.Detail != "":
		return reqErr.Detail
	case reqErr.IsTransport():
		return listing.MsgNetwork
	default:
		return fmt.Sprintf(listing.MsgServer, reqErr.StatusCode)
	}
}
