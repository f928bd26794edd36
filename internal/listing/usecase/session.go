package usecase

import (
	"context"

	"agenda-bff/internal/listing"

	"github.com/google/uuid"
)

func (uc *implUseCase) Entities() []listing.Descriptor {
	out := make([]listing.Descriptor, 0, len(uc.order))
	for _, entity := range uc.order {
		out = append(out, uc.factories[entity].Descriptor())
	}
	return out
}

func (uc *implUseCase) Filters(ctx context.Context, entity string) ([]listing.FilterOption, error) {
	f, err := uc.factory(entity)
	if err != nil {
		return nil, err
	}
	opts := f.Descriptor().Filters
	if opts == nil {
		opts = []listing.FilterOption{}
	}
	return opts, nil
}

// Browse runs a single fetch on a throwaway controller.
func (uc *implUseCase) Browse(ctx context.Context, entity string, page int, filter string) (listing.View, error) {
	f, err := uc.factory(entity)
	if err != nil {
		return listing.View{}, err
	}
	if page < 1 {
		return listing.View{}, listing.ErrInvalidPage
	}
	desc := f.Descriptor()
	if filter == "" {
		filter = desc.DefaultFilter
	}
	if !desc.AllowsFilter(filter) {
		return listing.View{}, listing.ErrInvalidFilter
	}

	v := f.NewViewer()
	defer v.Close()
	return v.FetchPage(ctx, page, filter), nil
}

func (uc *implUseCase) Open(ctx context.Context, entity string) (listing.Session, error) {
	f, err := uc.factory(entity)
	if err != nil {
		return listing.Session{}, err
	}

	id := uuid.NewString()
	v := f.NewViewer()
	uc.repo.Add(id, v)
	uc.l.Infof(ctx, "listing.usecase.Open: session %s opened for %s", id, entity)

	return listing.Session{ID: id, View: v.Load(ctx)}, nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (listing.View, error) {
	v, err := uc.session(id)
	if err != nil {
		return listing.View{}, err
	}
	return v.View(), nil
}

func (uc *implUseCase) ChangePage(ctx context.Context, id string, page int) (listing.View, bool, error) {
	v, err := uc.session(id)
	if err != nil {
		return listing.View{}, false, err
	}
	view, changed := v.ChangePage(ctx, page)
	return view, changed, nil
}

// ChangeFilter schedules the filter change and returns the view as it is now.
func (uc *implUseCase) ChangeFilter(ctx context.Context, id string, filter string) (listing.View, error) {
	v, err := uc.session(id)
	if err != nil {
		return listing.View{}, err
	}
	if !v.Descriptor().AllowsFilter(filter) {
		return listing.View{}, listing.ErrInvalidFilter
	}
	v.ChangeFilter(ctx, filter)
	return v.View(), nil
}

func (uc *implUseCase) Retry(ctx context.Context, id string) (listing.View, error) {
	v, err := uc.session(id)
	if err != nil {
		return listing.View{}, err
	}
	return v.Retry(ctx), nil
}

func (uc *implUseCase) Watch(ctx context.Context, id string, fn func(listing.View)) (func(), error) {
	v, err := uc.session(id)
	if err != nil {
		return nil, err
	}
	return v.Watch(fn), nil
}

func (uc *implUseCase) Close(ctx context.Context, id string) error {
	if !uc.repo.Remove(id) {
		return listing.ErrSessionNotFound
	}
	uc.l.Infof(ctx, "listing.usecase.Close: session %s closed", id)
	return nil
}

func (uc *implUseCase) factory(entity string) (listing.Factory, error) {
	f, ok := uc.factories[entity]
	if !ok {
		return nil, listing.ErrUnknownEntity
	}
	return f, nil
}

func (uc *implUseCase) session(id string) (listing.Viewer, error) {
	v, ok := uc.repo.Get(id)
	if !ok {
		return nil, listing.ErrSessionNotFound
	}
	return v, nil
}
