package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"agenda-bff/internal/listing"
	"agenda-bff/internal/listing/repository/memory"
	"agenda-bff/pkg/agendasrv/mocks"
	"agenda-bff/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUseCase(t *testing.T) (listing.UseCase, *mocks.MockIAgenda) {
	t.Helper()
	ctrl := gomock.NewController(t)
	agenda := mocks.NewMockIAgenda(ctrl)
	cfg := Config{WindowSize: 5, Debounce: 10 * time.Millisecond}
	repo := memory.New(10, time.Minute, log.NewNop(), nil)
	t.Cleanup(repo.Purge)

	uc := New(repo, log.NewNop(),
		NewFactory[cad](agenda, log.NewNop(), nil, cadDesc, cfg),
		NewFactory[cad](agenda, log.NewNop(), nil, agDesc, cfg),
	)
	return uc, agenda
}

func TestUseCaseEntities(t *testing.T) {
	uc, _ := newTestUseCase(t)

	entities := uc.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, "cadastros", entities[0].Entity)
	assert.Equal(t, "agendamentos", entities[1].Entity)

	opts, err := uc.Filters(context.Background(), "agendamentos")
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	opts, err = uc.Filters(context.Background(), "cadastros")
	require.NoError(t, err)
	assert.Empty(t, opts)

	_, err = uc.Filters(context.Background(), "funcionarios")
	assert.ErrorIs(t, err, listing.ErrUnknownEntity)
}

func TestUseCaseSessionLifecycle(t *testing.T) {
	uc, agenda := newTestUseCase(t)
	ctx := context.Background()

	agenda.EXPECT().List(gomock.Any(), agDesc.Path, q(6, 0, "")).Return(page("agendamentos", 1, 6, 13), nil)
	sess, err := uc.Open(ctx, "agendamentos")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, listing.PhaseLoaded, sess.View.Phase)
	assert.Equal(t, 3, sess.View.TotalPages)

	agenda.EXPECT().List(gomock.Any(), agDesc.Path, q(6, 12, "")).Return(page("agendamentos", 13, 1, 13), nil)
	v, changed, err := uc.ChangePage(ctx, sess.ID, 3)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, v.CurrentPage)
	assert.Equal(t, 13, v.From)
	assert.Equal(t, 13, v.To)

	v, changed, err = uc.ChangePage(ctx, sess.ID, 4)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 3, v.CurrentPage)

	_, err = uc.ChangeFilter(ctx, sess.ID, "amanha")
	assert.ErrorIs(t, err, listing.ErrInvalidFilter)

	var (
		mu    sync.Mutex
		views []listing.View
	)
	unwatch, err := uc.Watch(ctx, sess.ID, func(v listing.View) {
		mu.Lock()
		defer mu.Unlock()
		views = append(views, v)
	})
	require.NoError(t, err)
	defer unwatch()

	agenda.EXPECT().List(gomock.Any(), agDesc.Path, q(6, 0, "hoje")).Return(page("agendamentos", 1, 2, 2), nil)
	_, err = uc.ChangeFilter(ctx, sess.ID, "hoje")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(views) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, listing.PhaseLoadingPartial, views[0].Phase)
	assert.Equal(t, listing.PhaseLoaded, views[1].Phase)
	assert.Equal(t, "hoje", views[1].Filter)
	assert.Equal(t, 1, views[1].CurrentPage)
	mu.Unlock()

	require.NoError(t, uc.Close(ctx, sess.ID))
	_, err = uc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, listing.ErrSessionNotFound)
	assert.ErrorIs(t, uc.Close(ctx, sess.ID), listing.ErrSessionNotFound)
}

func TestUseCaseUnknownSession(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Get(ctx, "nope")
	assert.ErrorIs(t, err, listing.ErrSessionNotFound)
	_, _, err = uc.ChangePage(ctx, "nope", 1)
	assert.ErrorIs(t, err, listing.ErrSessionNotFound)
	_, err = uc.ChangeFilter(ctx, "nope", "x")
	assert.ErrorIs(t, err, listing.ErrSessionNotFound)
	_, err = uc.Retry(ctx, "nope")
	assert.ErrorIs(t, err, listing.ErrSessionNotFound)
	_, err = uc.Watch(ctx, "nope", func(listing.View) {})
	assert.ErrorIs(t, err, listing.ErrSessionNotFound)

	_, err = uc.Open(ctx, "funcionarios")
	assert.ErrorIs(t, err, listing.ErrUnknownEntity)
}

func TestUseCaseBrowse(t *testing.T) {
	uc, agenda := newTestUseCase(t)
	ctx := context.Background()

	agenda.EXPECT().List(gomock.Any(), cadDesc.Path, q(6, 6, "ana")).Return(page("cadastros", 7, 2, 8), nil)
	v, err := uc.Browse(ctx, "cadastros", 2, "ana")
	require.NoError(t, err)
	assert.Equal(t, 2, v.CurrentPage)
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, "ana", v.Filter)

	agenda.EXPECT().List(gomock.Any(), agDesc.Path, q(6, 0, "")).Return([]byte(`[]`), nil)
	v, err = uc.Browse(ctx, "agendamentos", 1, "")
	require.NoError(t, err)
	assert.Equal(t, "todos", v.Filter)
	assert.Equal(t, 1, v.TotalPages)

	_, err = uc.Browse(ctx, "agendamentos", 0, "")
	assert.ErrorIs(t, err, listing.ErrInvalidPage)
	_, err = uc.Browse(ctx, "agendamentos", 1, "amanha")
	assert.ErrorIs(t, err, listing.ErrInvalidFilter)
	_, err = uc.Browse(ctx, "x", 1, "")
	assert.ErrorIs(t, err, listing.ErrUnknownEntity)
}
