package usecase

import (
	"context"
	"sync"
	"time"

	"agenda-bff/internal/listing"
	"agenda-bff/internal/listing/repository"
	"agenda-bff/pkg/agendasrv"
	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"
	"agenda-bff/pkg/paginator"

	"github.com/bep/debounce"
)

// Config - controller settings shared by every entity
type Config struct {
	WindowSize int
	Debounce   time.Duration
}

// DefaultConfig - 5 page window, 500ms quiet period before a filter change fires
func DefaultConfig() Config {
	return Config{
		WindowSize: paginator.DefaultWindowSize,
		Debounce:   500 * time.Millisecond,
	}
}

type subscriber[T any] struct {
	id uint64
	fn func(listing.State[T])
}

type controller[T any] struct {
	desc    listing.Descriptor
	agenda  agendasrv.IAgenda
	l       log.Logger
	metrics metrics.IMetrics
	cfg     Config

	// life is cancelled by Close and bounds every fetch.
	life      context.Context
	stop      context.CancelFunc
	debounced func(func())

	mu          sync.Mutex
	state       listing.State[T]
	seq         uint64
	cancelFetch context.CancelFunc
	subs        []subscriber[T]
	nextSub     uint64
	closed      bool

	// notifyMu keeps subscriber deliveries in commit order.
	notifyMu sync.Mutex
}

// NewController - Factory for a typed controller over desc
func NewController[T any](
	agenda agendasrv.IAgenda,
	l log.Logger,
	m metrics.IMetrics,
	desc listing.Descriptor,
	cfg Config,
) listing.Controller[T] {
	if desc.Limit < 1 {
		desc.Limit = paginator.DefaultLimit
	}
	if cfg.WindowSize < 1 {
		cfg.WindowSize = paginator.DefaultWindowSize
	}
	if m == nil {
		m = metrics.NewNop()
	}

	life, stop := context.WithCancel(context.Background())
	return &controller[T]{
		desc:      desc,
		agenda:    agenda,
		l:         l,
		metrics:   m,
		cfg:       cfg,
		life:      life,
		stop:      stop,
		debounced: debounce.New(cfg.Debounce),
		state: listing.State[T]{
			CurrentPage: paginator.DefaultPage,
			Filter:      desc.DefaultFilter,
			Items:       []T{},
			Limit:       desc.Limit,
			Phase:       listing.PhaseIdle,
		},
	}
}

type factory[T any] struct {
	desc    listing.Descriptor
	agenda  agendasrv.IAgenda
	l       log.Logger
	metrics metrics.IMetrics
	cfg     Config
}

// NewFactory - creates controllers of T for one entity
func NewFactory[T any](
	agenda agendasrv.IAgenda,
	l log.Logger,
	m metrics.IMetrics,
	desc listing.Descriptor,
	cfg Config,
) listing.Factory {
	return factory[T]{desc: desc, agenda: agenda, l: l, metrics: m, cfg: cfg}
}

func (f factory[T]) Descriptor() listing.Descriptor { return f.desc }

func (f factory[T]) NewViewer() listing.Viewer {
	return NewController[T](f.agenda, f.l, f.metrics, f.desc, f.cfg)
}

// implUseCase - sessions of long lived controllers plus one-shot browsing
type implUseCase struct {
	factories map[string]listing.Factory
	order     []string
	repo      repository.SessionRepository
	l         log.Logger
}

// New - Factory
func New(repo repository.SessionRepository, l log.Logger, factories ...listing.Factory) listing.UseCase {
	uc := &implUseCase{
		factories: make(map[string]listing.Factory, len(factories)),
		repo:      repo,
		l:         l,
	}
	for _, f := range factories {
		entity := f.Descriptor().Entity
		if _, dup := uc.factories[entity]; !dup {
			uc.order = append(uc.order, entity)
		}
		uc.factories[entity] = f
	}
	return uc
}
