package usecase

import (
	"agenda-bff/internal/dashboard"
	"agenda-bff/internal/dashboard/repository"
	"agenda-bff/pkg/agendasrv"
	"agenda-bff/pkg/log"
)

type implUseCase struct {
	agenda agendasrv.IAgenda
	cache  repository.CacheRepository
	l      log.Logger
}

// New - Factory. cache may be nil, in which case every call goes upstream.
func New(agenda agendasrv.IAgenda, cache repository.CacheRepository, l log.Logger) dashboard.UseCase {
	return &implUseCase{
		agenda: agenda,
		cache:  cache,
		l:      l,
	}
}
