package usecase

import (
	"context"
	"errors"
	"fmt"

	"agenda-bff/internal/dashboard"
	"agenda-bff/internal/dashboard/repository"
)

func (uc *implUseCase) Summary(ctx context.Context) (dashboard.Summary, error) {
	// 1. Cache
	if uc.cache != nil {
		s, err := uc.cache.GetSummary(ctx)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "dashboard.usecase.Summary: cache read failed: %v", err)
		}
	}

	// 2. Totals are required
	sum, err := uc.agenda.GetDashboardSummary(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Summary: GetDashboardSummary failed: %v", err)
		return dashboard.Summary{}, fmt.Errorf("%w: %w", dashboard.ErrUpstream, err)
	}
	out := dashboard.Summary{
		Cadastros:    sum.Cadastros,
		Agendamentos: sum.Agendamentos,
		Funcionarios: sum.Funcionarios,
	}

	// 3. Activity is optional
	act, err := uc.agenda.GetDashboardActivity(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.Summary: GetDashboardActivity failed, returning totals only: %v", err)
		return out, nil
	}
	out.Hoje = act.Hoje
	out.Semana = act.Semana
	out.AtivosMes = act.AtivosMes
	out.ActivityAvailable = true

	// 4. Only complete summaries are cached
	if uc.cache != nil {
		if err := uc.cache.SaveSummary(ctx, out); err != nil {
			uc.l.Warnf(ctx, "dashboard.usecase.Summary: cache write failed: %v", err)
		}
	}
	return out, nil
}
