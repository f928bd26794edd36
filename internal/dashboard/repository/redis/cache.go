package redis

import (
	"context"
	"encoding/json"
	"errors"

	"agenda-bff/internal/dashboard"
	"agenda-bff/internal/dashboard/repository"
	pkgRedis "agenda-bff/pkg/redis"
)

type summaryEntry struct {
	Cadastros    int  `json:"cadastros"`
	Agendamentos int  `json:"agendamentos"`
	Funcionarios *int `json:"funcionarios,omitempty"`
	Hoje         int  `json:"hoje"`
	Semana       int  `json:"semana"`
	AtivosMes    int  `json:"ativos_mes"`
	Activity     bool `json:"activity"`
}

func (r *implCacheRepository) GetSummary(ctx context.Context) (dashboard.Summary, error) {
	data, err := r.redis.Get(ctx, summaryKey)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNil) {
			return dashboard.Summary{}, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "dashboard.repository.redis.GetSummary: Failed to read cache: %v", err)
		return dashboard.Summary{}, err
	}

	var e summaryEntry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.GetSummary: Failed to unmarshal summary: %v", err)
		return dashboard.Summary{}, err
	}
	return dashboard.Summary{
		Cadastros:         e.Cadastros,
		Agendamentos:      e.Agendamentos,
		Funcionarios:      e.Funcionarios,
		Hoje:              e.Hoje,
		Semana:            e.Semana,
		AtivosMes:         e.AtivosMes,
		ActivityAvailable: e.Activity,
	}, nil
}

func (r *implCacheRepository) SaveSummary(ctx context.Context, s dashboard.Summary) error {
	data, err := json.Marshal(summaryEntry{
		Cadastros:    s.Cadastros,
		Agendamentos: s.Agendamentos,
		Funcionarios: s.Funcionarios,
		Hoje:         s.Hoje,
		Semana:       s.Semana,
		AtivosMes:    s.AtivosMes,
		Activity:     s.ActivityAvailable,
	})
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, summaryKey, data, r.ttl); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.SaveSummary: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
