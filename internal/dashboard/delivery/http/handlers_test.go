package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-bff/config"
	"agenda-bff/internal/dashboard"
	"agenda-bff/internal/middleware"
	"agenda-bff/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUseCase struct {
	s   dashboard.Summary
	err error
}

func (u stubUseCase) Summary(context.Context) (dashboard.Summary, error) {
	return u.s, u.err
}

func TestSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		uc     stubUseCase
		status int
		body   string
	}{
		{
			name:   "with activity",
			uc:     stubUseCase{s: dashboard.Summary{Cadastros: 4, Agendamentos: 2, Hoje: 1, Semana: 2, AtivosMes: 2, ActivityAvailable: true}},
			status: http.StatusOK,
			body:   `{"cadastros":4,"agendamentos":2,"atividade":{"hoje":1,"semana":2,"ativos_mes":2}}`,
		},
		{
			name:   "totals only",
			uc:     stubUseCase{s: dashboard.Summary{Cadastros: 4, Agendamentos: 2}},
			status: http.StatusOK,
			body:   `{"cadastros":4,"agendamentos":2,"atividade":null}`,
		},
		{
			name:   "upstream down",
			uc:     stubUseCase{err: errors.Join(dashboard.ErrUpstream, errors.New("dial tcp"))},
			status: http.StatusBadGateway,
		},
		{
			name:   "unexpected error",
			uc:     stubUseCase{err: errors.New("boom")},
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			New(log.NewNop(), tt.uc).RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), &config.Config{}))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
			require.Equal(t, tt.status, w.Code)

			if tt.body != "" {
				var env struct {
					Data json.RawMessage `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
				assert.JSONEq(t, tt.body, string(env.Data))
			}
		})
	}
}
