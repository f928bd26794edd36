package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-bff/config"
	"agenda-bff/pkg/agendasrv"
	"agenda-bff/pkg/agendasrv/mocks"
	"agenda-bff/pkg/log"
	"agenda-bff/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pingRedis struct{ err error }

func (p pingRedis) Set(context.Context, string, any, time.Duration) error { return p.err }
func (p pingRedis) Get(context.Context, string) (string, error)           { return "", p.err }
func (p pingRedis) Delete(context.Context, ...string) error               { return p.err }
func (p pingRedis) Ping(context.Context) error                            { return p.err }
func (p pingRedis) Close() error                                          { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Listing: config.ListingConfig{
			PageSize:    6,
			WindowSize:  5,
			DebounceMS:  10,
			SessionTTL:  60,
			MaxSessions: 10,
		},
		Redis: config.RedisConfig{SummaryTTL: 30},
	}
}

func newTestServer(t *testing.T, cfg Config) (*HTTPServer, *mocks.MockIAgenda) {
	t.Helper()
	agenda := mocks.NewMockIAgenda(gomock.NewController(t))

	cfg.Logger = log.NewNop()
	cfg.Mode = "test"
	cfg.Port = 8080
	cfg.Config = testConfig()
	cfg.Agenda = agenda

	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	t.Cleanup(srv.sessions.Purge)
	return srv, agenda
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	agenda := mocks.NewMockIAgenda(gomock.NewController(t))

	tests := []struct {
		name string
		cfg  Config
		err  string
	}{
		{name: "missing mode", cfg: Config{Port: 1, Config: testConfig(), Agenda: agenda}, err: "mode is required"},
		{name: "missing port", cfg: Config{Mode: "test", Config: testConfig(), Agenda: agenda}, err: "port is required"},
		{name: "missing config", cfg: Config{Mode: "test", Port: 1, Agenda: agenda}, err: "config is required"},
		{name: "missing agenda", cfg: Config{Mode: "test", Port: 1, Config: testConfig()}, err: "agenda client is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.cfg)
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t, Config{})

	assert.Equal(t, http.StatusOK, get(srv, "/health").Code)
	assert.Equal(t, http.StatusOK, get(srv, "/live").Code)

	w := get(srv, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)

	w = get(srv, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestReadyWithRedis(t *testing.T) {
	srv, _ := newTestServer(t, Config{Redis: pingRedis{}})
	w := get(srv, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"connected"`)

	srv, _ = newTestServer(t, Config{Redis: pingRedis{err: errors.New("dial tcp: refused")}})
	w = get(srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "refused")
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	srv, agenda := newTestServer(t, Config{Registry: reg, Metrics: metrics.New(reg)})

	agenda.EXPECT().List(gomock.Any(), agendasrv.PathCadastros, gomock.Any()).Return([]byte(`{"cadastros":[],"total":0}`), nil)
	require.Equal(t, http.StatusOK, get(srv, "/api/v1/lists/cadastros").Code)

	w := get(srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `agenda_bff_list_fetches_total{entity="cadastros",outcome="ok"} 1`)
}

func TestDomainRoutes(t *testing.T) {
	srv, agenda := newTestServer(t, Config{})

	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/lists").Code)
	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/lists/agendamentos/filters").Code)
	assert.Equal(t, http.StatusNotFound, get(srv, "/api/v1/sessions/missing").Code)

	agenda.EXPECT().GetDashboardSummary(gomock.Any()).Return(&agendasrv.DashboardSummary{Cadastros: 1}, nil)
	agenda.EXPECT().GetDashboardActivity(gomock.Any()).Return(&agendasrv.DashboardActivity{}, nil)
	assert.Equal(t, http.StatusOK, get(srv, "/api/v1/dashboard").Code)
}
