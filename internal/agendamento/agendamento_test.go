package agendamento

import (
	"context"
	"testing"
	"time"

	"agenda-bff/internal/listing"
	"agenda-bff/internal/listing/usecase"
	"agenda-bff/pkg/agendasrv"
	"agenda-bff/pkg/agendasrv/mocks"
	"agenda-bff/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDescriptor(t *testing.T) {
	d := NewDescriptor(6)

	assert.Equal(t, agendasrv.PathAgendamentos, d.Path)
	assert.Equal(t, FilterTodos, d.DefaultFilter)
	assert.False(t, d.FreeText())
	for _, tok := range []string{"todos", "hoje", "semana", "mes", "reuniao", "consulta", "evento", "compromisso", "outros", "pendente", "concluido"} {
		assert.True(t, d.AllowsFilter(tok), tok)
	}
	assert.False(t, d.AllowsFilter("Hoje"))

	assert.Equal(t, "Esta Semana", d.Filters[2].Label)
	d.Filters[0].Label = "changed"
	assert.Equal(t, "Todos", Filters[0].Label)
}

func TestControllerDecodesAgendamentos(t *testing.T) {
	agenda := mocks.NewMockIAgenda(gomock.NewController(t))
	agenda.EXPECT().List(gomock.Any(), agendasrv.PathAgendamentos, agendasrv.ListQuery{Limit: 6}).
		Return([]byte(`{"agendamentos":[{"id":1,"titulo":"Consulta","data_hora":"2024-05-01T10:00:00","tipo_sessao":"consulta","concluido":false}],"total":1}`), nil)

	c := NewController(agenda, log.NewNop(), nil, 6, usecase.Config{WindowSize: 5, Debounce: time.Millisecond})
	defer c.Close()

	c.Load(context.Background())
	s := c.State()
	require.Len(t, s.Items, 1)
	assert.Equal(t, "Consulta", s.Items[0].Titulo)
	require.NotNil(t, s.Items[0].Concluido)
	assert.False(t, *s.Items[0].Concluido)
	assert.Equal(t, listing.PhaseLoaded, s.Phase)
}
