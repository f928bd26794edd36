package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{in: `{"id":42}`, want: "42"},
		{in: `{"id":"abc"}`, want: "abc"},
		{in: `{"id":null}`, want: ""},
		{in: `{}`, want: ""},
	}
	for _, tt := range tests {
		var c Cadastro
		require.NoError(t, json.Unmarshal([]byte(tt.in), &c), tt.in)
		assert.Equal(t, tt.want, c.ID, tt.in)
	}

	var c Cadastro
	assert.Error(t, json.Unmarshal([]byte(`{"id":true}`), &c))
}

func TestAgendamentoOptionalFields(t *testing.T) {
	var a Agendamento
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 7,
		"titulo": "Reunião",
		"data_hora": "2024-05-01T10:00:00",
		"tipo_sessao": "reuniao",
		"participantes": [{"nome": "Ana"}],
		"duracao_em_minutos": 30
	}`), &a))

	assert.Equal(t, "7", a.Key())
	assert.Equal(t, TipoReuniao, a.TipoSessao)
	require.NotNil(t, a.DuracaoEmMinutos)
	assert.Equal(t, 30, *a.DuracaoEmMinutos)
	assert.Nil(t, a.Local)
	assert.Nil(t, a.Concluido)
	assert.Equal(t, []Participante{{Nome: "Ana"}}, a.Participantes)
}
