package model

// Tipo de sessão values sent by the backend.
const (
	TipoReuniao     = "reuniao"
	TipoConsulta    = "consulta"
	TipoEvento      = "evento"
	TipoCompromisso = "compromisso"
	TipoOutros      = "outros"
)

// Agendamento is an appointment.
type Agendamento struct {
	ID               ID             `json:"id"`
	Titulo           string         `json:"titulo"`
	DataHora         string         `json:"data_hora"`
	TipoSessao       string         `json:"tipo_sessao"`
	Status           *string        `json:"status,omitempty"`
	Local            *string        `json:"local,omitempty"`
	Participantes    []Participante `json:"participantes,omitempty"`
	Observacoes      *string        `json:"observacoes,omitempty"`
	DuracaoEmMinutos *int           `json:"duracao_em_minutos,omitempty"`
	Concluido        *bool          `json:"concluido,omitempty"`
	Valor            *float64       `json:"valor,omitempty"`
}

// Participante is someone attending an Agendamento.
type Participante struct {
	Nome  string `json:"nome"`
	Email string `json:"email,omitempty"`
}

// Key returns the list key.
func (a Agendamento) Key() string { return a.ID.String() }
