package http

import "agenda-bff/internal/dashboard"

type activityResp struct {
	Hoje      int `json:"hoje"`
	Semana    int `json:"semana"`
	AtivosMes int `json:"ativos_mes"`
}

type summaryResp struct {
	Cadastros    int           `json:"cadastros"`
	Agendamentos int           `json:"agendamentos"`
	Funcionarios *int          `json:"funcionarios,omitempty"`
	Atividade    *activityResp `json:"atividade"`
}

func (h *handler) newSummaryResp(s dashboard.Summary) summaryResp {
	resp := summaryResp{
		Cadastros:    s.Cadastros,
		Agendamentos: s.Agendamentos,
		Funcionarios: s.Funcionarios,
	}
	if s.ActivityAvailable {
		resp.Atividade = &activityResp{
			Hoje:      s.Hoje,
			Semana:    s.Semana,
			AtivosMes: s.AtivosMes,
		}
	}
	return resp
}
