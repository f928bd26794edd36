package dashboard

// Summary aggregates the dashboard counters.
type Summary struct {
	Cadastros    int
	Agendamentos int
	Funcionarios *int

	// Activity counters are zero when ActivityAvailable is false.
	Hoje              int
	Semana            int
	AtivosMes         int
	ActivityAvailable bool
}
