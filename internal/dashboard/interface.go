package dashboard

import "context"

type UseCase interface {
	// Summary returns record totals and, when the backend provides them, agendamento activity counts.
	Summary(ctx context.Context) (Summary, error)
}
