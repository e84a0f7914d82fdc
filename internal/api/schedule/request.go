package schedule

import (
	"fmt"

	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
)

// Os corpos abaixo usam *TimeOfDay para distinguir "campo ausente" de 00:00.

type intervalBody struct {
	Days  []domain.DayOfWeek `json:"days"`
	Entry *domain.TimeOfDay  `json:"entry"`
	Exit  *domain.TimeOfDay  `json:"exit"`
}

func (b intervalBody) toRequest() (domain.IntervalRequest, error) {
	if b.Entry == nil || b.Exit == nil {
		return domain.IntervalRequest{}, apperror.NewValidationError("Informe os horários de entrada e saída.")
	}
	return domain.IntervalRequest{Days: b.Days, Entry: *b.Entry, Exit: *b.Exit}, nil
}

type sourceBody struct {
	DayOfWeek domain.DayOfWeek  `json:"day_of_week"`
	Entry     *domain.TimeOfDay `json:"entry"`
	Exit      *domain.TimeOfDay `json:"exit"`
}

type replicateBody struct {
	Sources    []sourceBody       `json:"sources"`
	TargetDays []domain.DayOfWeek `json:"target_days"`
}

func (b replicateBody) toRequest() (domain.ReplicateRequest, error) {
	req := domain.ReplicateRequest{
		Sources:    make([]domain.SourceInterval, 0, len(b.Sources)),
		TargetDays: b.TargetDays,
	}
	for i, src := range b.Sources {
		if src.Entry == nil || src.Exit == nil {
			return domain.ReplicateRequest{}, apperror.NewValidationError(
				fmt.Sprintf("O intervalo de origem %d está sem horário de entrada ou saída.", i+1),
			)
		}
		req.Sources = append(req.Sources, domain.SourceInterval{
			DayOfWeek: src.DayOfWeek,
			Entry:     *src.Entry,
			Exit:      *src.Exit,
		})
	}
	return req, nil
}
