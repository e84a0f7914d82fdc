package domain

import "sort"

// ScheduleWindow é um intervalo entrada/saída dentro de uma Permission.
// Invariante: Entry < Exit (mesmo dia, sem virada de meia-noite).
type ScheduleWindow struct {
	ID           string    `json:"id"`
	PermissionID string    `json:"permission_id"`
	Entry        TimeOfDay `json:"entry"`
	Exit         TimeOfDay `json:"exit"`
}

// ScheduleEntry é uma linha da agenda resolvida de uma chave.
type ScheduleEntry struct {
	DayOfWeek    DayOfWeek `json:"day_of_week"`
	PermissionID string    `json:"permission_id"`
	ScheduleID   string    `json:"schedule_id"`
	Entry        TimeOfDay `json:"entry"`
	Exit         TimeOfDay `json:"exit"`
}

// Schedule é a agenda semanal resolvida de uma chave.
type Schedule struct {
	KeyID   string          `json:"key_id"`
	Entries []ScheduleEntry `json:"entries"`
}

// FlattenSchedule achata permissões e janelas em entradas ordenadas por
// (dia, entrada, saída, id), tornando o resultado determinístico.
func FlattenSchedule(keyID string, perms []Permission) Schedule {
	entries := make([]ScheduleEntry, 0)
	for _, p := range perms {
		for _, w := range p.Schedules {
			entries = append(entries, ScheduleEntry{
				DayOfWeek:    p.DayOfWeek,
				PermissionID: p.ID,
				ScheduleID:   w.ID,
				Entry:        w.Entry,
				Exit:         w.Exit,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek.Index() < b.DayOfWeek.Index()
		}
		if a.Entry != b.Entry {
			return a.Entry < b.Entry
		}
		if a.Exit != b.Exit {
			return a.Exit < b.Exit
		}
		return a.ScheduleID < b.ScheduleID
	})

	return Schedule{KeyID: keyID, Entries: entries}
}

// IntervalRequest é a entrada de AddInterval.
type IntervalRequest struct {
	Days  []DayOfWeek `json:"days"`
	Entry TimeOfDay   `json:"entry"`
	Exit  TimeOfDay   `json:"exit"`
}

// SourceInterval é um intervalo já configurado que será copiado para outros dias.
type SourceInterval struct {
	DayOfWeek DayOfWeek `json:"day_of_week"`
	Entry     TimeOfDay `json:"entry"`
	Exit      TimeOfDay `json:"exit"`
}

// ReplicateRequest é a entrada de ReplicateIntervals.
type ReplicateRequest struct {
	Sources    []SourceInterval `json:"sources"`
	TargetDays []DayOfWeek      `json:"target_days"`
}

// OutcomeStatus é o resultado de uma escrita individual.
type OutcomeStatus string

const (
	OutcomeCreated             OutcomeStatus = "created"
	OutcomeSkippedNoPermission OutcomeStatus = "skipped_no_permission"
	OutcomeFailed              OutcomeStatus = "failed"
)

// Outcome descreve o destino de uma escrita: ScheduleID em Created, Reason em Failed.
type Outcome struct {
	Status     OutcomeStatus `json:"status"`
	ScheduleID string        `json:"schedule_id,omitempty"`
	Reason     string        `json:"reason,omitempty"`
}

func Created(scheduleID string) Outcome {
	return Outcome{Status: OutcomeCreated, ScheduleID: scheduleID}
}

func SkippedNoPermission() Outcome {
	return Outcome{Status: OutcomeSkippedNoPermission}
}

func Failed(reason string) Outcome {
	return Outcome{Status: OutcomeFailed, Reason: reason}
}

// DayOutcome é o resultado de AddInterval para um dia.
type DayOutcome struct {
	DayOfWeek DayOfWeek `json:"day_of_week"`
	Outcome
}

// PairOutcome é o resultado de ReplicateIntervals para um par (intervalo de origem, dia de destino).
type PairOutcome struct {
	Source    SourceInterval `json:"source"`
	TargetDay DayOfWeek      `json:"target_day"`
	Outcome
}

// AllCreated informa se todas as escritas de um relatório foram criadas.
func AllCreated(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Status != OutcomeCreated {
			return false
		}
	}
	return len(outcomes) > 0
}
