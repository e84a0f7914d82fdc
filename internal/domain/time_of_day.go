package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay representa um horário do dia com resolução de minutos (minutos desde 00:00).
type TimeOfDay int

const (
	// MinutesPerDay é o limite exclusivo de um TimeOfDay válido.
	MinutesPerDay = 24 * 60
)

// NewTimeOfDay monta um horário a partir de hora e minuto.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("horário fora do intervalo: %02d:%02d", hour, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay é a variante de ParseTimeOfDay que entra em pânico; uso restrito a constantes e testes.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay aceita "HH:MM" e "HH:MM:SS" (segundos precisam ser 00).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("horário inválido %q: use o formato HH:MM", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("horário inválido %q: use o formato HH:MM", s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("horário inválido %q: %w", s, err)
		}
		nums[i] = n
	}

	if len(nums) == 3 && nums[2] != 0 {
		return 0, fmt.Errorf("horário inválido %q: resolução máxima é de minutos", s)
	}
	return NewTimeOfDay(nums[0], nums[1])
}

// IsValid informa se o valor está entre 00:00 e 23:59.
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("horário deve ser texto no formato HH:MM: %w", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
