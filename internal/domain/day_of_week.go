package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DayOfWeek é a identidade canônica de um dia da semana para permissões.
// O valor armazenado e comparado é sempre o nome em inglês, minúsculo.
// Rótulos localizados ficam na camada de apresentação.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// AllDays lista os dias na ordem canônica (domingo primeiro).
var AllDays = []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// dayAliases mapeia as grafias aceitas na entrada para o valor canônico.
// Inclui as formas em português gravadas pelo backend legado.
var dayAliases = map[string]DayOfWeek{
	"sunday":        Sunday,
	"monday":        Monday,
	"tuesday":       Tuesday,
	"wednesday":     Wednesday,
	"thursday":      Thursday,
	"friday":        Friday,
	"saturday":      Saturday,
	"domingo":       Sunday,
	"segunda":       Monday,
	"segunda-feira": Monday,
	"terça":         Tuesday,
	"terca":         Tuesday,
	"terça-feira":   Tuesday,
	"terca-feira":   Tuesday,
	"quarta":        Wednesday,
	"quarta-feira":  Wednesday,
	"quinta":        Thursday,
	"quinta-feira":  Thursday,
	"sexta":         Friday,
	"sexta-feira":   Friday,
	"sábado":        Saturday,
	"sabado":        Saturday,
}

// ParseDayOfWeek converte um texto (inglês ou português, sem diferenciar maiúsculas) no dia canônico.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	day, ok := dayAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("dia da semana desconhecido: %q", s)
	}
	return day, nil
}

// IsValid informa se o valor é um dos sete dias canônicos.
func (d DayOfWeek) IsValid() bool {
	return d.Index() >= 0
}

// Index retorna a posição na ordem canônica (0 = domingo) ou -1 se inválido.
func (d DayOfWeek) Index() int {
	for i, day := range AllDays {
		if day == d {
			return i
		}
	}
	return -1
}

func (d DayOfWeek) String() string { return string(d) }

// UnmarshalJSON aceita qualquer grafia reconhecida por ParseDayOfWeek.
func (d *DayOfWeek) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dia da semana deve ser texto: %w", err)
	}
	day, err := ParseDayOfWeek(s)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// NormalizeDays remove duplicados e ordena canonicamente. Dias inválidos são preservados
// no fim para que a validação possa reportá-los.
func NormalizeDays(days []DayOfWeek) []DayOfWeek {
	seen := make(map[DayOfWeek]struct{}, len(days))
	out := make([]DayOfWeek, 0, len(days))
	for _, d := range days {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Index(), out[j].Index()
		if a < 0 {
			return false
		}
		if b < 0 {
			return true
		}
		return a < b
	})
	return out
}
