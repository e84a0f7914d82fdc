package day

import (
	"net/http"

	"goacesso/internal/api/respond"
	"goacesso/internal/domain"
	"goacesso/internal/pkg/logger"
)

// Label é a apresentação pt-BR de um dia da semana.
type Label struct {
	DayOfWeek    domain.DayOfWeek `json:"day_of_week" example:"monday"`
	Label        string           `json:"label" example:"Segunda-feira"`
	Abbreviation string           `json:"abbreviation" example:"Seg"`
}

var labels = map[domain.DayOfWeek]Label{
	domain.Sunday:    {domain.Sunday, "Domingo", "Dom"},
	domain.Monday:    {domain.Monday, "Segunda-feira", "Seg"},
	domain.Tuesday:   {domain.Tuesday, "Terça-feira", "Ter"},
	domain.Wednesday: {domain.Wednesday, "Quarta-feira", "Qua"},
	domain.Thursday:  {domain.Thursday, "Quinta-feira", "Qui"},
	domain.Friday:    {domain.Friday, "Sexta-feira", "Sex"},
	domain.Saturday:  {domain.Saturday, "Sábado", "Sáb"},
}

// LabelOf devolve o rótulo do dia. Dias desconhecidos voltam com o próprio valor.
func LabelOf(d domain.DayOfWeek) string {
	if l, ok := labels[d]; ok {
		return l.Label
	}
	return string(d)
}

// Catalogue lista os sete dias na ordem canônica.
func Catalogue() []Label {
	out := make([]Label, 0, len(domain.AllDays))
	for _, d := range domain.AllDays {
		out = append(out, labels[d])
	}
	return out
}

// Handler expõe o catálogo de dias usado pelos clientes para montar seletores.
type Handler struct {
	Logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{Logger: log}
}

// ListDaysHandler lida com a requisição GET /v1/days.
// @Summary Lista os dias da semana
// @Description Retorna os sete dias na ordem canônica com rótulo e abreviação em pt-BR.
// @Tags days
// @Produce json
// @Success 200 {array} day.Label "Dias da semana"
// @Security ApiKeyAuth
// @Router /days [get]
func (h *Handler) ListDaysHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.Logger, http.StatusOK, Catalogue())
}
