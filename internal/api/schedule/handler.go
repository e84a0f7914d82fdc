package schedule

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"goacesso/internal/api/day"
	"goacesso/internal/api/respond"
	"goacesso/internal/domain"
	"goacesso/internal/pkg/logger"
)

// ScheduleManager define o contrato que o Handler espera da camada de Serviço.
type ScheduleManager interface {
	LoadSchedule(ctx context.Context, keyID string) (domain.Schedule, error)
	AddInterval(ctx context.Context, keyID string, req domain.IntervalRequest) ([]domain.DayOutcome, error)
	ReplicateIntervals(ctx context.Context, keyID string, req domain.ReplicateRequest) ([]domain.PairOutcome, error)
	RemoveInterval(ctx context.Context, scheduleID string) error
}

// Handler agrupa os handlers da agenda de acesso.
type Handler struct {
	Service ScheduleManager
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ScheduleManager, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// EntryResponse é uma linha da agenda com o rótulo do dia.
type EntryResponse struct {
	DayOfWeek    domain.DayOfWeek `json:"day_of_week" example:"monday"`
	DayLabel     string           `json:"day_label" example:"Segunda-feira"`
	PermissionID string           `json:"permission_id"`
	ScheduleID   string           `json:"schedule_id"`
	Entry        domain.TimeOfDay `json:"entry" swaggertype:"string" example:"08:00"`
	Exit         domain.TimeOfDay `json:"exit" swaggertype:"string" example:"12:00"`
}

// ScheduleResponse é a agenda semanal de uma chave.
type ScheduleResponse struct {
	KeyID   string          `json:"key_id"`
	Entries []EntryResponse `json:"entries"`
}

// DayOutcomeResponse é o resultado de AddInterval para um dia.
type DayOutcomeResponse struct {
	DayOfWeek  domain.DayOfWeek     `json:"day_of_week" example:"tuesday"`
	DayLabel   string               `json:"day_label" example:"Terça-feira"`
	Status     domain.OutcomeStatus `json:"status" example:"created"`
	ScheduleID string               `json:"schedule_id,omitempty"`
	Reason     string               `json:"reason,omitempty"`
}

// SourceResponse descreve o intervalo de origem de uma replicação.
type SourceResponse struct {
	DayOfWeek domain.DayOfWeek `json:"day_of_week" example:"monday"`
	DayLabel  string           `json:"day_label" example:"Segunda-feira"`
	Entry     domain.TimeOfDay `json:"entry" swaggertype:"string" example:"08:00"`
	Exit      domain.TimeOfDay `json:"exit" swaggertype:"string" example:"12:00"`
}

// PairOutcomeResponse é o resultado de ReplicateIntervals para um par (origem, destino).
type PairOutcomeResponse struct {
	Source      SourceResponse       `json:"source"`
	TargetDay   domain.DayOfWeek     `json:"target_day" example:"friday"`
	TargetLabel string               `json:"target_label" example:"Sexta-feira"`
	Status      domain.OutcomeStatus `json:"status" example:"skipped_no_permission"`
	ScheduleID  string               `json:"schedule_id,omitempty"`
	Reason      string               `json:"reason,omitempty"`
}

// AddIntervalResponse é o relatório por dia de AddInterval.
type AddIntervalResponse struct {
	KeyID      string               `json:"key_id"`
	AllCreated bool                 `json:"all_created"`
	Outcomes   []DayOutcomeResponse `json:"outcomes"`
}

// ReplicateResponse é o relatório por par de ReplicateIntervals.
type ReplicateResponse struct {
	KeyID      string                `json:"key_id"`
	AllCreated bool                  `json:"all_created"`
	Outcomes   []PairOutcomeResponse `json:"outcomes"`
}

// GetScheduleHandler lida com a requisição GET /v1/keys/{id}/schedule.
// @Summary Obtém a agenda de uma chave
// @Description Retorna as janelas de acesso da chave ordenadas por dia e horário de entrada.
// @Tags schedules
// @Produce json
// @Param id path string true "ID da Chave"
// @Success 200 {object} schedule.ScheduleResponse "Agenda da chave"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Chave não encontrada"
// @Failure 503 {object} domain.ErrorResponse "Falha de dependência"
// @Security ApiKeyAuth
// @Router /keys/{id}/schedule [get]
func (h *Handler) GetScheduleHandler(w http.ResponseWriter, r *http.Request) {
	keyID := chi.URLParam(r, "id")

	sched, err := h.Service.LoadSchedule(r.Context(), keyID)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp := ScheduleResponse{KeyID: sched.KeyID, Entries: make([]EntryResponse, 0, len(sched.Entries))}
	for _, e := range sched.Entries {
		resp.Entries = append(resp.Entries, EntryResponse{
			DayOfWeek:    e.DayOfWeek,
			DayLabel:     day.LabelOf(e.DayOfWeek),
			PermissionID: e.PermissionID,
			ScheduleID:   e.ScheduleID,
			Entry:        e.Entry,
			Exit:         e.Exit,
		})
	}
	respond.JSON(w, h.Logger, http.StatusOK, resp)
}

// AddIntervalHandler lida com a requisição POST /v1/keys/{id}/schedule.
// @Summary Adiciona um intervalo de acesso
// @Description Cria a janela entrada/saída em cada dia selecionado. Dias sem permissão são ignorados e reportados.
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "ID da Chave"
// @Param interval body domain.IntervalRequest true "Dias e horários"
// @Success 201 {object} schedule.AddIntervalResponse "Todos os dias criados"
// @Success 200 {object} schedule.AddIntervalResponse "Relatório parcial"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Chave não encontrada"
// @Failure 503 {object} domain.ErrorResponse "Falha de dependência"
// @Security ApiKeyAuth
// @Router /keys/{id}/schedule [post]
func (h *Handler) AddIntervalHandler(w http.ResponseWriter, r *http.Request) {
	keyID := chi.URLParam(r, "id")

	var body intervalBody
	if err := respond.Decode(r, &body); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	req, err := body.toRequest()
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	outcomes, err := h.Service.AddInterval(r.Context(), keyID, req)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp := AddIntervalResponse{KeyID: keyID, Outcomes: make([]DayOutcomeResponse, 0, len(outcomes))}
	plain := make([]domain.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		resp.Outcomes = append(resp.Outcomes, DayOutcomeResponse{
			DayOfWeek:  o.DayOfWeek,
			DayLabel:   day.LabelOf(o.DayOfWeek),
			Status:     o.Status,
			ScheduleID: o.ScheduleID,
			Reason:     o.Reason,
		})
		plain = append(plain, o.Outcome)
	}
	resp.AllCreated = domain.AllCreated(plain)

	respond.JSON(w, h.Logger, reportStatus(resp.AllCreated), resp)
}

// ReplicateIntervalsHandler lida com a requisição POST /v1/keys/{id}/schedule/replicate.
// @Summary Replica intervalos para outros dias
// @Description Copia cada intervalo de origem para cada dia de destino. Um dia não pode ser origem e destino.
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "ID da Chave"
// @Param replicate body domain.ReplicateRequest true "Intervalos de origem e dias de destino"
// @Success 201 {object} schedule.ReplicateResponse "Todos os pares criados"
// @Success 200 {object} schedule.ReplicateResponse "Relatório parcial"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Chave não encontrada"
// @Failure 503 {object} domain.ErrorResponse "Falha de dependência"
// @Security ApiKeyAuth
// @Router /keys/{id}/schedule/replicate [post]
func (h *Handler) ReplicateIntervalsHandler(w http.ResponseWriter, r *http.Request) {
	keyID := chi.URLParam(r, "id")

	var body replicateBody
	if err := respond.Decode(r, &body); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	req, err := body.toRequest()
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	outcomes, err := h.Service.ReplicateIntervals(r.Context(), keyID, req)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp := ReplicateResponse{KeyID: keyID, Outcomes: make([]PairOutcomeResponse, 0, len(outcomes))}
	plain := make([]domain.Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		resp.Outcomes = append(resp.Outcomes, PairOutcomeResponse{
			Source: SourceResponse{
				DayOfWeek: o.Source.DayOfWeek,
				DayLabel:  day.LabelOf(o.Source.DayOfWeek),
				Entry:     o.Source.Entry,
				Exit:      o.Source.Exit,
			},
			TargetDay:   o.TargetDay,
			TargetLabel: day.LabelOf(o.TargetDay),
			Status:      o.Status,
			ScheduleID:  o.ScheduleID,
			Reason:      o.Reason,
		})
		plain = append(plain, o.Outcome)
	}
	resp.AllCreated = domain.AllCreated(plain)

	respond.JSON(w, h.Logger, reportStatus(resp.AllCreated), resp)
}

// RemoveIntervalHandler lida com a requisição DELETE /v1/schedules/{id}.
// @Summary Remove um intervalo de acesso
// @Tags schedules
// @Param id path string true "ID do Horário"
// @Success 204 "Horário removido"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Horário não encontrado"
// @Failure 503 {object} domain.ErrorResponse "Falha de dependência"
// @Security ApiKeyAuth
// @Router /schedules/{id} [delete]
func (h *Handler) RemoveIntervalHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.RemoveInterval(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func reportStatus(allCreated bool) int {
	if allCreated {
		return http.StatusCreated
	}
	return http.StatusOK
}
