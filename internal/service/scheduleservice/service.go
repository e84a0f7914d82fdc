package scheduleservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

// CredentialStore devolve a chave e suas permissões. Falha com NotFound se a chave não existe.
type CredentialStore interface {
	GetKey(ctx context.Context, keyID string) (domain.Key, error)
}

// PermissionRepository devolve as permissões da chave com as janelas de cada dia.
type PermissionRepository interface {
	ListByKey(ctx context.Context, keyID string) ([]domain.Permission, error)
}

// ScheduleRepository cria e remove janelas de horário.
type ScheduleRepository interface {
	Create(ctx context.Context, permissionID string, entry, exit domain.TimeOfDay) (domain.ScheduleWindow, error)
	Delete(ctx context.Context, scheduleID string) error
}

// Service é o gerenciador da agenda semanal de acesso das chaves.
// Não guarda estado entre chamadas: cada operação recarrega as permissões.
//
// As escritas de AddInterval e ReplicateIntervals são independentes e podem rodar em
// paralelo (até maxParallel). Se o contexto for cancelado, itens ainda não despachados
// são reportados como falha; escritas já despachadas terminam e não são desfeitas.
type Service struct {
	credentials CredentialStore
	permissions PermissionRepository
	schedules   ScheduleRepository
	maxParallel int
	logger      logger.Logger
}

// NewService cria o gerenciador. maxParallel < 1 é tratado como 1 (escritas sequenciais).
func NewService(credentials CredentialStore, permissions PermissionRepository, schedules ScheduleRepository, maxParallel int, logger logger.Logger) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		credentials: credentials,
		permissions: permissions,
		schedules:   schedules,
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// LoadSchedule devolve a agenda resolvida da chave. Agenda vazia não é erro.
func (s *Service) LoadSchedule(ctx context.Context, keyID string) (domain.Schedule, error) {
	s.logger.Debug("Iniciando LoadSchedule no serviço.", map[string]interface{}{"key_id": keyID})

	perms, err := s.resolvePermissions(ctx, keyID)
	if err != nil {
		return domain.Schedule{}, err
	}

	schedule := domain.FlattenSchedule(keyID, perms)
	s.logger.Info("Agenda carregada.", map[string]interface{}{"key_id": keyID, "entries": len(schedule.Entries)})
	return schedule, nil
}

// AddInterval cria a janela [Entry, Exit) em cada dia pedido que tenha permissão.
// Validação falha antes de qualquer chamada a repositório. Falhas por dia vão no relatório.
func (s *Service) AddInterval(ctx context.Context, keyID string, req domain.IntervalRequest) ([]domain.DayOutcome, error) {
	s.logger.Debug("Iniciando AddInterval no serviço.", map[string]interface{}{
		"key_id": keyID,
		"days":   req.Days,
		"entry":  req.Entry.String(),
		"exit":   req.Exit.String(),
	})

	// 1. Validação de Regras de Negócio (antes de qualquer chamada a repositório)
	if err := validateKeyID(keyID); err != nil {
		return nil, err
	}
	if len(req.Days) == 0 {
		s.logger.Warn("AddInterval sem dias selecionados.", map[string]interface{}{"key_id": keyID})
		return nil, apperror.NewValidationError("Selecione pelo menos um dia da semana.")
	}
	if err := validateDays(req.Days); err != nil {
		return nil, err
	}
	if err := validateInterval(req.Entry, req.Exit); err != nil {
		s.logger.Warn("AddInterval com intervalo inválido.", map[string]interface{}{"key_id": keyID, "error": err.Error()})
		return nil, err
	}

	// 2. Resolve dia -> permissão
	perms, err := s.resolvePermissions(ctx, keyID)
	if err != nil {
		return nil, err
	}
	byDay := domain.PermissionByDay(perms)

	// 3. Monta uma escrita por dia com permissão; os demais ficam como ignorados
	days := domain.NormalizeDays(req.Days)
	outcomes := make([]domain.DayOutcome, len(days))
	writes := make([]write, len(days))
	for i, day := range days {
		outcomes[i].DayOfWeek = day
		perm, ok := byDay[day]
		if !ok {
			s.logger.Warn("Dia sem permissão provisionada; ignorado.", map[string]interface{}{"key_id": keyID, "day": day})
			outcomes[i].Outcome = domain.SkippedNoPermission()
			continue
		}
		writes[i] = write{permissionID: perm.ID, entry: req.Entry, exit: req.Exit}
	}

	// 4. Despacha as escritas e junta os resultados
	results := s.dispatch(ctx, writes)
	for i := range outcomes {
		if writes[i].permissionID != "" {
			outcomes[i].Outcome = results[i]
		}
	}

	s.logger.Info("AddInterval concluído.", summarize(keyID, dayOutcomes(outcomes)))
	return outcomes, nil
}

// ReplicateIntervals copia cada intervalo de origem para cada dia de destino (N×M escritas).
// Um dia de destino não pode ser também dia de origem.
func (s *Service) ReplicateIntervals(ctx context.Context, keyID string, req domain.ReplicateRequest) ([]domain.PairOutcome, error) {
	s.logger.Debug("Iniciando ReplicateIntervals no serviço.", map[string]interface{}{
		"key_id":      keyID,
		"sources":     len(req.Sources),
		"target_days": req.TargetDays,
	})

	// 1. Validação de Regras de Negócio
	if err := validateKeyID(keyID); err != nil {
		return nil, err
	}
	if len(req.Sources) == 0 {
		return nil, apperror.NewValidationError("Não há intervalos para replicar.")
	}
	if len(req.TargetDays) == 0 {
		return nil, apperror.NewValidationError("Selecione pelo menos um dia para replicar os horários.")
	}
	if err := validateDays(req.TargetDays); err != nil {
		return nil, err
	}

	sourceDays := make(map[domain.DayOfWeek]struct{}, len(req.Sources))
	for _, src := range req.Sources {
		if !src.DayOfWeek.IsValid() {
			return nil, apperror.NewValidationError(fmt.Sprintf("Dia de origem inválido: %q.", src.DayOfWeek))
		}
		if err := validateInterval(src.Entry, src.Exit); err != nil {
			return nil, err
		}
		sourceDays[src.DayOfWeek] = struct{}{}
	}

	// 2. Dia de destino não pode ser dia de origem
	targets := domain.NormalizeDays(req.TargetDays)
	for _, day := range targets {
		if _, clash := sourceDays[day]; clash {
			s.logger.Warn("Dia de destino também é dia de origem.", map[string]interface{}{"key_id": keyID, "day": day})
			return nil, apperror.NewValidationError(fmt.Sprintf("O dia %s não pode ser origem e destino da mesma replicação.", day))
		}
	}

	perms, err := s.resolvePermissions(ctx, keyID)
	if err != nil {
		return nil, err
	}
	byDay := domain.PermissionByDay(perms)

	// 3. Expansão N×M: ordem das origens, depois ordem canônica dos destinos
	outcomes := make([]domain.PairOutcome, 0, len(req.Sources)*len(targets))
	writes := make([]write, 0, cap(outcomes))
	for _, src := range req.Sources {
		for _, day := range targets {
			o := domain.PairOutcome{Source: src, TargetDay: day}
			w := write{}
			if perm, ok := byDay[day]; ok {
				w = write{permissionID: perm.ID, entry: src.Entry, exit: src.Exit}
			} else {
				o.Outcome = domain.SkippedNoPermission()
			}
			outcomes = append(outcomes, o)
			writes = append(writes, w)
		}
	}

	results := s.dispatch(ctx, writes)
	for i := range outcomes {
		if writes[i].permissionID != "" {
			outcomes[i].Outcome = results[i]
		}
	}

	s.logger.Info("ReplicateIntervals concluído.", summarize(keyID, pairOutcomes(outcomes)))
	return outcomes, nil
}

// RemoveInterval apaga uma janela pelo ID.
func (s *Service) RemoveInterval(ctx context.Context, scheduleID string) error {
	s.logger.Debug("Iniciando RemoveInterval no serviço.", map[string]interface{}{"schedule_id": scheduleID})

	if _, err := uuid.Parse(scheduleID); err != nil {
		s.logger.Warn("ID de horário inválido fornecido para exclusão.", map[string]interface{}{"schedule_id": scheduleID})
		return apperror.NewValidationError("O ID do horário deve ser um UUID válido.")
	}

	if err := s.schedules.Delete(ctx, scheduleID); err != nil {
		s.logger.Error("Falha ao remover horário no repositório.", err)
		return apperror.AsDependency("Falha ao remover horário.", err)
	}

	s.logger.Info("Horário removido com sucesso.", map[string]interface{}{"schedule_id": scheduleID})
	return nil
}

// resolvePermissions confirma a chave no CredentialStore e carrega as permissões atuais.
func (s *Service) resolvePermissions(ctx context.Context, keyID string) ([]domain.Permission, error) {
	if err := validateKeyID(keyID); err != nil {
		return nil, err
	}

	// A chave precisa existir antes de olhar as permissões
	if _, err := s.credentials.GetKey(ctx, keyID); err != nil {
		s.logger.Warn("Chave não resolvida.", map[string]interface{}{"key_id": keyID, "error": err.Error()})
		return nil, apperror.AsDependency("Falha ao buscar chave.", err)
	}

	perms, err := s.permissions.ListByKey(ctx, keyID)
	if err != nil {
		s.logger.Error("Falha ao buscar permissões da chave.", err)
		return nil, apperror.AsDependency("Falha ao buscar permissões da chave.", err)
	}
	return perms, nil
}

// write é uma escrita pendente; permissionID vazio significa "nada a escrever".
type write struct {
	permissionID string
	entry        domain.TimeOfDay
	exit         domain.TimeOfDay
}

// dispatch executa as escritas com paralelismo limitado. Cada goroutine grava apenas
// results[i], então nenhum resultado se perde mesmo terminando fora de ordem.
//
// O cancelamento do chamador só impede novos envios: a escrita já despachada recebe um
// contexto desligado do cancelamento e termina dentro do timeout do repositório.
func (s *Service) dispatch(ctx context.Context, writes []write) []domain.Outcome {
	results := make([]domain.Outcome, len(writes))

	// 1. Contexto das escritas despachadas (mantém valores, ignora cancelamento)
	writeCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(s.maxParallel)

	for i, w := range writes {
		if w.permissionID == "" {
			continue
		}
		g.Go(func() error {
			// 2. Checa cancelamento já com a vaga do limite garantida
			if err := ctx.Err(); err != nil {
				results[i] = domain.Failed(fmt.Sprintf("operação cancelada antes do envio: %v", err))
				return nil
			}
			// 3. Executa o INSERT na permissão do dia
			created, err := s.schedules.Create(writeCtx, w.permissionID, w.entry, w.exit)
			if err != nil {
				s.logger.Error("Falha ao criar horário na permissão.", err)
				results[i] = domain.Failed(err.Error())
				return nil
			}
			results[i] = domain.Created(created.ID)
			return nil
		})
	}

	// As goroutines nunca retornam erro; falhas ficam em results.
	_ = g.Wait()
	return results
}

func validateKeyID(keyID string) error {
	if _, err := uuid.Parse(keyID); err != nil {
		return apperror.NewValidationError("O ID da chave deve ser um UUID válido.")
	}
	return nil
}

func validateDays(days []domain.DayOfWeek) error {
	for _, d := range days {
		if !d.IsValid() {
			return apperror.NewValidationError(fmt.Sprintf("Dia da semana inválido: %q.", d))
		}
	}
	return nil
}

func validateInterval(entry, exit domain.TimeOfDay) error {
	if !entry.IsValid() || !exit.IsValid() {
		return apperror.NewValidationError("Os horários devem estar entre 00:00 e 23:59.")
	}
	if entry >= exit {
		return apperror.NewValidationError(fmt.Sprintf("O horário de entrada (%s) deve ser menor que o de saída (%s).", entry, exit))
	}
	return nil
}

func dayOutcomes(in []domain.DayOutcome) []domain.Outcome {
	out := make([]domain.Outcome, len(in))
	for i, o := range in {
		out[i] = o.Outcome
	}
	return out
}

func pairOutcomes(in []domain.PairOutcome) []domain.Outcome {
	out := make([]domain.Outcome, len(in))
	for i, o := range in {
		out[i] = o.Outcome
	}
	return out
}

func summarize(keyID string, outcomes []domain.Outcome) map[string]interface{} {
	counts := map[domain.OutcomeStatus]int{}
	for _, o := range outcomes {
		counts[o.Status]++
	}
	return map[string]interface{}{
		"key_id":                keyID,
		"created":               counts[domain.OutcomeCreated],
		"skipped_no_permission": counts[domain.OutcomeSkippedNoPermission],
		"failed":                counts[domain.OutcomeFailed],
	}
}
