package schedulerepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"goacesso/internal/domain"
	"goacesso/internal/errors"
	"goacesso/internal/pkg/cache"
	"goacesso/internal/pkg/logger"
	"goacesso/internal/repository/permissionrepo"
)

// ScheduleRepository persiste janelas de horário (entrada/saída) sob uma permissão.
// Janelas nunca são atualizadas: substituir é apagar e criar.
type ScheduleRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewScheduleRepository cria o repositório. cacheClient pode ser nil (sem cache).
func NewScheduleRepository(db *sql.DB, cacheClient cache.Client, dbTimeout time.Duration, logger logger.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Create insere uma janela sob a permissão informada.
// Permissão inexistente vira NotFound (FK); entry >= exit vira ValidationError (CHECK).
func (r *ScheduleRepository) Create(ctx context.Context, permissionID string, entry, exit domain.TimeOfDay) (domain.ScheduleWindow, error) {
	r.logger.Debug("Iniciando Create de janela no repositório.", map[string]interface{}{
		"permission_id": permissionID,
		"entry":         entry.String(),
		"exit":          exit.String(),
	})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Executa o INSERT e devolve a chave dona da permissão para invalidar o cache
	query := `
        WITH ins AS (
            INSERT INTO schedules (id, permission_id, entry_minute, exit_minute, created_at)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id, permission_id, entry_minute, exit_minute
        )
        SELECT ins.id, ins.permission_id, ins.entry_minute, ins.exit_minute, p.key_id
        FROM ins
        JOIN permissions p ON p.id = ins.permission_id`

	var (
		w          domain.ScheduleWindow
		keyID      string
		entryMin   int
		exitMin    int
		scheduleID = uuid.New().String()
	)
	err := r.DB.QueryRowContext(ctxTimeout, query,
		scheduleID, permissionID, int(entry), int(exit), time.Now().UTC(),
	).Scan(&w.ID, &w.PermissionID, &entryMin, &exitMin, &keyID)
	if err != nil {
		r.logger.Error("Falha ao inserir janela no DB.", err)
		return domain.ScheduleWindow{}, errors.NewDBError(fmt.Sprintf("Falha ao criar horário na permissão %s", permissionID), err)
	}
	w.Entry = domain.TimeOfDay(entryMin)
	w.Exit = domain.TimeOfDay(exitMin)

	// 3. Invalidação do Cache
	r.invalidateAfterWrite(ctx, keyID)

	r.logger.Info("Janela criada com sucesso.", map[string]interface{}{"id": w.ID, "permission_id": permissionID})
	return w, nil
}

// Delete remove uma janela pelo ID.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando Delete de janela no repositório.", map[string]interface{}{"id": id})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Executa o DELETE
	query := `
        DELETE FROM schedules s
        USING permissions p
        WHERE s.id = $1 AND p.id = s.permission_id
        RETURNING p.key_id`

	var keyID string
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(&keyID)
	if err == sql.ErrNoRows {
		r.logger.Info("Janela não encontrada para exclusão.", map[string]interface{}{"id": id})
		return errors.NewNotFoundError(fmt.Sprintf("Horário com ID %s não encontrado para exclusão.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao deletar janela do DB.", err)
		return errors.NewDBError("Falha ao deletar horário", err)
	}

	// 3. Invalidação do Cache
	r.invalidateAfterWrite(ctx, keyID)

	r.logger.Info("Janela deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// invalidateAfterWrite roda depois do commit: a escrita já aconteceu, então o
// cancelamento do chamador não pode impedir o avanço da versão.
func (r *ScheduleRepository) invalidateAfterWrite(ctx context.Context, keyID string) {
	r.invalidate(context.WithoutCancel(ctx), keyID)
}

// invalidate avança a versão das permissões da chave; entradas antigas expiram pelo TTL.
// Falha de cache não desfaz a escrita; fica registrada e o TTL resolve.
func (r *ScheduleRepository) invalidate(ctx context.Context, keyID string) {
	if r.Cache == nil || keyID == "" {
		return
	}
	if _, err := r.Cache.Incr(ctx, permissionrepo.VersionKey(keyID)); err != nil {
		r.logger.Warn("Falha ao invalidar cache de permissões.", map[string]interface{}{"key_id": keyID, "error": err.Error()})
	}
}
