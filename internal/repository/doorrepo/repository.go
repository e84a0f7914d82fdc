package doorrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"goacesso/internal/domain"
	"goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

// DoorRepository persiste as portas controladas.
type DoorRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewDoorRepository cria e retorna uma nova instância do Repositório de Portas.
func NewDoorRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *DoorRepository {
	return &DoorRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// List busca todas as portas ordenadas pela descrição.
func (r *DoorRepository) List(ctx context.Context) ([]domain.Door, error) {
	r.logger.Debug("Iniciando List de portas no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, identification, description, created_at, updated_at
        FROM doors
        ORDER BY description, id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar List de portas.", err)
		return nil, errors.NewDBError("Falha ao buscar portas", err)
	}
	defer rows.Close()

	doors := []domain.Door{}
	for rows.Next() {
		d, err := scanDoor(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear porta na iteração de List.", err)
			return nil, errors.NewDBError("Falha ao mapear portas do DB", err)
		}
		doors = append(doors, d)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de portas.", err)
		return nil, errors.NewDBError("Erro após iteração de portas", err)
	}

	r.logger.Info("List de portas concluído.", map[string]interface{}{"total_doors": len(doors)})
	return doors, nil
}

// Create insere uma porta. Identificação repetida vira ConflictError (unique_violation).
func (r *DoorRepository) Create(ctx context.Context, in domain.DoorInput) (domain.Door, error) {
	r.logger.Debug("Iniciando Create de porta no repositório.", map[string]interface{}{"identification": in.Identification})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Executa o INSERT
	now := time.Now().UTC()
	query := `
        INSERT INTO doors (id, identification, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $4)
        RETURNING id, identification, description, created_at, updated_at`

	d, err := scanDoor(r.DB.QueryRowContext(ctxTimeout, query, uuid.NewString(), in.Identification, in.Description, now))
	if err != nil {
		r.logger.Error("Falha ao inserir porta no DB.", err)
		return domain.Door{}, errors.NewDBError(fmt.Sprintf("Falha ao cadastrar a porta %s", in.Identification), err)
	}

	r.logger.Info("Porta cadastrada com sucesso.", map[string]interface{}{"id": d.ID})
	return d, nil
}

// Update troca identificação e descrição de uma porta existente.
func (r *DoorRepository) Update(ctx context.Context, id string, in domain.DoorInput) (domain.Door, error) {
	r.logger.Debug("Iniciando Update de porta no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE doors
        SET identification = $1, description = $2, updated_at = $3
        WHERE id = $4
        RETURNING id, identification, description, created_at, updated_at`

	d, err := scanDoor(r.DB.QueryRowContext(ctxTimeout, query, in.Identification, in.Description, time.Now().UTC(), id))
	if err == sql.ErrNoRows {
		r.logger.Info("Porta não encontrada para atualização.", map[string]interface{}{"id": id})
		return domain.Door{}, errors.NewNotFoundError(fmt.Sprintf("Porta com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar porta no DB.", err)
		return domain.Door{}, errors.NewDBError("Falha ao atualizar porta", err)
	}

	r.logger.Info("Porta atualizada com sucesso.", map[string]interface{}{"id": id})
	return d, nil
}

// Delete remove uma porta pelo ID.
func (r *DoorRepository) Delete(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando Delete de porta no repositório.", map[string]interface{}{"id": id})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Executa o DELETE
	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM doors WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar porta do DB.", err)
		return errors.NewDBError("Falha ao deletar porta", err)
	}

	// 3. Verifica se alguma linha foi afetada
	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao ler linhas afetadas no Delete de porta.", err)
		return errors.NewDBError("Falha ao confirmar exclusão da porta", err)
	}
	if affected == 0 {
		r.logger.Info("Porta não encontrada para exclusão.", map[string]interface{}{"id": id})
		return errors.NewNotFoundError(fmt.Sprintf("Porta com ID %s não encontrada para exclusão.", id))
	}

	r.logger.Info("Porta deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDoor(row rowScanner) (domain.Door, error) {
	var d domain.Door
	err := row.Scan(&d.ID, &d.Identification, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}
