package keyrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"goacesso/internal/domain"
	"goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

// KeyRepository implementa o CredentialStore: chaves e suas permissões por dia.
type KeyRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewKeyRepository cria e retorna uma nova instância do Repositório de Chaves.
func NewKeyRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *KeyRepository {
	return &KeyRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// GetKey busca a chave pelo ID junto com suas permissões (sem as janelas de horário).
func (r *KeyRepository) GetKey(ctx context.Context, id string) (domain.Key, error) {
	r.logger.Debug("Iniciando GetKey no repositório.", map[string]interface{}{"id": id})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Busca a chave
	query := `
        SELECT id, user_id, description, created_at, updated_at
        FROM keys
        WHERE id = $1`

	key, err := scanKey(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err == sql.ErrNoRows {
		r.logger.Info("Chave não encontrada.", map[string]interface{}{"id": id})
		return domain.Key{}, errors.NewNotFoundError(fmt.Sprintf("Chave com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao buscar chave no DB.", err)
		return domain.Key{}, errors.NewDBError("Falha ao buscar chave", err)
	}

	// 3. Busca as permissões por dia (as janelas ficam com o PermissionRepository)
	permQuery := `
        SELECT id, key_id, day_of_week
        FROM permissions
        WHERE key_id = $1`

	rows, err := r.DB.QueryContext(ctxTimeout, permQuery, id)
	if err != nil {
		r.logger.Error("Falha ao buscar permissões da chave.", err)
		return domain.Key{}, errors.NewDBError("Falha ao buscar permissões da chave", err)
	}
	defer rows.Close()

	key.Permissions = []domain.Permission{}
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.ID, &p.KeyID, &p.DayOfWeek); err != nil {
			r.logger.Error("Falha ao mapear permissão da chave.", err)
			return domain.Key{}, errors.NewDBError("Falha ao mapear permissões do DB", err)
		}
		p.Schedules = []domain.ScheduleWindow{}
		key.Permissions = append(key.Permissions, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das permissões.", err)
		return domain.Key{}, errors.NewDBError("Erro após iteração de permissões", err)
	}

	r.logger.Info("Chave encontrada.", map[string]interface{}{"id": id, "permissions": len(key.Permissions)})
	return key, nil
}

// ListKeys busca todas as chaves, sem permissões.
func (r *KeyRepository) ListKeys(ctx context.Context) ([]domain.Key, error) {
	r.logger.Debug("Iniciando ListKeys no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, user_id, description, created_at, updated_at
        FROM keys
        ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar ListKeys query.", err)
		return nil, errors.NewDBError("Falha ao buscar chaves", err)
	}
	defer rows.Close()

	keys := []domain.Key{}
	for rows.Next() {
		key, err := scanKey(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear chave na iteração de ListKeys.", err)
			return nil, errors.NewDBError("Falha ao mapear chaves do DB", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de chaves.", err)
		return nil, errors.NewDBError("Erro após iteração de chaves", err)
	}

	r.logger.Info("ListKeys concluído com sucesso.", map[string]interface{}{"total_keys": len(keys)})
	return keys, nil
}

// AssociateUser vincula a chave a um usuário e grava a descrição do acesso.
func (r *KeyRepository) AssociateUser(ctx context.Context, id string, assoc domain.KeyAssociation) (domain.Key, error) {
	r.logger.Debug("Iniciando AssociateUser no repositório.", map[string]interface{}{"id": id, "user_id": assoc.UserID})

	// 1. Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 2. Executa o UPDATE. user_id inexistente viola a FK e vira NotFound em NewDBError.
	query := `
        UPDATE keys
        SET user_id = $1, description = $2, updated_at = $3
        WHERE id = $4
        RETURNING id, user_id, description, created_at, updated_at`

	key, err := scanKey(r.DB.QueryRowContext(ctxTimeout, query, assoc.UserID, assoc.Description, time.Now().UTC(), id))
	if err == sql.ErrNoRows {
		r.logger.Info("Chave não encontrada para associação.", map[string]interface{}{"id": id})
		return domain.Key{}, errors.NewNotFoundError(fmt.Sprintf("Chave com ID %s não encontrada.", id))
	}
	if err != nil {
		r.logger.Error("Falha ao associar chave no DB.", err)
		return domain.Key{}, errors.NewDBError("Falha ao associar chave ao usuário", err)
	}

	r.logger.Info("Chave associada com sucesso.", map[string]interface{}{"id": id, "user_id": assoc.UserID})
	return key, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanKey(row rowScanner) (domain.Key, error) {
	var (
		key    domain.Key
		userID sql.NullString
	)
	if err := row.Scan(&key.ID, &userID, &key.Description, &key.CreatedAt, &key.UpdatedAt); err != nil {
		return domain.Key{}, err
	}
	if userID.Valid {
		key.UserID = &userID.String
	}
	return key, nil
}
