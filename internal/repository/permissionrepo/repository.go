package permissionrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"goacesso/internal/domain"
	"goacesso/internal/errors"
	"goacesso/internal/pkg/cache"
	"goacesso/internal/pkg/logger"
)

// PermissionRepository lê as permissões de uma chave já com suas janelas de horário.
// A leitura usa Cache-Aside versionado: quem escreve janelas incrementa VersionKey,
// e uma leitura lenta que grave depois disso grava numa versão que ninguém mais lê.
type PermissionRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewPermissionRepository cria o repositório. cacheClient pode ser nil (sem cache).
func NewPermissionRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *PermissionRepository {
	return &PermissionRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

const (
	permissionsCacheKey = "key:%s:permissions:v%d"
	permissionsVersion  = "key:%s:permissions:version"
)

// CacheKey é a chave de cache das permissões de uma chave numa versão.
func CacheKey(keyID string, version int) string {
	return fmt.Sprintf(permissionsCacheKey, keyID, version)
}

// VersionKey é o contador de versão das permissões de uma chave (sem TTL).
func VersionKey(keyID string) string {
	return fmt.Sprintf(permissionsVersion, keyID)
}

// ListByKey retorna as permissões da chave, cada uma com suas janelas ordenadas por entrada.
func (r *PermissionRepository) ListByKey(ctx context.Context, keyID string) ([]domain.Permission, error) {
	r.logger.Debug("Iniciando ListByKey no repositório.", map[string]interface{}{"key_id": keyID})

	// Configura Contexto com Timeout
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 1. Resolve a versão atual; sem versão legível o cache é ignorado nesta leitura
	useCache := r.Cache != nil
	version := 0
	if useCache {
		v, err := r.Cache.GetInt(ctxTimeout, VersionKey(keyID))
		switch {
		case err == nil:
			version = v
		case err == cache.ErrCacheMiss:
		default:
			r.logger.Warn("Falha ao ler versão do cache; consultando o DB.", map[string]interface{}{"error": err.Error()})
			useCache = false
		}
	}
	key := CacheKey(keyID, version)

	// 2. Cache-Aside (READ)
	if useCache {
		cachedData, err := r.Cache.Get(ctxTimeout, key)
		if err == nil {
			var perms []domain.Permission
			if jsonErr := json.Unmarshal([]byte(cachedData), &perms); jsonErr == nil {
				r.logger.Debug("Permissões servidas do cache.", map[string]interface{}{"key_id": keyID})
				return perms, nil
			}
			r.logger.Warn("Entrada de cache corrompida; consultando o DB.", map[string]interface{}{"cache_key": key})
		} else if err != cache.ErrCacheMiss {
			r.logger.Warn("Falha ao ler do cache; consultando o DB.", map[string]interface{}{"error": err.Error()})
		}
	}

	// 3. Consulta permissões e janelas numa única query
	query := `
        SELECT p.id, p.key_id, p.day_of_week, s.id, s.entry_minute, s.exit_minute
        FROM permissions p
        LEFT JOIN schedules s ON s.permission_id = p.id
        WHERE p.key_id = $1
        ORDER BY p.id, s.entry_minute, s.exit_minute, s.id`

	rows, err := r.DB.QueryContext(ctxTimeout, query, keyID)
	if err != nil {
		r.logger.Error("Falha ao executar ListByKey query.", err)
		return nil, errors.NewDBError("Falha ao buscar permissões", err)
	}
	defer rows.Close()

	// 4. Agrupa as linhas por permissão
	perms := []domain.Permission{}
	index := map[string]int{}
	for rows.Next() {
		var (
			p          domain.Permission
			scheduleID sql.NullString
			entry      sql.NullInt64
			exit       sql.NullInt64
		)
		if err := rows.Scan(&p.ID, &p.KeyID, &p.DayOfWeek, &scheduleID, &entry, &exit); err != nil {
			r.logger.Error("Falha ao mapear permissão na iteração de ListByKey.", err)
			return nil, errors.NewDBError("Falha ao mapear permissões do DB", err)
		}

		i, seen := index[p.ID]
		if !seen {
			p.Schedules = []domain.ScheduleWindow{}
			perms = append(perms, p)
			i = len(perms) - 1
			index[p.ID] = i
		}
		if scheduleID.Valid {
			perms[i].Schedules = append(perms[i].Schedules, domain.ScheduleWindow{
				ID:           scheduleID.String,
				PermissionID: p.ID,
				Entry:        domain.TimeOfDay(entry.Int64),
				Exit:         domain.TimeOfDay(exit.Int64),
			})
		}
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das permissões.", err)
		return nil, errors.NewDBError("Erro após iteração de permissões", err)
	}

	// 5. Cache-Aside (WRITE) na versão lida no passo 1
	if useCache {
		if payload, marshalErr := json.Marshal(perms); marshalErr == nil {
			if setErr := r.Cache.Set(ctxTimeout, key, payload, r.CacheTTL); setErr != nil {
				r.logger.Warn("Falha ao gravar permissões no cache.", map[string]interface{}{"error": setErr.Error()})
			}
		}
	}

	r.logger.Info("ListByKey concluído com sucesso.", map[string]interface{}{"key_id": keyID, "permissions": len(perms)})
	return perms, nil
}
