package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do serviço goacesso.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL    string
	DBTimeout      time.Duration
	DBMaxOpenConns int
	DBMaxIdleConns int

	// Cache (Redis)
	RedisAddr        string
	CacheTimeout     time.Duration
	ScheduleCacheTTL time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
	// TrustProxyHeaders usa X-Forwarded-For/X-Real-IP como IP do cliente. Só ligue atrás de proxy confiável.
	TrustProxyHeaders    bool

	// Agenda de acesso
	ScheduleMaxParallelWrites int

	// CORS (cliente web)
	CORSAllowedOrigins []string
}

// LookupFunc tem a assinatura de os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// Encerra o processo se alguma variável obrigatória estiver ausente.
func LoadConfig() *Config {
	cfg, err := Load(os.LookupEnv)
	if err != nil {
		log.Fatalf("❌ Erro de Configuração: %v", err)
	}
	return cfg
}

// Load monta a configuração usando a função de busca informada.
func Load(lookup LookupFunc) (*Config, error) {
	e := env{lookup: lookup}

	cfg := &Config{
		// 1. Geral
		Port:        e.get("PORT", "8080"),
		Environment: e.get("ENV", "development"),
		LogLevel:    e.get("LOG_LEVEL", "info"),

		// 2. Banco de Dados (PostgreSQL)
		DatabaseURL:    e.get("DATABASE_URL", ""),
		DBTimeout:      e.getDuration("DB_TIMEOUT_SEC", 5, time.Second),
		DBMaxOpenConns: e.getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: e.getInt("DB_MAX_IDLE_CONNS", 10),

		// 3. Cache (Redis)
		RedisAddr:        e.get("REDIS_ADDR", "localhost:6379"),
		CacheTimeout:     e.getDuration("CACHE_TIMEOUT_SEC", 10, time.Second),
		ScheduleCacheTTL: e.getDuration("SCHEDULE_CACHE_TTL_SEC", 300, time.Second),

		// 4. Segurança (JWT)
		JWTSecretKey: e.get("JWT_SECRET_KEY", ""),
		TokenExpiry:  e.getDuration("JWT_EXPIRY_MIN", 60, time.Minute),

		// 5. Rate Limiting
		RateLimitMaxRequests: e.getInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      e.getDuration("RATE_LIMIT_PERIOD_MIN", 1, time.Minute),
		TrustProxyHeaders:    e.getBool("TRUST_PROXY_HEADERS", false),

		// 6. Agenda
		ScheduleMaxParallelWrites: e.getInt("SCHEDULE_MAX_PARALLEL_WRITES", 4),

		// 7. CORS
		CORSAllowedOrigins: splitList(e.get("CORS_ALLOWED_ORIGINS", "*")),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecretKey == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("as variáveis de ambiente %s devem ser definidas", strings.Join(missing, ", "))
	}

	if cfg.ScheduleMaxParallelWrites < 1 {
		log.Printf("⚠️ Aviso: SCHEDULE_MAX_PARALLEL_WRITES=%d inválido. Usando 1.", cfg.ScheduleMaxParallelWrites)
		cfg.ScheduleMaxParallelWrites = 1
	}

	return cfg, nil
}

// Funções Helpers (Auxiliares)

type env struct {
	lookup LookupFunc
}

// get lê a variável de ambiente ou retorna um valor padrão.
func (e env) get(key, defaultValue string) string {
	if value, exists := e.lookup(key); exists {
		return value
	}
	return defaultValue
}

// getInt lê uma variável de ambiente numérica.
func (e env) getInt(key string, defaultValue int) int {
	valueStr := e.get(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBool lê uma variável booleana ("true", "1", "false"...).
func (e env) getBool(key string, defaultValue bool) bool {
	valueStr := e.get(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getDuration lê um inteiro e o converte para time.Duration na unidade informada.
func (e env) getDuration(key string, defaultValue int, unit time.Duration) time.Duration {
	return time.Duration(e.getInt(key, defaultValue)) * unit
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
