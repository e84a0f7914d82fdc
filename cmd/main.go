package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"goacesso/config"
	"goacesso/internal/pkg/cache"
	"goacesso/internal/pkg/database"
	"goacesso/internal/pkg/logger"
	"goacesso/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"goacesso/internal/api/day"
	"goacesso/internal/api/door"
	"goacesso/internal/api/key"
	"goacesso/internal/api/router"
	"goacesso/internal/api/schedule"
	"goacesso/internal/api/user"
	"goacesso/internal/repository/doorrepo"
	"goacesso/internal/repository/keyrepo"
	"goacesso/internal/repository/permissionrepo"
	"goacesso/internal/repository/schedulerepo"
	"goacesso/internal/repository/userrepo"
	"goacesso/internal/service/doorservice"
	"goacesso/internal/service/keyservice"
	"goacesso/internal/service/scheduleservice"
	"goacesso/internal/service/userservice"
)

// @title GoAcesso API
// @version 1.0
// @description API de agenda de acesso por chave: permissões por dia e janelas de entrada/saída.
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoAcesso...")
	// O .env é opcional: em contêiner as variáveis já vêm do ambiente.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	defer func() {
		if z, ok := log.(*logger.ZapLogger); ok {
			_ = z.Sync()
		}
	}()
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	pool := database.DefaultPoolConfig()
	pool.MaxOpenConns = cfg.DBMaxOpenConns
	pool.MaxIdleConns = cfg.DBMaxIdleConns
	db, err := database.NewPostgresDB(cfg.DatabaseURL, pool)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis o serviço funciona, só sem cache e sem rate limit efetivo.
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
	if err != nil {
		log.Warn("Redis indisponível; seguindo com cache degradado.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}
	defer redisClient.Close()

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	log.Debug("Serviço de Tokens JWT inicializado.", nil)

	// A. Repositórios
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	keyRepo := keyrepo.NewKeyRepository(db, cfg.DBTimeout, log)
	permRepo := permissionrepo.NewPermissionRepository(db, redisClient, cfg.DBTimeout, cfg.ScheduleCacheTTL, log)
	scheduleRepo := schedulerepo.NewScheduleRepository(db, redisClient, cfg.DBTimeout, log)
	doorRepo := doorrepo.NewDoorRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	// B. Serviços
	userSvc := userservice.NewService(userRepo, tokenSvc, log)
	keySvc := keyservice.NewService(keyRepo, permRepo, log)
	doorSvc := doorservice.NewService(doorRepo, log)
	scheduleSvc := scheduleservice.NewService(keyRepo, permRepo, scheduleRepo, cfg.ScheduleMaxParallelWrites, log)
	log.Debug("Serviços inicializados.", map[string]interface{}{"schedule_max_parallel_writes": cfg.ScheduleMaxParallelWrites})

	// C. Handlers
	handlers := router.Handlers{
		User:     user.NewHandler(userSvc, log),
		Key:      key.NewHandler(keySvc, log),
		Schedule: schedule.NewHandler(scheduleSvc, log),
		Day:      day.NewHandler(log),
		Door:     door.NewHandler(doorSvc, log),
	}

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(handlers, router.Options{
		TokenService:       tokenSvc,
		Cache:              redisClient,
		RateLimitMax:       cfg.RateLimitMaxRequests,
		RateLimitPeriod:    cfg.RateLimitPeriod,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		TrustProxyHeaders:  cfg.TrustProxyHeaders,
		Logger:             log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor GoAcesso ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
