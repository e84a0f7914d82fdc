package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"goacesso/config"
	"goacesso/internal/pkg/database"
	"goacesso/internal/pkg/logger"
)

// Uso: migrate [-dir ./sql] [-timeout 2m] [comando] [argumentos]
// Sem comando aplica "up". Comandos são os do goose (up, down, status, up-to 3, redo...).
func main() {
	// 1. Carrega o .env (opcional em produção)
	envErr := godotenv.Load()

	cfg := config.LoadConfig()
	appLogger := logger.NewLogger(cfg.LogLevel)
	defer func() {
		if z, ok := appLogger.(*logger.ZapLogger); ok {
			_ = z.Sync()
		}
	}()

	if envErr != nil {
		appLogger.Warn("Arquivo .env não encontrado; usando apenas variáveis de ambiente.", map[string]interface{}{"error": envErr.Error()})
	}

	// 2. Flags e comando
	var (
		migrationsDir string
		timeout       time.Duration
	)
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	fs.StringVar(&migrationsDir, "dir", "./sql", "diretório com os arquivos de migração")
	fs.DurationVar(&timeout, "timeout", 2*time.Minute, "tempo máximo para a execução das migrações")
	_ = fs.Parse(os.Args[1:])

	command, args := parseCommand(fs.Args())

	// 3. Conexão com o banco
	db, err := database.NewPostgresDB(cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		appLogger.Fatal("Falha ao conectar ao DB para migração.", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	err = run(ctx, db, appLogger, migrationsDir, command, args)
	cancel()

	if closeErr := db.Close(); closeErr != nil {
		appLogger.Error("Falha ao fechar conexão com o DB.", closeErr)
	}
	if err != nil {
		appLogger.Fatal("Migração falhou.", err)
	}

	appLogger.Info("Migração concluída.", map[string]interface{}{"command": command, "dir": migrationsDir})
}

// parseCommand separa o comando do goose dos seus argumentos; sem comando, "up".
func parseCommand(arguments []string) (string, []string) {
	if len(arguments) == 0 {
		return "up", nil
	}
	return arguments[0], arguments[1:]
}

// run configura o goose com o logger da aplicação e executa o comando.
func run(ctx context.Context, db *sql.DB, log logger.Logger, dir, command string, args []string) error {
	goose.SetLogger(logger.NewGooseLogger(log))

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialeto do goose: %w", err)
	}

	log.Info("Executando migração.", map[string]interface{}{"command": command, "args": args, "dir": dir})
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
