package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
)

// GooseLogger encaminha as mensagens do goose para o Logger da aplicação.
type GooseLogger struct {
	log Logger
}

var _ goose.Logger = (*GooseLogger)(nil)

// NewGooseLogger adapta um Logger para goose.SetLogger.
func NewGooseLogger(log Logger) *GooseLogger {
	return &GooseLogger{log: log}
}

// Printf registra o progresso das migrações como Info.
func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), map[string]interface{}{"component": "goose"})
}

// Fatalf registra o erro e encerra o processo (mesmo contrato do log.Fatalf).
func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.log.Fatal("goose: falha fatal na migração.", errors.New(msg))
}
