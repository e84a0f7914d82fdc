package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/cache"
	"goacesso/internal/pkg/logger"
)

// RateLimiter limita requisições por IP em uma janela fixa guardada no cache.
// Se o cache estiver indisponível a requisição segue (fail open) e o erro é registrado.
func RateLimiter(client cache.Client, limit int, period time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			// 1. INCR atômico: cria a chave com 1 se ela não existir
			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Error("Cache indisponível para rate limit; liberando requisição.", err)
				next.ServeHTTP(w, r)
				return
			}

			// 2. Primeira requisição da janela arma o TTL
			if count == 1 {
				if expErr := client.Expire(ctx, key, period); expErr != nil {
					// Sem TTL o contador nunca zera; remove para a próxima requisição rearmar.
					log.Error("Falha ao definir TTL do contador de rate limit.", expErr)
					if delErr := client.Delete(ctx, key); delErr != nil {
						log.Error("Falha ao remover contador de rate limit sem TTL.", delErr)
					}
				}
			}

			// 3. Acima do limite: 429
			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				writeError(w, &rateLimitError{})
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitError só existe para mapear para 429 pelo mesmo caminho de erro dos handlers.
type rateLimitError struct{}

func (e *rateLimitError) Error() string    { return "Limite de requisições excedido. Tente novamente mais tarde." }
func (e *rateLimitError) Category() string { return "RATE_LIMITED" }
func (e *rateLimitError) HTTPStatus() int  { return http.StatusTooManyRequests }
func (e *rateLimitError) Unwrap() error    { return nil }

var _ apperror.AppError = (*rateLimitError)(nil)
