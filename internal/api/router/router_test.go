package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goacesso/internal/api/day"
	"goacesso/internal/api/door"
	"goacesso/internal/api/key"
	"goacesso/internal/api/router"
	"goacesso/internal/api/schedule"
	"goacesso/internal/api/user"
	"goacesso/internal/pkg/logger"
	"goacesso/internal/pkg/token"
)

func newTestServer(t *testing.T) (http.Handler, *token.Service) {
	t.Helper()
	log := logger.NewNopLogger()
	tokenSvc := token.NewService("segredo-de-teste", time.Hour)

	// Os serviços não são alcançados nestes testes: a autorização barra antes.
	h := router.Handlers{
		User:     user.NewHandler(nil, log),
		Key:      key.NewHandler(nil, log),
		Schedule: schedule.NewHandler(nil, log),
		Day:      day.NewHandler(log),
		Door:     door.NewHandler(nil, log),
	}
	return router.NewRouter(h, router.Options{
		TokenService:       tokenSvc,
		CORSAllowedOrigins: []string{"*"},
		Logger:             log,
	}), tokenSvc
}

func TestPing(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestDays_RequiresToken(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/days", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDays_WithToken(t *testing.T) {
	srv, tokenSvc := newTestServer(t)
	tok, err := tokenSvc.GenerateToken("U1", "user")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/days", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var days []day.Label
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 7)
	assert.Equal(t, "Domingo", days[0].Label)
	assert.Equal(t, "Sáb", days[6].Abbreviation)
}

func TestScheduleWrites_RequireAdmin(t *testing.T) {
	srv, tokenSvc := newTestServer(t)
	tok, err := tokenSvc.GenerateToken("U1", "user")
	require.NoError(t, err)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/keys/K1/schedule"},
		{http.MethodPost, "/v1/keys/K1/schedule/replicate"},
		{http.MethodDelete, "/v1/schedules/S1"},
		{http.MethodPut, "/v1/keys/K1"},
		{http.MethodPut, "/v1/users/U2"},
		{http.MethodPost, "/v1/doors"},
		{http.MethodPut, "/v1/doors/D1"},
		{http.MethodDelete, "/v1/doors/D1"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}
