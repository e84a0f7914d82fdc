package schedule_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goacesso/internal/api/schedule"
	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
)

type MockScheduleManager struct {
	mock.Mock
}

func (m *MockScheduleManager) LoadSchedule(ctx context.Context, keyID string) (domain.Schedule, error) {
	args := m.Called(ctx, keyID)
	return args.Get(0).(domain.Schedule), args.Error(1)
}

func (m *MockScheduleManager) AddInterval(ctx context.Context, keyID string, req domain.IntervalRequest) ([]domain.DayOutcome, error) {
	args := m.Called(ctx, keyID, req)
	return args.Get(0).([]domain.DayOutcome), args.Error(1)
}

func (m *MockScheduleManager) ReplicateIntervals(ctx context.Context, keyID string, req domain.ReplicateRequest) ([]domain.PairOutcome, error) {
	args := m.Called(ctx, keyID, req)
	return args.Get(0).([]domain.PairOutcome), args.Error(1)
}

func (m *MockScheduleManager) RemoveInterval(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

func newTestRouter(svc *MockScheduleManager) http.Handler {
	h := schedule.NewHandler(svc, logger.NewNopLogger())
	r := chi.NewRouter()
	r.Get("/v1/keys/{id}/schedule", h.GetScheduleHandler)
	r.Post("/v1/keys/{id}/schedule", h.AddIntervalHandler)
	r.Post("/v1/keys/{id}/schedule/replicate", h.ReplicateIntervalsHandler)
	r.Delete("/v1/schedules/{id}", h.RemoveIntervalHandler)
	return r
}

func TestGetScheduleHandler_Success(t *testing.T) {
	svc := new(MockScheduleManager)
	svc.On("LoadSchedule", mock.Anything, "K1").Return(domain.Schedule{
		KeyID: "K1",
		Entries: []domain.ScheduleEntry{{
			DayOfWeek: domain.Monday, PermissionID: "P1", ScheduleID: "S1",
			Entry: domain.MustTimeOfDay("08:00"), Exit: domain.MustTimeOfDay("12:00"),
		}},
	}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/keys/K1/schedule", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	entries := body["entries"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "Segunda-feira", entry["day_label"])
	assert.Equal(t, "08:00", entry["entry"])
	assert.Equal(t, "12:00", entry["exit"])
}

func TestGetScheduleHandler_NotFound(t *testing.T) {
	svc := new(MockScheduleManager)
	svc.On("LoadSchedule", mock.Anything, "K9").Return(domain.Schedule{}, apperror.NewNotFoundError("chave"))

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/keys/K9/schedule", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Category)
}

func TestAddIntervalHandler_MixedReportIsOK(t *testing.T) {
	svc := new(MockScheduleManager)
	expectedReq := domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Monday, domain.Tuesday},
		Entry: domain.MustTimeOfDay("08:00"),
		Exit:  domain.MustTimeOfDay("12:00"),
	}
	svc.On("AddInterval", mock.Anything, "K1", expectedReq).Return([]domain.DayOutcome{
		{DayOfWeek: domain.Monday, Outcome: domain.Created("S1")},
		{DayOfWeek: domain.Tuesday, Outcome: domain.SkippedNoPermission()},
	}, nil)

	payload := `{"days":["segunda","Terça-feira"],"entry":"08:00","exit":"12:00:00"}`
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/keys/K1/schedule", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp schedule.AddIntervalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.AllCreated)
	require.Len(t, resp.Outcomes, 2)
	assert.Equal(t, "S1", resp.Outcomes[0].ScheduleID)
	assert.Equal(t, domain.OutcomeSkippedNoPermission, resp.Outcomes[1].Status)
	assert.Equal(t, "Terça-feira", resp.Outcomes[1].DayLabel)
	svc.AssertExpectations(t)
}

func TestAddIntervalHandler_AllCreatedIs201(t *testing.T) {
	svc := new(MockScheduleManager)
	svc.On("AddInterval", mock.Anything, "K1", mock.Anything).Return([]domain.DayOutcome{
		{DayOfWeek: domain.Friday, Outcome: domain.Created("S5")},
	}, nil)

	payload := `{"days":["friday"],"entry":"18:00","exit":"22:00"}`
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/keys/K1/schedule", strings.NewReader(payload)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddIntervalHandler_InvalidPayload(t *testing.T) {
	cases := map[string]string{
		"json quebrado": `{"days":`,
		"dia inválido":  `{"days":["funday"],"entry":"08:00","exit":"12:00"}`,
		"hora inválida": `{"days":["monday"],"entry":"25:00","exit":"12:00"}`,
		"sem entrada":   `{"days":["monday"],"exit":"18:00"}`,
		"sem saída":     `{"days":["monday"],"entry":"08:00"}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			svc := new(MockScheduleManager)
			rec := httptest.NewRecorder()
			newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/keys/K1/schedule", strings.NewReader(payload)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "AddInterval", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReplicateIntervalsHandler_ValidationError(t *testing.T) {
	svc := new(MockScheduleManager)
	svc.On("ReplicateIntervals", mock.Anything, "K1", mock.Anything).
		Return([]domain.PairOutcome(nil), apperror.NewValidationError("origem e destino"))

	payload := `{"sources":[{"day_of_week":"monday","entry":"08:00","exit":"12:00"}],"target_days":["monday"]}`
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/keys/K1/schedule/replicate", strings.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReplicateIntervalsHandler_SourceWithoutTime(t *testing.T) {
	svc := new(MockScheduleManager)

	payload := `{"sources":[{"day_of_week":"monday","entry":"08:00"}],"target_days":["tuesday"]}`
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/keys/K1/schedule/replicate", strings.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	svc.AssertNotCalled(t, "ReplicateIntervals", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplicateIntervalsHandler_Report(t *testing.T) {
	svc := new(MockScheduleManager)
	src := domain.SourceInterval{DayOfWeek: domain.Monday, Entry: domain.MustTimeOfDay("08:00"), Exit: domain.MustTimeOfDay("12:00")}
	svc.On("ReplicateIntervals", mock.Anything, "K1", mock.Anything).Return([]domain.PairOutcome{
		{Source: src, TargetDay: domain.Tuesday, Outcome: domain.Created("S2")},
		{Source: src, TargetDay: domain.Saturday, Outcome: domain.Failed("timeout")},
	}, nil)

	payload := `{"sources":[{"day_of_week":"monday","entry":"08:00","exit":"12:00"}],"target_days":["tuesday","sabado"]}`
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/keys/K1/schedule/replicate", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp schedule.ReplicateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Outcomes, 2)
	assert.Equal(t, "Segunda-feira", resp.Outcomes[0].Source.DayLabel)
	assert.Equal(t, "Sábado", resp.Outcomes[1].TargetLabel)
	assert.Equal(t, "timeout", resp.Outcomes[1].Reason)
}

func TestRemoveIntervalHandler(t *testing.T) {
	svc := new(MockScheduleManager)
	svc.On("RemoveInterval", mock.Anything, "S1").Return(nil)
	svc.On("RemoveInterval", mock.Anything, "S2").Return(apperror.NewDependencyError("db", nil))

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/schedules/S1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/schedules/S2", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
