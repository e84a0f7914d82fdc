package scheduleservice_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goacesso/internal/domain"
	apperror "goacesso/internal/errors"
	"goacesso/internal/pkg/logger"
	"goacesso/internal/service/scheduleservice"
)

// MockCredentialStore é uma implementação mock de CredentialStore
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) GetKey(ctx context.Context, keyID string) (domain.Key, error) {
	args := m.Called(ctx, keyID)
	return args.Get(0).(domain.Key), args.Error(1)
}

// MockPermissionRepository é uma implementação mock de PermissionRepository
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) ListByKey(ctx context.Context, keyID string) ([]domain.Permission, error) {
	args := m.Called(ctx, keyID)
	return args.Get(0).([]domain.Permission), args.Error(1)
}

// MockScheduleRepository é uma implementação mock de ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, permissionID string, entry, exit domain.TimeOfDay) (domain.ScheduleWindow, error) {
	args := m.Called(ctx, permissionID, entry, exit)
	return args.Get(0).(domain.ScheduleWindow), args.Error(1)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

type fixture struct {
	keys      *MockCredentialStore
	perms     *MockPermissionRepository
	schedules *MockScheduleRepository
	svc       *scheduleservice.Service
}

func newFixture(maxParallel int) fixture {
	f := fixture{
		keys:      new(MockCredentialStore),
		perms:     new(MockPermissionRepository),
		schedules: new(MockScheduleRepository),
	}
	f.svc = scheduleservice.NewService(f.keys, f.perms, f.schedules, maxParallel, logger.NewLogger("debug"))
	return f
}

func (f fixture) assertNoRepoCalls(t *testing.T) {
	f.keys.AssertNotCalled(t, "GetKey", mock.Anything, mock.Anything)
	f.perms.AssertNotCalled(t, "ListByKey", mock.Anything, mock.Anything)
	f.schedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.schedules.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func at(hhmm string) domain.TimeOfDay {
	return domain.MustTimeOfDay(hhmm)
}

// keyWith registra uma chave existente com uma permissão por dia informado (IDs "P-<dia>").
func (f fixture) keyWith(keyID string, days ...domain.DayOfWeek) {
	perms := make([]domain.Permission, 0, len(days))
	for _, d := range days {
		perms = append(perms, domain.Permission{
			ID:        "P-" + string(d),
			KeyID:     keyID,
			DayOfWeek: d,
			Schedules: []domain.ScheduleWindow{},
		})
	}
	f.keys.On("GetKey", mock.Anything, keyID).Return(domain.Key{ID: keyID, Permissions: perms}, nil)
	f.perms.On("ListByKey", mock.Anything, keyID).Return(perms, nil)
}

// --- Testes para AddInterval ---

func TestAddInterval_CreatesAndSkipsDaysWithoutPermission(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	f.keyWith(keyID, domain.Monday)

	f.schedules.On("Create", mock.Anything, "P-monday", at("08:00"), at("12:00")).
		Return(domain.ScheduleWindow{ID: "S1", PermissionID: "P-monday", Entry: at("08:00"), Exit: at("12:00")}, nil)

	outcomes, err := f.svc.AddInterval(context.Background(), keyID, domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Tuesday, domain.Monday},
		Entry: at("08:00"),
		Exit:  at("12:00"),
	})

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, domain.DayOutcome{DayOfWeek: domain.Monday, Outcome: domain.Created("S1")}, outcomes[0])
	assert.Equal(t, domain.DayOutcome{DayOfWeek: domain.Tuesday, Outcome: domain.SkippedNoPermission()}, outcomes[1])
	f.schedules.AssertNumberOfCalls(t, "Create", 1)
}

func TestAddInterval_Fail_EntryNotBeforeExit(t *testing.T) {
	cases := []struct {
		name  string
		entry string
		exit  string
	}{
		{"igual", "10:00", "10:00"},
		{"invertido", "12:00", "08:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(4)
			_, err := f.svc.AddInterval(context.Background(), uuid.New().String(), domain.IntervalRequest{
				Days:  []domain.DayOfWeek{domain.Monday},
				Entry: at(tc.entry),
				Exit:  at(tc.exit),
			})

			assert.Error(t, err)
			assert.IsType(t, &apperror.ValidationError{}, err)
			f.assertNoRepoCalls(t)
		})
	}
}

func TestAddInterval_Fail_NoDays(t *testing.T) {
	f := newFixture(4)
	_, err := f.svc.AddInterval(context.Background(), uuid.New().String(), domain.IntervalRequest{
		Entry: at("08:00"),
		Exit:  at("12:00"),
	})

	assert.IsType(t, &apperror.ValidationError{}, err)
	f.assertNoRepoCalls(t)
}

func TestAddInterval_Fail_InvalidDay(t *testing.T) {
	f := newFixture(4)
	_, err := f.svc.AddInterval(context.Background(), uuid.New().String(), domain.IntervalRequest{
		Days:  []domain.DayOfWeek{"funday"},
		Entry: at("08:00"),
		Exit:  at("12:00"),
	})

	assert.IsType(t, &apperror.ValidationError{}, err)
	f.assertNoRepoCalls(t)
}

func TestAddInterval_Fail_InvalidKeyID(t *testing.T) {
	f := newFixture(4)
	_, err := f.svc.AddInterval(context.Background(), "not-a-uuid", domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Monday},
		Entry: at("08:00"),
		Exit:  at("12:00"),
	})

	assert.IsType(t, &apperror.ValidationError{}, err)
	f.assertNoRepoCalls(t)
}

func TestAddInterval_Fail_KeyNotFound(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	f.keys.On("GetKey", mock.Anything, keyID).Return(domain.Key{}, apperror.NewNotFoundError("chave"))

	_, err := f.svc.AddInterval(context.Background(), keyID, domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Monday},
		Entry: at("08:00"),
		Exit:  at("12:00"),
	})

	assert.IsType(t, &apperror.NotFoundError{}, err)
	f.perms.AssertNotCalled(t, "ListByKey", mock.Anything, mock.Anything)
	f.schedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddInterval_Fail_PermissionsUnavailable(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	f.keys.On("GetKey", mock.Anything, keyID).Return(domain.Key{ID: keyID}, nil)
	f.perms.On("ListByKey", mock.Anything, keyID).Return([]domain.Permission{}, errors.New("connection refused"))

	_, err := f.svc.AddInterval(context.Background(), keyID, domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Monday},
		Entry: at("08:00"),
		Exit:  at("12:00"),
	})

	assert.IsType(t, &apperror.DependencyError{}, err)
}

func TestAddInterval_PartialFailureKeepsOtherDays(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	f.keyWith(keyID, domain.Monday, domain.Wednesday, domain.Friday)

	entry, exit := at("13:00"), at("18:00")
	f.schedules.On("Create", mock.Anything, "P-monday", entry, exit).Return(domain.ScheduleWindow{ID: "S-mon"}, nil)
	f.schedules.On("Create", mock.Anything, "P-wednesday", entry, exit).Return(domain.ScheduleWindow{}, apperror.NewDependencyError("timeout", nil))
	f.schedules.On("Create", mock.Anything, "P-friday", entry, exit).Return(domain.ScheduleWindow{ID: "S-fri"}, nil)

	outcomes, err := f.svc.AddInterval(context.Background(), keyID, domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Friday, domain.Wednesday, domain.Monday},
		Entry: entry,
		Exit:  exit,
	})

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, domain.Monday, outcomes[0].DayOfWeek)
	assert.Equal(t, domain.Created("S-mon"), outcomes[0].Outcome)
	assert.Equal(t, domain.Wednesday, outcomes[1].DayOfWeek)
	assert.Equal(t, domain.OutcomeFailed, outcomes[1].Status)
	assert.Contains(t, outcomes[1].Reason, "timeout")
	assert.Equal(t, domain.Friday, outcomes[2].DayOfWeek)
	assert.Equal(t, domain.Created("S-fri"), outcomes[2].Outcome)
	f.schedules.AssertExpectations(t)
}

func TestAddInterval_DeduplicatesDays(t *testing.T) {
	f := newFixture(1)
	keyID := uuid.New().String()
	f.keyWith(keyID, domain.Monday)
	f.schedules.On("Create", mock.Anything, "P-monday", at("08:00"), at("09:00")).Return(domain.ScheduleWindow{ID: "S1"}, nil)

	outcomes, err := f.svc.AddInterval(context.Background(), keyID, domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Monday, domain.Monday},
		Entry: at("08:00"),
		Exit:  at("09:00"),
	})

	require.NoError(t, err)
	assert.Len(t, outcomes, 1)
	f.schedules.AssertNumberOfCalls(t, "Create", 1)
}

func TestAddInterval_AllDaysInParallel(t *testing.T) {
	f := newFixture(3)
	keyID := uuid.New().String()
	f.keyWith(keyID, domain.AllDays...)

	for _, d := range domain.AllDays {
		f.schedules.On("Create", mock.Anything, "P-"+string(d), at("07:00"), at("19:00")).
			Return(domain.ScheduleWindow{ID: "S-" + string(d)}, nil)
	}

	outcomes, err := f.svc.AddInterval(context.Background(), keyID, domain.IntervalRequest{
		Days:  domain.AllDays,
		Entry: at("07:00"),
		Exit:  at("19:00"),
	})

	require.NoError(t, err)
	require.Len(t, outcomes, len(domain.AllDays))
	for i, d := range domain.AllDays {
		assert.Equal(t, d, outcomes[i].DayOfWeek)
		assert.Equal(t, domain.Created("S-"+string(d)), outcomes[i].Outcome)
	}
}

func TestAddInterval_CancelledContextFailsPendingWrites(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	f.keyWith(keyID, domain.Monday, domain.Tuesday)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := f.svc.AddInterval(ctx, keyID, domain.IntervalRequest{
		Days:  []domain.DayOfWeek{domain.Monday, domain.Tuesday},
		Entry: at("08:00"),
		Exit:  at("12:00"),
	})

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, domain.OutcomeFailed, o.Status)
		assert.Contains(t, o.Reason, "cancelada")
	}
	f.schedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Testes para ReplicateIntervals ---

func TestReplicateIntervals_CrossProduct(t *testing.T) {
	f := newFixture(2)
	keyID := uuid.New().String()
	f.keyWith(keyID, domain.Monday, domain.Tuesday, domain.Thursday)

	sources := []domain.SourceInterval{
		{DayOfWeek: domain.Monday, Entry: at("08:00"), Exit: at("12:00")},
		{DayOfWeek: domain.Monday, Entry: at("13:00"), Exit: at("17:00")},
	}
	for i, src := range sources {
		for _, d := range []domain.DayOfWeek{domain.Tuesday, domain.Thursday} {
			f.schedules.On("Create", mock.Anything, "P-"+string(d), src.Entry, src.Exit).
				Return(domain.ScheduleWindow{ID: fmt.Sprintf("S%d-%s", i, d)}, nil)
		}
	}

	outcomes, err := f.svc.ReplicateIntervals(context.Background(), keyID, domain.ReplicateRequest{
		Sources:    sources,
		TargetDays: []domain.DayOfWeek{domain.Thursday, domain.Saturday, domain.Tuesday},
	})

	require.NoError(t, err)
	require.Len(t, outcomes, 6)

	expected := []struct {
		source int
		day    domain.DayOfWeek
		out    domain.Outcome
	}{
		{0, domain.Tuesday, domain.Created("S0-tuesday")},
		{0, domain.Thursday, domain.Created("S0-thursday")},
		{0, domain.Saturday, domain.SkippedNoPermission()},
		{1, domain.Tuesday, domain.Created("S1-tuesday")},
		{1, domain.Thursday, domain.Created("S1-thursday")},
		{1, domain.Saturday, domain.SkippedNoPermission()},
	}
	for i, e := range expected {
		assert.Equal(t, sources[e.source], outcomes[i].Source, "par %d", i)
		assert.Equal(t, e.day, outcomes[i].TargetDay, "par %d", i)
		assert.Equal(t, e.out, outcomes[i].Outcome, "par %d", i)
	}
	f.schedules.AssertNumberOfCalls(t, "Create", 4)
}

func TestReplicateIntervals_Fail_TargetIsSource(t *testing.T) {
	f := newFixture(4)
	_, err := f.svc.ReplicateIntervals(context.Background(), uuid.New().String(), domain.ReplicateRequest{
		Sources:    []domain.SourceInterval{{DayOfWeek: domain.Monday, Entry: at("08:00"), Exit: at("12:00")}},
		TargetDays: []domain.DayOfWeek{domain.Tuesday, domain.Monday},
	})

	assert.IsType(t, &apperror.ValidationError{}, err)
	f.assertNoRepoCalls(t)
}

func TestReplicateIntervals_Fail_EmptyInputs(t *testing.T) {
	src := []domain.SourceInterval{{DayOfWeek: domain.Monday, Entry: at("08:00"), Exit: at("12:00")}}
	cases := []struct {
		name string
		req  domain.ReplicateRequest
	}{
		{"sem origens", domain.ReplicateRequest{TargetDays: []domain.DayOfWeek{domain.Tuesday}}},
		{"sem destinos", domain.ReplicateRequest{Sources: src}},
		{"origem inválida", domain.ReplicateRequest{
			Sources:    []domain.SourceInterval{{DayOfWeek: domain.Monday, Entry: at("12:00"), Exit: at("08:00")}},
			TargetDays: []domain.DayOfWeek{domain.Tuesday},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(4)
			_, err := f.svc.ReplicateIntervals(context.Background(), uuid.New().String(), tc.req)

			assert.IsType(t, &apperror.ValidationError{}, err)
			f.assertNoRepoCalls(t)
		})
	}
}

// --- Testes para RemoveInterval ---

func TestRemoveInterval_Success(t *testing.T) {
	f := newFixture(4)
	id := uuid.New().String()
	f.schedules.On("Delete", mock.Anything, id).Return(nil)

	err := f.svc.RemoveInterval(context.Background(), id)

	assert.NoError(t, err)
	f.schedules.AssertExpectations(t)
}

func TestRemoveInterval_Fail_NotFound(t *testing.T) {
	f := newFixture(4)
	id := uuid.New().String()
	f.schedules.On("Delete", mock.Anything, id).Return(apperror.NewNotFoundError("horário"))

	err := f.svc.RemoveInterval(context.Background(), id)

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestRemoveInterval_Fail_Dependency(t *testing.T) {
	f := newFixture(4)
	id := uuid.New().String()
	f.schedules.On("Delete", mock.Anything, id).Return(errors.New("broken pipe"))

	err := f.svc.RemoveInterval(context.Background(), id)

	assert.IsType(t, &apperror.DependencyError{}, err)
}

func TestRemoveInterval_Fail_InvalidID(t *testing.T) {
	f := newFixture(4)
	err := f.svc.RemoveInterval(context.Background(), "S1")

	assert.IsType(t, &apperror.ValidationError{}, err)
	f.assertNoRepoCalls(t)
}

// --- Testes para LoadSchedule ---

func TestLoadSchedule_FlattensAndIsRepeatable(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	perms := []domain.Permission{
		{ID: "P-wed", KeyID: keyID, DayOfWeek: domain.Wednesday, Schedules: []domain.ScheduleWindow{
			{ID: "S3", PermissionID: "P-wed", Entry: at("09:00"), Exit: at("10:00")},
		}},
		{ID: "P-mon", KeyID: keyID, DayOfWeek: domain.Monday, Schedules: []domain.ScheduleWindow{
			{ID: "S2", PermissionID: "P-mon", Entry: at("14:00"), Exit: at("18:00")},
			{ID: "S1", PermissionID: "P-mon", Entry: at("08:00"), Exit: at("12:00")},
		}},
	}
	f.keys.On("GetKey", mock.Anything, keyID).Return(domain.Key{ID: keyID}, nil)
	f.perms.On("ListByKey", mock.Anything, keyID).Return(perms, nil)

	first, err := f.svc.LoadSchedule(context.Background(), keyID)
	require.NoError(t, err)
	second, err := f.svc.LoadSchedule(context.Background(), keyID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first.Entries, 3)
	assert.Equal(t, "S1", first.Entries[0].ScheduleID)
	assert.Equal(t, "S2", first.Entries[1].ScheduleID)
	assert.Equal(t, "S3", first.Entries[2].ScheduleID)
	f.schedules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoadSchedule_EmptyIsNotAnError(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	f.keyWith(keyID, domain.Monday)

	schedule, err := f.svc.LoadSchedule(context.Background(), keyID)

	require.NoError(t, err)
	assert.Equal(t, keyID, schedule.KeyID)
	assert.NotNil(t, schedule.Entries)
	assert.Empty(t, schedule.Entries)
}

func TestLoadSchedule_Fail_KeyNotFound(t *testing.T) {
	f := newFixture(4)
	keyID := uuid.New().String()
	f.keys.On("GetKey", mock.Anything, keyID).Return(domain.Key{}, apperror.NewNotFoundError("chave"))

	_, err := f.svc.LoadSchedule(context.Background(), keyID)

	assert.IsType(t, &apperror.NotFoundError{}, err)
	f.perms.AssertNotCalled(t, "ListByKey", mock.Anything, mock.Anything)
}
