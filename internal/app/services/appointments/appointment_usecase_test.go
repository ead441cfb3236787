package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
	"trimline-service/internal/app/config"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/slots"
	"trimline-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAppointmentRepo keeps rows in insertion order, mirroring the ascending
// _id ordering the real repository returns.
type fakeAppointmentRepo struct {
	rows    []models.Appointment
	findErr error
}

func (f *fakeAppointmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeAppointmentRepo) FindAllOrdered(ctx context.Context) ([]models.Appointment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	rows := make([]models.Appointment, len(f.rows))
	copy(rows, f.rows)
	return rows, nil
}

func (f *fakeAppointmentRepo) Upsert(ctx context.Context, day, timeLabel, name string) error {
	for i, row := range f.rows {
		if row.Day == day && row.Time == timeLabel {
			f.rows[i].Name = name
			return nil
		}
	}
	f.rows = append(f.rows, models.Appointment{Day: day, Time: timeLabel, Name: name})
	return nil
}

func (f *fakeAppointmentRepo) DeleteByKey(ctx context.Context, day, timeLabel string) error {
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.Day != day || row.Time != timeLabel {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeAppointmentRepo) DeleteAll(ctx context.Context) error {
	f.rows = nil
	return nil
}

func (f *fakeAppointmentRepo) InsertBatch(ctx context.Context, appointments []models.Appointment) error {
	f.rows = append(f.rows, appointments...)
	return nil
}

type fakeRedisRepo struct {
	data map[string]string
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{data: make(map[string]string)}
}

func (f *fakeRedisRepo) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepo) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(payload)
	return nil
}

func (f *fakeRedisRepo) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newTestUsecase(repo *fakeAppointmentRepo, redis *fakeRedisRepo) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: repo,
		RedisRepository:       redis,
		Schedule:              slots.DefaultSchedule(),
		InternalConfig: &config.InternalConfig{
			Sync: config.Sync{PollIntervalSeconds: 4},
		},
		Log: zap.NewNop(),
	}
}

func TestFetchStore_FoldsDuplicatesBlankNeverOverwrites(t *testing.T) {
	repo := &fakeAppointmentRepo{rows: []models.Appointment{
		{Day: "2026-09-01", Time: "09:00", Name: "Ana"},
		{Day: "2026-09-01", Time: "09:00", Name: "  "},
		{Day: "2026-09-01", Time: "09:30", Name: "Bruno"},
		{Day: "2026-09-01", Time: "09:30", Name: "Carla"},
	}}
	uc := newTestUsecase(repo, newFakeRedisRepo())

	store, err := uc.FetchStore(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ana", store.Get("2026-09-01", "09:00"),
		"a later blank row must not erase the earlier booking")
	assert.Equal(t, "Carla", store.Get("2026-09-01", "09:30"),
		"a later non-blank row must replace the earlier one")
}

func TestFetchStore_DegradesToEmptyStoreOnBackendError(t *testing.T) {
	repo := &fakeAppointmentRepo{findErr: errors.New("connection reset")}
	uc := newTestUsecase(repo, newFakeRedisRepo())

	store, err := uc.FetchStore(context.Background())
	require.NoError(t, err, "read failures must degrade, not propagate")
	assert.Empty(t, store)
}

func TestFetchStore_ServesSecondReadFromCache(t *testing.T) {
	repo := &fakeAppointmentRepo{rows: []models.Appointment{
		{Day: "2026-09-01", Time: "09:00", Name: "Ana"},
	}}
	uc := newTestUsecase(repo, newFakeRedisRepo())

	first, err := uc.FetchStore(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Ana", first.Get("2026-09-01", "09:00"))

	// A backend outage after the first read must not matter while the
	// cached snapshot is live.
	repo.findErr = errors.New("connection reset")

	second, err := uc.FetchStore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", second.Get("2026-09-01", "09:00"))
}

func TestSetSlot_RejectsMalformedInput(t *testing.T) {
	uc := newTestUsecase(&fakeAppointmentRepo{}, newFakeRedisRepo())

	testCases := []struct {
		name    string
		request *requests.SlotMutation
	}{
		{"bad day", &requests.SlotMutation{Op: "set", Day: "01-09-2026", Time: "09:00", Name: "Ana"}},
		{"bad time", &requests.SlotMutation{Op: "set", Day: "2026-09-01", Time: "9am", Name: "Ana"}},
		{"bad op", &requests.SlotMutation{Op: "book", Day: "2026-09-01", Time: "09:00", Name: "Ana"}},
		{"missing day", &requests.SlotMutation{Op: "set", Time: "09:00", Name: "Ana"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.SetSlot(context.Background(), tc.request)
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		})
	}
}

func TestSetSlot_RejectsTimeOutsideSchedule(t *testing.T) {
	uc := newTestUsecase(&fakeAppointmentRepo{}, newFakeRedisRepo())

	// 23:00 is well-formed but past the last bookable label.
	err := uc.SetSlot(context.Background(), &requests.SlotMutation{
		Op: "set", Day: "2026-09-01", Time: "23:00", Name: "Ana",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientTimeOutsideSchedule, customErr.ClientMessage)
}

func TestSetSlot_SetThenClearRoundTrip(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUsecase(repo, newFakeRedisRepo())
	ctx := context.Background()

	require.NoError(t, uc.SetSlot(ctx, &requests.SlotMutation{
		Op: "set", Day: "2026-09-01", Time: "09:00", Name: "  Ana  ",
	}))
	store, err := uc.FetchStore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", store.Get("2026-09-01", "09:00"), "names are stored trimmed")

	require.NoError(t, uc.SetSlot(ctx, &requests.SlotMutation{
		Op: "clear", Day: "2026-09-01", Time: "09:00",
	}))
	// Clearing the already-clear slot again is a no-op, not an error.
	require.NoError(t, uc.SetSlot(ctx, &requests.SlotMutation{
		Op: "clear", Day: "2026-09-01", Time: "09:00",
	}))

	store, err = uc.FetchStore(ctx)
	require.NoError(t, err)
	assert.Empty(t, store)
}

func TestSetSlot_BlankNameBehavesAsClear(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUsecase(repo, newFakeRedisRepo())
	ctx := context.Background()

	require.NoError(t, uc.SetSlot(ctx, &requests.SlotMutation{
		Op: "set", Day: "2026-09-01", Time: "09:00", Name: "Ana",
	}))
	require.NoError(t, uc.SetSlot(ctx, &requests.SlotMutation{
		Op: "set", Day: "2026-09-01", Time: "09:00", Name: "   ",
	}))

	assert.Empty(t, repo.rows, "a blank set must remove the row, not persist a blank name")
}

func TestSetSlot_InvalidatesCachedSnapshot(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	redis := newFakeRedisRepo()
	uc := newTestUsecase(repo, redis)
	ctx := context.Background()

	_, err := uc.FetchStore(ctx)
	require.NoError(t, err)
	require.Contains(t, redis.data, constvars.RedisKeyStoreSnapshot)

	require.NoError(t, uc.SetSlot(ctx, &requests.SlotMutation{
		Op: "set", Day: "2026-09-01", Time: "09:00", Name: "Ana",
	}))

	assert.NotContains(t, redis.data, constvars.RedisKeyStoreSnapshot,
		"a write must drop the cached snapshot so the next read sees it")
}

func TestReplaceStore_RequiresConfirmFlag(t *testing.T) {
	uc := newTestUsecase(&fakeAppointmentRepo{}, newFakeRedisRepo())

	err := uc.ReplaceStore(context.Background(), &requests.BulkOverwrite{
		Store: map[string]map[string]string{},
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientOverwriteNotConfirmed, customErr.ClientMessage)
}

func TestReplaceStore_RequiresStorePayload(t *testing.T) {
	uc := newTestUsecase(&fakeAppointmentRepo{}, newFakeRedisRepo())

	err := uc.ReplaceStore(context.Background(), &requests.BulkOverwrite{ConfirmFlag: true})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientStoreMissing, customErr.ClientMessage)
}

func TestReplaceStore_FiltersMalformedEntriesAndReplacesAll(t *testing.T) {
	repo := &fakeAppointmentRepo{rows: []models.Appointment{
		{Day: "2026-08-30", Time: "09:00", Name: "Old"},
	}}
	uc := newTestUsecase(repo, newFakeRedisRepo())
	ctx := context.Background()

	err := uc.ReplaceStore(ctx, &requests.BulkOverwrite{
		ConfirmFlag: true,
		Store: map[string]map[string]string{
			"2026-09-01": {
				"09:00": "Ana",
				"9am":   "Bruno", // malformed time label
				"09:30": "   ",   // blank name
				"07:15": "Carla", // off-schedule but well-formed: kept
			},
			"not-a-day": {"09:00": "Diego"},
		},
	})
	require.NoError(t, err)

	store, err := uc.FetchStore(ctx)
	require.NoError(t, err)

	assert.Empty(t, store.Get("2026-08-30", "09:00"), "overwrite replaces the previous store wholesale")
	assert.Equal(t, "Ana", store.Get("2026-09-01", "09:00"))
	assert.Equal(t, "Carla", store.Get("2026-09-01", "07:15"))
	assert.Empty(t, store.Get("2026-09-01", "9am"))
	assert.Empty(t, store.Get("2026-09-01", "09:30"))
	assert.Empty(t, store.Get("not-a-day", "09:00"))
}

func TestReplaceStore_EmptyStoreClearsEverything(t *testing.T) {
	repo := &fakeAppointmentRepo{rows: []models.Appointment{
		{Day: "2026-08-30", Time: "09:00", Name: "Old"},
	}}
	uc := newTestUsecase(repo, newFakeRedisRepo())

	err := uc.ReplaceStore(context.Background(), &requests.BulkOverwrite{
		ConfirmFlag: true,
		Store:       map[string]map[string]string{},
	})
	require.NoError(t, err)
	assert.Empty(t, repo.rows)
}

func TestValidateStructAcceptsCanonicalMutation(t *testing.T) {
	err := utils.ValidateStruct(&requests.SlotMutation{
		Op: "set", Day: "2026-09-01", Time: "09:00", Name: "Ana",
	})
	assert.NoError(t, err)
}
