package memory_test

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/shenikar/crash_alert_system/internal/repository/memory"
	"github.com/shenikar/crash_alert_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ service.CrashRepository    = (*memory.CrashStore)(nil)
	_ service.DeviceRepository   = (*memory.DeviceStore)(nil)
	_ service.DispatchRepository = (*memory.DispatchStore)(nil)
	_ service.ContactResolver    = (*memory.ContactStore)(nil)
)

func TestCrashStore_TransitionOnlyForward(t *testing.T) {
	store := memory.NewCrashStore()
	ctx := context.Background()
	now := time.Now()

	created, err := store.CreateOrMerge(ctx, models.NewCrashRecord(models.CrashReport{
		IncidentID: "X1", ReporterID: "A", VictimUserID: "U1", ReportedAt: now,
	}))
	require.NoError(t, err)
	require.True(t, created)

	ok, err := store.TransitionState(ctx, "X1", models.StateClaimed, models.StateCompleted, now)
	require.NoError(t, err)
	assert.False(t, ok, "cannot complete an unclaimed incident")

	ok, err = store.TransitionState(ctx, "X1", models.StateUnclaimed, models.StateClaimed, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.TransitionState(ctx, "X1", models.StateClaimed, models.StateUnclaimed, now)
	require.NoError(t, err)
	assert.False(t, ok, "backward transition must be refused")

	record, err := store.GetByIncidentID(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, models.StateClaimed, record.ProcessingState)
	require.NotNil(t, record.ProcessingClaimedAt)

	_, err = store.TransitionState(ctx, "missing", models.StateUnclaimed, models.StateClaimed, now)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestCrashStore_CreateOrMergeFoldsSecondCreate(t *testing.T) {
	store := memory.NewCrashStore()
	ctx := context.Background()

	first, err := store.CreateOrMerge(ctx, models.NewCrashRecord(models.CrashReport{IncidentID: "X1", ReporterID: "A", VictimUserID: "U1"}))
	require.NoError(t, err)
	second, err := store.CreateOrMerge(ctx, models.NewCrashRecord(models.CrashReport{IncidentID: "X1", ReporterID: "B", VictimUserID: "U1"}))
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)

	record, err := store.GetByIncidentID(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, "A", record.FirstReporterID)
	require.Len(t, record.DuplicateReports, 1)
	assert.Equal(t, "B", record.DuplicateReports[0].ReporterID)
}

func TestCrashStore_ReturnsCopies(t *testing.T) {
	store := memory.NewCrashStore()
	ctx := context.Background()
	_, err := store.CreateOrMerge(ctx, models.NewCrashRecord(models.CrashReport{IncidentID: "X1", ReporterID: "A", VictimUserID: "U1"}))
	require.NoError(t, err)

	record, err := store.GetByIncidentID(ctx, "X1")
	require.NoError(t, err)
	record.ProcessingState = models.StateCompleted

	again, err := store.GetByIncidentID(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, models.StateUnclaimed, again.ProcessingState)
}

func TestDeviceStore_DeactivatePromotesMostRecent(t *testing.T) {
	store := memory.NewDeviceStore()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"D1", "D2", "D3"} {
		_, err := store.Upsert(ctx, models.DeviceRegistration{UserID: "U1", DeviceID: id, DeliveryAddress: "tok-" + id, At: base.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
	}

	promoted, err := store.Deactivate(ctx, "U1", "D1")
	require.NoError(t, err)
	require.NotNil(t, promoted)
	assert.Equal(t, "D3", promoted.DeviceID)

	again, err := store.Deactivate(ctx, "U1", "D1")
	require.NoError(t, err)
	assert.Nil(t, again)

	_, err = store.Deactivate(ctx, "U1", "nope")
	assert.ErrorIs(t, err, models.ErrDeviceNotFound)
}

func TestDeviceStore_ReRegisterReactivates(t *testing.T) {
	store := memory.NewDeviceStore()
	ctx := context.Background()

	_, err := store.Upsert(ctx, models.DeviceRegistration{UserID: "U1", DeviceID: "D1", DeliveryAddress: "old", At: time.Now()})
	require.NoError(t, err)
	_, err = store.Deactivate(ctx, "U1", "D1")
	require.NoError(t, err)

	entry, err := store.Upsert(ctx, models.DeviceRegistration{UserID: "U1", DeviceID: "D1", DeliveryAddress: "new", At: time.Now()})
	require.NoError(t, err)

	assert.True(t, entry.IsActive)
	assert.True(t, entry.IsPrimary)
	assert.Equal(t, "new", entry.DeliveryAddress)
}

func TestDeviceStore_OnePrimaryUnderConcurrentInterleavings(t *testing.T) {
	store := memory.NewDeviceStore()
	ctx := context.Background()
	ids := []string{"D1", "D2", "D3", "D4"}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < 200; i++ {
				id := ids[rnd.Intn(len(ids))]
				switch rnd.Intn(3) {
				case 0:
					_, _ = store.Upsert(ctx, models.DeviceRegistration{UserID: "U1", DeviceID: id, DeliveryAddress: fmt.Sprintf("tok-%d", i), At: time.Now()})
				case 1:
					_ = store.SetPrimary(ctx, "U1", id)
				case 2:
					_, _ = store.Deactivate(ctx, "U1", id)
				}
			}
		}(int64(w))
	}
	wg.Wait()

	active, err := store.ListActive(ctx, "U1")
	require.NoError(t, err)
	primaries := 0
	for _, d := range active {
		if d.IsPrimary {
			primaries++
		}
	}
	if len(active) == 0 {
		assert.Zero(t, primaries)
		return
	}
	assert.Equal(t, 1, primaries)
}

func TestDispatchStore_FinishIsTerminal(t *testing.T) {
	store := memory.NewDispatchStore()
	ctx := context.Background()
	created := time.Now().Add(-time.Hour)

	require.NoError(t, store.CreateAttempt(ctx, &models.DispatchAttempt{AlertID: "a1", IncidentID: "X1", State: models.AttemptPending, CreatedAt: created}))
	require.NoError(t, store.CreateAttempt(ctx, &models.DispatchAttempt{AlertID: "a2", IncidentID: "X1", State: models.AttemptPending, CreatedAt: created.Add(time.Second)}))

	require.NoError(t, store.FinishAttempt(ctx, &models.DispatchAttempt{AlertID: "a1", State: models.AttemptDelivered, Attempts: 1}))
	require.NoError(t, store.FinishAttempt(ctx, &models.DispatchAttempt{AlertID: "a1", State: models.AttemptFailed, FailureReason: "late"}))

	n, err := store.FailStalePending(ctx, time.Now(), "pending timeout")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	attempts, err := store.ListByIncident(ctx, "X1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, models.AttemptDelivered, attempts[0].State)
	assert.Equal(t, models.AttemptFailed, attempts[1].State)
	assert.Equal(t, "pending timeout", attempts[1].FailureReason)
}

func TestContactStore_ResolveContacts(t *testing.T) {
	store := memory.NewContactStore()
	store.AddContact("U1", "C1")
	store.AddContact("U1", "C2")
	store.AddContact("U1", "C1")

	contacts, err := store.ResolveContacts(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, []string{"C1", "C2"}, contacts)

	none, err := store.ResolveContacts(context.Background(), "U2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
