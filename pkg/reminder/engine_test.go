package reminder

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaju/entities"
	"kaju/pkg/kvstore"
	"kaju/pkg/record"
)

func newTestEngine(t *testing.T) (*Engine, *record.Stores) {
	t.Helper()
	stores := record.NewStores(kvstore.NewMemory(), record.DefaultKeys())
	return New(stores, time.UTC), stores
}

func saveActivity(t *testing.T, stores *record.Stores, id string, typ entities.ActivityType, date time.Time) {
	t.Helper()
	require.NoError(t, stores.Activities.Save(entities.ActivityRecord{
		ID: id, Type: typ, Date: date, CreatedAt: date, UpdatedAt: date,
	}))
}

func enableReminder(t *testing.T, e *Engine, typ entities.ActivityType, days int) {
	t.Helper()
	_, err := e.SetRule(typ, days, true)
	require.NoError(t, err)
}

func byKind(ns []entities.Notification, kind entities.NotificationKind) []entities.Notification {
	var out []entities.Notification
	for _, n := range ns {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func TestDueAtExactInterval(t *testing.T) {
	engine, stores := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	enableReminder(t, engine, entities.ActivityFertilize, 30)
	saveActivity(t, stores, "a1", entities.ActivityFertilize, now.AddDate(0, 0, -30))

	emitted := byKind(engine.Check(now), entities.NotificationReminder)
	require.Len(t, emitted, 1)
	assert.Equal(t, entities.ActivityFertilize, emitted[0].ActivityType)
}

func TestNotDueOneDayEarly(t *testing.T) {
	engine, stores := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	enableReminder(t, engine, entities.ActivityFertilize, 30)
	saveActivity(t, stores, "a1", entities.ActivityFertilize, now.AddDate(0, 0, -29))

	assert.Empty(t, byKind(engine.Check(now), entities.NotificationReminder))
}

func TestDueWhenNoMatchingActivityExists(t *testing.T) {
	engine, stores := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	enableReminder(t, engine, entities.ActivityPrune, 90)
	// a recent activity of a different type does not satisfy the rule
	saveActivity(t, stores, "a1", entities.ActivityHarvest, now.AddDate(0, 0, -1))

	emitted := engine.Check(now)
	require.Len(t, emitted, 1)
	assert.Equal(t, entities.NotificationReminder, emitted[0].Kind)
	assert.Equal(t, entities.ActivityPrune, emitted[0].ActivityType)
}

func TestDisabledReminderNeverFires(t *testing.T) {
	engine, _ := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	_, err := engine.SetRule(entities.ActivityPrune, 30, false)
	require.NoError(t, err)

	assert.Empty(t, engine.Check(now))
}

func TestNoSecondEmissionSameDay(t *testing.T) {
	engine, stores := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	enableReminder(t, engine, entities.ActivityFertilize, 30)
	saveActivity(t, stores, "a1", entities.ActivityFertilize, now.AddDate(0, 0, -45))

	require.Len(t, byKind(engine.Check(now), entities.NotificationReminder), 1)
	assert.Empty(t, engine.Check(now.Add(2*time.Hour)), "same day: suppressed")

	// the date change re-arms both the reminder and the inactivity check
	emitted := engine.Check(now.AddDate(0, 0, 1))
	require.Len(t, byKind(emitted, entities.NotificationReminder), 1)
	require.Len(t, byKind(emitted, entities.NotificationInactivity), 1)
}

func TestMultipleRemindersFireInOnePass(t *testing.T) {
	engine, stores := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	enableReminder(t, engine, entities.ActivityFertilize, 10)
	enableReminder(t, engine, entities.ActivityPestControl, 10)
	saveActivity(t, stores, "a1", entities.ActivityFertilize, now.AddDate(0, 0, -20))
	saveActivity(t, stores, "a2", entities.ActivityPestControl, now.AddDate(0, 0, -20))

	assert.Len(t, byKind(engine.Check(now), entities.NotificationReminder), 2)
}

func TestInactivityNotification(t *testing.T) {
	engine, stores := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	saveActivity(t, stores, "a1", entities.ActivityObserve, now.AddDate(0, 0, -8))

	emitted := engine.Check(now)
	require.Len(t, emitted, 1)
	assert.Equal(t, entities.NotificationInactivity, emitted[0].Kind)

	// only one inactivity notification per day
	assert.Empty(t, engine.Check(now.Add(time.Hour)))
}

func TestNoInactivityWhenRecentlyActive(t *testing.T) {
	engine, stores := newTestEngine(t)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	saveActivity(t, stores, "a1", entities.ActivityObserve, now.AddDate(0, 0, -3))
	assert.Empty(t, engine.Check(now))
}

func TestNotificationCapEvictsOldest(t *testing.T) {
	engine, stores := newTestEngine(t)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < entities.MaxNotifications+1; i++ {
		require.NoError(t, engine.Notify(entities.Notification{
			ID:        fmt.Sprintf("n%03d", i),
			Kind:      entities.NotificationInfo,
			Title:     "info",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got := stores.Notifications.GetAll()
	require.Len(t, got, entities.MaxNotifications)
	assert.Equal(t, "n050", got[0].ID, "newest first")
	assert.Equal(t, "n001", got[len(got)-1].ID, "oldest (n000) evicted")
}

func TestStampNotAdvancedOnPersistFailure(t *testing.T) {
	kv := kvstore.NewMemory()
	stores := record.NewStores(kv, record.DefaultKeys())
	engine := New(stores, time.UTC)
	now := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)

	enableReminder(t, engine, entities.ActivityFertilize, 10)
	saveActivity(t, stores, "a1", entities.ActivityFertilize, now.AddDate(0, 0, -20))

	kv.FailPuts(true)
	assert.Empty(t, engine.Check(now), "best-effort: silent no-op")

	// the next pass recomputes from scratch and succeeds
	kv.FailPuts(false)
	assert.Len(t, byKind(engine.Check(now), entities.NotificationReminder), 1)
}

func TestDaysBetweenFloors(t *testing.T) {
	from := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, daysBetween(from, from.Add(23*time.Hour)))
	assert.Equal(t, 1, daysBetween(from, from.Add(24*time.Hour)))
	assert.Equal(t, 1, daysBetween(from, from.Add(47*time.Hour)))
	assert.Equal(t, 0, daysBetween(from, from.Add(-time.Hour)), "future activity never due")
}
