package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaju/entities"
	"kaju/pkg/kvstore"
)

func newTestStores(t *testing.T) (*Stores, *kvstore.MemStore) {
	t.Helper()
	kv := kvstore.NewMemory()
	return NewStores(kv, DefaultKeys()), kv
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return d
}

func TestSaveIsUpsertByID(t *testing.T) {
	stores, _ := newTestStores(t)

	v := 3.0
	a := entities.ActivityRecord{
		ID:          "a1",
		Type:        entities.ActivityHarvest,
		Date:        mustDate(t, "2024-05-01T08:00:00Z"),
		Description: "picked 3kg",
		Value:       &v,
		Unit:        "kg",
		Photos:      []string{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, stores.Activities.Save(a))

	got := stores.Activities.GetAll()
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "picked 3kg", got[0].Description)
	require.NotNil(t, got[0].Value)
	assert.Equal(t, 3.0, *got[0].Value)

	// re-saving the same id replaces in place, collection size stays 1
	a.Description = "picked 3.2kg"
	require.NoError(t, stores.Activities.Save(a))

	got = stores.Activities.GetAll()
	require.Len(t, got, 1)
	assert.Equal(t, "picked 3.2kg", got[0].Description)
}

func TestActivitiesSortedByDateDesc(t *testing.T) {
	stores, _ := newTestStores(t)

	for _, day := range []string{"2024-05-02", "2024-05-10", "2024-05-01"} {
		a := entities.ActivityRecord{
			ID:   day,
			Type: entities.ActivityObserve,
			Date: mustDate(t, day+"T00:00:00Z"),
		}
		require.NoError(t, stores.Activities.Save(a))
	}

	got := stores.Activities.GetAll()
	require.Len(t, got, 3)
	assert.Equal(t, "2024-05-10", got[0].ID)
	assert.Equal(t, "2024-05-02", got[1].ID)
	assert.Equal(t, "2024-05-01", got[2].ID)
}

func TestTreesSortedByCodeAsc(t *testing.T) {
	stores, _ := newTestStores(t)

	for _, code := range []string{"B-2", "A-10", "A-1"} {
		require.NoError(t, stores.Trees.Save(entities.Tree{ID: "id-" + code, Code: code}))
	}
	got := stores.Trees.GetAll()
	require.Len(t, got, 3)
	assert.Equal(t, "A-1", got[0].Code)
	assert.Equal(t, "A-10", got[1].Code)
	assert.Equal(t, "B-2", got[2].Code)
}

func TestDeleteIsNoOpForMissingID(t *testing.T) {
	stores, _ := newTestStores(t)

	require.NoError(t, stores.Trees.Save(entities.Tree{ID: "t1", Code: "A-1"}))
	require.NoError(t, stores.Trees.Delete("t1"))
	assert.Empty(t, stores.Trees.GetAll())

	// absent id: no error, collection unchanged
	require.NoError(t, stores.Trees.Save(entities.Tree{ID: "t2", Code: "A-2"}))
	require.NoError(t, stores.Trees.Delete("nope"))
	assert.Len(t, stores.Trees.GetAll(), 1)
}

func TestClearAll(t *testing.T) {
	stores, _ := newTestStores(t)

	require.NoError(t, stores.Trees.Save(entities.Tree{ID: "t1", Code: "A-1"}))
	require.NoError(t, stores.Trees.ClearAll())
	assert.Empty(t, stores.Trees.GetAll())
}

func TestCorruptValueDegradesToEmpty(t *testing.T) {
	stores, kv := newTestStores(t)

	kv.Seed(DefaultKeys().Activities, "{not json")

	assert.Empty(t, stores.Activities.GetAll())

	// absence and corruption are distinct outcomes
	_, corrupt, err := stores.Activities.GetAllStrict()
	require.NoError(t, err)
	assert.True(t, corrupt)

	_, corrupt, err = stores.Trees.GetAllStrict()
	require.NoError(t, err)
	assert.False(t, corrupt)

	// a save repairs the key
	require.NoError(t, stores.Activities.Save(entities.ActivityRecord{ID: "a1", Type: entities.ActivityHarvest}))
	_, corrupt, _ = stores.Activities.GetAllStrict()
	assert.False(t, corrupt)
	assert.Len(t, stores.Activities.GetAll(), 1)
}

func TestWriteFailurePropagates(t *testing.T) {
	stores, kv := newTestStores(t)

	kv.FailPuts(true)
	err := stores.Activities.Save(entities.ActivityRecord{ID: "a1", Type: entities.ActivityHarvest})
	require.Error(t, err)

	kv.FailPuts(false)
	require.NoError(t, stores.Activities.Save(entities.ActivityRecord{ID: "a1", Type: entities.ActivityHarvest}))
}

func TestFindTreeByCode(t *testing.T) {
	stores, _ := newTestStores(t)

	require.NoError(t, stores.Trees.Save(entities.Tree{ID: "t1", Code: "A-1", Name: "ふじ"}))
	got, ok := stores.FindTreeByCode("A-1")
	require.True(t, ok)
	assert.Equal(t, "ふじ", got.Name)

	_, ok = stores.FindTreeByCode("Z-9")
	assert.False(t, ok)
}
