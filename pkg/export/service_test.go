package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaju/entities"
	"kaju/pkg/kvstore"
	"kaju/pkg/record"
)

func newTestService(t *testing.T) (*Service, *record.Stores) {
	t.Helper()
	stores := record.NewStores(kvstore.NewMemory(), record.DefaultKeys())
	return New(stores, time.UTC), stores
}

func sampleActivity(id, day string) entities.ActivityRecord {
	d, _ := time.Parse("2006-01-02", day)
	return entities.ActivityRecord{
		ID:        id,
		Type:      entities.ActivityHarvest,
		Date:      d,
		Photos:    []string{},
		CreatedAt: d,
		UpdatedAt: d,
	}
}

func TestCSVEmptyWhenNoRecords(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, "", svc.ActivitiesCSV())
}

func TestCSVShape(t *testing.T) {
	svc, stores := newTestService(t)

	v := 3.5
	a := sampleActivity("a1", "2024-05-01")
	a.Description = "収穫した, 甘い"
	a.Value = &v
	a.Unit = "kg"
	a.Weather = &entities.WeatherSnapshot{TemperatureC: 22.4, HumidityPct: 61, Condition: "晴れ"}
	require.NoError(t, stores.Activities.Save(a))
	require.NoError(t, stores.Activities.Save(sampleActivity("a2", "2024-05-02")))

	out := svc.ActivitiesCSV()
	require.True(t, strings.HasPrefix(out, "\uFEFF"), "BOM prefix")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "header + 2 rows")

	for _, line := range lines {
		fields := strings.Split(line, ",")
		assert.Len(t, fields, 12)
		for _, f := range fields {
			f = strings.TrimPrefix(f, "\uFEFF")
			assert.True(t, strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`), "field quoted: %s", f)
		}
	}

	// half-width comma in free text became full-width, so the column count held
	assert.Contains(t, out, "収穫した， 甘い")
	assert.NotContains(t, out, "収穫した, 甘い")
	assert.Contains(t, out, "22.4")
	assert.Contains(t, out, "61")
}

func TestBackupRoundTrip(t *testing.T) {
	svc, stores := newTestService(t)

	v := 2.0
	a := sampleActivity("a1", "2024-04-30")
	a.Value = &v
	a.Unit = "kg"
	a.Diagnosis = &entities.Diagnosis{Advice: "摘果を行ってください"}
	require.NoError(t, stores.Activities.Save(a))
	require.NoError(t, stores.Activities.Save(sampleActivity("a2", "2024-05-02")))
	require.NoError(t, stores.Trees.Save(entities.Tree{ID: "t1", Code: "A-1", Variety: "ふじ"}))

	b := svc.Backup(time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, BackupVersion, b.Version)
	assert.Equal(t, "2024-05-03T12:00:00Z", b.ExportDate)

	payload, err := json.Marshal(b)
	require.NoError(t, err)

	// restore into a cleared store
	require.NoError(t, stores.Activities.ClearAll())
	require.NoError(t, stores.Trees.ClearAll())

	nAct, nTree, err := svc.Import(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, nAct)
	assert.Equal(t, 1, nTree)

	acts := stores.Activities.GetAll()
	require.Len(t, acts, 2)
	assert.Equal(t, "a2", acts[0].ID) // date desc restored
	assert.Equal(t, "a1", acts[1].ID)
	require.NotNil(t, acts[1].Value)
	assert.Equal(t, 2.0, *acts[1].Value)
	require.NotNil(t, acts[1].Diagnosis)
	assert.Equal(t, "摘果を行ってください", acts[1].Diagnosis.Advice)

	trees := stores.Trees.GetAll()
	require.Len(t, trees, 1)
	assert.Equal(t, "ふじ", trees[0].Variety)
}

func TestImportRejectsMalformedPayload(t *testing.T) {
	svc, stores := newTestService(t)

	_, _, err := svc.Import([]byte("{not json"))
	require.Error(t, err)
	assert.Empty(t, stores.Activities.GetAll())

	// invalid record shape aborts before anything is written
	bad := `{"activities":[{"id":"a1","type":"swimming"}],"trees":[],"exportDate":"x","version":"1.0"}`
	_, _, err = svc.Import([]byte(bad))
	require.Error(t, err)
	assert.Empty(t, stores.Activities.GetAll())
}

func TestImportIsUpsertByID(t *testing.T) {
	svc, stores := newTestService(t)

	a := sampleActivity("a1", "2024-05-01")
	a.Description = "old"
	require.NoError(t, stores.Activities.Save(a))

	a.Description = "new"
	payload, err := json.Marshal(Backup{
		Activities: []entities.ActivityRecord{a},
		Trees:      []entities.Tree{},
		ExportDate: "2024-05-02T00:00:00Z",
		Version:    BackupVersion,
	})
	require.NoError(t, err)

	_, _, err = svc.Import(payload)
	require.NoError(t, err)

	got := stores.Activities.GetAll()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Description)
}

func TestWorkbookSheets(t *testing.T) {
	svc, stores := newTestService(t)

	require.NoError(t, stores.Activities.Save(sampleActivity("a1", "2024-05-01")))
	require.NoError(t, stores.Trees.Save(entities.Tree{ID: "t1", Code: "A-1"}))

	x, err := svc.Workbook()
	require.NoError(t, err)

	sheets := x.GetSheetList()
	assert.Contains(t, sheets, "活動記録")
	assert.Contains(t, sheets, "樹木")
	assert.Contains(t, sheets, "生育記録")
	assert.NotContains(t, sheets, "Sheet1")

	cell, err := x.GetCellValue("活動記録", "A1")
	require.NoError(t, err)
	assert.Equal(t, "日付", cell)
}
