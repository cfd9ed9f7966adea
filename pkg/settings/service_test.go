package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaju/entities"
	"kaju/pkg/kvstore"
)

func newTestService() (*Service, *kvstore.MemStore) {
	kv := kvstore.NewMemory()
	return New(kv, "theme", "sheets_sync_config"), kv
}

func TestThemeDefaultsToLight(t *testing.T) {
	svc, _ := newTestService()
	assert.Equal(t, "light", svc.Theme())
}

func TestSetTheme(t *testing.T) {
	svc, _ := newTestService()

	require.NoError(t, svc.SetTheme("dark"))
	assert.Equal(t, "dark", svc.Theme())

	require.Error(t, svc.SetTheme("sepia"))
	assert.Equal(t, "dark", svc.Theme(), "rejected value does not stick")
}

func TestSheetsConfigAbsent(t *testing.T) {
	svc, _ := newTestService()
	_, ok := svc.SheetsConfig()
	assert.False(t, ok)
}

func TestSheetsConfigRoundTrip(t *testing.T) {
	svc, _ := newTestService()

	require.NoError(t, svc.SetSheetsConfig(entities.SheetsSyncConfig{SpreadsheetID: "sheet-1"}))

	cfg, ok := svc.SheetsConfig()
	require.True(t, ok)
	assert.Equal(t, "sheet-1", cfg.SpreadsheetID)
	assert.Equal(t, "シート1", cfg.SheetName, "default sheet name")
}

func TestSheetsConfigRequiresSpreadsheetID(t *testing.T) {
	svc, _ := newTestService()
	require.Error(t, svc.SetSheetsConfig(entities.SheetsSyncConfig{SheetName: "記録"}))
}

func TestSheetsConfigCorruptValueTreatedAsAbsent(t *testing.T) {
	svc, kv := newTestService()
	kv.Seed("sheets_sync_config", "{broken")
	_, ok := svc.SheetsConfig()
	assert.False(t, ok)
}
