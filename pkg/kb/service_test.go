package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaju/pkg/kvstore"
	"kaju/pkg/record"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return New(record.NewStores(kvstore.NewMemory(), record.DefaultKeys()))
}

func TestUpsertRequiresTitleAndText(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upsert("", "", "body", "")
	require.Error(t, err)
	_, err = svc.Upsert("title", "", "  ", "")
	require.Error(t, err)

	d, err := svc.Upsert("  剪定の基本  ", "剪定", "冬季に行う", "")
	require.NoError(t, err)
	assert.Equal(t, "剪定の基本", d.Title)
	assert.NotEmpty(t, d.ID)
}

func TestSearchRanksTitleHitsHigher(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upsert("黒星病の対策", "病気", "発生初期に防除する", "")
	require.NoError(t, err)
	_, err = svc.Upsert("施肥計画", "肥料", "黒星病が出た年は控えめに", "")
	require.NoError(t, err)

	hits := svc.Search("黒星病", 10)
	require.Len(t, hits, 2)
	assert.Equal(t, "黒星病の対策", hits[0].Title, "title match outranks body match")

	assert.Empty(t, svc.Search("アブラムシ", 10))
	assert.Empty(t, svc.Search("", 10))
	assert.Len(t, svc.Search("黒星病", 1), 1)
}

func TestContextJoinsTopMatches(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upsert("摘果の時期", "摘果", "満開後30日を目安に行う", "")
	require.NoError(t, err)

	ctx := svc.Context("摘果", 3, 4000)
	assert.Contains(t, ctx, "摘果の時期")
	assert.Contains(t, ctx, "満開後30日")
	assert.Empty(t, svc.Context("存在しない語", 3, 4000))
}
