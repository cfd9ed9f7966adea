// Package export converts the record store contents to the interchange
// forms: the spreadsheet-friendly CSV, the round-trippable JSON backup, and
// an xlsx workbook.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kaju/entities"
	"kaju/pkg/record"
)

const BackupVersion = "1.0"

// csvHeader is the fixed 12-column layout of the activity CSV.
var csvHeader = []string{
	"日付", "作業種別", "樹番号", "内容", "数値", "単位",
	"写真枚数", "天気", "気温", "湿度", "AIアドバイス", "登録日時",
}

var typeLabels = map[entities.ActivityType]string{
	entities.ActivityHarvest:     "収穫",
	entities.ActivityFertilize:   "施肥",
	entities.ActivityPrune:       "剪定",
	entities.ActivityProcess:     "加工",
	entities.ActivityObserve:     "観察",
	entities.ActivityPestControl: "防除",
	entities.ActivityMowing:      "草刈り",
	entities.ActivityPlanting:    "植え付け",
}

func TypeLabel(t entities.ActivityType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

type Service struct {
	stores *record.Stores
	loc    *time.Location
}

func New(stores *record.Stores, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{stores: stores, loc: loc}
}

// ActivitiesCSV renders every activity as a quoted, comma-separated row with
// a UTF-8 BOM so spreadsheet applications pick up the encoding. Commas inside
// free text are swapped for a full-width comma before quoting; this path is
// export-only and not parsed back. Zero records yield an empty string, which
// callers must treat as "nothing to export".
func (s *Service) ActivitiesCSV() string {
	acts := s.stores.Activities.GetAll()
	if len(acts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\uFEFF") // BOM for Excel
	b.WriteString(joinQuoted(csvHeader))
	b.WriteString("\n")
	for _, a := range acts {
		b.WriteString(joinQuoted(s.csvRow(a)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Service) csvRow(a entities.ActivityRecord) []string {
	value, cond, temp, hum, advice := "", "", "", "", ""
	if a.Value != nil {
		value = strconv.FormatFloat(*a.Value, 'f', -1, 64)
	}
	if a.Weather != nil {
		cond = a.Weather.Condition
		temp = fmt.Sprintf("%.1f", a.Weather.TemperatureC)
		hum = fmt.Sprintf("%.0f", a.Weather.HumidityPct)
	}
	if a.Diagnosis != nil {
		advice = a.Diagnosis.Advice
	}
	return []string{
		a.Date.In(s.loc).Format("2006/01/02"),
		TypeLabel(a.Type),
		a.TreeCode,
		sanitize(a.Description),
		value,
		a.Unit,
		strconv.Itoa(len(a.Photos)),
		cond,
		temp,
		hum,
		sanitize(advice),
		a.CreatedAt.In(s.loc).Format("2006/01/02 15:04"),
	}
}

// sanitize swaps half-width commas for full-width ones. Not real CSV
// escaping; the export is one-directional.
func sanitize(s string) string {
	return strings.ReplaceAll(s, ",", "，")
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + f + `"`
	}
	return strings.Join(quoted, ",")
}
