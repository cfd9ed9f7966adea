package sheets

import (
	"strconv"
	"time"

	"kaju/entities"
)

// RowWidth is the fixed number of columns the append endpoint expects.
// The remote side creates headers on first write; both sides must agree on
// this layout.
const RowWidth = 18

// Row flattens an activity into the fixed 18-column order:
// id, type, date, time, tree code, description, value, unit, photo count,
// weather condition, temperature, humidity, disease, pest, ripeness, advice,
// createdAt, updatedAt. Absent optionals serialize to "" — never a literal
// null.
func Row(a entities.ActivityRecord, loc *time.Location) []string {
	if loc == nil {
		loc = time.Local
	}
	value, cond, temp, hum := "", "", "", ""
	disease, pest, ripeness, advice := "", "", "", ""
	if a.Value != nil {
		value = strconv.FormatFloat(*a.Value, 'f', -1, 64)
	}
	if a.Weather != nil {
		cond = a.Weather.Condition
		temp = strconv.FormatFloat(a.Weather.TemperatureC, 'f', 1, 64)
		hum = strconv.FormatFloat(a.Weather.HumidityPct, 'f', 0, 64)
	}
	if a.Diagnosis != nil {
		disease = a.Diagnosis.Disease
		pest = a.Diagnosis.Pest
		ripeness = a.Diagnosis.Ripeness
		advice = a.Diagnosis.Advice
	}
	return []string{
		a.ID,
		string(a.Type),
		a.Date.In(loc).Format("2006/01/02"),
		a.Date.In(loc).Format("15:04"),
		a.TreeCode,
		a.Description,
		value,
		a.Unit,
		strconv.Itoa(len(a.Photos)),
		cond,
		temp,
		hum,
		disease,
		pest,
		ripeness,
		advice,
		a.CreatedAt.UTC().Format(time.RFC3339),
		a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
