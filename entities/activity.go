package entities

import (
	"fmt"
	"strings"
	"time"
)

type ActivityType string

const (
	ActivityHarvest     ActivityType = "harvest"
	ActivityFertilize   ActivityType = "fertilize"
	ActivityPrune       ActivityType = "prune"
	ActivityProcess     ActivityType = "process"
	ActivityObserve     ActivityType = "observe"
	ActivityPestControl ActivityType = "pestControl"
	ActivityMowing      ActivityType = "mowing"
	ActivityPlanting    ActivityType = "planting"
)

func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityHarvest, ActivityFertilize, ActivityPrune, ActivityProcess,
		ActivityObserve, ActivityPestControl, ActivityMowing, ActivityPlanting,
	}
}

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityHarvest, ActivityFertilize, ActivityPrune, ActivityProcess,
		ActivityObserve, ActivityPestControl, ActivityMowing, ActivityPlanting:
		return true
	default:
		return false
	}
}

func ParseActivityType(input string) (ActivityType, error) {
	t := ActivityType(strings.TrimSpace(input))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid activity type: %q", input)
	}
	return t, nil
}

// WeatherSnapshot is captured once when the activity is recorded and is
// immutable afterwards.
type WeatherSnapshot struct {
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	Condition    string  `json:"condition"`
}

// Diagnosis is produced once by the AI collaborator and frozen into the record.
type Diagnosis struct {
	Disease  string `json:"disease,omitempty"`
	Pest     string `json:"pest,omitempty"`
	Ripeness string `json:"ripeness,omitempty"`
	Advice   string `json:"advice,omitempty"`
}

type ActivityRecord struct {
	ID          string           `json:"id"`
	Type        ActivityType     `json:"type"`
	Date        time.Time        `json:"date"`
	TreeCode    string           `json:"tree_code,omitempty"` // weak reference to Tree.Code, may dangle
	Description string           `json:"description"`
	Value       *float64         `json:"value,omitempty"`
	Unit        string           `json:"unit,omitempty"`
	Photos      []string         `json:"photos"` // base64-encoded images, inlined
	Weather     *WeatherSnapshot `json:"weather,omitempty"`
	Diagnosis   *Diagnosis       `json:"diagnosis,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
