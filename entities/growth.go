package entities

import (
	"fmt"
	"strings"
	"time"
)

type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

func (h HealthStatus) IsValid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthFair, HealthPoor:
		return true
	default:
		return false
	}
}

func ParseHealthStatus(input string) (HealthStatus, error) {
	h := HealthStatus(strings.TrimSpace(strings.ToLower(input)))
	if !h.IsValid() {
		return "", fmt.Errorf("invalid health status: %q", input)
	}
	return h, nil
}

type GrowthRecord struct {
	ID              string       `json:"id"`
	TreeCode        string       `json:"tree_code"` // weak reference, no cascade on tree delete
	Date            time.Time    `json:"date"`
	HeightCM        *float64     `json:"height_cm,omitempty"`
	TrunkDiameterMM *float64     `json:"trunk_diameter_mm,omitempty"`
	LeafCount       *int         `json:"leaf_count,omitempty"`
	Health          HealthStatus `json:"health,omitempty"`
	Fertilizers     []string     `json:"fertilizers,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Photos          []string     `json:"photos,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
