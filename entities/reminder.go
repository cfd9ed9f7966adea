package entities

import "time"

// Reminder is a per-activity-type recurring due rule. At most one reminder
// exists per activity type; the type doubles as the record identity.
type Reminder struct {
	Type             ActivityType `json:"type"`
	IntervalDays     int          `json:"interval_days"`
	Enabled          bool         `json:"enabled"`
	LastNotifiedDate *time.Time   `json:"last_notified_date,omitempty"`
}
