package entities

import "time"

type NotificationKind string

const (
	NotificationReminder   NotificationKind = "reminder"
	NotificationInactivity NotificationKind = "inactivity"
	NotificationInfo       NotificationKind = "info"
)

// MaxNotifications caps the stored notification list; the oldest entries are
// evicted once the cap is exceeded.
const MaxNotifications = 50

type Notification struct {
	ID           string           `json:"id"`
	Kind         NotificationKind `json:"kind"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	ActivityType ActivityType     `json:"activity_type,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	Read         bool             `json:"read"`
}
