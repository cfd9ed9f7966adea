// Package reminder derives "time since last activity of type X" from the
// record store and materializes notifications when configured intervals
// elapse.
package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"kaju/entities"
	"kaju/pkg/record"
)

// InactivityThresholdDays triggers the type-independent check: when the most
// recent activity of any kind is at least this old, one inactivity
// notification per day is emitted.
const InactivityThresholdDays = 7

type Engine struct {
	stores *record.Stores
	loc    *time.Location
}

func New(stores *record.Stores, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{stores: stores, loc: loc}
}

// Check runs one pass over every enabled reminder plus the inactivity check
// and returns the notifications emitted in this pass. Persistence failures
// are logged and skipped; the un-advanced LastNotifiedDate means the next
// pass recomputes from scratch.
func (e *Engine) Check(now time.Time) []entities.Notification {
	acts := e.stores.Activities.GetAll() // date desc
	lastByType := map[entities.ActivityType]time.Time{}
	for _, a := range acts {
		if _, seen := lastByType[a.Type]; !seen {
			lastByType[a.Type] = a.Date
		}
	}

	var emitted []entities.Notification

	for _, r := range e.stores.Reminders.GetAll() {
		if !r.Enabled || r.IntervalDays <= 0 {
			continue
		}
		last, hasAny := lastByType[r.Type]
		if hasAny && daysBetween(last, now) < r.IntervalDays {
			continue
		}
		if r.LastNotifiedDate != nil && sameDay(*r.LastNotifiedDate, now, e.loc) {
			continue // already notified today
		}

		n := e.reminderNotification(r, last, hasAny, now)
		if err := e.push(n); err != nil {
			log.Printf("[reminder] notify %s: %v", r.Type, err)
			continue
		}
		today := startOfDay(now, e.loc)
		r.LastNotifiedDate = &today
		if err := e.stores.Reminders.Save(r); err != nil {
			log.Printf("[reminder] stamp %s: %v", r.Type, err)
			continue
		}
		emitted = append(emitted, n)
	}

	if n, ok := e.inactivityNotification(acts, now); ok {
		if err := e.push(n); err != nil {
			log.Printf("[reminder] notify inactivity: %v", err)
		} else {
			emitted = append(emitted, n)
		}
	}

	return emitted
}

func (e *Engine) reminderNotification(r entities.Reminder, last time.Time, hasAny bool, now time.Time) entities.Notification {
	label := typeLabel(r.Type)
	msg := fmt.Sprintf("「%s」の記録がまだありません。そろそろ作業時期です。", label)
	if hasAny {
		msg = fmt.Sprintf("前回の%sから%d日経過しました。", label, daysBetween(last, now))
	}
	return entities.Notification{
		ID:           uuid.NewString(),
		Kind:         entities.NotificationReminder,
		Title:        label + "のリマインダー",
		Message:      msg,
		ActivityType: r.Type,
		CreatedAt:    now,
	}
}

func (e *Engine) inactivityNotification(acts []entities.ActivityRecord, now time.Time) (entities.Notification, bool) {
	if len(acts) == 0 {
		return entities.Notification{}, false
	}
	days := daysBetween(acts[0].Date, now)
	if days < InactivityThresholdDays {
		return entities.Notification{}, false
	}
	for _, n := range e.stores.Notifications.GetAll() {
		if n.Kind == entities.NotificationInactivity && sameDay(n.CreatedAt, now, e.loc) {
			return entities.Notification{}, false
		}
	}
	return entities.Notification{
		ID:        uuid.NewString(),
		Kind:      entities.NotificationInactivity,
		Title:     "記録が途切れています",
		Message:   fmt.Sprintf("最後の記録から%d日経過しました。園地の様子を記録しましょう。", days),
		CreatedAt: now,
	}, true
}

// Notify appends a notification through the capped list; other components
// use it for info-kind events.
func (e *Engine) Notify(n entities.Notification) error {
	return e.push(n)
}

// push prepends the notification and evicts the oldest entries beyond the
// cap. GetAll is newest-first, so the tail holds the oldest.
func (e *Engine) push(n entities.Notification) error {
	list := e.stores.Notifications.GetAll()
	list = append([]entities.Notification{n}, list...)
	if len(list) > entities.MaxNotifications {
		list = list[:entities.MaxNotifications]
	}
	return e.stores.Notifications.ReplaceAll(list)
}

// SetRule upserts the reminder for one activity type, preserving the
// last-notified stamp across edits.
func (e *Engine) SetRule(t entities.ActivityType, intervalDays int, enabled bool) (entities.Reminder, error) {
	if intervalDays <= 0 {
		return entities.Reminder{}, fmt.Errorf("interval_days must be positive")
	}
	r := entities.Reminder{Type: t, IntervalDays: intervalDays, Enabled: enabled}
	for _, old := range e.stores.Reminders.GetAll() {
		if old.Type == t {
			r.LastNotifiedDate = old.LastNotifiedDate
			break
		}
	}
	return r, e.stores.Reminders.Save(r)
}

// daysBetween is the floor of the elapsed time in whole days.
func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func typeLabel(t entities.ActivityType) string {
	switch t {
	case entities.ActivityHarvest:
		return "収穫"
	case entities.ActivityFertilize:
		return "施肥"
	case entities.ActivityPrune:
		return "剪定"
	case entities.ActivityProcess:
		return "加工"
	case entities.ActivityObserve:
		return "観察"
	case entities.ActivityPestControl:
		return "防除"
	case entities.ActivityMowing:
		return "草刈り"
	case entities.ActivityPlanting:
		return "植え付け"
	default:
		return string(t)
	}
}
