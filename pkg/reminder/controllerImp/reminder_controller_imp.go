package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kaju/entities"
	"kaju/pkg/record"
	"kaju/pkg/reminder"
)

type ReminderCtrl struct {
	engine *reminder.Engine
	stores *record.Stores
}

func New(engine *reminder.Engine, stores *record.Stores) *ReminderCtrl {
	return &ReminderCtrl{engine: engine, stores: stores}
}

func (h *ReminderCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stores.Reminders.GetAll())
}

func (h *ReminderCtrl) Put(c echo.Context) error {
	t, err := entities.ParseActivityType(c.Param("type"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	var body struct {
		IntervalDays int  `json:"interval_days"`
		Enabled      bool `json:"enabled"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	r, err := h.engine.SetRule(t, body.IntervalDays, body.Enabled)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, r)
}

// Check runs one reminder pass on demand and returns what it emitted.
func (h *ReminderCtrl) Check(c echo.Context) error {
	emitted := h.engine.Check(time.Now())
	if emitted == nil {
		emitted = []entities.Notification{}
	}
	return c.JSON(http.StatusOK, map[string]any{"emitted": emitted})
}

func (h *ReminderCtrl) Notifications(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stores.Notifications.GetAll())
}

func (h *ReminderCtrl) MarkRead(c echo.Context) error {
	id := c.Param("id")
	for _, n := range h.stores.Notifications.GetAll() {
		if n.ID == id {
			n.Read = true
			if err := h.stores.Notifications.Save(n); err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusOK, n)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *ReminderCtrl) MarkAllRead(c echo.Context) error {
	list := h.stores.Notifications.GetAll()
	for i := range list {
		list[i].Read = true
	}
	if err := h.stores.Notifications.ReplaceAll(list); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
