package controllerImp

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"kaju/entities"
	"kaju/pkg/ai"
	"kaju/pkg/kb"
	"kaju/pkg/record"
	"kaju/pkg/sheets"
	"kaju/pkg/weather"
)

type ActivityCtrl struct {
	stores *record.Stores
	sync   *sheets.Client
	wx     weather.Client
	diag   ai.Client
	kb     *kb.Service
	loc    *time.Location
}

func New(stores *record.Stores, sync *sheets.Client, wx weather.Client, diag ai.Client, kbSvc *kb.Service, loc *time.Location) *ActivityCtrl {
	if loc == nil {
		loc = time.Local
	}
	return &ActivityCtrl{stores: stores, sync: sync, wx: wx, diag: diag, kb: kbSvc, loc: loc}
}

type activityReq struct {
	Type        string                    `json:"type"`
	Date        string                    `json:"date"`
	TreeCode    string                    `json:"tree_code"`
	Description string                    `json:"description"`
	Value       *float64                  `json:"value"`
	Unit        string                    `json:"unit"`
	Photos      []string                  `json:"photos"`
	Weather     *entities.WeatherSnapshot `json:"weather"`

	// capture_weather fetches a snapshot at creation when none is supplied
	CaptureWeather bool     `json:"capture_weather"`
	Lat            *float64 `json:"lat"`
	Lon            *float64 `json:"lon"`
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	var req activityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	t, err := entities.ParseActivityType(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	now := time.Now()
	a := entities.ActivityRecord{
		ID:          uuid.NewString(),
		Type:        t,
		Date:        parseDate(req.Date, now),
		TreeCode:    req.TreeCode,
		Description: req.Description,
		Value:       req.Value,
		Unit:        req.Unit,
		Photos:      req.Photos,
		Weather:     req.Weather,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if a.Photos == nil {
		a.Photos = []string{}
	}

	if a.Weather == nil && req.CaptureWeather && req.Lat != nil && req.Lon != nil && h.wx != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
		snap, err := h.wx.Snapshot(ctx, *req.Lat, *req.Lon)
		cancel()
		if err != nil {
			log.Printf("[activity] weather capture: %v", err) // best-effort, record saves without it
		} else {
			a.Weather = snap
		}
	}

	saveErr := h.stores.Activities.Save(a)

	// Sheet push is fire-and-forget and not transactionally linked to the
	// store write.
	h.pushAsync(a)

	if saveErr != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": saveErr.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ActivityCtrl) List(c echo.Context) error {
	acts := h.stores.Activities.GetAll()

	typ := c.QueryParam("type")
	tree := c.QueryParam("tree_code")
	from, to := c.QueryParam("from"), c.QueryParam("to")

	out := make([]entities.ActivityRecord, 0, len(acts))
	for _, a := range acts {
		if typ != "" && string(a.Type) != typ {
			continue
		}
		if tree != "" && a.TreeCode != tree {
			continue
		}
		if from != "" {
			if d, err := time.ParseInLocation("2006-01-02", from, h.loc); err == nil && a.Date.Before(d) {
				continue
			}
		}
		if to != "" {
			if d, err := time.ParseInLocation("2006-01-02", to, h.loc); err == nil && a.Date.After(d.AddDate(0, 0, 1)) {
				continue
			}
		}
		out = append(out, a)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ActivityCtrl) Get(c echo.Context) error {
	a, ok := h.find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActivityCtrl) Update(c echo.Context) error {
	old, ok := h.find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req activityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	t, err := entities.ParseActivityType(req.Type)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	a := old
	a.Type = t
	a.Date = parseDate(req.Date, old.Date)
	a.TreeCode = req.TreeCode
	a.Description = req.Description
	a.Value = req.Value
	a.Unit = req.Unit
	if req.Photos != nil {
		a.Photos = req.Photos
	}
	// weather and diagnosis are frozen at creation; edits never touch them
	a.UpdatedAt = time.Now()

	if err := h.stores.Activities.Save(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActivityCtrl) Delete(c echo.Context) error {
	if err := h.stores.Activities.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Diagnose runs the AI collaborator once for an activity and freezes the
// result into the record. A second call is rejected.
func (h *ActivityCtrl) Diagnose(c echo.Context) error {
	a, ok := h.find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if a.Diagnosis != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "already diagnosed"})
	}
	if h.diag == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "AI endpoint is not configured (AI_ENDPOINT)"})
	}

	kbCtx := ""
	if h.kb != nil {
		kbCtx = h.kb.Context(a.Description+" "+string(a.Type), 4, 6000)
	}
	d, err := h.diag.Diagnose(c.Request().Context(), a.Photos, a.Description, kbCtx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	a.Diagnosis = d
	a.UpdatedAt = time.Now()
	if err := h.stores.Activities.Save(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActivityCtrl) find(id string) (entities.ActivityRecord, bool) {
	for _, a := range h.stores.Activities.GetAll() {
		if a.ID == id {
			return a, true
		}
	}
	return entities.ActivityRecord{}, false
}

func (h *ActivityCtrl) pushAsync(a entities.ActivityRecord) {
	if h.sync == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := h.sync.Push(ctx, a); err != nil {
			log.Printf("[sync] push %s: %v", a.ID, err)
		}
	}()
}

func parseDate(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d
	}
	return fallback
}
