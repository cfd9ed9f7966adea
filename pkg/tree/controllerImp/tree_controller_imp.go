package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"kaju/entities"
	"kaju/pkg/record"
)

type TreeCtrl struct{ stores *record.Stores }

func New(stores *record.Stores) *TreeCtrl { return &TreeCtrl{stores: stores} }

type treeReq struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Variety     string `json:"variety"`
	PlantedDate string `json:"planted_date"`
	Notes       string `json:"notes"`
}

func (h *TreeCtrl) Create(c echo.Context) error {
	var req treeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "code is required"})
	}
	// code uniqueness is deliberately not checked; duplicates resolve
	// last-write-wins at read time
	now := time.Now()
	t := entities.Tree{
		ID:        uuid.NewString(),
		Code:      req.Code,
		Name:      req.Name,
		Location:  req.Location,
		Variety:   req.Variety,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.PlantedDate != "" {
		if d, err := time.Parse("2006-01-02", req.PlantedDate); err == nil {
			t.PlantedDate = &d
		}
	}
	if err := h.stores.Trees.Save(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TreeCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.stores.Trees.GetAll())
}

func (h *TreeCtrl) Get(c echo.Context) error {
	id := c.Param("id")
	for _, t := range h.stores.Trees.GetAll() {
		if t.ID == id {
			return c.JSON(http.StatusOK, t)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *TreeCtrl) Update(c echo.Context) error {
	id := c.Param("id")
	var old *entities.Tree
	for _, t := range h.stores.Trees.GetAll() {
		if t.ID == id {
			tt := t
			old = &tt
			break
		}
	}
	if old == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req treeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "code is required"})
	}
	t := *old
	t.Code = req.Code
	t.Name = req.Name
	t.Location = req.Location
	t.Variety = req.Variety
	t.Notes = req.Notes
	t.PlantedDate = nil
	if req.PlantedDate != "" {
		if d, err := time.Parse("2006-01-02", req.PlantedDate); err == nil {
			t.PlantedDate = &d
		}
	}
	t.UpdatedAt = time.Now()
	if err := h.stores.Trees.Save(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

// Delete removes the tree only. Activities and growth records referencing its
// code are left dangling on purpose; deletions do not cascade.
func (h *TreeCtrl) Delete(c echo.Context) error {
	if err := h.stores.Trees.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
