package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"kaju/entities"
	"kaju/pkg/record"
)

type GrowthCtrl struct{ stores *record.Stores }

func New(stores *record.Stores) *GrowthCtrl { return &GrowthCtrl{stores: stores} }

type growthReq struct {
	TreeCode        string   `json:"tree_code"`
	Date            string   `json:"date"`
	HeightCM        *float64 `json:"height_cm"`
	TrunkDiameterMM *float64 `json:"trunk_diameter_mm"`
	LeafCount       *int     `json:"leaf_count"`
	Health          string   `json:"health"`
	Fertilizers     []string `json:"fertilizers"`
	Notes           string   `json:"notes"`
	Photos          []string `json:"photos"`
}

func (h *GrowthCtrl) Create(c echo.Context) error {
	var req growthReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.TreeCode == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "tree_code is required"})
	}

	health := entities.HealthStatus("")
	if req.Health != "" {
		parsed, err := entities.ParseHealthStatus(req.Health)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		health = parsed
	}

	now := time.Now()
	d := now
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	g := entities.GrowthRecord{
		ID:              uuid.NewString(),
		TreeCode:        req.TreeCode,
		Date:            d,
		HeightCM:        req.HeightCM,
		TrunkDiameterMM: req.TrunkDiameterMM,
		LeafCount:       req.LeafCount,
		Health:          health,
		Fertilizers:     req.Fertilizers,
		Notes:           req.Notes,
		Photos:          req.Photos,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.stores.Growth.Save(g); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GrowthCtrl) List(c echo.Context) error {
	tree := c.QueryParam("tree_code")
	recs := h.stores.Growth.GetAll()
	if tree == "" {
		return c.JSON(http.StatusOK, recs)
	}
	out := make([]entities.GrowthRecord, 0, len(recs))
	for _, g := range recs {
		if g.TreeCode == tree {
			out = append(out, g)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GrowthCtrl) Delete(c echo.Context) error {
	if err := h.stores.Growth.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
