package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kaju/entities"
	"kaju/pkg/settings"
)

type SettingsCtrl struct{ svc *settings.Service }

func New(svc *settings.Service) *SettingsCtrl { return &SettingsCtrl{svc: svc} }

func (h *SettingsCtrl) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"theme": h.svc.Theme()})
}

func (h *SettingsCtrl) PutTheme(c echo.Context) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.SetTheme(body.Theme); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"theme": body.Theme})
}

func (h *SettingsCtrl) GetSheets(c echo.Context) error {
	cfg, ok := h.svc.SheetsConfig()
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"configured": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"configured": true, "config": cfg})
}

func (h *SettingsCtrl) PutSheets(c echo.Context) error {
	var cfg entities.SheetsSyncConfig
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.SetSheetsConfig(cfg); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cfg)
}
