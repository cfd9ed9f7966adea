package controllerImp

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kaju/pkg/export"
)

type ExportCtrl struct{ svc *export.Service }

func New(svc *export.Service) *ExportCtrl { return &ExportCtrl{svc: svc} }

func (h *ExportCtrl) CSV(c echo.Context) error {
	out := h.svc.ActivitiesCSV()
	if out == "" {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no activities to export"})
	}
	name := "activities_" + time.Now().Format("20060102") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

func (h *ExportCtrl) Backup(c echo.Context) error {
	name := "backup_" + time.Now().Format("20060102") + ".json"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.JSON(http.StatusOK, h.svc.Backup(time.Now()))
}

func (h *ExportCtrl) Import(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 32<<20))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read body: " + err.Error()})
	}
	nAct, nTree, err := h.svc.Import(body)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"activities": nAct, "trees": nTree})
}

func (h *ExportCtrl) XLSX(c echo.Context) error {
	x, err := h.svc.Workbook()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	name := "records_" + time.Now().Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
