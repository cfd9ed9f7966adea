package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kaju/pkg/record"
	"kaju/pkg/remote"
	"kaju/pkg/sheets"
)

type SheetsCtrl struct {
	client *sheets.Client
	stores *record.Stores
}

func New(client *sheets.Client, stores *record.Stores) *SheetsCtrl {
	return &SheetsCtrl{client: client, stores: stores}
}

// Push re-sends one activity to the spreadsheet on demand. The remote side
// does not deduplicate, so a re-push appends a duplicate row.
func (h *SheetsCtrl) Push(c echo.Context) error {
	id := c.Param("id")
	for _, a := range h.stores.Activities.GetAll() {
		if a.ID != id {
			continue
		}
		if err := h.client.Push(c.Request().Context(), a); err != nil {
			return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}

func statusFor(err error) int {
	if errors.Is(err, sheets.ErrNoEndpoint) || errors.Is(err, sheets.ErrNoSheetConfig) {
		return http.StatusPreconditionFailed
	}
	var re *remote.Error
	if errors.As(err, &re) {
		switch re.Kind {
		case remote.Unauthorized:
			return http.StatusBadGateway
		case remote.RateLimited:
			return http.StatusTooManyRequests
		case remote.BadRequest:
			return http.StatusBadGateway
		}
	}
	return http.StatusBadGateway
}
