package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	activityCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Diagnose(echo.Context) error
	},
	treeCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	growthCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
	},
	reminderCtrl interface {
		List(echo.Context) error
		Put(echo.Context) error
		Check(echo.Context) error
		Notifications(echo.Context) error
		MarkRead(echo.Context) error
		MarkAllRead(echo.Context) error
	},
	exportCtrl interface {
		CSV(echo.Context) error
		Backup(echo.Context) error
		Import(echo.Context) error
		XLSX(echo.Context) error
	},
	sheetsCtrl interface{ Push(echo.Context) error },
	settingsCtrl interface {
		GetTheme(echo.Context) error
		PutTheme(echo.Context) error
		GetSheets(echo.Context) error
		PutSheets(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("")

	api.POST("/activities", activityCtrl.Create)
	api.GET("/activities", activityCtrl.List)
	api.GET("/activities/:id", activityCtrl.Get)
	api.PUT("/activities/:id", activityCtrl.Update)
	api.DELETE("/activities/:id", activityCtrl.Delete)
	api.POST("/activities/:id/diagnose", activityCtrl.Diagnose)

	api.POST("/trees", treeCtrl.Create)
	api.GET("/trees", treeCtrl.List)
	api.GET("/trees/:id", treeCtrl.Get)
	api.PUT("/trees/:id", treeCtrl.Update)
	api.DELETE("/trees/:id", treeCtrl.Delete)

	api.POST("/growth", growthCtrl.Create)
	api.GET("/growth", growthCtrl.List)
	api.DELETE("/growth/:id", growthCtrl.Delete)

	api.GET("/reminders", reminderCtrl.List)
	api.PUT("/reminders/:type", reminderCtrl.Put)
	api.POST("/reminders/check", reminderCtrl.Check)
	api.GET("/notifications", reminderCtrl.Notifications)
	api.POST("/notifications/:id/read", reminderCtrl.MarkRead)
	api.POST("/notifications/read-all", reminderCtrl.MarkAllRead)

	api.GET("/export/csv", exportCtrl.CSV)
	api.GET("/export/backup", exportCtrl.Backup)
	api.GET("/export/xlsx", exportCtrl.XLSX)
	api.POST("/import/backup", exportCtrl.Import)

	api.POST("/sync/activities/:id", sheetsCtrl.Push)

	api.GET("/settings/theme", settingsCtrl.GetTheme)
	api.PUT("/settings/theme", settingsCtrl.PutTheme)
	api.GET("/settings/sheets", settingsCtrl.GetSheets)
	api.PUT("/settings/sheets", settingsCtrl.PutSheets)

	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	return e
}
