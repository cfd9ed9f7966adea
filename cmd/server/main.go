package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"kaju/config"
	"kaju/database"
	"kaju/router"

	"kaju/pkg/ai"
	"kaju/pkg/kb"
	"kaju/pkg/kvstore"
	"kaju/pkg/record"
	"kaju/pkg/reminder"
	"kaju/pkg/settings"
	"kaju/pkg/sheets"
	"kaju/pkg/weather"

	activityCtrlImp "kaju/pkg/activity/controllerImp"
	exportSvc "kaju/pkg/export"
	exportCtrlImp "kaju/pkg/export/controllerImp"
	growthCtrlImp "kaju/pkg/growth/controllerImp"
	healthCtrlImp "kaju/pkg/health/controllerImp"
	kbCtrlImp "kaju/pkg/kb/controllerImp"
	reminderCtrlImp "kaju/pkg/reminder/controllerImp"
	settingsCtrlImp "kaju/pkg/settings/controllerImp"
	sheetsCtrlImp "kaju/pkg/sheets/controllerImp"
	treeCtrlImp "kaju/pkg/tree/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	loc := cfg.Location()

	// 2) DB (sqlite) + KV substrate
	db := database.OpenSQLite(cfg.DBPath)
	kv := kvstore.NewSQLite(db)
	stores := record.NewStores(kv, record.DefaultKeys())

	// 3) Services
	keys := stores.Keys
	settingsSvc := settings.New(kv, keys.Theme, keys.SheetsConfig)
	syncClient := sheets.New(cfg.SyncEndpoint, settingsSvc, loc)
	engine := reminder.New(stores, loc)
	expSvc := exportSvc.New(stores, loc)
	kbSvc := kb.New(stores)

	// 4) Collaborators (mock fallback when unconfigured)
	var diag ai.Client
	if cfg.AIEndpoint != "" && cfg.AIAPIKey != "" {
		diag = ai.NewOpenAI(cfg.AIEndpoint, cfg.AIAPIKey, cfg.AIModel)
	} else {
		diag = ai.NewMock()
	}
	var wx weather.Client
	if cfg.WeatherEndpoint != "" {
		wx = weather.New(cfg.WeatherEndpoint, cfg.WeatherAPIKey)
	}

	// 5) Controllers
	aCtrl := activityCtrlImp.New(stores, syncClient, wx, diag, kbSvc, loc)
	tCtrl := treeCtrlImp.New(stores)
	gCtrl := growthCtrlImp.New(stores)
	rCtrl := reminderCtrlImp.New(engine, stores)
	eCtrl := exportCtrlImp.New(expSvc)
	syCtrl := sheetsCtrlImp.New(syncClient, stores)
	stCtrl := settingsCtrlImp.New(settingsSvc)
	kCtrl := kbCtrlImp.New(kbSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo + router
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	r := router.New(e, aCtrl, tCtrl, gCtrl, rCtrl, eCtrl, syCtrl, stCtrl, kCtrl, hCtrl)

	// 7) Background reminder checks
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()
	setupShutdownListener(appCancel)
	go runReminderLoop(appCtx, engine)

	go func() {
		<-appCtx.Done()
		log.Println("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func setupShutdownListener(appCancel context.CancelFunc) {
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutdown signal received")
		appCancel()
	}()
}

// runReminderLoop drives the reminder engine once at startup and then hourly;
// the once-per-day suppression lives in the engine itself.
func runReminderLoop(ctx context.Context, engine *reminder.Engine) {
	engine.Check(time.Now())
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			engine.Check(now)
		}
	}
}
