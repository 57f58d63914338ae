package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"bodytracker/config"
	"bodytracker/database"
	"bodytracker/router"

	entryCtrlImp "bodytracker/pkg/entry/controllerImp"
	entrySvcImp "bodytracker/pkg/entry/serviceImp"

	statsCtrlImp "bodytracker/pkg/stats/controllerImp"
	statsSvcImp "bodytracker/pkg/stats/serviceImp"

	settingsCtrlImp "bodytracker/pkg/settings/controllerImp"
	settingsSvcImp "bodytracker/pkg/settings/serviceImp"

	exportCtrlImp "bodytracker/pkg/export/controllerImp"
	exportSvcImp "bodytracker/pkg/export/serviceImp"

	healthCtrlImp "bodytracker/pkg/health/controllerImp"

	"bodytracker/pkg/storage/repository"
	storageImp "bodytracker/pkg/storage/repositoryImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Storage backend, selected explicitly (no runtime detection)
	var backend repository.Backend
	var db *gorm.DB
	var err error
	switch cfg.Storage {
	case "sqlite":
		db, err = database.OpenSQLite(cfg.DBPath)
		if err != nil {
			log.Fatalf("open sqlite: %v", err)
		}
		backend, err = storageImp.NewSQLite(db)
	case "file":
		backend, err = storageImp.NewFile(cfg.DataDir)
	default:
		log.Fatalf("unknown STORAGE %q (want file or sqlite)", cfg.Storage)
	}
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	// 3) Services
	entrySvc := entrySvcImp.New(backend, nil)
	if err := entrySvc.Init(); err != nil {
		log.Fatalf("load entries: %v", err)
	}
	statsSvc := statsSvcImp.New(entrySvc, nil)
	settingsSvc := settingsSvcImp.New(backend)
	exportSvc := exportSvcImp.New(entrySvc, backend, nil)

	// 4) Echo + controllers
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	entryCtrl := entryCtrlImp.New(entrySvc)
	statsCtrl := statsCtrlImp.New(statsSvc)
	settingsCtrl := settingsCtrlImp.New(settingsSvc)
	exportCtrl := exportCtrlImp.New(exportSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.Storage)

	r := router.New(e, entryCtrl, statsCtrl, settingsCtrl, exportCtrl, healthCtrl)

	// 5) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
