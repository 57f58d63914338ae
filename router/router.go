package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	entryCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
		GetImage(echo.Context) error
		ClearAll(echo.Context) error
	},
	statsCtrl interface{ Get(echo.Context) error },
	settingsCtrl interface {
		Get(echo.Context) error
		Save(echo.Context) error
	},
	exportCtrl interface {
		JSON(echo.Context) error
		CSV(echo.Context) error
		XLSX(echo.Context) error
		Import(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/entries", entryCtrl.Create)
	e.GET("/entries", entryCtrl.List)
	e.GET("/entries/:id", entryCtrl.Get)
	e.PATCH("/entries/:id", entryCtrl.Patch)
	e.DELETE("/entries/:id", entryCtrl.Delete)

	e.GET("/images/:id", entryCtrl.GetImage)

	e.GET("/stats", statsCtrl.Get)

	e.GET("/settings", settingsCtrl.Get)
	e.PUT("/settings", settingsCtrl.Save)

	e.GET("/export/json", exportCtrl.JSON)
	e.GET("/export/csv", exportCtrl.CSV)
	e.GET("/export/xlsx", exportCtrl.XLSX)
	e.POST("/import", exportCtrl.Import)

	e.DELETE("/data", entryCtrl.ClearAll)

	return e
}
