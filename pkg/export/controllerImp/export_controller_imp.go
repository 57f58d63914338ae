package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	svc "bodytracker/pkg/export/service"
)

// utf8BOM prefixes the CSV download so spreadsheet apps pick up the umlauts.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type ExportCtrl struct{ s svc.ExportService }

func New(s svc.ExportService) *ExportCtrl { return &ExportCtrl{s: s} }

func filename(ext string) string {
	return fmt.Sprintf("bodytracker-export-%s.%s", time.Now().Format("2006-01-02"), ext)
}

func (h *ExportCtrl) JSON(c echo.Context) error {
	doc, err := h.s.ExportData()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename("json")+`"`)
	return c.JSON(http.StatusOK, doc)
}

func (h *ExportCtrl) CSV(c echo.Context) error {
	body, err := h.s.ExportCSV()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename("csv")+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", append(utf8BOM, body...))
}

func (h *ExportCtrl) XLSX(c echo.Context) error {
	body, err := h.s.ExportXLSX()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename("xlsx")+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body)
}

func (h *ExportCtrl) Import(c echo.Context) error {
	var doc svc.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	err := h.s.ImportData(&doc)
	if errors.Is(err, svc.ErrInvalidFormat) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid data format: entries missing"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
