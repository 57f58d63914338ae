package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	svc "bodytracker/pkg/stats/service"
)

type StatsCtrl struct{ s svc.StatsService }

func New(s svc.StatsService) *StatsCtrl { return &StatsCtrl{s: s} }

func (h *StatsCtrl) Get(c echo.Context) error {
	r := svc.Range(c.QueryParam("range"))
	switch r {
	case svc.RangeWeek, svc.RangeMonth, svc.RangeYear, svc.RangeAll:
	case "":
		r = svc.RangeAll
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "range must be week, month, year or all"})
	}

	sum, err := h.s.GetStatistics(r)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if sum == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, sum)
}
