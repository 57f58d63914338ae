package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bodytracker/entities"
	svc "bodytracker/pkg/settings/service"
)

type SettingsCtrl struct{ s svc.SettingsService }

func New(s svc.SettingsService) *SettingsCtrl { return &SettingsCtrl{s: s} }

func (h *SettingsCtrl) Get(c echo.Context) error {
	out, err := h.s.Get()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func validatePatch(p entities.SettingsPatch) error {
	if p.GoalWeight != nil && (*p.GoalWeight < 20 || *p.GoalWeight > 300) {
		return errors.New("goal weight must be between 20 and 300 kg")
	}
	if p.GoalBodyFat != nil && (*p.GoalBodyFat < 3 || *p.GoalBodyFat > 60) {
		return errors.New("goal body fat must be between 3 and 60 %")
	}
	if p.Theme != nil && *p.Theme != entities.ThemeLight && *p.Theme != entities.ThemeDark {
		return errors.New("theme must be light or dark")
	}
	if p.DefaultGender != nil && *p.DefaultGender != entities.GenderMale && *p.DefaultGender != entities.GenderFemale {
		return errors.New("default gender must be male or female")
	}
	if p.DefaultAge != nil && (*p.DefaultAge < 10 || *p.DefaultAge > 100) {
		return errors.New("default age must be between 10 and 100")
	}
	return nil
}

func (h *SettingsCtrl) Save(c echo.Context) error {
	var p entities.SettingsPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := validatePatch(p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	out, err := h.s.Save(p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
