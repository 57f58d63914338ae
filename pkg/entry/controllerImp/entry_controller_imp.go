package controllerImp

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bodytracker/entities"
	svc "bodytracker/pkg/entry/service"
)

type EntryCtrl struct{ s svc.EntryService }

func New(s svc.EntryService) *EntryCtrl { return &EntryCtrl{s: s} }

type imageUpload struct {
	Name string `json:"name"`
	Data string `json:"data"` // base64
}

type entryReq struct {
	Date      string              `json:"date"`
	Weight    *float64            `json:"weight"`
	BodyFat   *float64            `json:"bodyFat"`
	Gender    string              `json:"gender"`
	Age       *int                `json:"age"`
	Skinfolds *entities.Skinfolds `json:"skinfolds"`
	Notes     string              `json:"notes"`
	Images    []imageUpload       `json:"images"`
}

type patchReq struct {
	Date      *string             `json:"date"`
	Weight    *float64            `json:"weight"`
	BodyFat   *float64            `json:"bodyFat"`
	Gender    *string             `json:"gender"`
	Age       *int                `json:"age"`
	Skinfolds *entities.Skinfolds `json:"skinfolds"`
	Notes     *string             `json:"notes"`

	ClearGender    bool `json:"clearGender"`
	ClearAge       bool `json:"clearAge"`
	ClearSkinfolds bool `json:"clearSkinfolds"`
}

// validateEntry is the boundary check: the core itself accepts what it is
// given, out-of-domain input is rejected here with a readable reason.
// checkCaliper enforces the gender/age/site completeness for caliper input;
// patches that only touch other fields skip it, the service recomputes from
// the merged record.
func validateEntry(weight *float64, bodyFat *float64, gender entities.Gender, age *int, folds *entities.Skinfolds, requireWeight, checkCaliper bool) error {
	if requireWeight && weight == nil {
		return errors.New("weight is required")
	}
	if weight != nil && (*weight < 20 || *weight > 300) {
		return errors.New("weight must be between 20 and 300 kg")
	}
	if bodyFat != nil && (*bodyFat < 3 || *bodyFat > 60) {
		return errors.New("body fat must be between 3 and 60 %")
	}
	if age != nil && (*age < 10 || *age > 100) {
		return errors.New("age must be between 10 and 100")
	}
	if gender != "" && gender != entities.GenderMale && gender != entities.GenderFemale {
		return errors.New("gender must be male or female")
	}
	if checkCaliper && folds != nil {
		if gender != entities.GenderMale && gender != entities.GenderFemale {
			return errors.New("gender is required for caliper measurements")
		}
		if age == nil {
			return errors.New("age is required for caliper measurements")
		}
		if _, ok := folds.SumFor(gender); !ok {
			if gender == entities.GenderMale {
				return errors.New("caliper measurement needs chest, abdomen and thigh")
			}
			return errors.New("caliper measurement needs triceps, suprailiac and thigh")
		}
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", v)
}

func (h *EntryCtrl) Create(c echo.Context) error {
	var req entryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	gender := entities.Gender(req.Gender)
	if err := validateEntry(req.Weight, req.BodyFat, gender, req.Age, req.Skinfolds, true, true); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if len(req.Images) > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "at most 5 images per entry"})
	}
	date := time.Now()
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		date = d
	}

	draft := svc.EntryDraft{
		Date:      date,
		Weight:    *req.Weight,
		BodyFat:   req.BodyFat,
		Gender:    gender,
		Age:       req.Age,
		Skinfolds: req.Skinfolds,
		Notes:     req.Notes,
	}
	for _, img := range req.Images {
		data, err := base64.StdEncoding.DecodeString(img.Data)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("image %q is not valid base64", img.Name)})
		}
		draft.Images = append(draft.Images, svc.ImageUpload{Name: img.Name, Data: data})
	}

	created, err := h.s.Add(draft)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *EntryCtrl) List(c echo.Context) error {
	if q := c.QueryParam("q"); q != "" {
		return c.JSON(http.StatusOK, h.s.Search(q))
	}
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if from != "" || to != "" {
		start := time.Time{}
		end := time.Now().AddDate(100, 0, 0)
		if from != "" {
			t, err := parseDate(from)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			start = t
		}
		if to != "" {
			t, err := parseDate(to)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			end = t
		}
		return c.JSON(http.StatusOK, h.s.ByDateRange(start, end))
	}
	return c.JSON(http.StatusOK, h.s.List())
}

func (h *EntryCtrl) Get(c echo.Context) error {
	e, ok := h.s.GetByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "entry not found"})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EntryCtrl) Patch(c echo.Context) error {
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}

	var gender entities.Gender
	var genderPtr *entities.Gender
	if req.Gender != nil {
		gender = entities.Gender(*req.Gender)
		genderPtr = &gender
	}
	if err := validateEntry(req.Weight, req.BodyFat, gender, req.Age, req.Skinfolds, false, req.Gender != nil); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	patch := svc.EntryPatch{
		Weight:         req.Weight,
		BodyFat:        req.BodyFat,
		Gender:         genderPtr,
		Age:            req.Age,
		Skinfolds:      req.Skinfolds,
		Notes:          req.Notes,
		ClearGender:    req.ClearGender,
		ClearAge:       req.ClearAge,
		ClearSkinfolds: req.ClearSkinfolds,
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		patch.Date = &d
	}

	updated, err := h.s.Update(c.Param("id"), patch)
	if errors.Is(err, svc.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "entry not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *EntryCtrl) Delete(c echo.Context) error {
	if err := h.s.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EntryCtrl) GetImage(c echo.Context) error {
	img, err := h.s.GetImage(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if img == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
	}
	return c.JSON(http.StatusOK, img)
}

func (h *EntryCtrl) ClearAll(c echo.Context) error {
	if err := h.s.ClearAll(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
