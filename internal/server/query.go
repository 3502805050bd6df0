package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/krislite/lightfinder/pkg/lightfinder/models"
	"github.com/krislite/lightfinder/pkg/lightfinder/output"
)

// parseCriteria reads search criteria from a query string. Missing values
// keep their defaults.
func parseCriteria(q url.Values) (models.Criteria, error) {
	c := models.DefaultCriteria()

	var err error
	if c.Power, err = parseFloat(q, "power", c.Power); err != nil {
		return c, err
	}
	if c.Lumen, err = parseFloat(q, "lumen", c.Lumen); err != nil {
		return c, err
	}
	if c.MinCRI, err = parseFloat(q, "cri", c.MinCRI); err != nil {
		return c, err
	}
	c.Mounting = strings.TrimSpace(q.Get("mounting"))
	c.Type = strings.TrimSpace(q.Get("type"))
	c.CCT = strings.TrimSpace(q.Get("cct"))
	c.RGB = parseBool(q.Get("rgb"))
	c.RGBW = parseBool(q.Get("rgbw"))

	return c, c.Validate()
}

func parseView(q url.Values) (output.ViewMode, error) {
	v, err := output.ParseViewMode(q.Get("view"))
	if err != nil {
		return output.ViewList, fmt.Errorf("%w: %v", models.ErrInvalidCriteria, err)
	}
	return v, nil
}

func parseFloat(q url.Values, key string, def float64) (float64, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s must be a number, got %q", models.ErrInvalidCriteria, key, s)
	}
	return v, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}
