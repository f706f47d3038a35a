package tides

import (
	"time"

	"github.com/venicegeo/bf-shoreline-harness/shoreline"
	"github.com/venicegeo/bf-shoreline-harness/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// Context is the context for this operation
type Context struct {
	TidesURL  string
	sessionID string
}

// AppName returns the application name
func (c *Context) AppName() string {
	return "bf-shoreline-harness"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

type InputLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Dtg string  `json:"dtg"`
}

type Input struct {
	Locations []InputLocation `json:"locations"`
}

type OutputData struct {
	MinTide  float64 `json:"minimumTide24Hours"`
	MaxTide  float64 `json:"maximumTide24Hours"`
	CurrTide float64 `json:"currentTide"`
}

type OutputLocation struct {
	Lat     float64    `json:"lat"`
	Lon     float64    `json:"lon"`
	Dtg     string     `json:"dtg"`
	Results OutputData `json:"results"`
}

type Output struct {
	Locations []OutputLocation `json:"locations"`
}

// InputLocationForRecord derives a tide query location from a shoreline
// record: the centroid of its detected points at its acquisition time
func InputLocationForRecord(record shoreline.Record) InputLocation {
	var lon, lat float64
	if len(record.Points) > 0 {
		for _, p := range record.Points {
			lon += p[0]
			lat += p[1]
		}
		lon /= float64(len(record.Points))
		lat /= float64(len(record.Points))
	}
	return InputLocation{
		Lon: lon,
		Lat: lat,
		Dtg: record.Date.Format("2006-01-02-15-04"),
	}
}

// InputLocationForBounds derives a tide query location from a scene's bounds
// polygon: the centroid of its bounding box at the acquisition time
func InputLocationForBounds(bounds *geojson.Polygon, acquiredDate time.Time) InputLocation {
	center := bounds.ForceBbox().Centroid()
	return InputLocation{
		Lon: center.Coordinates[0],
		Lat: center.Coordinates[1],
		Dtg: acquiredDate.Format("2006-01-02-15-04"),
	}
}
