package sceneindex

import (
	"database/sql"
	"time"

	"github.com/venicegeo/bf-shoreline-harness/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)

// IndexedScene is one row of the local scene index
type IndexedScene struct {
	ProductID       string
	Satellite       string
	AcquisitionDate time.Time
	CloudCover      float64
	GeorefAccuracy  float64
	SceneURLString  string
	Bounds          *geojson.Polygon
}

// Context is the context for a scene index operation
type Context struct {
	DB           *sql.DB
	BaseTidesURL string
	sessionID    string
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
