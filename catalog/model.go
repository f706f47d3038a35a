package catalog

import (
	"github.com/venicegeo/bf-shoreline-harness/util"
)

// Context is the context for a catalog operation
type Context struct {
	BaseCatalogURL string
	CatalogKey     string
	sessionID      string
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

type request struct {
	ItemTypes []string `json:"item_types"`
	Filter    filter   `json:"filter"`
}

type filter struct {
	Type   string        `json:"type"`
	Config []interface{} `json:"config"`
}

type objectFilter struct {
	Type      string      `json:"type"`
	FieldName string      `json:"field_name"`
	Config    interface{} `json:"config"`
}

type dateConfig struct {
	GTE string `json:"gte,omitempty"`
	LTE string `json:"lte,omitempty"`
}

type catalogRequestInput struct {
	method      string
	inputURL    string // URL may be relative or absolute based on BaseCatalogURL
	body        []byte
	contentType string
}
