// Package extraction implements the shoreline-extraction collaborator as a
// client of a remote detection service.
package extraction

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/bf-shoreline-harness/pipeline"
	"github.com/venicegeo/bf-shoreline-harness/shoreline"
	"github.com/venicegeo/bf-shoreline-harness/snapshot"
	"github.com/venicegeo/bf-shoreline-harness/util"
)

// Context is the context for an extraction operation
type Context struct {
	BaseShorelineURL string
	sessionID        string
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

// Client is a detection-service client implementing the pipeline.Extractor
// contract
type Client struct {
	Context *Context
}

// NewClient creates a Client from environment configuration
func NewClient() *Client {
	return &Client{Context: &Context{BaseShorelineURL: util.GetShorelineHost()}}
}

type extractRequest struct {
	Metadata []model.SceneMetadata `json:"metadata"`
	Settings *pipeline.Settings    `json:"settings"`
}

// ExtractShorelines implements the pipeline.Extractor contract: it posts the
// retrieved scene metadata and detection settings to the detection service,
// and persists the returned collection as the run's binary snapshot. A nil
// collection with a nil error means no shorelines were detected.
func (c *Client) ExtractShorelines(ctx context.Context, metadata []model.SceneMetadata, settings *pipeline.Settings) (shoreline.Collection, error) {
	requestURL := c.Context.BaseShorelineURL + "/v1/shorelines/extract"

	util.LogAudit(c.Context, util.LogAuditInput{Actor: "extraction/doRequest", Action: "POST", Actee: requestURL, Message: "Requesting shoreline extraction", Severity: util.INFO})
	var output shoreline.Collection
	if _, err := util.ReqByObjJSON("POST", requestURL, "", extractRequest{Metadata: metadata, Settings: settings}, &output); err != nil {
		return nil, util.LogSimpleErr(c.Context, "Failed to complete shoreline extraction request.", err)
	}
	util.LogAudit(c.Context, util.LogAuditInput{Actor: requestURL, Action: "POST response", Actee: "extraction/doRequest", Message: "Received shoreline extraction output", Severity: util.INFO})

	if len(output) == 0 {
		return nil, nil
	}

	// the snapshot the reload stage reads back is written here, alongside
	// the detection output it captures
	inputs := settings.Inputs
	snapshotPath := filepath.Join(inputs.Filepath, inputs.SiteName, inputs.SiteName+"_output.pkl")
	if err := snapshot.Write(snapshotPath, output); err != nil {
		return nil, util.LogSimpleErr(c.Context, fmt.Sprintf("Failed to write extraction snapshot to %s.", snapshotPath), err)
	}

	return output, nil
}
