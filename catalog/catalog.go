// Package catalog implements the discovery and retrieval collaborators
// against a remote scene catalog service.
package catalog

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/bf-shoreline-harness/pipeline"
	"github.com/venicegeo/bf-shoreline-harness/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// Client is a catalog-service client implementing the pipeline's Discoverer
// and Retriever contracts
type Client struct {
	Context *Context
}

// NewClient creates a Client from environment configuration
func NewClient() *Client {
	return &Client{Context: &Context{BaseCatalogURL: util.GetCatalogHost()}}
}

// CheckAvailability implements the pipeline.Discoverer contract. A nil
// collection with a nil error means the catalog matched no scenes.
func (c *Client) CheckAvailability(ctx context.Context, inputs *pipeline.Inputs) (*geojson.FeatureCollection, error) {
	responseBody, err := c.searchScenes(ctx, inputs)
	if err != nil {
		return nil, err
	}

	featureCollection, err := parseSearchResults(responseBody, c.Context)
	if err != nil {
		return nil, err
	}
	if len(featureCollection.Features) == 0 {
		return nil, nil
	}
	return featureCollection, nil
}

// RetrieveImages implements the pipeline.Retriever contract. A nil slice
// with a nil error means no imagery could be located.
func (c *Client) RetrieveImages(ctx context.Context, inputs *pipeline.Inputs) ([]model.SceneMetadata, error) {
	requestBody, err := json.Marshal(inputs)
	if err != nil {
		return nil, util.LogSimpleErr(c.Context, fmt.Sprintf("Failed to marshal retrieval inputs %#v.", inputs), err)
	}

	response, err := c.catalogRequest(ctx, catalogRequestInput{
		method: "POST", inputURL: "v1/scenes/retrieve", body: requestBody, contentType: "application/json"})
	if err != nil {
		return nil, util.LogSimpleErr(c.Context, "Failed to complete catalog retrieval request.", err)
	}
	defer response.Body.Close()
	if err = checkResponseStatus(response, "retrieve imagery", c.Context); err != nil {
		return nil, err
	}

	responseBody, _ := ioutil.ReadAll(response.Body)

	var retrieved struct {
		Scenes []model.SceneMetadata `json:"scenes"`
	}
	if err = json.Unmarshal(responseBody, &retrieved); err != nil {
		catErr := util.Error{LogMsg: "Failed to unmarshal response from catalog retrieval request: " + err.Error(),
			SimpleMsg:  "The catalog returned an unexpected response for this request. See log for further details.",
			Response:   string(responseBody),
			URL:        "v1/scenes/retrieve",
			HTTPStatus: response.StatusCode}
		return nil, catErr.Log(c.Context, "")
	}
	if len(retrieved.Scenes) == 0 {
		return nil, nil
	}
	return retrieved.Scenes, nil
}

func (c *Client) searchScenes(ctx context.Context, inputs *pipeline.Inputs) ([]byte, error) {
	var req request
	req.ItemTypes = append(req.ItemTypes, inputs.Satellites...)
	req.Filter.Type = "AndFilter"
	req.Filter.Config = make([]interface{}, 0)
	req.Filter.Config = append(req.Filter.Config, objectFilter{
		Type: "GeometryFilter", FieldName: "geometry", Config: geojson.NewPolygon(inputs.Polygon)})
	if inputs.Dates[0] != "" || inputs.Dates[1] != "" {
		dc := dateConfig{GTE: inputs.Dates[0], LTE: inputs.Dates[1]}
		req.Filter.Config = append(req.Filter.Config, objectFilter{
			Type: "DateRangeFilter", FieldName: "acquired", Config: dc})
	}

	requestBody, err := json.Marshal(req)
	if err != nil {
		return nil, util.LogSimpleErr(c.Context, fmt.Sprintf("Failed to marshal request object %#v.", req), err)
	}

	response, err := c.catalogRequest(ctx, catalogRequestInput{
		method: "POST", inputURL: "v1/scenes/search", body: requestBody, contentType: "application/json"})
	if err != nil {
		return nil, util.LogSimpleErr(c.Context, fmt.Sprintf("Failed to complete catalog search request %#v.", string(requestBody)), err)
	}
	defer response.Body.Close()
	if err = checkResponseStatus(response, "discover scenes", c.Context); err != nil {
		return nil, err
	}

	responseBody, _ := ioutil.ReadAll(response.Body)
	return responseBody, nil
}

func checkResponseStatus(response *http.Response, operation string, context *Context) error {
	switch {
	case (response.StatusCode >= 400) && (response.StatusCode < 500):
		message := fmt.Sprintf("Failed to %v from the catalog: %v. ", operation, response.Status)
		util.LogAlert(context, message)
		return util.HTTPErr{Status: response.StatusCode, Message: message}
	case response.StatusCode >= 500:
		return util.LogSimpleErr(context, fmt.Sprintf("Failed to %v from the catalog.", operation), errors.New(response.Status))
	default:
		return nil
	}
}

// catalogRequest performs the request
func (c *Client) catalogRequest(ctx context.Context, input catalogRequestInput) (*http.Response, error) {
	inputURL := input.inputURL
	if !strings.Contains(inputURL, c.Context.BaseCatalogURL) {
		baseURL, _ := url.Parse(c.Context.BaseCatalogURL)
		parsedRelativeURL, _ := url.Parse(input.inputURL)
		inputURL = baseURL.ResolveReference(parsedRelativeURL).String()
	}

	request, err := http.NewRequestWithContext(ctx, input.method, inputURL, bytes.NewBuffer(input.body))
	if err != nil {
		return nil, util.LogSimpleErr(c.Context, fmt.Sprintf("Failed to make a new HTTP request for %v.", inputURL), err)
	}
	if input.contentType != "" {
		request.Header.Set("Content-Type", input.contentType)
	}
	if c.Context.CatalogKey != "" {
		request.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.Context.CatalogKey+":")))
	}

	util.LogAudit(c.Context, util.LogAuditInput{Actor: "catalog/doRequest", Action: input.method, Actee: inputURL, Message: "Requesting data from the scene catalog", Severity: util.INFO})
	util.LogAudit(c.Context, util.LogAuditInput{Actor: inputURL, Action: input.method + " response", Actee: "catalog/doRequest", Message: "Receiving data from the scene catalog", Severity: util.INFO})
	return util.HTTPClient().Do(request)
}

// parseSearchResults transforms a raw search response into a FeatureCollection
func parseSearchResults(body []byte, context util.LogContext) (*geojson.FeatureCollection, error) {
	parsed, err := geojson.Parse(body)
	if err != nil {
		return nil, util.LogSimpleErr(context, fmt.Sprintf("Failed to parse GeoJSON.\n%v", string(body)), err)
	}

	featureCollection, ok := parsed.(*geojson.FeatureCollection)
	if !ok {
		catErr := util.Error{SimpleMsg: fmt.Sprintf("Expected a FeatureCollection and got %T", parsed),
			Response: string(body)}
		return nil, catErr.Log(context, "")
	}

	features := make([]*geojson.Feature, 0, len(featureCollection.Features))
	for _, feature := range featureCollection.Features {
		features = append(features, transformSearchFeature(feature))
	}
	return geojson.NewFeatureCollection(features), nil
}

func transformSearchFeature(feature *geojson.Feature) *geojson.Feature {
	properties := make(map[string]interface{})
	if cc, ok := feature.Properties["cloud_cover"].(float64); ok {
		properties["cloudCover"] = cc * 100.0
	} else {
		properties["cloudCover"] = -1.0
	}
	properties["resolution"], _ = feature.Properties["gsd"].(float64)
	acquiredDate, _ := feature.Properties["acquired"].(string)
	properties["acquiredDate"] = acquiredDate
	properties["fileFormat"] = string(model.GeoTIFF)
	properties["sensorName"], _ = feature.Properties["satellite_id"].(string)

	result := geojson.NewFeature(feature.Geometry, feature.IDStr(), properties)
	result.Bbox = result.ForceBbox()
	return result
}
