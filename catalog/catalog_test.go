package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/bf-shoreline-harness/pipeline"
	"github.com/venicegeo/bf-shoreline-harness/util"
)

// General test mocks and utils

const sampleSearchResponse = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"id": "LT05_L1TP_089083_19890612",
		"geometry": {"type": "Polygon", "coordinates": [[[151.2,-33.6],[151.4,-33.6],[151.4,-33.8],[151.2,-33.8],[151.2,-33.6]]]},
		"properties": {
			"cloud_cover": 0.07,
			"gsd": 30.0,
			"acquired": "1989-06-12T23:21:08Z",
			"satellite_id": "L5"
		}
	}]
}`

const emptySearchResponse = `{"type": "FeatureCollection", "features": []}`

func sampleInputs() *pipeline.Inputs {
	return &pipeline.Inputs{
		Polygon: [][][]float64{{
			{151.2, -33.6}, {151.4, -33.6}, {151.4, -33.8}, {151.2, -33.8}, {151.2, -33.6},
		}},
		Dates:      [2]string{"1984-01-01", "2022-01-01"},
		Satellites: []string{"L5", "L7", "L8"},
		SiteName:   "NARRA",
		Filepath:   "/tmp/unused",
	}
}

func newTestClient(serverURL string) *Client {
	return &Client{Context: &Context{BaseCatalogURL: serverURL}}
}

// Actual tests

func TestCheckAvailability_ParsesFeatures(t *testing.T) {
	// Mock
	var capturedRequest request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/v1/scenes/search", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&capturedRequest)
		w.Write([]byte(sampleSearchResponse))
	}))
	defer server.Close()

	// Tested code
	fc, err := newTestClient(server.URL + "/").CheckAvailability(context.Background(), sampleInputs())

	// Asserts
	assert.Nil(t, err)
	assert.NotNil(t, fc)
	assert.Len(t, fc.Features, 1)
	feature := fc.Features[0]
	assert.Equal(t, "LT05_L1TP_089083_19890612", feature.IDStr())
	assert.Equal(t, 7.0, feature.PropertyFloat("cloudCover"))
	assert.Equal(t, "L5", feature.PropertyString("sensorName"))

	assert.Equal(t, []string{"L5", "L7", "L8"}, capturedRequest.ItemTypes)
	assert.Equal(t, "AndFilter", capturedRequest.Filter.Type)
	assert.Len(t, capturedRequest.Filter.Config, 2)
}

func TestCheckAvailability_NoMatchReturnsNil(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptySearchResponse))
	}))
	defer server.Close()

	// Tested code
	fc, err := newTestClient(server.URL + "/").CheckAvailability(context.Background(), sampleInputs())

	// Asserts
	assert.Nil(t, err)
	assert.Nil(t, fc, "no-match must be a nil collection, not an error")
}

func TestCheckAvailability_ServerError(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	// Tested code
	fc, err := newTestClient(server.URL + "/").CheckAvailability(context.Background(), sampleInputs())

	// Asserts
	assert.NotNil(t, err)
	assert.Nil(t, fc)
}

func TestCheckAvailability_ClientErrorReturnsHTTPErr(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	// Tested code
	fc, err := newTestClient(server.URL + "/").CheckAvailability(context.Background(), sampleInputs())

	// Asserts
	assert.Nil(t, fc)
	var httpErr util.HTTPErr
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestCheckAvailability_ContextCancellation(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Tested code
	_, err := newTestClient(server.URL+"/").CheckAvailability(ctx, sampleInputs())

	// Asserts
	assert.NotNil(t, err)
}

func TestRetrieveImages_ParsesScenes(t *testing.T) {
	// Mock
	acquired := time.Date(1989, 6, 12, 23, 21, 8, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/scenes/retrieve", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"scenes": []model.SceneMetadata{{
				SceneID:        "LT05_L1TP_089083_19890612",
				Satellite:      "L5",
				AcquiredDate:   acquired,
				EPSG:           28356,
				GeorefAccuracy: 5.2,
				Filenames:      []string{"LT05_B1.TIF"},
			}},
		})
	}))
	defer server.Close()

	// Tested code
	scenes, err := newTestClient(server.URL + "/").RetrieveImages(context.Background(), sampleInputs())

	// Asserts
	assert.Nil(t, err)
	assert.Len(t, scenes, 1)
	assert.Equal(t, "L5", scenes[0].Satellite)
	assert.Equal(t, 28356, scenes[0].EPSG)
}

func TestRetrieveImages_NoScenesReturnsNil(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"scenes": []}`))
	}))
	defer server.Close()

	// Tested code
	scenes, err := newTestClient(server.URL + "/").RetrieveImages(context.Background(), sampleInputs())

	// Asserts
	assert.Nil(t, err)
	assert.Nil(t, scenes)
}
