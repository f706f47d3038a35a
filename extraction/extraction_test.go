package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/bf-shoreline-harness/pipeline"
	"github.com/venicegeo/bf-shoreline-harness/shoreline"
	"github.com/venicegeo/bf-shoreline-harness/snapshot"
)

// General test mocks and utils

func mockOutput() shoreline.Collection {
	record := shoreline.Record{
		Date:           time.Date(1989, 6, 12, 23, 21, 8, 0, time.UTC),
		Satellite:      "L5",
		Points:         [][]float64{{151.30, -33.70}},
		CloudCover:     0.05,
		GeorefAccuracy: 5.2,
	}
	return shoreline.Collection{record.Key(): record}
}

func testSettings(t *testing.T) *pipeline.Settings {
	return pipeline.DefaultSettings(&pipeline.Inputs{
		SiteName: "NARRA",
		Filepath: t.TempDir(),
	})
}

// Actual tests

func TestExtractShorelines_WritesSnapshot(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/shorelines/extract", r.URL.Path)

		var request extractRequest
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, 28356, request.Settings.OutputEPSG)

		json.NewEncoder(w).Encode(mockOutput())
	}))
	defer server.Close()
	client := &Client{Context: &Context{BaseShorelineURL: server.URL}}
	settings := testSettings(t)

	// Tested code
	output, err := client.ExtractShorelines(context.Background(), nil, settings)

	// Asserts
	assert.Nil(t, err)
	assert.Len(t, output, 1)

	snapshotPath := filepath.Join(settings.Inputs.Filepath, "NARRA", "NARRA_output.pkl")
	_, statErr := os.Stat(snapshotPath)
	assert.Nil(t, statErr, "extraction must persist its snapshot")

	var reloaded shoreline.Collection
	assert.Nil(t, snapshot.Load(snapshotPath, &reloaded))
	assert.Equal(t, output, reloaded)
}

func TestExtractShorelines_EmptyOutputReturnsNil(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client := &Client{Context: &Context{BaseShorelineURL: server.URL}}
	settings := testSettings(t)

	// Tested code
	output, err := client.ExtractShorelines(context.Background(), nil, settings)

	// Asserts
	assert.Nil(t, err)
	assert.Nil(t, output)
}

func TestExtractShorelines_ServiceError(t *testing.T) {
	// Mock
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	client := &Client{Context: &Context{BaseShorelineURL: server.URL}}

	// Tested code
	output, err := client.ExtractShorelines(context.Background(), nil, testSettings(t))

	// Asserts
	assert.NotNil(t, err)
	assert.Nil(t, output)
}
