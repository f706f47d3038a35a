package shoreline

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// General test mocks and utils

var mockDate = time.Date(2000, 6, 15, 10, 30, 0, 0, time.UTC)

func mockCollection() Collection {
	good := Record{
		Date:           mockDate,
		Satellite:      "L5",
		Points:         [][]float64{{151.30, -33.70}, {151.31, -33.71}},
		CloudCover:     0.05,
		GeorefAccuracy: 5,
	}
	duplicate := good
	inaccurate := Record{
		Date:           mockDate.AddDate(1, 0, 0),
		Satellite:      "L7",
		Points:         [][]float64{{151.29, -33.72}},
		CloudCover:     0.02,
		GeorefAccuracy: 12,
	}

	return Collection{
		good.Key():           good,
		good.Key() + "_dup1": duplicate,
		inaccurate.Key():     inaccurate,
	}
}

// Actual tests

func TestCollection_RemoveDuplicates(t *testing.T) {
	// Mock
	collection := mockCollection()

	// Tested code
	filtered := collection.RemoveDuplicates()

	// Asserts
	assert.Len(t, filtered, 2, "exactly one of the duplicate pair should survive")
	assert.Contains(t, filtered, mockDate.Format(KeyTimeLayout)+"_L5")
}

func TestCollection_RemoveInaccurate(t *testing.T) {
	// Mock
	collection := mockCollection()

	// Tested code
	filtered := collection.RemoveInaccurate(10)

	// Asserts
	for _, record := range filtered {
		assert.True(t, record.GeorefAccuracy < 10)
	}
	assert.Len(t, filtered, 2)
}

func TestCollection_FilterOrdering(t *testing.T) {
	// Mock
	collection := mockCollection()

	// Tested code: duplicates first, then accuracy
	filtered := collection.RemoveDuplicates().RemoveInaccurate(10)

	// Asserts
	assert.Len(t, filtered, 1)
	for _, record := range filtered {
		assert.Equal(t, "L5", record.Satellite)
	}
}

func TestCollection_ToFeatureCollection_Points(t *testing.T) {
	// Mock
	collection := mockCollection().RemoveDuplicates().RemoveInaccurate(10)

	// Tested code
	fc, err := collection.ToFeatureCollection(Points)

	// Asserts
	assert.Nil(t, err)
	assert.Len(t, fc.Features, 1)
	feature := fc.Features[0]
	assert.Equal(t, "L5", feature.PropertyString("satname"))
	assert.Equal(t, 0.05, feature.PropertyFloat("cloud_cover"))
	assert.Equal(t, 5.0, feature.PropertyFloat("geoaccuracy"))
}

func TestCollection_ToFeatureCollection_Lines(t *testing.T) {
	collection := mockCollection().RemoveDuplicates().RemoveInaccurate(10)

	fc, err := collection.ToFeatureCollection(Lines)

	assert.Nil(t, err)
	assert.Len(t, fc.Features, 1)
}

func TestCollection_ToFeatureCollection_BadGeometryType(t *testing.T) {
	collection := mockCollection()

	_, err := collection.ToFeatureCollection(GeometryType("hexagons"))

	assert.NotNil(t, err)
}

func TestCollection_ToFeatureCollection_Empty(t *testing.T) {
	fc, err := Collection{}.ToFeatureCollection(Points)

	assert.Nil(t, err)
	assert.Nil(t, fc, "an empty collection must convert to nil, not an error")
}

func TestWriteGeoJSON_TagsCRS(t *testing.T) {
	// Mock
	collection := mockCollection().RemoveDuplicates().RemoveInaccurate(10)
	fc, err := collection.ToFeatureCollection(Points)
	assert.Nil(t, err)
	path := filepath.Join(t.TempDir(), "NARRA", "NARRA_output_points.geojson")

	// Tested code
	err = WriteGeoJSON(path, fc, 28356)

	// Asserts
	assert.Nil(t, err)
	data, err := ioutil.ReadFile(path)
	assert.Nil(t, err)
	assert.True(t, strings.Contains(string(data), `"epsg:28356"`))
	assert.True(t, strings.Contains(string(data), `"FeatureCollection"`))
}

func TestWriteGeoJSON_Deterministic(t *testing.T) {
	// Mock
	collection := mockCollection().RemoveDuplicates().RemoveInaccurate(10)
	dir := t.TempDir()
	firstPath := filepath.Join(dir, "first.geojson")
	secondPath := filepath.Join(dir, "second.geojson")

	// Tested code: two exports of identical inputs
	fc1, err := collection.ToFeatureCollection(Points)
	assert.Nil(t, err)
	assert.Nil(t, WriteGeoJSON(firstPath, fc1, 28356))

	fc2, err := collection.ToFeatureCollection(Points)
	assert.Nil(t, err)
	assert.Nil(t, WriteGeoJSON(secondPath, fc2, 28356))

	// Asserts
	first, _ := ioutil.ReadFile(firstPath)
	second, _ := ioutil.ReadFile(secondPath)
	assert.Equal(t, first, second, "identical inputs must export byte-identical files")
}
