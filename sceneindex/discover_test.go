package sceneindex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/geojson-go/geojson"
)

var mockBounds = geojson.NewPolygon([][][]float64{{
	{151.2, -33.6}, {151.4, -33.6}, {151.4, -33.8}, {151.2, -33.8}, {151.2, -33.6},
}})

var mockIndexedScene = IndexedScene{
	ProductID:       "LT05_L1TP_089083_19890612",
	Satellite:       "L5",
	AcquisitionDate: time.Date(1989, 6, 12, 23, 21, 8, 0, time.UTC),
	CloudCover:      0.07,
	GeorefAccuracy:  5.2,
	SceneURLString:  "https://example.localhost/LT05_L1TP_089083_19890612/",
	Bounds:          mockBounds,
}

func TestSceneResultFromIndexedScene(t *testing.T) {
	// Tested code
	result := sceneResultFromIndexedScene(mockIndexedScene)

	// Asserts
	assert.Equal(t, mockIndexedScene.ProductID, result.ID)
	assert.Equal(t, mockIndexedScene.Satellite, result.SensorName)
	assert.Equal(t, mockIndexedScene.AcquisitionDate, result.AcquiredDate)
	assert.Equal(t, mockIndexedScene.CloudCover, result.CloudCover)
	assert.Equal(t, float64(landsatResolutionMeters), result.Resolution)
	assert.Equal(t, model.GeoTIFF, result.FileFormat)
}

func TestSceneResultFromIndexedScene_FeatureCreation(t *testing.T) {
	// Tested code
	feature, err := sceneResultFromIndexedScene(mockIndexedScene).GeoJSONFeature()

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, mockIndexedScene.ProductID, feature.IDStr())
	assert.Equal(t, "L5", feature.PropertyString("sensorName"))
	assert.Nil(t, feature.Bbox.Valid())
}
