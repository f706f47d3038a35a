package model

import (
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// SceneResult holds the fields common to all catalog scene results
type SceneResult struct {
	ID           string
	Geometry     interface{}
	CloudCover   float64
	Resolution   float64
	AcquiredDate time.Time
	SensorName   string
	FileFormat   SceneFileFormat
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (sr SceneResult) GeoJSONFeature() (*geojson.Feature, error) {
	f := geojson.NewFeature(sr.Geometry, sr.ID, map[string]interface{}{
		"cloudCover":   sr.CloudCover,
		"resolution":   sr.Resolution,
		"acquiredDate": sr.AcquiredDate.Format(StandardTimeLayout),
		"sensorName":   sr.SensorName,
	})
	f.Bbox = f.ForceBbox()
	return f, nil
}

// SceneSearchResult contains a barebones scene search result -- basic
// data, plus optional tides data
type SceneSearchResult struct {
	SceneResult
	*TidesData
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (result SceneSearchResult) GeoJSONFeature() (*geojson.Feature, error) {
	feature, err := result.SceneResult.GeoJSONFeature()
	if err != nil {
		return nil, err
	}

	if result.TidesData != nil {
		err = result.TidesData.Apply(feature)
		if err != nil {
			return nil, err
		}
	}

	return feature, nil
}

// SceneMetadata describes one retrieved scene: where its imagery landed on
// disk and the georeferencing info needed by shoreline extraction
type SceneMetadata struct {
	SceneID        string    `json:"scene_id"`
	Satellite      string    `json:"satellite"`
	AcquiredDate   time.Time `json:"acquired_date"`
	EPSG           int       `json:"epsg"`
	GeorefAccuracy float64   `json:"georef_accuracy"`
	Filenames      []string  `json:"filenames"`
}

// MultiSceneResult is a container type for bundling multiple results together,
// e.g. as the response to an availability check
type MultiSceneResult struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiSceneResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.FeatureCreators))
	for i, creator := range result.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}
