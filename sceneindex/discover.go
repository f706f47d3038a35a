// Package sceneindex implements the discovery collaborator over a local
// Postgres index of catalog scenes.
package sceneindex

import (
	"context"

	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/bf-shoreline-harness/pipeline"
	"github.com/venicegeo/geojson-go/geojson"
)

// landsatResolutionMeters is the ground sample distance of the indexed scenes
const landsatResolutionMeters = 30

// Discoverer implements the pipeline.Discoverer contract against the local
// scene index
type Discoverer struct {
	Context *Context
}

// CheckAvailability searches the index for scenes matching the run's region,
// date range and satellite list. A nil collection with a nil error means the
// index matched no scenes.
func (d *Discoverer) CheckAvailability(ctx context.Context, inputs *pipeline.Inputs) (*geojson.FeatureCollection, error) {
	minAcquired, err := model.ParseCatalogTime(inputs.Dates[0])
	if err != nil {
		return nil, err
	}
	maxAcquired, err := model.ParseCatalogTime(inputs.Dates[1])
	if err != nil {
		return nil, err
	}

	bbox := geojson.NewPolygon(inputs.Polygon).ForceBbox()

	tx, err := d.Context.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Commit()

	scenes, err := SearchScenes(tx, bbox, inputs.Satellites, 1.0, minAcquired, maxAcquired)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if len(scenes) == 0 {
		return nil, nil
	}

	multiResult := model.MultiSceneResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(scenes)),
	}
	for i, scene := range scenes {
		multiResult.FeatureCreators[i] = sceneResultFromIndexedScene(scene)
	}

	return multiResult.GeoJSONFeatureCollection()
}

func sceneResultFromIndexedScene(scene IndexedScene) model.SceneResult {
	return model.SceneResult{
		ID:           scene.ProductID,
		Geometry:     scene.Bounds,
		CloudCover:   scene.CloudCover,
		Resolution:   landsatResolutionMeters,
		AcquiredDate: scene.AcquisitionDate,
		SensorName:   scene.Satellite,
		FileFormat:   model.GeoTIFF,
	}
}
