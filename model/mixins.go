package model

import (
	"github.com/venicegeo/geojson-go/geojson"
)

// TidesData is a mixin containing optional tides data from bf-tideprediction
type TidesData struct {
	Current float64
	Min24h  float64
	Max24h  float64
}

// Apply implements the GeoJSONFeatureMixin interface
func (td TidesData) Apply(feature *geojson.Feature) error {
	feature.Properties["currentTide"] = td.Current
	feature.Properties["minimumTide24Hours"] = td.Min24h
	feature.Properties["maximumTide24Hours"] = td.Max24h
	return nil
}

// QualityData is a mixin containing the per-scene quality attributes carried
// by extracted shorelines
type QualityData struct {
	Satellite      string
	CloudCover     float64
	GeorefAccuracy float64
}

// Apply implements the GeoJSONFeatureMixin interface
func (qd QualityData) Apply(feature *geojson.Feature) error {
	feature.Properties["satname"] = qd.Satellite
	feature.Properties["cloud_cover"] = qd.CloudCover
	feature.Properties["geoaccuracy"] = qd.GeorefAccuracy
	return nil
}
