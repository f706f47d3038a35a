// Package shoreline holds the extracted-shoreline output collection and the
// filtering and export operations applied to it before results leave the run.
package shoreline

import (
	"fmt"
	"sort"
	"time"

	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/geojson-go/geojson"
)

// GeometryType selects the vector representation used when exporting a collection
type GeometryType string

// Supported export geometry types
const (
	Points GeometryType = "points"
	Lines  GeometryType = "lines"
)

// KeyTimeLayout is the scene-key date format
const KeyTimeLayout = "2006-01-02-15-04-05"

// Record is one extracted shoreline: its detected geometry plus the quality
// attributes used by filtering
type Record struct {
	Date           time.Time        `json:"date"`
	Satellite      string           `json:"satname"`
	Points         [][]float64      `json:"shoreline"`
	CloudCover     float64          `json:"cloud_cover"`
	GeorefAccuracy float64          `json:"geoaccuracy"`
	Tides          *model.TidesData `json:"-"`
}

// Key returns the scene key for this record (date plus satellite name)
func (r Record) Key() string {
	return r.Date.Format(KeyTimeLayout) + "_" + r.Satellite
}

// Collection maps scene keys to extracted shoreline records
type Collection map[string]Record

// SortedKeys returns the collection's scene keys in lexical order, which for
// the key format used here is also chronological order
func (c Collection) SortedKeys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// RemoveDuplicates returns a collection without exact duplicate entries: two
// records duplicate each other when they share a date, satellite and detected
// geometry. The first entry in key order is retained.
func (c Collection) RemoveDuplicates() Collection {
	filtered := Collection{}
	seen := map[string]bool{}
	for _, key := range c.SortedKeys() {
		record := c[key]
		signature := record.signature()
		if seen[signature] {
			continue
		}
		seen[signature] = true
		filtered[key] = record
	}
	return filtered
}

func (r Record) signature() string {
	sig := r.Key()
	for _, p := range r.Points {
		sig += fmt.Sprintf("|%v,%v", p[0], p[1])
	}
	return sig
}

// RemoveInaccurate returns a collection containing only records whose
// georeferencing accuracy is within the given threshold
func (c Collection) RemoveInaccurate(threshold float64) Collection {
	filtered := Collection{}
	for key, record := range c {
		if record.GeorefAccuracy < threshold {
			filtered[key] = record
		}
	}
	return filtered
}

// ToFeatureCollection converts the collection to a GeoJSON feature
// collection with one feature per record, using the requested geometry type.
// Features are emitted in sorted key order so output is deterministic. An
// empty collection converts to a nil collection with a nil error.
func (c Collection) ToFeatureCollection(geomType GeometryType) (*geojson.FeatureCollection, error) {
	features := make([]*geojson.Feature, 0, len(c))
	for _, key := range c.SortedKeys() {
		record := c[key]

		var geometry interface{}
		switch geomType {
		case Points:
			geometry = geojson.NewMultiPoint(record.Points)
		case Lines:
			geometry = geojson.NewLineString(record.Points)
		default:
			return nil, fmt.Errorf("unrecognized geometry type: %v", geomType)
		}

		feature := geojson.NewFeature(geometry, key, map[string]interface{}{
			"date": record.Date.Format(model.StandardTimeLayout),
		})
		quality := model.QualityData{
			Satellite:      record.Satellite,
			CloudCover:     record.CloudCover,
			GeorefAccuracy: record.GeorefAccuracy,
		}
		if err := quality.Apply(feature); err != nil {
			return nil, err
		}
		if record.Tides != nil {
			if err := record.Tides.Apply(feature); err != nil {
				return nil, err
			}
		}
		feature.Bbox = feature.ForceBbox()
		features = append(features, feature)
	}

	if len(features) == 0 {
		return nil, nil
	}
	return geojson.NewFeatureCollection(features), nil
}
