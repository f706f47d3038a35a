package shoreline

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/venicegeo/geojson-go/geojson"
)

// crsTag is the named-CRS member attached to exported documents
type crsTag struct {
	Type       string        `json:"type"`
	Properties crsProperties `json:"properties"`
}

type crsProperties struct {
	Name string `json:"name"`
}

// exportDocument is a GeoJSON feature collection document carrying an
// explicit coordinate reference system tag
type exportDocument struct {
	Type     string             `json:"type"`
	CRS      crsTag             `json:"crs"`
	Features []*geojson.Feature `json:"features"`
}

// CRSName formats the CRS tag value for a spatial reference identifier
func CRSName(epsg int) string {
	return fmt.Sprintf("epsg:%d", epsg)
}

// WriteGeoJSON writes the feature collection to path as a UTF-8 GeoJSON
// document tagged with the given spatial reference identifier, creating
// parent directories as needed. Output bytes are deterministic for a given
// input.
func WriteGeoJSON(path string, fc *geojson.FeatureCollection, epsg int) error {
	document := exportDocument{
		Type: "FeatureCollection",
		CRS: crsTag{
			Type:       "name",
			Properties: crsProperties{Name: CRSName(epsg)},
		},
		Features: fc.Features,
	}

	data, err := json.Marshal(document)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}
