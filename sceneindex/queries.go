package sceneindex

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/venicegeo/geojson-go/geojson"
)

// SearchScenes finds indexed scenes whose bounds intersect the bounding box,
// within the date range and cloud cover limit, for the given satellites
func SearchScenes(tx *sql.Tx, bbox geojson.BoundingBox, satellites []string,
	maxCloudCover float64, minAcquiredDate time.Time, maxAcquiredDate time.Time) ([]IndexedScene, error) {
	rows, err := tx.Query(`
		SELECT product_id, satellite, acquisition_date, cloud_cover, georef_accuracy, scene_url, bounds
		FROM public.scenes
		WHERE max_lon >= $1 AND min_lon <= $3
		  AND max_lat >= $2 AND min_lat <= $4
		  AND acquisition_date BETWEEN $5 AND $6
		  AND cloud_cover <= $7
		  AND satellite = ANY($8)
		ORDER BY acquisition_date, product_id`,
		bbox[0], bbox[1], bbox[2], bbox[3],
		minAcquiredDate, maxAcquiredDate, maxCloudCover, pq.Array(satellites),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scenes := []IndexedScene{}
	for rows.Next() {
		var (
			scene       IndexedScene
			boundsBytes []byte
		)
		err = rows.Scan(&scene.ProductID, &scene.Satellite, &scene.AcquisitionDate,
			&scene.CloudCover, &scene.GeorefAccuracy, &scene.SceneURLString, &boundsBytes)
		if err != nil {
			return nil, err
		}
		if scene.Bounds, err = geojson.PolygonFromBytes(boundsBytes); err != nil {
			return nil, err
		}
		scenes = append(scenes, scene)
	}

	return scenes, rows.Err()
}

// GetSceneByID looks up a single indexed scene by product ID
func GetSceneByID(tx *sql.Tx, productID string) (*IndexedScene, error) {
	var boundsBytes []byte
	scene := IndexedScene{}

	rows, err := tx.Query(`
		SELECT product_id, satellite, acquisition_date, cloud_cover, georef_accuracy, scene_url, bounds
		FROM public.scenes
		WHERE product_id=$1
		LIMIT 1`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, sql.ErrNoRows
	}

	err = rows.Scan(&scene.ProductID, &scene.Satellite, &scene.AcquisitionDate,
		&scene.CloudCover, &scene.GeorefAccuracy, &scene.SceneURLString, &boundsBytes)
	if err != nil {
		return nil, err
	}

	scene.Bounds, err = geojson.PolygonFromBytes(boundsBytes)
	if err != nil {
		return nil, err
	}

	return &scene, nil
}
