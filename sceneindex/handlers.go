package sceneindex

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/bf-shoreline-harness/tides"
	"github.com/venicegeo/bf-shoreline-harness/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// DiscoverHandler is a handler for /localindex/discover/scenes
// @Title localIndexDiscoverHandler
// @Description discovers scenes from the local index
// @Accept  plain
// @Param   bbox            query   string  false        "The bounding box, as a GeoJSON Bounding box (x1,y1,x2,y2)"
// @Param   cloudCover      query   string  false        "The maximum cloud cover, as a percentage (0-100)"
// @Param   acquiredDate    query   string  false        "The minimum (earliest) acquired date, as RFC 3339"
// @Param   maxAcquiredDate query   string  false        "The maximum acquired date, as RFC 3339"
// @Param   satellites      query   string  false        "Comma-separated satellite names (default L5,L7,L8)"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /localindex/discover/scenes [get]
type DiscoverHandler struct {
	Context Context
}

// NewDiscoverHandler creates a new handler using configuration
// from environment variables
func NewDiscoverHandler(connectionProvider ConnectionProvider) (*DiscoverHandler, error) {
	db, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &DiscoverHandler{Context: Context{DB: db}}, nil
}

// SceneHandler is a handler for /localindex/scenes/{id}
// @Title localIndexSceneHandler
// @Description returns a single scene from the local index
// @Accept  plain
// @Param   id     path    string  false        "The ID of the requested scene"
// @Param   tides  query   bool    false        "True: incorporate tide prediction in the output"
// @Success 200 {object}  geojson.Feature
// @Failure 404 {object}  string
// @Router /localindex/scenes/{id} [get]
type SceneHandler struct {
	Context Context
}

// NewSceneHandler creates a new handler using the environment and given DB
func NewSceneHandler(connectionProvider ConnectionProvider) (*SceneHandler, error) {
	tidesURL := util.GetTidesURL()

	db, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &SceneHandler{Context: Context{DB: db, BaseTidesURL: tidesURL}}, nil
}

// ServeHTTP implements the http.Handler interface for the SceneHandler type
func (h SceneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sceneID, ok := mux.Vars(r)["id"]
	if !ok {
		message := "No scene ID found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	withTides, _ := strconv.ParseBool(r.FormValue("tides"))

	scene, err := GetSceneByID(tx, sceneID)
	if err == sql.ErrNoRows {
		message := fmt.Sprintf("Scene not found: %s", sceneID)
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		tx.Rollback()
		return
	}
	if err != nil {
		message := fmt.Sprintf("Server error searching for scene: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	result := model.SceneSearchResult{SceneResult: sceneResultFromIndexedScene(*scene)}
	if withTides {
		if result.TidesData, err = sceneTidesData(&h.Context, *scene); err != nil {
			message := fmt.Sprintf("Error retrieving tide prediction: %v", err)
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
			tx.Rollback()
			return
		}
	}

	feature, err := result.GeoJSONFeature()
	if err != nil {
		message := fmt.Sprintf("Error converting scene to geojson: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(feature)
}

func sceneTidesData(ctx *Context, scene IndexedScene) (*model.TidesData, error) {
	tidesContext := &tides.Context{TidesURL: ctx.BaseTidesURL}
	input := tides.Input{Locations: []tides.InputLocation{
		tides.InputLocationForBounds(scene.Bounds, scene.AcquisitionDate),
	}}

	output, err := tides.QueryMultipleTides(tidesContext, input)
	if err != nil {
		return nil, err
	}
	if len(output.Locations) != 1 {
		return nil, fmt.Errorf("expected 1 tide prediction, got %d", len(output.Locations))
	}

	results := output.Locations[0].Results
	return &model.TidesData{
		Current: results.CurrTide,
		Min24h:  results.MinTide,
		Max24h:  results.MaxTide,
	}, nil
}

// ServeHTTP implements the http.Handler interface for the DiscoverHandler type
func (h DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	bbox, err := geojson.NewBoundingBox(r.FormValue("bbox"))
	if err != nil {
		message := fmt.Sprintf("The bbox value of %v is invalid", r.FormValue("bbox"))
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		tx.Rollback()
		return
	}

	maxCloudCover := float64(1)
	if r.FormValue("cloudCover") != "" {
		if maxCloudCover, err = strconv.ParseFloat(r.FormValue("cloudCover"), 64); err != nil {
			message := fmt.Sprintf("Cloud Cover value of %v is invalid.", r.FormValue("cloudCover"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
		maxCloudCover = maxCloudCover / 100.0
	}

	minAcquiredDate := time.Time{}
	if r.FormValue("acquiredDate") != "" {
		if minAcquiredDate, err = model.ParseCatalogTime(r.FormValue("acquiredDate")); err != nil {
			message := fmt.Sprintf("Acquired date value of %v is invalid.", r.FormValue("acquiredDate"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}
	maxAcquiredDate := time.Now()
	if r.FormValue("maxAcquiredDate") != "" {
		if maxAcquiredDate, err = model.ParseCatalogTime(r.FormValue("maxAcquiredDate")); err != nil {
			message := fmt.Sprintf("Max acquired date value of %v is invalid.", r.FormValue("maxAcquiredDate"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}

	satellites := []string{"L5", "L7", "L8"}
	if r.FormValue("satellites") != "" {
		satellites = strings.Split(r.FormValue("satellites"), ",")
	}

	scenes, err := SearchScenes(tx, bbox, satellites, maxCloudCover, minAcquiredDate, maxAcquiredDate)
	if err != nil {
		message := fmt.Sprintf("Could not search scenes: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	multiResult := model.MultiSceneResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(scenes)),
	}
	for i, scene := range scenes {
		multiResult.FeatureCreators[i] = sceneResultFromIndexedScene(scene)
	}

	featureCollection, err := multiResult.GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Could not build response: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(featureCollection)
}
