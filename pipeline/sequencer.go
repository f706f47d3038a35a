// Package pipeline sequences the shoreline verification run: discovery,
// retrieval, extraction, filtering, export and reload, each stage gated on
// the previous stage's validated output, inside a transient working
// directory that is always released.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/venicegeo/bf-shoreline-harness/shoreline"
	"github.com/venicegeo/bf-shoreline-harness/snapshot"
	"github.com/venicegeo/bf-shoreline-harness/tides"
	"github.com/venicegeo/bf-shoreline-harness/util"
)

// Stage identifies one step of a pipeline run
type Stage string

// Pipeline stages, in execution order
const (
	StageInit       Stage = "init"
	StageDiscovery  Stage = "discovery"
	StageRetrieval  Stage = "retrieval"
	StageExtraction Stage = "extraction"
	StageFiltering  Stage = "filtering"
	StageConversion Stage = "conversion"
	StageExport     Stage = "export"
	StageReload     Stage = "reload"
)

// snapshotFileSuffix matches the snapshot filename written by the extraction
// toolchain
const snapshotFileSuffix = "_output.pkl"

var writeGeoJSONFunc = shoreline.WriteGeoJSON
var addTidesToCollectionFunc = tides.AddTidesToCollection

// Sequencer runs the pipeline stages strictly in order. No stage begins
// before the previous stage's postcondition is verified; any failure aborts
// the remaining stages. The working directory acquired at INIT is released
// on every exit path.
type Sequencer struct {
	Discoverer Discoverer
	Retriever  Retriever
	Extractor  Extractor
	Log        util.LogContext
}

func (s *Sequencer) logContext() util.LogContext {
	if s.Log != nil {
		return s.Log
	}
	return &util.BasicLogContext{}
}

// Run executes one verification run and returns its report. The returned
// error is the failure that ended the run, or nil when the run reached DONE.
func (s *Sequencer) Run(ctx context.Context, config RunConfig) (*Report, error) {
	report := NewReport()
	logContext := s.logContext()

	workdir, err := AcquireWorkdir(config.workdirRoot())
	if err != nil {
		report.fail(StageInit, err)
		return report, err
	}
	defer func() {
		if releaseErr := workdir.Release(); releaseErr != nil {
			util.LogAlert(logContext, fmt.Sprintf("Failed to clean up transient directory %s: %v", workdir.Path, releaseErr))
		} else {
			util.LogInfo(logContext, fmt.Sprintf("Transient directory %s cleaned up", workdir.Path))
		}
	}()

	rectangle, err := NormalizePolygon(config.Polygon)
	if err != nil {
		report.fail(StageInit, err)
		return report, err
	}
	inputs := &Inputs{
		Polygon:    rectangle,
		Dates:      config.Dates,
		Satellites: config.Satellites,
		SiteName:   config.SiteName,
		Filepath:   workdir.Path,
	}
	report.complete(StageInit, "Working directory acquired: "+workdir.Path)

	available, err := s.Discoverer.CheckAvailability(ctx, inputs)
	if err != nil {
		report.fail(StageDiscovery, err)
		return report, err
	}
	if available == nil {
		err = StageOutputMissing{StageDiscovery}
		report.fail(StageDiscovery, err)
		return report, err
	}
	report.complete(StageDiscovery, fmt.Sprintf("Available scenes: %d", len(available.Features)))
	util.LogInfo(logContext, fmt.Sprintf("Image availability check: OK (%d scenes)", len(available.Features)))

	metadata, err := s.Retriever.RetrieveImages(ctx, inputs)
	if err != nil {
		report.fail(StageRetrieval, err)
		return report, err
	}
	if metadata == nil {
		err = StageOutputMissing{StageRetrieval}
		report.fail(StageRetrieval, err)
		return report, err
	}
	report.complete(StageRetrieval, fmt.Sprintf("Retrieved scenes: %d", len(metadata)))
	util.LogInfo(logContext, "Image retrieval: OK")

	settings := DefaultSettings(inputs)
	output, err := s.Extractor.ExtractShorelines(ctx, metadata, settings)
	if err != nil {
		report.fail(StageExtraction, err)
		return report, err
	}
	if output == nil {
		err = StageOutputMissing{StageExtraction}
		report.fail(StageExtraction, err)
		return report, err
	}
	report.complete(StageExtraction, fmt.Sprintf("Extracted shorelines: %d", len(output)))
	util.LogInfo(logContext, "Shoreline extraction: OK")

	if config.Tides {
		tidesContext := &tides.Context{TidesURL: util.GetTidesURL()}
		if err = addTidesToCollectionFunc(tidesContext, output); err != nil {
			report.fail(StageExtraction, err)
			return report, err
		}
		util.LogInfo(logContext, "Tide enrichment: OK")
	}

	output = output.RemoveDuplicates()
	output = output.RemoveInaccurate(config.accuracyThreshold())
	if output == nil {
		err = StageOutputMissing{StageFiltering}
		report.fail(StageFiltering, err)
		return report, err
	}
	report.complete(StageFiltering, fmt.Sprintf("Retained shorelines: %d", len(output)))
	util.LogInfo(logContext, "Duplicates and inaccuracies removal: OK")

	featureCollection, err := output.ToFeatureCollection(config.geomType())
	if err != nil {
		report.fail(StageConversion, err)
		return report, err
	}
	if featureCollection == nil {
		err = StageOutputMissing{StageConversion}
		report.fail(StageConversion, err)
		return report, err
	}
	report.complete(StageConversion, fmt.Sprintf("Converted to %s geometry", config.geomType()))

	exportPath := filepath.Join(workdir.Path, config.SiteName,
		fmt.Sprintf("%s_output_%s.geojson", config.SiteName, config.geomType()))
	if err = writeGeoJSONFunc(exportPath, featureCollection, settings.OutputEPSG); err != nil {
		report.fail(StageExport, err)
		return report, err
	}
	report.complete(StageExport, "GeoJSON export: "+exportPath)
	util.LogInfo(logContext, "GeoJSON saving: OK")

	snapshotPath := filepath.Join(workdir.Path, config.SiteName, config.SiteName+snapshotFileSuffix)
	var reloaded shoreline.Collection
	if err = snapshot.Load(snapshotPath, &reloaded); err != nil {
		err = LoadFailure{Path: snapshotPath, Cause: err}
		report.fail(StageReload, err)
		return report, err
	}
	if reloaded == nil {
		err = LoadFailure{Path: snapshotPath, Cause: errors.New("snapshot decoded to nil")}
		report.fail(StageReload, err)
		return report, err
	}
	report.complete(StageReload, fmt.Sprintf("Reloaded shoreline records: %d", len(reloaded)))
	util.LogInfo(logContext, "Shoreline data loaded: OK")

	report.done()
	util.LogInfo(logContext, "Full pipeline run: OK")
	return report, nil
}
