package pipeline

import (
	"context"

	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/bf-shoreline-harness/shoreline"
	"github.com/venicegeo/geojson-go/geojson"
)

// The pipeline's collaborators follow a shared contract: a nil result with a
// nil error means "no data found" and is mapped to StageOutputMissing by the
// sequencer, while a non-nil error is a failed call. The passed context
// bounds the call; no default deadline is imposed here.

// Discoverer checks which scenes are available for the run's region, date
// range and satellite list
type Discoverer interface {
	CheckAvailability(ctx context.Context, inputs *Inputs) (*geojson.FeatureCollection, error)
}

// Retriever locates or downloads the imagery for available scenes and
// returns its per-scene metadata
type Retriever interface {
	RetrieveImages(ctx context.Context, inputs *Inputs) ([]model.SceneMetadata, error)
}

// Extractor runs shoreline detection over retrieved imagery. As a side
// effect it writes a binary snapshot of its full output under the run's
// working directory, which the reload stage reads back.
type Extractor interface {
	ExtractShorelines(ctx context.Context, metadata []model.SceneMetadata, settings *Settings) (shoreline.Collection, error)
}
