package main

import (
	"context"

	"github.com/venicegeo/bf-shoreline-harness/catalog"
	"github.com/venicegeo/bf-shoreline-harness/extraction"
	"github.com/venicegeo/bf-shoreline-harness/pipeline"
	"github.com/venicegeo/bf-shoreline-harness/util"
	cli "gopkg.in/urfave/cli.v1"
)

func newSequencer() *pipeline.Sequencer {
	catalogClient := catalog.NewClient()
	return &pipeline.Sequencer{
		Discoverer: catalogClient,
		Retriever:  catalogClient,
		Extractor:  extraction.NewClient(),
		Log:        &util.BasicLogContext{},
	}
}

var newSequencerFunc = newSequencer

func checkAction(*cli.Context) error {
	return pipeline.RunChecks(&util.BasicLogContext{})
}

func runAction(*cli.Context) error {
	logContext := &util.BasicLogContext{}

	if err := pipeline.RunChecks(logContext); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	sequencer := newSequencerFunc()
	report, err := sequencer.Run(context.Background(), pipeline.DefaultRunConfig())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	util.LogInfo(logContext, "All verification stages were successfully executed.")
	lastReport = report
	return nil
}
