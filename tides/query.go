package tides

import (
	"fmt"

	"github.com/venicegeo/bf-shoreline-harness/model"
	"github.com/venicegeo/bf-shoreline-harness/shoreline"
	"github.com/venicegeo/bf-shoreline-harness/util"
)

var httpRequestKnownJSONWithObject = util.ReqByObjJSON

// QueryMultipleTides requests tide information for a batch of locations
func QueryMultipleTides(context *Context, input Input) (*Output, error) {
	var out Output

	util.LogAudit(context, util.LogAuditInput{
		Actor: "anon user", Action: "POST", Actee: context.TidesURL, Message: "Requesting tide information", Severity: util.INFO,
	})
	if _, err := httpRequestKnownJSONWithObject("POST", context.TidesURL, "", input, &out); err != nil {
		return nil, err
	}
	util.LogAudit(context, util.LogAuditInput{
		Actor: context.TidesURL, Action: "POST response", Actee: "anon user", Message: "Retrieving tide information", Severity: util.INFO,
	})

	return &out, nil
}

// AddTidesToCollection does an *in-place* modification of the shoreline
// collection to augment its records with tides data
func AddTidesToCollection(context *Context, collection shoreline.Collection) error {
	keys := collection.SortedKeys()

	locations := make([]InputLocation, len(keys))
	for i, key := range keys {
		locations[i] = InputLocationForRecord(collection[key])
	}

	output, err := QueryMultipleTides(context, Input{Locations: locations})
	if err != nil {
		return err
	}
	if len(output.Locations) != len(keys) {
		return fmt.Errorf("Length mismatch between tides output and input data; input(len:%d) output(len:%d)",
			len(keys), len(output.Locations),
		)
	}

	for i, key := range keys {
		record := collection[key]
		record.Tides = &model.TidesData{
			Current: output.Locations[i].Results.CurrTide,
			Min24h:  output.Locations[i].Results.MinTide,
			Max24h:  output.Locations[i].Results.MaxTide,
		}
		collection[key] = record
	}

	return nil
}
