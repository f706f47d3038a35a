package pipeline

import (
	"fmt"

	"github.com/venicegeo/bf-shoreline-harness/envcheck"
	"github.com/venicegeo/bf-shoreline-harness/geometry"
	"github.com/venicegeo/bf-shoreline-harness/util"
)

// RunChecks executes the environment sanity checks and the geometry utility
// check that gate a pipeline run. The checks are independent and side-effect
// free; the first failure aborts the rest.
func RunChecks(logContext util.LogContext) error {
	if err := envcheck.CheckNumeric(); err != nil {
		return InvariantViolation{Check: "numeric", Message: err.Error()}
	}
	util.LogInfo(logContext, "Numeric library check: OK")

	if err := envcheck.CheckTabular(); err != nil {
		return InvariantViolation{Check: "tabular", Message: err.Error()}
	}
	util.LogInfo(logContext, "Tabular library check: OK")

	if _, err := NormalizePolygon(DefaultRunConfig().Polygon); err != nil {
		return err
	}
	util.LogInfo(logContext, "Smallest rectangle check: OK")

	return nil
}

// NormalizePolygon derives the region of interest's bounding rectangle and
// verifies its structural invariants: exactly 5 points, first equal to last
func NormalizePolygon(polygon [][][]float64) ([][][]float64, error) {
	rectangle, err := geometry.SmallestRectangle(polygon)
	if err != nil {
		return nil, InvariantViolation{Check: "smallest_rectangle", Message: err.Error()}
	}

	ring := rectangle[0]
	if len(ring) != 5 {
		return nil, InvariantViolation{
			Check:   "smallest_rectangle",
			Message: fmt.Sprintf("rectangle should have 5 points (4 vertices plus the closing point), got %d", len(ring)),
		}
	}
	if !geometry.IsClosedRing(ring) {
		return nil, InvariantViolation{
			Check:   "smallest_rectangle",
			Message: "the first and last point should be the same to close the polygon",
		}
	}

	return rectangle, nil
}
