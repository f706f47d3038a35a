package pipeline

import (
	"github.com/venicegeo/bf-shoreline-harness/shoreline"
	"github.com/venicegeo/bf-shoreline-harness/util"
)

// Inputs is the immutable per-run configuration shared by every downstream
// stage. It is built once during INIT and never mutated afterwards.
type Inputs struct {
	Polygon    [][][]float64 `json:"polygon"`
	Dates      [2]string     `json:"dates"`
	Satellites []string      `json:"sat_list"`
	SiteName   string        `json:"sitename"`
	Filepath   string        `json:"filepath"`
}

// Settings holds the shoreline detection tunables passed to the extraction
// collaborator, plus a back-reference to the run inputs
type Settings struct {
	CloudThresh     float64 `json:"cloud_thresh"`
	DistClouds      float64 `json:"dist_clouds"`
	OutputEPSG      int     `json:"output_epsg"`
	CheckDetection  bool    `json:"check_detection"`
	AdjustDetection bool    `json:"adjust_detection"`
	SaveFigure      bool    `json:"save_figure"`
	MinBeachArea    float64 `json:"min_beach_area"`
	MinLengthSL     float64 `json:"min_length_sl"`
	CloudMaskIssue  bool    `json:"cloud_mask_issue"`
	SandColor       string  `json:"sand_color"`
	PanOff          bool    `json:"pan_off"`
	S2CloudlessProb float64 `json:"s2cloudless_prob"`
	Inputs          *Inputs `json:"inputs"`
}

// DefaultSettings returns the fixed extraction tunables used by the
// verification scenario
func DefaultSettings(inputs *Inputs) *Settings {
	return &Settings{
		CloudThresh:     0.1,
		DistClouds:      300,
		OutputEPSG:      28356,
		CheckDetection:  false,
		AdjustDetection: false,
		SaveFigure:      false,
		MinBeachArea:    1000,
		MinLengthSL:     500,
		CloudMaskIssue:  false,
		SandColor:       "default",
		PanOff:          false,
		S2CloudlessProb: 40,
		Inputs:          inputs,
	}
}

// RunConfig is the explicit configuration for one verification run.
// AccuracyThreshold zero selects the default of 10; a negative threshold is
// explicit and retains no records. Tides enables tide enrichment of the
// extracted records before filtering.
type RunConfig struct {
	Polygon           [][][]float64
	Dates             [2]string
	Satellites        []string
	SiteName          string
	WorkdirRoot       string
	GeomType          shoreline.GeometryType
	AccuracyThreshold float64
	Tides             bool
}

// narrabeenPolygon is the Sydney Narrabeen-Collaroy region of interest used
// by the fixed verification scenario
var narrabeenPolygon = [][][]float64{{
	{151.301454, -33.700754},
	{151.311453, -33.702075},
	{151.307237, -33.739761},
	{151.294220, -33.736329},
	{151.301454, -33.700754},
}}

// DefaultRunConfig returns the fixed NARRA verification scenario
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Polygon:           narrabeenPolygon,
		Dates:             [2]string{"1984-01-01", "2022-01-01"},
		Satellites:        []string{"L5", "L7", "L8"},
		SiteName:          "NARRA",
		GeomType:          shoreline.Points,
		AccuracyThreshold: 10,
	}
}

func (c RunConfig) workdirRoot() string {
	if c.WorkdirRoot != "" {
		return c.WorkdirRoot
	}
	return util.GetWorkdirRoot()
}

func (c RunConfig) geomType() shoreline.GeometryType {
	if c.GeomType == "" {
		return shoreline.Points
	}
	return c.GeomType
}

func (c RunConfig) accuracyThreshold() float64 {
	if c.AccuracyThreshold == 0 {
		return 10
	}
	return c.AccuracyThreshold
}
