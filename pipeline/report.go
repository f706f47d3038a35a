package pipeline

// RunState is the terminal state of a pipeline run
type RunState string

// Run states
const (
	StateRunning RunState = "running"
	StateDone    RunState = "done"
	StateFailed  RunState = "failed"
)

// StageResult records the outcome of one completed or failed stage
type StageResult struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Report is the human-readable record of one run: which stages completed,
// which stage failed (if any), and the terminal state
type Report struct {
	State       RunState      `json:"state"`
	FailedStage Stage         `json:"failedStage,omitempty"`
	Stages      []StageResult `json:"stages"`
}

// NewReport creates an empty running report
func NewReport() *Report {
	return &Report{State: StateRunning, Stages: []StageResult{}}
}

func (r *Report) complete(stage Stage, message string) {
	r.Stages = append(r.Stages, StageResult{Stage: stage, Message: message})
}

func (r *Report) fail(stage Stage, err error) {
	r.State = StateFailed
	r.FailedStage = stage
	r.Stages = append(r.Stages, StageResult{Stage: stage, Error: err.Error()})
}

func (r *Report) done() {
	r.State = StateDone
}
