package recorder

// Transition labels stored with each run.
const (
	TransitionNone         = "NONE"
	TransitionInitial      = "INITIAL"
	TransitionContinuation = "CONTINUATION"
	TransitionRecovery     = "RECOVERY"
)

// RunRecord captures the outcome of one evaluation run. Missing instruments
// leave their fields at zero.
type RunRecord struct {
	PrimaryPrice    float64
	PrimaryDrawdown float64
	BroadPrice      float64
	BroadDrawdown   float64
	VolatilityValue float64
	Triggered       bool
	Trigger         string
	Transition      string
}

// Recorder persists run history.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
