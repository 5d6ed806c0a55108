package engine

type PipelinePhase string

const (
	// Threshold rules run once per invocation; the first one that holds
	// ends the invocation with no operations.
	Threshold PipelinePhase = "threshold"
	// Match rules run per candidate; a candidate matches when all hold.
	Match PipelinePhase = "match"
)

func (p PipelinePhase) Valid() bool {
	return p == Threshold || p == Match
}
