package eval

import "fmt"

// Output keys produced by upstream evaluators and consumed by output stages.
const (
	// MetricsKey indexes the per-slice metrics dataset in an Evaluation.
	MetricsKey = "metrics"
	// PlotsKey indexes the per-slice plots dataset in an Evaluation.
	PlotsKey = "plots"
)

// Evaluation maps output keys to the datasets produced by upstream
// evaluators. Output stages read it; nothing mutates it after the evaluator
// hands it off. A well-formed Evaluation carries at least MetricsKey and
// PlotsKey; absence of a required key surfaces as an error from the typed
// accessors and propagates out of the consuming stage unhandled.
type Evaluation map[string]any

// Metrics returns the per-slice metrics dataset.
func (e Evaluation) Metrics() ([]MetricsForSlice, error) {
	return datasetOf[MetricsForSlice](e, MetricsKey)
}

// Plots returns the per-slice plots dataset.
func (e Evaluation) Plots() ([]PlotsForSlice, error) {
	return datasetOf[PlotsForSlice](e, PlotsKey)
}

func datasetOf[T any](e Evaluation, key string) ([]T, error) {
	raw, ok := e[key]
	if !ok {
		return nil, fmt.Errorf("evaluation has no %q dataset", key)
	}
	ds, ok := raw.([]T)
	if !ok {
		return nil, fmt.Errorf("evaluation dataset %q has type %T, want []%T", key, raw, *new(T))
	}
	return ds, nil
}
