package eval

// MetricsForSlice holds the computed metric values for one slice of the
// evaluation data. Metric values are small (a handful of named scalars per
// slice), which is what makes single-shard metric output bounded.
type MetricsForSlice struct {
	SliceKey string             `json:"slice_key" yaml:"slice"`
	Metrics  map[string]float64 `json:"metrics" yaml:"metrics"`
}

// PlotEntry is one point of a plot curve: the confusion matrix at a single
// decision threshold plus the derived precision/recall.
type PlotEntry struct {
	Threshold      float64 `json:"threshold" yaml:"threshold"`
	TruePositives  int64   `json:"true_positives" yaml:"true_positives"`
	FalsePositives int64   `json:"false_positives" yaml:"false_positives"`
	TrueNegatives  int64   `json:"true_negatives" yaml:"true_negatives"`
	FalseNegatives int64   `json:"false_negatives" yaml:"false_negatives"`
	Precision      float64 `json:"precision" yaml:"precision"`
	Recall         float64 `json:"recall" yaml:"recall"`
}

// PlotsForSlice holds the plot curves for one slice, keyed by plot name.
// Plots are stored with one entry per threshold (commonly ~1K thresholds,
// up to 7 fields each), so plot output grows much faster than metric output.
type PlotsForSlice struct {
	SliceKey string                 `json:"slice_key" yaml:"slice"`
	Plots    map[string][]PlotEntry `json:"plots" yaml:"plots"`
}

// AddMetricsCallback derives additional metric values from a slice's raw
// metrics. Callbacks are configured on the writer stage and invoked by the
// serialization layer just before encoding; the stage itself never calls
// them. A callback error aborts serialization for the whole dataset.
type AddMetricsCallback interface {
	// Name identifies the callback in logs and errors.
	Name() string
	// AddMetrics returns derived metric values to merge into the slice's
	// metrics. Returning an empty map is valid.
	AddMetrics(slice MetricsForSlice) (map[string]float64, error)
}
