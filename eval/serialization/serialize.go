// Package serialization converts per-slice metric and plot records to and
// from the byte encoding stored in evaluation output files. The encoding is
// JSON, one record per payload; the framing around each payload belongs to
// the recordio container, not to this package.
package serialization

import (
	"encoding/json"
	"fmt"

	"github.com/eval-pipeline/eval-pipeline/eval"
)

// SerializeMetricsAndPlots encodes both datasets of an evaluation. Callbacks
// run against each metrics record first, and the derived values are merged
// into the record before encoding; a derived value never overwrites a raw
// metric with the same name. The input records are not mutated. Any callback
// or encoding error aborts the whole call.
func SerializeMetricsAndPlots(
	metrics []eval.MetricsForSlice,
	plots []eval.PlotsForSlice,
	callbacks []eval.AddMetricsCallback,
) (serializedMetrics, serializedPlots [][]byte, err error) {
	serializedMetrics = make([][]byte, 0, len(metrics))
	for _, m := range metrics {
		rec, err := applyCallbacks(m, callbacks)
		if err != nil {
			return nil, nil, err
		}
		payload, err := json.Marshal(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("serialize metrics for slice %q: %w", m.SliceKey, err)
		}
		serializedMetrics = append(serializedMetrics, payload)
	}

	serializedPlots = make([][]byte, 0, len(plots))
	for _, p := range plots {
		payload, err := json.Marshal(p)
		if err != nil {
			return nil, nil, fmt.Errorf("serialize plots for slice %q: %w", p.SliceKey, err)
		}
		serializedPlots = append(serializedPlots, payload)
	}

	return serializedMetrics, serializedPlots, nil
}

// applyCallbacks returns a copy of m extended with every callback's derived
// metric values.
func applyCallbacks(m eval.MetricsForSlice, callbacks []eval.AddMetricsCallback) (eval.MetricsForSlice, error) {
	if len(callbacks) == 0 {
		return m, nil
	}

	merged := make(map[string]float64, len(m.Metrics))
	for name, value := range m.Metrics {
		merged[name] = value
	}
	for _, cb := range callbacks {
		derived, err := cb.AddMetrics(m)
		if err != nil {
			return eval.MetricsForSlice{}, fmt.Errorf("metrics callback %q on slice %q: %w", cb.Name(), m.SliceKey, err)
		}
		for name, value := range derived {
			if _, exists := merged[name]; exists {
				continue
			}
			merged[name] = value
		}
	}
	return eval.MetricsForSlice{SliceKey: m.SliceKey, Metrics: merged}, nil
}

// DeserializeMetricsForSlice decodes one serialized metrics record.
func DeserializeMetricsForSlice(payload []byte) (eval.MetricsForSlice, error) {
	var m eval.MetricsForSlice
	if err := json.Unmarshal(payload, &m); err != nil {
		return eval.MetricsForSlice{}, fmt.Errorf("deserialize metrics record: %w", err)
	}
	return m, nil
}

// DeserializePlotsForSlice decodes one serialized plots record.
func DeserializePlotsForSlice(payload []byte) (eval.PlotsForSlice, error) {
	var p eval.PlotsForSlice
	if err := json.Unmarshal(payload, &p); err != nil {
		return eval.PlotsForSlice{}, fmt.Errorf("deserialize plots record: %w", err)
	}
	return p, nil
}
