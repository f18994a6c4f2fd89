package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eval-pipeline/eval-pipeline/eval/serialization"
	"github.com/eval-pipeline/eval-pipeline/eval/writers"
)

// decodeRecordLine decodes one serialized payload as the given kind and
// renders a stable single-line summary (metric names sorted for readability).
func decodeRecordLine(payload []byte, kind string) (string, error) {
	switch kind {
	case writers.MetricsKind:
		m, err := serialization.DeserializeMetricsForSlice(payload)
		if err != nil {
			return "", err
		}
		names := make([]string, 0, len(m.Metrics))
		for name := range m.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%g", name, m.Metrics[name]))
		}
		return fmt.Sprintf("slice=%q %s", m.SliceKey, strings.Join(parts, " ")), nil
	case writers.PlotsKind:
		p, err := serialization.DeserializePlotsForSlice(payload)
		if err != nil {
			return "", err
		}
		names := make([]string, 0, len(p.Plots))
		for name := range p.Plots {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s(%d thresholds)", name, len(p.Plots[name])))
		}
		return fmt.Sprintf("slice=%q %s", p.SliceKey, strings.Join(parts, " ")), nil
	default:
		return "", fmt.Errorf("unknown record kind %q", kind)
	}
}
