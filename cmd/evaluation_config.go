package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eval-pipeline/eval-pipeline/eval"
)

// EvaluationSpec is the YAML form of an evaluation result fed to the write
// command: the per-slice metrics and plots an upstream evaluator produced.
type EvaluationSpec struct {
	Metrics []eval.MetricsForSlice `yaml:"metrics"`
	Plots   []eval.PlotsForSlice   `yaml:"plots"`
}

// LoadEvaluationSpec reads an EvaluationSpec from a YAML file and converts
// it to the Evaluation mapping consumed by writer stages. Absent sections
// become empty datasets, so a spec listing only metrics is still complete.
func LoadEvaluationSpec(path string) (eval.Evaluation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read evaluation spec %s: %w", path, err)
	}

	var spec EvaluationSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse evaluation spec %s: %w", path, err)
	}

	if spec.Metrics == nil {
		spec.Metrics = []eval.MetricsForSlice{}
	}
	if spec.Plots == nil {
		spec.Plots = []eval.PlotsForSlice{}
	}

	return eval.Evaluation{
		eval.MetricsKey: spec.Metrics,
		eval.PlotsKey:   spec.Plots,
	}, nil
}
