// Package writers provides the output stages that persist evaluation
// results. A Writer is a named pipeline stage wrapping a transform over the
// Evaluation; the stage holds no algorithmic logic of its own — encoding is
// delegated to eval/serialization and durable writing to recordio.
package writers

import (
	"context"

	"github.com/eval-pipeline/eval-pipeline/eval"
)

// Output kinds recognized in an output path mapping. They match the
// Evaluation keys the corresponding datasets are read from.
const (
	MetricsKind = eval.MetricsKey
	PlotsKind   = eval.PlotsKey
)

// Done is the completion marker a writer stage returns. It carries no data;
// it only signals that the stage issued all of its writes.
type Done struct{}

// TransformFn consumes an Evaluation and performs a stage's side effects.
type TransformFn func(ctx context.Context, evaluation eval.Evaluation) (Done, error)

// Writer is a named output stage. The host pipeline runs the transform once
// per evaluation; errors propagate to the host's failure policy unhandled —
// a writer performs no retries and recovers nothing locally.
type Writer struct {
	StageName string
	Transform TransformFn
}

// Run executes the stage's transform.
func (w Writer) Run(ctx context.Context, evaluation eval.Evaluation) (Done, error) {
	return w.Transform(ctx, evaluation)
}
