package writers

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/eval-pipeline/eval-pipeline/eval"
	"github.com/eval-pipeline/eval-pipeline/eval/serialization"
	"github.com/eval-pipeline/eval-pipeline/recordio"
)

// StageNameWriteMetricsAndPlots names the metrics-and-plots writer stage.
const StageNameWriteMetricsAndPlots = "WriteMetricsAndPlots"

// MetricsAndPlotsWriter returns the writer stage for metrics and plots.
//
// outputPaths maps output kind (MetricsKind, PlotsKind) to the file path the
// serialized dataset of that kind is written to; a kind absent from the
// mapping is simply not written. callbacks is an optional ordered list of
// metric callbacks, passed through to the serialization layer unmodified.
// Construction performs no I/O and no path validation — both are deferred to
// the write primitive at execution time.
func MetricsAndPlotsWriter(outputPaths map[string]string, callbacks []eval.AddMetricsCallback) Writer {
	return Writer{
		StageName: StageNameWriteMetricsAndPlots,
		Transform: func(ctx context.Context, evaluation eval.Evaluation) (Done, error) {
			return writeMetricsAndPlots(ctx, evaluation, outputPaths, callbacks)
		},
	}
}

// writeMetricsAndPlots serializes both datasets and writes each configured
// kind to a single-shard recordio file. The two writes are independent
// parallel branches with no ordering guarantee between them; the first
// failure cancels the sibling branch and propagates.
func writeMetricsAndPlots(
	ctx context.Context,
	evaluation eval.Evaluation,
	outputPaths map[string]string,
	callbacks []eval.AddMetricsCallback,
) (Done, error) {
	for kind := range outputPaths {
		if kind != MetricsKind && kind != PlotsKind {
			logrus.Warnf("ignoring unknown output kind %q in output paths", kind)
		}
	}

	metrics, err := evaluation.Metrics()
	if err != nil {
		return Done{}, err
	}
	plots, err := evaluation.Plots()
	if err != nil {
		return Done{}, err
	}

	serializedMetrics, serializedPlots, err := serialization.SerializeMetricsAndPlots(metrics, plots, callbacks)
	if err != nil {
		return Done{}, err
	}

	g, ctx := errgroup.WithContext(ctx)

	if path, ok := outputPaths[MetricsKind]; ok {
		// A single shard suffices: metrics are one small record per slice,
		// so even millions of slices stay within a few hundred MB.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logrus.Infof("writing %d metrics records to '%s'", len(serializedMetrics), path)
			return recordio.WriteFile(path, serializedMetrics)
		})
	}

	if path, ok := outputPaths[PlotsKind]; ok {
		// Single shard here assumes plots are disabled at extreme slice
		// counts: each plot record carries ~1K thresholds of up to 7 fields,
		// so violating that assumption can push one file into hundreds of GB.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logrus.Infof("writing %d plots records to '%s'", len(serializedPlots), path)
			return recordio.WriteFile(path, serializedPlots)
		})
	}

	if err := g.Wait(); err != nil {
		return Done{}, err
	}
	return Done{}, nil
}
