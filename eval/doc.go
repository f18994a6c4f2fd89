// Package eval defines the data model shared by the evaluation pipeline's
// terminal stages.
//
// # Reading Guide
//
// Start with these files to understand the model:
//   - evaluation.go: the Evaluation mapping handed to output stages, and its
//     typed dataset accessors
//   - record.go: the per-slice metric and plot record types
//
// # Architecture
//
// The eval package stores pure data types and the AddMetricsCallback
// capability interface; behavior lives in sub-packages:
//   - eval/serialization/: byte encoding of metric/plot records
//   - eval/writers/: the pipeline stages that persist serialized records
//
// Upstream evaluators produce an Evaluation; output stages consume it
// read-only. Nothing in this package performs I/O.
package eval
