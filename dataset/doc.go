// Package dataset ingests the raw fight-song CSV and engineers the feature
// table the mapper pipeline runs on.
//
// What:
//
//   - Config is the explicit ingestion artifact: conference filter, the
//     schools realignment adopted into it, and the per-school win-rate
//     table. It loads from YAML with DefaultConfig as the base layer.
//   - Load/LoadFile parse the CSV, filter to the configured conference,
//     join win rates and engineer the five scores: energy (tempo), win
//     rate, aggression (fight and victory language), cliché (trope count)
//     and complexity (duration), with the tempo-, fight- and duration-based
//     scores min-maxed onto [1,10].
//   - Table exposes the N×5 feature matrix, the coloring values (win rates)
//     and per-record tooltips in source-file row order.
//
// The win-rate table is deliberately a configuration input rather than a
// lookup baked into the code: a pipeline run is fully described by its CSV
// and its Config.
//
// Errors: ErrMissingColumn, ErrBadNumeric, ErrUnknownSchool, ErrNoRecords.
package dataset
