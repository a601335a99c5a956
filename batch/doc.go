// Package batch drives the scenario-preparation pipeline over whole
// benchmark families.
//
// Instances live under <base>/<family>_failure_scenarios/<family>.<n>.txt
// for n in 1..count, with the family→count table supplied by a Config (the
// canonical gdb/bccm/eglese table ships as the default and can be replaced
// from a YAML file). A run recreates its output base directory from
// scratch — stale results from earlier runs must never survive — and then
// processes each file independently: read fully, transform in memory,
// write in a single operation.
//
// Per-file failure policy: a missing input file logs a warning and is
// skipped; a file that fails to parse logs an error and is skipped; the
// batch always continues. Everything is synchronous — files are small,
// independent, and processed to completion one at a time.
package batch
