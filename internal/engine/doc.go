// Package engine implements the deterministic quote rule engine.
//
// A Runner owns a validated, ordered list of rules and a reference snapshot.
// Each computation walks the input's lines in document order and applies every
// rule to every line in ruleset order. There is no scheduling, no concurrency
// and no clock inside a computation: identical (input, reference data,
// ruleset) triples always produce identical output.
//
// Event flow per computation:
//  1. Every line's sku is resolved against the snapshot up front; a miss is a
//     StructuralError and nothing runs.
//  2. Rules apply per line in ruleset order, mutating only that line's state
//     and appending to the explain trail.
//  3. The runner finalizes: per-line net sell and margin, quote totals,
//     accumulated warnings and blocking notices.
//
// Business conditions (capped discounts, unknown postcodes, margin floors)
// are Notices inside the output, never Go errors. Blocking notices do not
// abort the run; the computation stays total so a blocked quote still carries
// its full explain trail.
package engine
