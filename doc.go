// Package propfin normalizes raw general-ledger exports for a property
// portfolio into canonical, arithmetically consistent financial statements.
//
// The core functionalities include:
//   - Primitive Parsing: turning display-formatted currency and percent
//     strings (as exported by the accounting system) into exact values.
//   - Account Classification: mapping GL account codes and names to a closed
//     set of semantic categories through an ordered rule table.
//   - Statement Aggregation: building cash-flow, balance-sheet and trailing
//     twelve month reports from classified line items.
//   - Variance Analysis: comparing two aggregated periods per category with
//     tri-state review statuses.
//   - Completeness & Fallback: validating property records and, when the
//     authoritative ledger data is incomplete, estimating financials from a
//     live rent-roll feed or a static table.
//   - Portfolio Roll-up: combining per-property results into portfolio-level
//     aggregates.
//
// Every entry point is a pure function of its inputs: data-quality problems
// are modeled as values (missing fields, warnings, completeness grades),
// never as errors, so a caller can always render something.
//
// This package serves as the foundational logic for the `pfd` command-line
// tool.
package propfin
