// Package part implements word-part (sub-word) boundary classification
// and cursor motion.
//
// A word part is a maximal run bounded by case-shift, letter/digit,
// underscore, or whitespace transitions: finer-grained than a whole
// word. "thisIsACamelCaseVar" has the parts "this", "Is", "A", "Camel",
// "Case", "Var"; "this_is_a_snake_case_var" has "this_", "is_", "a_",
// and so on, with each underscore run attached to the segment before it.
//
// The package has two layers:
//
//   - IsBoundary and the CharClass model: a pure classifier deciding
//     whether a boundary lies at a given column of a line.
//   - Engine: walks a buffer.Document one boundary at a time in either
//     direction, producing the next cursor position (Next, Prev, Step)
//     or the half-open span a delete-by-part removes (DeleteRange).
//
// Motion is bounded and monotonic: repeated Prev reaches the document
// start, repeated Next its end, each visiting every stop exactly once.
// Stops enumerates that full set in reading order.
//
// Whether motion crosses line boundaries is configurable via
// WithLineWrap; it is enabled by default, with leftward motion from
// column 1 landing on the previous line's end and rightward motion
// from end of line on the next line's column 1.
//
// Everything here is pure computation over immutable snapshots: no
// state, no failure modes, safe for concurrent use. Deletions are
// returned as ranges for the caller to apply; the engine never
// mutates a document.
package part
