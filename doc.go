// Package verdict is a small assertion engine: it evaluates user-supplied
// computations under a bounded time budget, classifies each outcome into a
// closed set of result variants, and aggregates results across suites into
// pass/fail statistics with localized, optionally colored reports.
//
// Three test families share the bounded evaluator: equality tests (Equal),
// property tests (Property, with the Assert and Refute boolean shorthands),
// and error-expectation tests (ExpectError and friends) which classify a
// returned error's kind and message against a declared specification.
package verdict
