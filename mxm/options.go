// SPDX-License-Identifier: MIT

// Package mxm: functional configuration for the multiply entry points.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, each flag impacts
//     behavior and is covered by tests.
//   - Options fields are unexported; public entry points consume
//     ...Option and resolve them via gatherOptions.

package mxm

import "fmt"

// DefaultReplace controls the "z" write-back descriptor when no option
// is given: false ⇒ merge semantics (C entries outside the mask
// survive). This mirrors the calling convention "absent replace flag
// means merge".
const DefaultReplace = false

// panic message for programmer errors in option constructors.
const panicTraceNil = "mxm: WithTrace: nil trace func"

// Option mutates internal options. Safe to apply repeatedly
// (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Intentionally unexported fields; resolved via
// gatherOptions.
type Options struct {
	replace bool             // DefaultReplace
	trace   func(msg string) // nil ⇒ no verbose trace
}

// WithReplace selects replace semantics ("z = replace"): prior C
// entries whose column falls outside the mask are discarded.
// Complexity: O(1).
func WithReplace() Option {
	return func(o *Options) { o.replace = true }
}

// WithMerge selects merge semantics ("z = merge", the default): prior
// C entries outside the mask survive the write-back.
// Complexity: O(1).
func WithMerge() Option {
	return func(o *Options) { o.replace = false }
}

// WithTrace installs a verbose-trace hook. Every entry point that runs
// to completion invokes it once with a rendering of the final C.
// Short-circuited calls do not trace (they did no multiply work).
//
// Panics with a stable message on a nil fn (programmer error).
// Complexity: O(1) to set; the hook itself costs O(C.NVals) per call.
func WithTrace(fn func(msg string)) Option {
	if fn == nil {
		panic(panicTraceNil)
	}

	return func(o *Options) { o.trace = fn }
}

// gatherOptions applies user setters on top of the documented defaults
// (last-writer-wins). The canonical internal entry for all six
// operations. Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{replace: DefaultReplace}
	for _, set := range user {
		set(&o)
	}

	return o
}

// emit renders C through the trace hook, if any.
func (o Options) emit(c fmt.Stringer) {
	if o.trace != nil {
		o.trace("C: " + c.String())
	}
}
