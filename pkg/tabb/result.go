// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

import "time"

// Result is the typed outcome of a successful parse: coerced values keyed
// by spec name, occurrence counts, and the subcommand path taken. A Result
// is produced once and never mutated.
//
// Typed accessors return the zero value when the name is absent or holds a
// different type; use Value to distinguish.
type Result struct {
	values map[string]any
	seen   map[string]int
	path   []string
}

// Has reports whether the argument ended up with a value (collected or
// defaulted).
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Value returns the raw typed value for name.
func (r *Result) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Seen returns how many times the argument occurred on the command line.
// Defaults do not count as occurrences.
func (r *Result) Seen(name string) int {
	return r.seen[name]
}

// Path returns the subcommand names traversed, outermost first.
func (r *Result) Path() []string {
	return append([]string(nil), r.path...)
}

// String returns the value of a string-typed argument.
func (r *Result) String(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Strings returns the values of a multi-valued string argument.
func (r *Result) Strings(name string) []string {
	vs, ok := r.values[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Int returns the value of an int-typed argument.
func (r *Result) Int(name string) int64 {
	n, _ := r.values[name].(int64)
	return n
}

// Ints returns the values of a multi-valued int argument.
func (r *Result) Ints(name string) []int64 {
	vs, ok := r.values[name].([]any)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(vs))
	for _, v := range vs {
		if n, ok := v.(int64); ok {
			out = append(out, n)
		}
	}
	return out
}

// Float returns the value of a float-typed argument.
func (r *Result) Float(name string) float64 {
	f, _ := r.values[name].(float64)
	return f
}

// Bool returns the value of a flag or bool-typed argument. For a
// repeatable flag the last occurrence wins, so "-vvv" reads as true and
// "--verbose --verbose=false" as false.
func (r *Result) Bool(name string) bool {
	switch v := r.values[name].(type) {
	case bool:
		return v
	case []any:
		if len(v) > 0 {
			b, _ := v[len(v)-1].(bool)
			return b
		}
	}
	return false
}

// Duration returns the value of a duration-typed argument.
func (r *Result) Duration(name string) time.Duration {
	d, _ := r.values[name].(time.Duration)
	return d
}
