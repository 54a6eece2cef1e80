// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

// matchState is the accumulator for one parsing pass. It is created by
// match, handed to finalize, and never shared: concurrent passes over the
// same Schema each get their own state.
type matchState struct {
	root   *Schema
	active *Schema
	levels []*Schema // schemas traversed so far, root first
	path   []string  // subcommand names traversed, in order

	values   map[*ArgumentSpec][]string // raw strings collected per spec
	seen     map[*ArgumentSpec]int      // occurrence count per spec
	posIndex int                        // cursor into active.positionals
}

// match consumes the token stream against the schema. It returns the filled
// state, or the first structured error encountered in a strict left-to-right
// scan; there is no recovery and no backtracking.
func match(schema *Schema, tokens []Token) (*matchState, error) {
	st := &matchState{
		root:   schema,
		active: schema,
		levels: []*Schema{schema},
		values: make(map[*ArgumentSpec][]string),
		seen:   make(map[*ArgumentSpec]int),
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case TokenSeparator:
			// The tokenizer already forces everything after the separator to
			// be positional; the token itself is discarded.
			i++
		case TokenLong:
			n, err := st.matchLong(tok, tokens, i)
			if err != nil {
				return nil, err
			}
			i += n
		case TokenShort:
			n, err := st.matchShort(tok, tokens, i)
			if err != nil {
				return nil, err
			}
			i += n
		default:
			if err := st.bindPositional(tok); err != nil {
				return nil, err
			}
			i++
		}
	}
	return st, nil
}

func (st *matchState) collect(spec *ArgumentSpec, raw string) {
	st.values[spec] = append(st.values[spec], raw)
}

// matchLong resolves a "--name" token. Lookup is exact and case-sensitive;
// no prefix or abbreviation matching. Returns the number of tokens consumed
// (the flag itself plus any values taken from the stream).
func (st *matchState) matchLong(tok Token, tokens []Token, at int) (int, error) {
	spec, ok := st.active.longs[tok.Name]
	if !ok {
		return 0, &UnknownArgumentError{
			Token:       tok.Text,
			Pos:         tok.Pos,
			Suggestions: st.suggestLong(tok.Name),
		}
	}
	st.seen[spec]++

	if spec.Kind == KindFlag {
		if tok.HasValue {
			// Explicit "--verbose=false"; coerced by the bool converter.
			st.collect(spec, tok.Value)
		} else {
			st.collect(spec, "true")
		}
		return 1, nil
	}

	if tok.HasValue {
		st.collect(spec, tok.Value)
		return 1, nil
	}
	taken, err := st.consumeValues(spec, tok.Text, tokens, at+1)
	if err != nil {
		return 0, err
	}
	return 1 + taken, nil
}

// matchShort expands a short cluster rune by rune against the active
// schema. The first rune that maps to a value-taking option consumes the
// remainder of the cluster as its attached value and ends the expansion.
func (st *matchState) matchShort(tok Token, tokens []Token, at int) (int, error) {
	runes := []rune(tok.Name)
	for idx, r := range runes {
		spec, ok := st.active.shorts[r]
		if !ok {
			return 0, &UnknownArgumentError{Token: "-" + string(r), Pos: tok.Pos}
		}
		st.seen[spec]++
		last := idx == len(runes)-1

		if spec.Kind == KindFlag {
			if last && tok.HasValue {
				st.collect(spec, tok.Value)
			} else {
				st.collect(spec, "true")
			}
			continue
		}

		// Value-taking option inside the cluster.
		if !last {
			value := string(runes[idx+1:])
			if tok.HasValue {
				// "-ab=c" keeps the "=c" as part of b's attached value.
				value += "=" + tok.Value
			}
			st.collect(spec, value)
			return 1, nil
		}
		if tok.HasValue {
			st.collect(spec, tok.Value)
			return 1, nil
		}
		taken, err := st.consumeValues(spec, tok.Text, tokens, at+1)
		if err != nil {
			return 0, err
		}
		return 1 + taken, nil
	}
	return 1, nil
}

// consumeValues greedily takes following positional tokens as values for
// spec. Consumption stops at the next flag or separator token, at the end
// of the input, or once the arity's maximum is reached; stopping before the
// occurrence's minimum is a MissingValueError. An occurrence whose minimum
// is already met may take zero values, so a bare "--tags" with a zero
// minimum arity is valid. There is no lookahead beyond the flag/separator
// boundary.
func (st *matchState) consumeValues(spec *ArgumentSpec, flag string, tokens []Token, start int) (int, error) {
	before := len(st.values[spec])

	minWant := spec.Values.Min - before
	if minWant < 0 {
		minWant = 0
	}
	maxWant := -1
	if !spec.Values.Unbounded() {
		maxWant = spec.Values.Max - before
		if maxWant < 1 {
			// Already at or past the maximum; still take one value so the
			// overflow is reported as TooManyValues, not as a stray
			// positional.
			maxWant = 1
		}
		if minWant > maxWant {
			minWant = maxWant
		}
	}

	taken := 0
	for i := start; i < len(tokens) && tokens[i].Kind == TokenPositional; i++ {
		st.collect(spec, tokens[i].Text)
		taken++
		if maxWant >= 0 && taken == maxWant {
			break
		}
	}
	if taken < minWant {
		return 0, &MissingValueError{Spec: spec.Name, Flag: flag}
	}
	return taken, nil
}

// bindPositional routes a positional token: declared positionals at the
// active level always bind first, in declaration order; only once they are
// all filled to their maximum is subcommand dispatch attempted.
func (st *matchState) bindPositional(tok Token) error {
	for st.posIndex < len(st.active.positionals) {
		spec := st.active.positionals[st.posIndex]
		if !spec.Values.Unbounded() && len(st.values[spec]) >= spec.Values.Max {
			st.posIndex++
			continue
		}
		st.seen[spec]++
		st.collect(spec, tok.Text)
		return nil
	}

	if sub, ok := st.active.commands[tok.Text]; ok {
		st.active = sub
		st.levels = append(st.levels, sub)
		st.path = append(st.path, tok.Text)
		st.posIndex = 0
		return nil
	}
	return &UnexpectedPositionalError{Token: tok.Text, Pos: tok.Pos}
}

// suggestLong returns close matches for an unknown long flag from the
// active schema's vocabulary.
func (st *matchState) suggestLong(name string) []string {
	candidates := make([]string, 0, len(st.active.longs))
	for long := range st.active.longs {
		candidates = append(candidates, long)
	}
	matches := closeMatches(name, candidates)
	for i, m := range matches {
		matches[i] = "--" + m
	}
	return matches
}
