// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

// finalize turns a completed matching pass into a typed Result. Steps run
// in a fixed order, each as a full pass over every spec of every schema
// level traversed: defaults and required checks, arity bounds, type
// conversion, exclusive groups, assembly. The first failure is returned
// immediately, so an earlier step's defect is reported even when a later
// step's defect sits on an earlier spec.
func finalize(st *matchState) (*Result, error) {
	result := &Result{
		values: make(map[string]any),
		seen:   make(map[string]int),
		path:   append([]string(nil), st.path...),
	}

	// Defaults and required checks; specs that collected values are carried
	// forward in traversal order, so a child spec reusing a parent's name
	// still shadows it in the flat result.
	var filled []*ArgumentSpec
	for _, level := range st.levels {
		for _, spec := range level.specs {
			result.seen[spec.Name] = st.seen[spec]
			if len(st.values[spec]) > 0 {
				filled = append(filled, spec)
				continue
			}
			if spec.Default != nil {
				result.values[spec.Name] = spec.Default
				continue
			}
			if spec.Required {
				return nil, &MissingRequiredError{Spec: spec.Name}
			}
		}
	}

	// Arity bounds.
	for _, spec := range filled {
		raws := st.values[spec]
		if !spec.Values.Unbounded() && len(raws) > spec.Values.Max {
			return nil, &TooManyValuesError{
				Spec:   spec.Name,
				Limit:  spec.Values.Max,
				Actual: len(raws),
			}
		}
		if len(raws) < spec.Values.Min {
			return nil, &MissingValueError{Spec: spec.Name}
		}
	}

	// Type conversion.
	for _, spec := range filled {
		raws := st.values[spec]
		converted := make([]any, len(raws))
		for i, raw := range raws {
			v, err := spec.Type.Convert(raw)
			if err != nil {
				return nil, &InvalidValueError{Spec: spec.Name, Raw: raw, Err: err}
			}
			converted[i] = v
		}
		if spec.Values.Max == 1 {
			result.values[spec.Name] = converted[0]
		} else {
			result.values[spec.Name] = converted
		}
	}

	// Exclusive groups.
	byGroup := make(map[string][]string)
	var groupOrder []string
	for _, spec := range filled {
		if spec.Group == "" {
			continue
		}
		if _, ok := byGroup[spec.Group]; !ok {
			groupOrder = append(groupOrder, spec.Group)
		}
		byGroup[spec.Group] = append(byGroup[spec.Group], spec.Name)
	}
	for _, group := range groupOrder {
		if names := byGroup[group]; len(names) > 1 {
			return nil, &ExclusiveGroupError{Group: group, Names: names}
		}
	}

	return result, nil
}
