// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabb

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Converter turns a collected raw string into a typed value or an explicit
// failure reason. The set of converters is closed: the built-ins below plus
// Custom for user-supplied functions. A conversion failure surfaces as an
// InvalidValueError; values are never silently coerced or truncated.
type Converter struct {
	name string
	fn   func(raw string) (any, error)
}

// Name returns the converter's type name, e.g. "int" or "enum".
func (c Converter) Name() string {
	return c.name
}

// Convert applies the converter to one raw string.
func (c Converter) Convert(raw string) (any, error) {
	return c.fn(raw)
}

// String passes the raw value through unchanged.
func String() Converter {
	return Converter{name: "string", fn: func(raw string) (any, error) {
		return raw, nil
	}}
}

// Int parses a base-10 integer into an int64.
func Int() Converter {
	return Converter{name: "int", fn: func(raw string) (any, error) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer")
		}
		return n, nil
	}}
}

// Float parses a float64.
func Float() Converter {
	return Converter{name: "float", fn: func(raw string) (any, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return f, nil
	}}
}

// Bool parses the usual boolean spellings (true/false, 1/0, t/f).
func Bool() Converter {
	return Converter{name: "bool", fn: func(raw string) (any, error) {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("not a boolean")
		}
		return b, nil
	}}
}

// Enum accepts only the given choices and yields the matched string.
// Matching is exact and case-sensitive.
func Enum(choices ...string) Converter {
	return Converter{name: "enum", fn: func(raw string) (any, error) {
		for _, choice := range choices {
			if raw == choice {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("must be one of: %s", strings.Join(choices, ", "))
	}}
}

// Duration parses a Go duration string such as "300ms" or "1h30m".
func Duration() Converter {
	return Converter{name: "duration", fn: func(raw string) (any, error) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("not a duration")
		}
		return d, nil
	}}
}

// URL parses an absolute URL into a *url.URL.
func URL() Converter {
	return Converter{name: "url", fn: func(raw string) (any, error) {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("not a URL")
		}
		if u.Scheme == "" {
			return nil, fmt.Errorf("URL is missing a scheme")
		}
		return u, nil
	}}
}

// Semver parses a semantic version into a *semver.Version.
func Semver() Converter {
	return Converter{name: "semver", fn: func(raw string) (any, error) {
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("not a semantic version")
		}
		return v, nil
	}}
}

// IntRange parses an int64 and requires min <= n <= max.
func IntRange(min, max int64) Converter {
	return Converter{name: "int", fn: func(raw string) (any, error) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer")
		}
		if n < min || n > max {
			return nil, fmt.Errorf("must be between %d and %d", min, max)
		}
		return n, nil
	}}
}

// FloatRange parses a float64 and requires min <= f <= max.
func FloatRange(min, max float64) Converter {
	return Converter{name: "float", fn: func(raw string) (any, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		if f < min || f > max {
			return nil, fmt.Errorf("must be between %v and %v", min, max)
		}
		return f, nil
	}}
}

// Pattern accepts strings matching the compiled expression.
func Pattern(re *regexp.Regexp) Converter {
	return Converter{name: "pattern", fn: func(raw string) (any, error) {
		if !re.MatchString(raw) {
			return nil, fmt.Errorf("must match %s", re)
		}
		return raw, nil
	}}
}

// Custom wraps a user-supplied conversion function under the given type
// name. The function must return the typed value or a reason the raw
// string is unacceptable.
func Custom(name string, fn func(raw string) (any, error)) Converter {
	return Converter{name: name, fn: fn}
}
