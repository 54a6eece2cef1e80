// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemafile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yeetrun/tabb/pkg/tabb"
)

const tomlDoc = `
name = "todo"

[[args]]
name = "verbose"
kind = "flag"
short = "v"
count = "*"

[[args]]
name = "limit"
type = "int"
min = 1
max = 100
default = "20"

[[commands]]
name = "add"

[[commands.args]]
name = "tags"
long = ["tag", "tags"]
short = "t"
count = "*"

[[commands.args]]
name = "text"
kind = "positional"
count = "+"
`

const yamlDoc = `
name: todo
args:
  - name: verbose
    kind: flag
    short: v
    count: "*"
  - name: limit
    type: int
    min: 1
    max: 100
    default: "20"
commands:
  - name: add
    args:
      - name: tags
        long: [tag, tags]
        short: t
        count: "*"
      - name: text
        kind: positional
        count: "+"
`

func checkTodoSchema(t *testing.T, schema *tabb.Schema) {
	t.Helper()
	if schema.Name() != "todo" {
		t.Errorf("Name() = %q, want %q", schema.Name(), "todo")
	}

	res, err := tabb.Parse(schema, []string{"-vv", "add", "--tag", "home", "errands", "buy", "milk"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Seen("verbose") != 2 {
		t.Errorf("Seen(verbose) = %d, want 2", res.Seen("verbose"))
	}
	if got := res.Int("limit"); got != 20 {
		t.Errorf("Int(limit) = %d, want default 20", got)
	}
	if diff := cmp.Diff([]string{"home"}, res.Strings("tags")); diff != "" {
		t.Errorf("Strings(tags) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"errands", "buy", "milk"}, res.Strings("text")); diff != "" {
		t.Errorf("Strings(text) mismatch (-want +got):\n%s", diff)
	}

	// The range constraint from the document applies at parse time.
	_, err = tabb.Parse(schema, []string{"--limit", "500"})
	var invalid *tabb.InvalidValueError
	if !errors.As(err, &invalid) {
		t.Errorf("Parse(--limit 500) error = %v, want InvalidValueError", err)
	}
}

func TestParseTOML(t *testing.T) {
	schema, err := ParseTOML([]byte(tomlDoc))
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}
	checkTodoSchema(t, schema)
}

func TestParseYAML(t *testing.T) {
	schema, err := ParseYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	checkTodoSchema(t, schema)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "todo.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	schema, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", tomlPath, err)
	}
	checkTodoSchema(t, schema)

	yamlPath := filepath.Join(dir, "todo.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	schema, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("Load(%s) error = %v", yamlPath, err)
	}
	checkTodoSchema(t, schema)

	if _, err := Load(filepath.Join(dir, "todo.json")); err == nil {
		t.Error("Load() accepted an unsupported extension")
	}
}

func TestParseTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string // substring of the error
	}{
		{
			name: "unknown key",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\nsticky = true\n",
			want: "unknown key",
		},
		{
			name: "unknown kind",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\nkind = \"toggle\"\n",
			want: "unknown kind",
		},
		{
			name: "unknown type",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\ntype = \"decimal\"\n",
			want: "unknown type",
		},
		{
			name: "enum without choices",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\ntype = \"enum\"\n",
			want: "needs choices",
		},
		{
			name: "choices without enum",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\nchoices = [\"y\"]\n",
			want: "only apply to the enum",
		},
		{
			name: "bad default",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\ntype = \"int\"\ndefault = \"lots\"\n",
			want: "default",
		},
		{
			name: "bad count",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\ncount = \"0\"\n",
			want: "bad count",
		},
		{
			name: "min without max",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\ntype = \"int\"\nmin = 1\n",
			want: "set together",
		},
		{
			name: "bad pattern",
			doc:  "name = \"x\"\n[[args]]\nname = \"a\"\ntype = \"pattern\"\npattern = \"[\"\n",
			want: "bad pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTOML([]byte(tt.doc))
			if err == nil {
				t.Fatal("ParseTOML() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestSchemaValidationApplies(t *testing.T) {
	// Structural problems surface as the same SchemaError the builder
	// reports for schemas declared in code.
	doc := "name = \"x\"\n[[args]]\nname = \"a\"\n[[args]]\nname = \"a\"\n"
	_, err := ParseTOML([]byte(doc))
	var schemaErr *tabb.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("ParseTOML() error = %v, want *SchemaError", err)
	}
}

func TestParseArity(t *testing.T) {
	tests := []struct {
		in      string
		want    tabb.Arity
		wantErr bool
	}{
		{in: "?", want: tabb.ZeroOrOne},
		{in: "*", want: tabb.ZeroOrMore},
		{in: "+", want: tabb.OneOrMore},
		{in: "1", want: tabb.ExactlyOne},
		{in: "3", want: tabb.Exactly(3)},
		{in: "2..4", want: tabb.Arity{Min: 2, Max: 4}},
		{in: "2..", want: tabb.Arity{Min: 2, Max: -1}},
		{in: "0", wantErr: true},
		{in: "4..2", wantErr: true},
		{in: "lots", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseArity(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseArity(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseArity(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseArity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
