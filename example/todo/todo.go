// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command todo is a small task list that shows the argument library in use:
// subcommands, flags with defaults, typed options and colored error output.
//
//	todo add --tag home "buy milk"
//	todo list --all
//	todo done 2
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/yeetrun/tabb/pkg/tabb"
)

const storeFile = ".todo.json"

var schema = tabb.MustBuild(tabb.New("todo",
	tabb.Flag("verbose").Short('v'),
	tabb.Option("store").Default(storeFile),
).Command(tabb.New("add",
	tabb.Option("tag").Short('t').Arity(tabb.ZeroOrMore),
	tabb.Positional("text").Arity(tabb.OneOrMore),
)).Command(tabb.New("list",
	tabb.Flag("all").Short('a'),
	tabb.Option("tag").Short('t'),
)).Command(tabb.New("done",
	tabb.Positional("id").Type(tabb.Int()).Required(),
)))

type task struct {
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty"`
	Done bool     `json:"done"`
}

func main() {
	res, err := tabb.Parse(schema, os.Args[1:])
	if err != nil {
		fail(err)
	}

	path := res.String("store")
	tasks, err := loadTasks(path)
	if err != nil {
		fail(err)
	}

	cmd := ""
	if p := res.Path(); len(p) > 0 {
		cmd = p[0]
	}
	switch cmd {
	case "add":
		tasks = append(tasks, task{
			Text: strings.Join(res.Strings("text"), " "),
			Tags: res.Strings("tag"),
		})
		if err := saveTasks(path, tasks); err != nil {
			fail(err)
		}
		fmt.Printf("added #%d\n", len(tasks))
	case "list":
		listTasks(tasks, res.String("tag"), res.Bool("all"))
	case "done":
		id := int(res.Int("id"))
		if id < 1 || id > len(tasks) {
			fail(fmt.Errorf("no task #%d", id))
		}
		tasks[id-1].Done = true
		if err := saveTasks(path, tasks); err != nil {
			fail(err)
		}
		fmt.Printf("done #%d\n", id)
	default:
		fmt.Fprintln(os.Stderr, "usage: todo [add|list|done] ...")
		os.Exit(2)
	}
}

func listTasks(tasks []task, tag string, all bool) {
	done := color.New(color.Faint, color.CrossedOut)
	for i, t := range tasks {
		if t.Done && !all {
			continue
		}
		if tag != "" && !hasTag(t, tag) {
			continue
		}
		line := fmt.Sprintf("#%d %s", i+1, t.Text)
		if len(t.Tags) > 0 {
			line += " [" + strings.Join(t.Tags, ", ") + "]"
		}
		if t.Done {
			done.Println(line)
		} else {
			fmt.Println(line)
		}
	}
}

func hasTag(t task, tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

func loadTasks(path string) ([]task, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tasks []task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("bad store file %s: %w", path, err)
	}
	return tasks, nil
}

func saveTasks(path string, tasks []task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// fail prints the error in red, with did-you-mean suggestions for unknown
// flags, and exits.
func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "todo: ")
	fmt.Fprintln(os.Stderr, err)
	var unknown *tabb.UnknownArgumentError
	if errors.As(err, &unknown) && len(unknown.Suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "did you mean %s?\n", strings.Join(unknown.Suggestions, ", "))
	}
	os.Exit(1)
}
