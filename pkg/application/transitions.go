package application

import (
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v4"
)

// Transitions is the table of legal status changes, keyed by the current status.
// Updating to the same status (notes only) is always legal.
type Transitions map[Status]map[Status]bool

// DefaultTransitions permits any status to move to any other.
func DefaultTransitions() Transitions {
	t := Transitions{}
	for _, from := range statuses {
		t[from] = map[Status]bool{}
		for _, to := range statuses {
			t[from][to] = true
		}
	}
	return t
}

func (t Transitions) Allowed(from, to Status) bool {
	if from == to {
		return true
	}
	return t[from][to]
}

// Next lists the statuses reachable from from, in declaration order.
func (t Transitions) Next(from Status) []Status {
	out := []Status{}
	for _, s := range statuses {
		if s != from && t[from][s] {
			out = append(out, s)
		}
	}
	return out
}

type transitionsFile struct {
	Transitions map[string][]string `yaml:"transitions"`
}

// ParseTransitions reads a YAML table of the form
//
//	transitions:
//	  pending: [reviewed, rejected]
//	  reviewed: [shortlisted, rejected]
//
// Statuses missing from the table have no outgoing transitions.
func ParseTransitions(data []byte) (Transitions, error) {
	var f transitionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse transitions: %w", err)
	}
	if len(f.Transitions) == 0 {
		return nil, fmt.Errorf("parse transitions: table is empty")
	}
	t := Transitions{}
	froms := make([]string, 0, len(f.Transitions))
	for from := range f.Transitions {
		froms = append(froms, from)
	}
	sort.Strings(froms)
	for _, rawFrom := range froms {
		from := Status(rawFrom)
		if !from.Valid() {
			return nil, fmt.Errorf("parse transitions: unknown status %q", rawFrom)
		}
		t[from] = map[Status]bool{}
		for _, rawTo := range f.Transitions[rawFrom] {
			to := Status(rawTo)
			if !to.Valid() {
				return nil, fmt.Errorf("parse transitions: unknown status %q", rawTo)
			}
			t[from][to] = true
		}
	}
	return t, nil
}

// LoadTransitions reads the table from path; an empty path yields the default table.
func LoadTransitions(path string) (Transitions, error) {
	if path == "" {
		return DefaultTransitions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTransitions(data)
}
