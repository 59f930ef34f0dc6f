// Package runner provides the check execution engine for go-preen
package runner

import (
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mrz1836/go-preen/internal/checks"
)

// Results maps check names to their results, preserving first-seen
// insertion order so downstream reporting is deterministic.
type Results = orderedmap.OrderedMap[string, *checks.CheckResult]

// Options configures a check run
type Options struct {
	// Skip lists check names to exclude. Exclusion beats inclusion: a
	// name present in both Skip and Only is skipped.
	Skip []string

	// Only, when non-empty, restricts the run to the named checks
	Only []string
}

// Run instantiates each factory against projectRoot in order and executes
// the checks sequentially, timing each one. Omitted checks (skipped, or
// filtered out by Only) produce no entry at all. A duplicate check name
// overwrites the earlier entry, keeping its original position.
//
// An error returned by a check's Run aborts the whole call: a crashing
// check is a defect in that check, not a failed result.
func Run(projectRoot string, factories []checks.Factory, opts Options) (*Results, error) {
	skip := toSet(opts.Skip)
	only := toSet(opts.Only)

	results := orderedmap.New[string, *checks.CheckResult]()

	for _, factory := range factories {
		check := factory(projectRoot)
		name := check.Name()

		if _, excluded := skip[name]; excluded {
			continue
		}
		if len(only) > 0 {
			if _, included := only[name]; !included {
				continue
			}
		}

		start := time.Now()
		result, err := check.Run()
		if err != nil {
			return nil, fmt.Errorf("check %q: %w", name, err)
		}
		result.Duration = time.Since(start)

		results.Set(name, result)
	}

	return results, nil
}

func toSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
