package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// Line is the validation outcome for a single fixture file.
type Line struct {
	Name    string
	Valid   bool
	Reasons []string
}

// Report aggregates the outcome of one validator run over a category.
type Report struct {
	Category string
	Lines    []Line
	Valid    int
}

// Validator checks fixture files against a category and reports each outcome
// as one console line, with the offending payload pretty-printed after every
// invalid fixture and a trailing summary line per run.
type Validator struct {
	Out io.Writer
}

// Run validates names (in order) from dir against cat. A fixture failing its
// predicate or schema is a reported outcome, not an error; unreadable or
// malformed files abort the run with an error. The emitted line count is
// always len(names)+1 on success.
func (v *Validator) Run(_ context.Context, dir string, names []string, cat Category) (*Report, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("fixture list cannot be empty")
	}
	if cat.Predicate == nil || cat.Schema == nil {
		return nil, fmt.Errorf("category %q is missing a predicate or schema", cat.Name)
	}

	log := slog.With("category", cat.Name, "dir", dir)
	report := &Report{Category: cat.Name, Lines: make([]Line, 0, len(names))}

	for _, name := range names {
		raw, err := Load(dir, name)
		if err != nil {
			return nil, err
		}

		var payload any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse fixture %s: %w", name, err)
		}

		res := cat.Predicate(raw)
		reasons := res.Reasons
		if err := cat.Schema.Validate(payload); err != nil {
			res.Valid = false
			reasons = append(reasons, err.Error())
		}
		log.Debug("Fixture validated", "name", name, "valid", res.Valid)

		if res.Valid {
			report.Valid++
			fmt.Fprintf(v.Out, "✓ %s: VALID\n", name)
		} else {
			fmt.Fprintf(v.Out, "✗ %s: INVALID\n", name)
			pretty, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to render fixture %s: %w", name, err)
			}
			fmt.Fprintln(v.Out, string(pretty))
		}

		report.Lines = append(report.Lines, Line{Name: name, Valid: res.Valid, Reasons: reasons})
	}

	fmt.Fprintf(v.Out, "%s: %d/%d fixtures valid\n", cat.Name, report.Valid, len(names))
	return report, nil
}
