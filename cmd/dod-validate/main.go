// Command dod-validate checks the checked-in JSON fixture corpus against the
// ticket and merge-request shapes and reports per-file pass/fail. Invalid
// fixtures are reported, not fatal; only I/O and parse errors exit non-zero.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/donedone/dod-core/core/config"
	"github.com/donedone/dod-core/core/fixtures"
)

func main() {
	exitFn(run(os.Args, os.Stdout, os.Stderr))
}

var exitFn = os.Exit

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("dod-validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to YAML config file")
	dir := fs.String("fixtures", "", "fixtures directory (overrides config)")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 2
		}
		cfg = loaded
	}
	if *dir != "" {
		cfg.FixturesDir = *dir
	}

	ctx := context.Background()
	v := &fixtures.Validator{Out: stdout}

	categories := []struct {
		names []string
		build func() (fixtures.Category, error)
	}{
		{names: cfg.TicketFixtures, build: fixtures.TicketCategory},
		{names: cfg.MergeRequestFixtures, build: fixtures.MergeRequestCategory},
	}

	for _, c := range categories {
		if len(c.names) == 0 {
			continue
		}
		cat, err := c.build()
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		if _, err := v.Run(ctx, cfg.FixturesDir, c.names, cat); err != nil {
			fmt.Fprintln(stderr, "validation aborted:", err)
			return 1
		}
	}

	// Invalid fixtures are a reported outcome, never a failing exit.
	return 0
}
