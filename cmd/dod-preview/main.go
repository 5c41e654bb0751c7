// Command dod-preview loads a ticket fixture, generates its Definition of
// Done, and prints a preview of the document. Generation errors reported by
// the library are printed without failing the run; hard failures (unreadable
// fixture, undecodable ticket, rendering fault) exit 1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/donedone/dod-core/core"
	"github.com/donedone/dod-core/core/config"
	"github.com/donedone/dod-core/core/fixtures"
	"github.com/donedone/dod-core/core/generator"
	"github.com/donedone/dod-core/core/models"
)

const previewLimit = 500

func main() {
	exitFn(run(os.Args, os.Stdout, os.Stderr))
}

var exitFn = os.Exit

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("dod-preview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to YAML config file")
	dir := fs.String("fixtures", "", "fixtures directory (overrides config)")
	file := fs.String("file", "jira-backend-ticket.json", "ticket fixture to preview")
	typ := fs.String("type", "", "ticket type override (backend|frontend|infrastructure|bug)")
	outDir := fs.String("out", "", "if set, persist the generated document under this directory")
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

	raw, err := fixtures.Load(cfg.FixturesDir, *file)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	ticket, err := models.DecodeTicket(raw)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	in := generator.Input{Ticket: ticket, Type: *typ}
	out, err := generator.GenerateFromInput(in)
	if err != nil {
		fmt.Fprintf(stderr, "DoD generation failed: %v\n", err)
		return 1
	}

	if len(out.Errors) > 0 {
		fmt.Fprintf(stdout, "generation reported %d error(s):\n", len(out.Errors))
		for _, e := range out.Errors {
			fmt.Fprintln(stdout, "- "+e)
		}
		return 0
	}

	preview := []rune(out.DoD)
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}
	fmt.Fprintf(stdout, "--- DoD preview: %s (first %d chars) ---\n", ticket.Key, previewLimit)
	fmt.Fprintln(stdout, string(preview))
	fmt.Fprintf(stdout, "--- total length: %d characters ---\n", len([]rune(out.DoD)))

	if *outDir != "" {
		artifact, err := generator.NewArtifact(in, out)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		if err := core.PersistArtifacts(context.Background(), *outDir, []generator.Artifact{artifact}); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		fmt.Fprintf(stdout, "artifact %s written under %s\n", artifact.ID, *outDir)
	}

	return 0
}
