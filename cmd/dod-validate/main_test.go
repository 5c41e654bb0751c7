package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donedone/dod-core/core/testutil"
)

func writeValidateConfig(t *testing.T, dir string, tickets, mrs []string) string {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "fixtures_dir: %s\n", dir)
	if len(tickets) > 0 {
		b.WriteString("ticket_fixtures:\n")
		for _, name := range tickets {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}
	if len(mrs) > 0 {
		b.WriteString("merge_request_fixtures:\n")
		for _, name := range mrs {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}
	return testutil.WriteFixture(t, t.TempDir(), "dod.yaml", b.String())
}

func TestRun_CheckedInCorpus(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"dod-validate", "-fixtures", filepath.Join("..", "..", "fixtures")}, &stdout, &stderr)

	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "✓ jira-backend-ticket.json: VALID")
	assert.Contains(t, out, "✓ gitlab-mr-running.json: VALID")
	assert.Contains(t, out, "ticket: 4/4 fixtures valid")
	assert.Contains(t, out, "merge_request: 3/3 fixtures valid")
	assert.NotContains(t, out, "✗")
}

func TestRun_InvalidFixtureStillExitsZero(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFixture(t, dir, "jira-bad-ticket.json", `{"key": "BACK-2", "type": "backend"}`)
	cfgPath := writeValidateConfig(t, dir, []string{"jira-bad-ticket.json"}, nil)

	var stdout, stderr bytes.Buffer
	code := run([]string{"dod-validate", "-config", cfgPath}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "✗ jira-bad-ticket.json: INVALID")
	// Invalid fixtures have their payload pretty-printed for inspection.
	assert.Contains(t, out, "\"key\": \"BACK-2\"")
	assert.Contains(t, out, "ticket: 0/1 fixtures valid")
}

func TestRun_MissingFixtureFails(t *testing.T) {
	cfgPath := writeValidateConfig(t, t.TempDir(), []string{"absent.json"}, nil)

	var stdout, stderr bytes.Buffer
	code := run([]string{"dod-validate", "-config", cfgPath}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "validation aborted")
	assert.Contains(t, stderr.String(), "failed to read fixture")
}

func TestRun_MalformedFixtureFails(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFixture(t, dir, "broken.json", `{"id": `)
	cfgPath := writeValidateConfig(t, dir, nil, []string{"broken.json"})

	var stdout, stderr bytes.Buffer
	code := run([]string{"dod-validate", "-config", cfgPath}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to parse fixture")
}

func TestRun_BadConfigPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"dod-validate", "-config", filepath.Join(t.TempDir(), "absent.yaml")}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "failed to read config")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"dod-validate", "-bogus"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
}
