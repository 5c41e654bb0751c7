package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dod.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "fixtures", cfg.FixturesDir)
	assert.Contains(t, cfg.TicketFixtures, "jira-backend-ticket.json")
	assert.Contains(t, cfg.MergeRequestFixtures, "gitlab-mr-running.json")
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `fixtures_dir: testdata/fixtures
output_dir: /tmp/dod-out
ticket_fixtures:
  - backend.json
merge_request_fixtures:
  - mr.json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testdata/fixtures", cfg.FixturesDir)
	assert.Equal(t, []string{"backend.json"}, cfg.TicketFixtures)
	assert.Equal(t, []string{"mr.json"}, cfg.MergeRequestFixtures)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("DOD_FIXTURES", "/srv/fixtures")
	path := writeConfig(t, `fixtures_dir: ${DOD_FIXTURES}
ticket_fixtures: [a.json]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/fixtures", cfg.FixturesDir)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_MissingFixturesDir(t *testing.T) {
	path := writeConfig(t, `ticket_fixtures: [a.json]`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixtures_dir is required")
}

func TestLoad_NoFixturesConfigured(t *testing.T) {
	path := writeConfig(t, `fixtures_dir: fixtures`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one fixture file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, `fixtures_dir: [unclosed`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
